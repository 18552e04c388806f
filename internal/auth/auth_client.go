package auth

import (
	"context"
	"net/http"

	"go-saree-api/internal/commerce"
)

//go:generate mockgen -source=auth_client.go -destination=../mock/auth/auth_client_mock.go -package=mock

// Identity is the platform's view of a verified account. No credentials are
// stored or hashed on this side.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// IdentityClient verifies credentials against the platform's identity
// service.
type IdentityClient interface {
	Verify(ctx context.Context, email, password string) (Identity, error)
}

type identityClient struct {
	api *commerce.Client
}

func NewIdentityClient(api *commerce.Client) IdentityClient {
	return &identityClient{api: api}
}

func (c *identityClient) Verify(ctx context.Context, email, password string) (Identity, error) {
	req := map[string]string{"email": email, "password": password}
	var id Identity
	if err := c.api.Do(ctx, http.MethodPost, "/auth/verify", req, &id); err != nil {
		return Identity{}, err
	}
	return id, nil
}
