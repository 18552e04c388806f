package address

import (
	"context"
	"net/http"
	"net/url"

	"go-saree-api/internal/commerce"
)

//go:generate mockgen -source=address_client.go -destination=../mock/address/address_client_mock.go -package=mock

// Address mirrors the platform's shipping address record.
type Address struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Recipient  string `json:"recipient"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	IsDefault  bool   `json:"isDefault"`
}

type Client interface {
	List(ctx context.Context, userID string) ([]Address, error)
	Create(ctx context.Context, userID string, a Address) (Address, error)
	Update(ctx context.Context, userID string, a Address) (Address, error)
	Delete(ctx context.Context, userID, addressID string) error
	SetDefault(ctx context.Context, userID, addressID string) error
}

type httpClient struct {
	api *commerce.Client
}

func NewClient(api *commerce.Client) Client {
	return &httpClient{api: api}
}

func (c *httpClient) base(userID string) string {
	return "/users/" + url.PathEscape(userID) + "/addresses"
}

func (c *httpClient) List(ctx context.Context, userID string) ([]Address, error) {
	var addresses []Address
	if err := c.api.Do(ctx, http.MethodGet, c.base(userID), nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *httpClient) Create(ctx context.Context, userID string, a Address) (Address, error) {
	var created Address
	if err := c.api.Do(ctx, http.MethodPost, c.base(userID), a, &created); err != nil {
		return Address{}, err
	}
	return created, nil
}

func (c *httpClient) Update(ctx context.Context, userID string, a Address) (Address, error) {
	var updated Address
	path := c.base(userID) + "/" + url.PathEscape(a.ID)
	if err := c.api.Do(ctx, http.MethodPut, path, a, &updated); err != nil {
		return Address{}, err
	}
	return updated, nil
}

func (c *httpClient) Delete(ctx context.Context, userID, addressID string) error {
	path := c.base(userID) + "/" + url.PathEscape(addressID)
	return c.api.Do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *httpClient) SetDefault(ctx context.Context, userID, addressID string) error {
	path := c.base(userID) + "/" + url.PathEscape(addressID) + "/default"
	return c.api.Do(ctx, http.MethodPost, path, nil, nil)
}
