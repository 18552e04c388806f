package wishlist

import (
	"context"
	"net/http"
	"net/url"

	"go-saree-api/internal/commerce"
)

//go:generate mockgen -source=wishlist_client.go -destination=../mock/wishlist/wishlist_client_mock.go -package=mock

// Item mirrors the platform's wishlist entry.
type Item struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Slug      string  `json:"slug"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Stock     int     `json:"stock"`
}

// Client is the remote wishlist collaborator: conventional CRUD over HTTP,
// one call per operation, no retries here.
type Client interface {
	List(ctx context.Context, userID string) ([]Item, error)
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type httpClient struct {
	api *commerce.Client
}

func NewClient(api *commerce.Client) Client {
	return &httpClient{api: api}
}

func (c *httpClient) List(ctx context.Context, userID string) ([]Item, error) {
	var items []Item
	path := "/users/" + url.PathEscape(userID) + "/wishlist"
	if err := c.api.Do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *httpClient) Remove(ctx context.Context, userID, productID string) error {
	path := "/users/" + url.PathEscape(userID) + "/wishlist/" + url.PathEscape(productID)
	return c.api.Do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *httpClient) Clear(ctx context.Context, userID string) error {
	path := "/users/" + url.PathEscape(userID) + "/wishlist"
	return c.api.Do(ctx, http.MethodDelete, path, nil, nil)
}
