package cart

import (
	"context"
	"net/http"
	"net/url"

	"go-saree-api/internal/commerce"
)

//go:generate mockgen -source=cart_client.go -destination=../mock/cart/cart_client_mock.go -package=mock

// CouponClient resolves a human-entered code to the coupon's terms.
type CouponClient interface {
	Lookup(ctx context.Context, code string) (Coupon, error)
}

// RemoteCartClient reads the server-tracked cart for an authenticated user.
type RemoteCartClient interface {
	FetchItems(ctx context.Context, userID string) ([]Item, error)
}

type couponClient struct {
	api *commerce.Client
}

func NewCouponClient(api *commerce.Client) CouponClient {
	return &couponClient{api: api}
}

func (c *couponClient) Lookup(ctx context.Context, code string) (Coupon, error) {
	var coupon Coupon
	path := "/coupons/" + url.PathEscape(code)
	if err := c.api.Do(ctx, http.MethodGet, path, nil, &coupon); err != nil {
		return Coupon{}, err
	}
	return coupon, nil
}

type remoteCartClient struct {
	api *commerce.Client
}

func NewRemoteCartClient(api *commerce.Client) RemoteCartClient {
	return &remoteCartClient{api: api}
}

func (c *remoteCartClient) FetchItems(ctx context.Context, userID string) ([]Item, error) {
	var items []Item
	path := "/users/" + url.PathEscape(userID) + "/cart/items"
	if err := c.api.Do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
