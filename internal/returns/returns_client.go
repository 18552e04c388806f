package returns

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go-saree-api/internal/commerce"
)

//go:generate mockgen -source=returns_client.go -destination=../mock/returns/returns_client_mock.go -package=mock

const (
	StatusRequested = "REQUESTED"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
)

// ReturnRequest mirrors the platform's return record.
type ReturnRequest struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	ProductID string    `json:"productId"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Client interface {
	List(ctx context.Context, userID string) ([]ReturnRequest, error)
	Create(ctx context.Context, userID string, r ReturnRequest) (ReturnRequest, error)
}

type httpClient struct {
	api *commerce.Client
}

func NewClient(api *commerce.Client) Client {
	return &httpClient{api: api}
}

func (c *httpClient) List(ctx context.Context, userID string) ([]ReturnRequest, error) {
	var items []ReturnRequest
	path := "/users/" + url.PathEscape(userID) + "/returns"
	if err := c.api.Do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *httpClient) Create(ctx context.Context, userID string, r ReturnRequest) (ReturnRequest, error) {
	var created ReturnRequest
	path := "/users/" + url.PathEscape(userID) + "/returns"
	if err := c.api.Do(ctx, http.MethodPost, path, r, &created); err != nil {
		return ReturnRequest{}, err
	}
	return created, nil
}
