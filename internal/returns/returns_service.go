package returns

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-saree-api/internal/optimistic"
)

//go:generate mockgen -source=returns_service.go -destination=../mock/returns/returns_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, userID string) ([]ReturnRequest, error)
	Create(ctx context.Context, userID string, req CreateReturnRequest) (ReturnRequest, error)
}

type service struct {
	client   Client
	notifier optimistic.Notifier

	mu     sync.Mutex
	caches map[string]*optimistic.Cache[[]ReturnRequest]
}

func NewService(client Client, notifier optimistic.Notifier) Service {
	if notifier == nil {
		notifier = optimistic.NopNotifier{}
	}
	return &service{
		client:   client,
		notifier: notifier,
		caches:   make(map[string]*optimistic.Cache[[]ReturnRequest]),
	}
}

func (s *service) cacheFor(userID string) *optimistic.Cache[[]ReturnRequest] {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.caches[userID]
	if !ok {
		c = optimistic.NewCache[[]ReturnRequest]()
		s.caches[userID] = c
	}
	return c
}

func (s *service) List(ctx context.Context, userID string) ([]ReturnRequest, error) {
	cache := s.cacheFor(userID)
	if items, ok := cache.Get(); ok {
		return items, nil
	}

	items, err := s.client.List(ctx, userID)
	if err != nil {
		return nil, ErrReturnsUnavailable
	}
	cache.Set(items)
	return items, nil
}

// Create shows the return as REQUESTED immediately; the platform's answer
// (and its assigned id) arrives with the settle refetch.
func (s *service) Create(ctx context.Context, userID string, req CreateReturnRequest) (ReturnRequest, error) {
	provisional := ReturnRequest{
		ID:        uuid.NewString(),
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Reason:    req.Reason,
		Status:    StatusRequested,
		CreatedAt: time.Now(),
	}

	var created ReturnRequest
	err := optimistic.Run(ctx, optimistic.Mutation[[]ReturnRequest]{
		Cache: s.cacheFor(userID),
		Update: func(items []ReturnRequest) []ReturnRequest {
			next := append(make([]ReturnRequest, 0, len(items)+1), items...)
			return append(next, provisional)
		},
		Request: func(ctx context.Context) error {
			var err error
			created, err = s.client.Create(ctx, userID, provisional)
			return err
		},
		Refetch: func(ctx context.Context) ([]ReturnRequest, error) {
			return s.client.List(ctx, userID)
		},
		Notifier:       s.notifier,
		SuccessMessage: "Return request submitted",
		FailureMessage: "Could not submit the return request, please try again",
	})
	if err != nil {
		return ReturnRequest{}, ErrReturnFailed
	}
	return created, nil
}
