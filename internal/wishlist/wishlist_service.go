package wishlist

import (
	"context"
	"sync"

	"go-saree-api/internal/optimistic"
)

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, userID string) ([]Item, error)
	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type service struct {
	client   Client
	notifier optimistic.Notifier

	mu     sync.Mutex
	caches map[string]*optimistic.Cache[[]Item]
}

func NewService(client Client, notifier optimistic.Notifier) Service {
	if notifier == nil {
		notifier = optimistic.NopNotifier{}
	}
	return &service{
		client:   client,
		notifier: notifier,
		caches:   make(map[string]*optimistic.Cache[[]Item]),
	}
}

func (s *service) cacheFor(userID string) *optimistic.Cache[[]Item] {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.caches[userID]
	if !ok {
		c = optimistic.NewCache[[]Item]()
		s.caches[userID] = c
	}
	return c
}

// List serves from cache when warm, otherwise fetches and caches.
func (s *service) List(ctx context.Context, userID string) ([]Item, error) {
	cache := s.cacheFor(userID)
	if items, ok := cache.Get(); ok {
		return items, nil
	}

	items, err := s.client.List(ctx, userID)
	if err != nil {
		return nil, ErrWishlistUnavailable
	}
	cache.Set(items)
	return items, nil
}

// Remove drops the product from the cached list immediately and reconciles
// with the platform afterwards; a rejected call restores the snapshot.
func (s *service) Remove(ctx context.Context, userID, productID string) error {
	cache := s.cacheFor(userID)

	err := optimistic.Run(ctx, optimistic.Mutation[[]Item]{
		Cache: cache,
		Update: func(items []Item) []Item {
			next := make([]Item, 0, len(items))
			for _, it := range items {
				if it.ProductID != productID {
					next = append(next, it)
				}
			}
			return next
		},
		Request: func(ctx context.Context) error {
			return s.client.Remove(ctx, userID, productID)
		},
		Refetch: func(ctx context.Context) ([]Item, error) {
			return s.client.List(ctx, userID)
		},
		Notifier:       s.notifier,
		SuccessMessage: "Removed from wishlist",
		FailureMessage: "Could not remove from wishlist, please try again",
	})
	if err != nil {
		return ErrWishlistFailed
	}
	return nil
}

func (s *service) Clear(ctx context.Context, userID string) error {
	cache := s.cacheFor(userID)

	err := optimistic.Run(ctx, optimistic.Mutation[[]Item]{
		Cache: cache,
		Update: func([]Item) []Item {
			return []Item{}
		},
		Request: func(ctx context.Context) error {
			return s.client.Clear(ctx, userID)
		},
		Refetch: func(ctx context.Context) ([]Item, error) {
			return s.client.List(ctx, userID)
		},
		Notifier:       s.notifier,
		SuccessMessage: "Wishlist cleared",
		FailureMessage: "Could not clear the wishlist, please try again",
	})
	if err != nil {
		return ErrWishlistFailed
	}
	return nil
}
