package cart

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_store.go -destination=../mock/cart/cart_storage_mock.go -package=mock

// Storage is the durable home of a cart aggregate: one JSON blob per cart
// key, read back verbatim on the next load. Load returns (nil, nil) when no
// blob exists yet.
type Storage interface {
	Load(ctx context.Context, key string) (*Cart, error)
	Save(ctx context.Context, key string, c *Cart) error
	Delete(ctx context.Context, key string) error
}

// Store is the single source of truth for live carts. All mutations go
// through it: it applies the aggregate's pure transition, then write-through
// persists the result. The in-memory aggregate stays authoritative for the
// session even when the durable write fails.
type Store struct {
	mu      sync.Mutex
	storage Storage
	logger  *zap.Logger
	carts   map[string]*Cart
}

func NewStore(storage Storage, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		storage: storage,
		logger:  logger.Named("cart.store"),
		carts:   make(map[string]*Cart),
	}
}

// get lazily restores the aggregate from storage on first touch. A failed
// load starts an empty cart; the stored blob is trusted as-is when present.
// Callers must hold s.mu.
func (s *Store) get(ctx context.Context, key string) *Cart {
	if c, ok := s.carts[key]; ok {
		return c
	}

	c, err := s.storage.Load(ctx, key)
	if err != nil {
		s.logger.Warn("cart load failed, starting empty", zap.String("key", key), zap.Error(err))
		c = nil
	}
	if c == nil {
		c = &Cart{}
	}
	s.carts[key] = c
	return c
}

func (s *Store) persist(ctx context.Context, key string, c *Cart) {
	if err := s.storage.Save(ctx, key, c); err != nil {
		// In-memory state remains authoritative; the next mutation retries.
		s.logger.Warn("cart persist failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Store) AddItem(ctx context.Context, key string, item Item) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(ctx, key)
	stored := c.AddItem(item)
	s.persist(ctx, key, c)
	return stored
}

func (s *Store) RemoveItem(ctx context.Context, key, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(ctx, key)
	c.RemoveItem(id)
	s.persist(ctx, key, c)
}

func (s *Store) UpdateQuantity(ctx context.Context, key, id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(ctx, key)
	c.UpdateQuantity(id, quantity)
	s.persist(ctx, key, c)
}

// Clear resets the aggregate and drops the durable blob; an empty cart needs
// no storage entry.
func (s *Store) Clear(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(ctx, key)
	c.Clear()
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Warn("cart delete failed", zap.String("key", key), zap.Error(err))
	}
}

// ApplyCoupon validates before mutating; a failed validation persists nothing
// and leaves the previously applied coupon in place.
func (s *Store) ApplyCoupon(ctx context.Context, key string, coupon Coupon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(ctx, key)
	if err := c.ApplyCoupon(coupon, time.Now()); err != nil {
		return err
	}
	s.persist(ctx, key, c)
	return nil
}

func (s *Store) RemoveCoupon(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(ctx, key)
	c.RemoveCoupon()
	s.persist(ctx, key, c)
}

func (s *Store) SyncWithServer(ctx context.Context, key string, items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.get(ctx, key)
	c.ReplaceItems(items)
	s.persist(ctx, key, c)
}

// Snapshot returns a deep copy for reads; nothing outside the store may reach
// into the live aggregate.
func (s *Store) Snapshot(ctx context.Context, key string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(ctx, key).Clone()
}
