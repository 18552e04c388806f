// Package optimistic implements the mutate-local-first protocol shared by the
// wishlist, address and returns features: cancel any in-flight refetch,
// snapshot the cache, apply the assumed outcome synchronously, send the
// remote write, roll back the exact snapshot on failure, and always schedule
// a background refetch so the cache converges to server truth.
package optimistic

import (
	"context"
	"sync"
)

// Cache holds the locally cached view of one remote resource. A refetch in
// flight can be cancelled so a stale response never overwrites a newer
// optimistic update.
type Cache[T any] struct {
	mu            sync.Mutex
	value         T
	ok            bool
	cancelRefetch context.CancelFunc
	refetchSeq    uint64
}

func NewCache[T any]() *Cache[T] {
	return &Cache[T]{}
}

// Get returns the cached value and whether anything has been cached yet.
func (c *Cache[T]) Get() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.ok
}

func (c *Cache[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.ok = true
}

func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	c.value = zero
	c.ok = false
}

// CancelRefetch aborts the in-flight refetch, if any. Called before applying
// an optimistic update to order the update strictly after any pending read.
func (c *Cache[T]) CancelRefetch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancelRefetch != nil {
		c.cancelRefetch()
		c.cancelRefetch = nil
	}
}

// Refresh fetches the canonical value and stores it unless this refetch was
// cancelled or superseded while in flight.
func (c *Cache[T]) Refresh(ctx context.Context, fetch func(context.Context) (T, error)) {
	rctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	if c.cancelRefetch != nil {
		c.cancelRefetch()
	}
	c.cancelRefetch = cancel
	c.refetchSeq++
	seq := c.refetchSeq
	c.mu.Unlock()

	v, err := fetch(rctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.refetchSeq == seq {
		c.cancelRefetch = nil
	}
	if err != nil || rctx.Err() != nil || c.refetchSeq != seq {
		return
	}
	c.value = v
	c.ok = true
}

// Notifier surfaces mutation outcomes to the user. One generic failure class
// is enough; richer error detail stays in logs.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Mutation binds one remote write to its cached resource. Update must return
// a fresh value rather than mutating its argument in place, since the
// argument doubles as the rollback snapshot.
type Mutation[T any] struct {
	Cache          *Cache[T]
	Update         func(T) T
	Request        func(ctx context.Context) error
	Refetch        func(ctx context.Context) (T, error)
	Notifier       Notifier
	SuccessMessage string
	FailureMessage string
}

// Run executes the protocol. The cancel/snapshot/apply steps complete before
// the remote request is sent; rollback restores the snapshot exactly; the
// settle refetch runs in the background regardless of outcome. With a cold
// cache there is nothing to snapshot or roll back, but the request is still
// sent. The remote error is returned so callers can surface it.
func Run[T any](ctx context.Context, m Mutation[T]) error {
	m.Cache.CancelRefetch()

	snapshot, cached := m.Cache.Get()
	if cached && m.Update != nil {
		m.Cache.Set(m.Update(snapshot))
	}

	err := m.Request(ctx)
	if err != nil {
		if cached {
			m.Cache.Set(snapshot)
		}
		if m.Notifier != nil && m.FailureMessage != "" {
			m.Notifier.Failure(m.FailureMessage)
		}
	} else if m.Notifier != nil && m.SuccessMessage != "" {
		m.Notifier.Success(m.SuccessMessage)
	}

	if m.Refetch != nil {
		// The refetch must outlive the request's cancellation scope.
		go m.Cache.Refresh(context.WithoutCancel(ctx), m.Refetch)
	}

	return err
}
