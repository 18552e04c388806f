package address

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"go-saree-api/internal/optimistic"
)

//go:generate mockgen -source=address_service.go -destination=../mock/address/address_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, userID string) ([]Address, error)
	Create(ctx context.Context, userID string, req CreateAddressRequest) (Address, error)
	Update(ctx context.Context, userID, addressID string, req UpdateAddressRequest) error
	Delete(ctx context.Context, userID, addressID string) error
	SetDefault(ctx context.Context, userID, addressID string) error
}

type service struct {
	client   Client
	notifier optimistic.Notifier

	mu     sync.Mutex
	caches map[string]*optimistic.Cache[[]Address]
}

func NewService(client Client, notifier optimistic.Notifier) Service {
	if notifier == nil {
		notifier = optimistic.NopNotifier{}
	}
	return &service{
		client:   client,
		notifier: notifier,
		caches:   make(map[string]*optimistic.Cache[[]Address]),
	}
}

func (s *service) cacheFor(userID string) *optimistic.Cache[[]Address] {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.caches[userID]
	if !ok {
		c = optimistic.NewCache[[]Address]()
		s.caches[userID] = c
	}
	return c
}

func (s *service) refetch(userID string) func(context.Context) ([]Address, error) {
	return func(ctx context.Context) ([]Address, error) {
		return s.client.List(ctx, userID)
	}
}

func (s *service) List(ctx context.Context, userID string) ([]Address, error) {
	cache := s.cacheFor(userID)
	if addresses, ok := cache.Get(); ok {
		return addresses, nil
	}

	addresses, err := s.client.List(ctx, userID)
	if err != nil {
		return nil, ErrAddressUnavailable
	}
	cache.Set(addresses)
	return addresses, nil
}

// Create shows a provisional entry immediately; the settle refetch swaps the
// provisional id for the server-assigned one.
func (s *service) Create(ctx context.Context, userID string, req CreateAddressRequest) (Address, error) {
	provisional := Address{
		ID:         uuid.NewString(),
		Label:      req.Label,
		Recipient:  req.Recipient,
		Phone:      req.Phone,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		IsDefault:  req.IsDefault,
	}

	var created Address
	err := optimistic.Run(ctx, optimistic.Mutation[[]Address]{
		Cache: s.cacheFor(userID),
		Update: func(addresses []Address) []Address {
			next := append(make([]Address, 0, len(addresses)+1), addresses...)
			return append(next, provisional)
		},
		Request: func(ctx context.Context) error {
			var err error
			created, err = s.client.Create(ctx, userID, provisional)
			return err
		},
		Refetch:        s.refetch(userID),
		Notifier:       s.notifier,
		SuccessMessage: "Address saved",
		FailureMessage: "Could not save the address, please try again",
	})
	if err != nil {
		return Address{}, ErrAddressFailed
	}
	return created, nil
}

func (s *service) Update(ctx context.Context, userID, addressID string, req UpdateAddressRequest) error {
	updated := Address{
		ID:         addressID,
		Label:      req.Label,
		Recipient:  req.Recipient,
		Phone:      req.Phone,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		IsDefault:  req.IsDefault,
	}

	err := optimistic.Run(ctx, optimistic.Mutation[[]Address]{
		Cache: s.cacheFor(userID),
		Update: func(addresses []Address) []Address {
			next := make([]Address, len(addresses))
			for i, a := range addresses {
				if a.ID == addressID {
					next[i] = updated
				} else {
					next[i] = a
				}
			}
			return next
		},
		Request: func(ctx context.Context) error {
			_, err := s.client.Update(ctx, userID, updated)
			return err
		},
		Refetch:        s.refetch(userID),
		Notifier:       s.notifier,
		SuccessMessage: "Address updated",
		FailureMessage: "Could not update the address, please try again",
	})
	if err != nil {
		return ErrAddressFailed
	}
	return nil
}

func (s *service) Delete(ctx context.Context, userID, addressID string) error {
	err := optimistic.Run(ctx, optimistic.Mutation[[]Address]{
		Cache: s.cacheFor(userID),
		Update: func(addresses []Address) []Address {
			next := make([]Address, 0, len(addresses))
			for _, a := range addresses {
				if a.ID != addressID {
					next = append(next, a)
				}
			}
			return next
		},
		Request: func(ctx context.Context) error {
			return s.client.Delete(ctx, userID, addressID)
		},
		Refetch:        s.refetch(userID),
		Notifier:       s.notifier,
		SuccessMessage: "Address removed",
		FailureMessage: "Could not remove the address, please try again",
	})
	if err != nil {
		return ErrAddressFailed
	}
	return nil
}

func (s *service) SetDefault(ctx context.Context, userID, addressID string) error {
	err := optimistic.Run(ctx, optimistic.Mutation[[]Address]{
		Cache: s.cacheFor(userID),
		Update: func(addresses []Address) []Address {
			next := make([]Address, len(addresses))
			for i, a := range addresses {
				a.IsDefault = a.ID == addressID
				next[i] = a
			}
			return next
		},
		Request: func(ctx context.Context) error {
			return s.client.SetDefault(ctx, userID, addressID)
		},
		Refetch:        s.refetch(userID),
		Notifier:       s.notifier,
		SuccessMessage: "Default address updated",
		FailureMessage: "Could not update the default address, please try again",
	})
	if err != nil {
		return ErrAddressFailed
	}
	return nil
}
