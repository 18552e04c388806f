package cart

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	carterrors "go-saree-api/internal/cart/errors"
	"go-saree-api/internal/commerce"
	"go-saree-api/internal/messaging/kafka/producer"
	"go-saree-api/internal/pkg/apperror"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, cartKey string) (CartDetailResponse, error)
	Count(ctx context.Context, cartKey string) (int, error)

	AddItem(ctx context.Context, cartKey string, req AddItemRequest) (CartDetailResponse, error)
	UpdateQuantity(ctx context.Context, cartKey, itemID string, req UpdateQuantityRequest) (CartDetailResponse, error)
	RemoveItem(ctx context.Context, cartKey, itemID string) (CartDetailResponse, error)
	ClearCart(ctx context.Context, cartKey string) error

	ApplyCoupon(ctx context.Context, cartKey string, req ApplyCouponRequest) (CartDetailResponse, error)
	RemoveCoupon(ctx context.Context, cartKey string) (CartDetailResponse, error)
}

type service struct {
	store    *Store
	coupons  CouponClient
	events   producer.Publisher
	validate *validator.Validate
}

func NewService(store *Store, coupons CouponClient, events producer.Publisher) Service {
	if events == nil {
		events = producer.NopPublisher{}
	}
	return &service{
		store:    store,
		coupons:  coupons,
		events:   events,
		validate: validator.New(),
	}
}

func (s *service) detail(ctx context.Context, cartKey string) CartDetailResponse {
	c := s.store.Snapshot(ctx, cartKey)

	res := CartDetailResponse{
		Items:      c.Items,
		TotalItems: c.TotalItems(),
		Subtotal:   c.Subtotal(),
		Discount:   c.Discount(),
		Total:      c.Total(),
	}
	if res.Items == nil {
		res.Items = []Item{}
	}
	if c.AppliedCoupon != nil {
		res.AppliedCoupon = &CouponResponse{
			Code:     c.AppliedCoupon.Code,
			Discount: c.AppliedCoupon.Discount,
			Type:     c.AppliedCoupon.Type,
		}
	}
	return res
}

func (s *service) Detail(ctx context.Context, cartKey string) (CartDetailResponse, error) {
	return s.detail(ctx, cartKey), nil
}

func (s *service) Count(ctx context.Context, cartKey string) (int, error) {
	c := s.store.Snapshot(ctx, cartKey)
	return c.TotalItems(), nil
}

func (s *service) AddItem(ctx context.Context, cartKey string, req AddItemRequest) (CartDetailResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartDetailResponse{}, carterrors.MapValidationError(err)
	}

	item := Item{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Name:      req.Name,
		Slug:      req.Slug,
		Price:     req.Price,
		BasePrice: req.BasePrice,
		Quantity:  req.Quantity,
		Image:     req.Image,
		Stock:     req.Stock,
	}
	if req.Variant != nil {
		item.Variant = &Variant{
			Size:       req.Variant.Size,
			Color:      req.Variant.Color,
			Fabric:     req.Variant.Fabric,
			Attributes: req.Variant.Attributes,
		}
	}

	stored := s.store.AddItem(ctx, cartKey, item)

	s.events.Publish(producer.CartEvent{
		Type:      producer.EventItemAdded,
		CartKey:   cartKey,
		ItemID:    stored.ID,
		ProductID: stored.ProductID,
		Quantity:  stored.Quantity,
	})

	return s.detail(ctx, cartKey), nil
}

func (s *service) UpdateQuantity(ctx context.Context, cartKey, itemID string, req UpdateQuantityRequest) (CartDetailResponse, error) {
	if itemID == "" {
		return CartDetailResponse{}, carterrors.ErrInvalidItemID
	}

	// A missing item is a benign no-op; the clamp happens in the aggregate.
	s.store.UpdateQuantity(ctx, cartKey, itemID, req.Quantity)

	s.events.Publish(producer.CartEvent{
		Type:     producer.EventQtyUpdated,
		CartKey:  cartKey,
		ItemID:   itemID,
		Quantity: req.Quantity,
	})

	return s.detail(ctx, cartKey), nil
}

func (s *service) RemoveItem(ctx context.Context, cartKey, itemID string) (CartDetailResponse, error) {
	if itemID == "" {
		return CartDetailResponse{}, carterrors.ErrInvalidItemID
	}

	s.store.RemoveItem(ctx, cartKey, itemID)

	s.events.Publish(producer.CartEvent{
		Type:    producer.EventItemRemoved,
		CartKey: cartKey,
		ItemID:  itemID,
	})

	return s.detail(ctx, cartKey), nil
}

func (s *service) ClearCart(ctx context.Context, cartKey string) error {
	s.store.Clear(ctx, cartKey)

	s.events.Publish(producer.CartEvent{
		Type:    producer.EventCartCleared,
		CartKey: cartKey,
	})

	return nil
}

func (s *service) ApplyCoupon(ctx context.Context, cartKey string, req ApplyCouponRequest) (CartDetailResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartDetailResponse{}, carterrors.MapValidationError(err)
	}

	coupon, err := s.coupons.Lookup(ctx, req.Code)
	if err != nil {
		if commerce.IsNotFound(err) {
			return CartDetailResponse{}, carterrors.ErrCouponNotFound
		}
		return CartDetailResponse{}, carterrors.ErrCouponLookupFailed
	}

	if err := s.store.ApplyCoupon(ctx, cartKey, coupon); err != nil {
		return CartDetailResponse{}, mapCouponError(err)
	}

	s.events.Publish(producer.CartEvent{
		Type:       producer.EventCouponApplied,
		CartKey:    cartKey,
		CouponCode: coupon.Code,
	})

	return s.detail(ctx, cartKey), nil
}

func (s *service) RemoveCoupon(ctx context.Context, cartKey string) (CartDetailResponse, error) {
	s.store.RemoveCoupon(ctx, cartKey)

	s.events.Publish(producer.CartEvent{
		Type:    producer.EventCouponRemoved,
		CartKey: cartKey,
	})

	return s.detail(ctx, cartKey), nil
}

func mapCouponError(err error) error {
	var ineligible *IneligibleError
	if errors.As(err, &ineligible) {
		return carterrors.NewCouponIneligible(ineligible.Error())
	}
	if errors.Is(err, ErrCouponExpired) {
		return carterrors.ErrCouponExpired
	}
	return apperror.Wrap(err, apperror.CodeInternalError, "Failed to apply coupon", http.StatusInternalServerError)
}
