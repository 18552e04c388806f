package cart

import (
	"errors"
	"fmt"
	"time"

	"go-saree-api/internal/pkg/money"
)

// ErrCouponExpired means the coupon's expiry passed before validation time.
var ErrCouponExpired = errors.New("coupon has expired")

// IneligibleError reports the minimum purchase the cart has not reached.
type IneligibleError struct {
	Required float64
	Subtotal float64
}

func (e *IneligibleError) Error() string {
	return fmt.Sprintf("minimum purchase of %.2f required, cart subtotal is %.2f", e.Required, e.Subtotal)
}

// Validate checks eligibility in a fixed order: minimum purchase first, expiry
// second. The subtotal is the cart's pre-application subtotal, so validation
// never depends on the coupon being validated.
func (cp Coupon) Validate(subtotal float64, now time.Time) error {
	if cp.MinPurchase > 0 && subtotal < cp.MinPurchase {
		return &IneligibleError{Required: cp.MinPurchase, Subtotal: subtotal}
	}
	if cp.ExpiresAt != nil && cp.ExpiresAt.Before(now) {
		return ErrCouponExpired
	}
	return nil
}

// Amount computes the discount for the given subtotal. FIXED coupons return
// their flat magnitude unclamped.
func (cp Coupon) Amount(subtotal float64) float64 {
	switch cp.Type {
	case CouponPercentage:
		return money.Percent(subtotal, cp.Discount)
	case CouponFixed:
		return cp.Discount
	default:
		return 0
	}
}
