package cart

import (
	"time"

	"github.com/google/uuid"

	"go-saree-api/internal/pkg/money"
)

// Variant holds display attributes of the chosen product variant. It is
// identity metadata only; pricing never looks at it.
type Variant struct {
	Size       string            `json:"size,omitempty"`
	Color      string            `json:"color,omitempty"`
	Fabric     string            `json:"fabric,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Item is one cart line. Name, slug, price and image are snapshots taken when
// the product was added: the price is locked at add time and only a server
// sync replaces it.
type Item struct {
	ID        string   `json:"id"`
	ProductID string   `json:"productId"`
	VariantID string   `json:"variantId,omitempty"`
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	Price     float64  `json:"price"`
	BasePrice float64  `json:"basePrice"`
	Quantity  int      `json:"quantity"`
	Image     string   `json:"image,omitempty"`
	Variant   *Variant `json:"variant,omitempty"`
	Stock     int      `json:"stock"`
}

type CouponType string

const (
	CouponPercentage CouponType = "PERCENTAGE"
	CouponFixed      CouponType = "FIXED"
)

type Coupon struct {
	Code        string     `json:"code"`
	Discount    float64    `json:"discount"`
	Type        CouponType `json:"type"`
	MinPurchase float64    `json:"minPurchase,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// Cart is the aggregate: the ordered line items plus at most one applied
// coupon. It is persisted and restored as a single JSON blob.
type Cart struct {
	Items         []Item  `json:"items"`
	AppliedCoupon *Coupon `json:"appliedCoupon,omitempty"`
}

// AddItem merges by (productID, variantID). An existing line absorbs the added
// quantity, clamped to that line's recorded stock ceiling. A new line gets a
// store-owned id regardless of what the caller supplied. Returns the line as
// stored.
func (c *Cart) AddItem(item Item) Item {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID && c.Items[i].VariantID == item.VariantID {
			c.Items[i].Quantity = clampQuantity(c.Items[i].Quantity+item.Quantity, c.Items[i].Stock)
			return c.Items[i]
		}
	}

	item.ID = uuid.NewString()
	item.Quantity = clampQuantity(item.Quantity, item.Stock)
	c.Items = append(c.Items, item)
	return item
}

// RemoveItem is a no-op when the id is already gone.
func (c *Cart) RemoveItem(id string) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the line's quantity, clamped to [1, stock]. No-op when
// the id is not found.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = clampQuantity(quantity, c.Items[i].Stock)
			return
		}
	}
}

// Clear resets items and coupon together; a coupon without a cart is
// meaningless.
func (c *Cart) Clear() {
	c.Items = nil
	c.AppliedCoupon = nil
}

// ApplyCoupon validates against the pre-application subtotal, then stores the
// coupon. Validation failures leave the previously applied coupon untouched.
func (c *Cart) ApplyCoupon(coupon Coupon, now time.Time) error {
	if err := coupon.Validate(c.Subtotal(), now); err != nil {
		return err
	}
	c.AppliedCoupon = &coupon
	return nil
}

func (c *Cart) RemoveCoupon() {
	c.AppliedCoupon = nil
}

// ReplaceItems is the server-wins sync: the server's view replaces the local
// items wholesale. The applied coupon is not touched.
func (c *Cart) ReplaceItems(items []Item) {
	c.Items = append([]Item(nil), items...)
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// Subtotal sums over the selling-price snapshots, not base prices.
func (c *Cart) Subtotal() float64 {
	sum := 0.0
	for _, it := range c.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return money.Round(sum)
}

// Discount returns the raw coupon amount. A FIXED discount may exceed the
// subtotal; only Total floors at zero.
func (c *Cart) Discount() float64 {
	if c.AppliedCoupon == nil {
		return 0
	}
	return c.AppliedCoupon.Amount(c.Subtotal())
}

func (c *Cart) Total() float64 {
	total := c.Subtotal() - c.Discount()
	if total < 0 {
		return 0
	}
	return money.Round(total)
}

// Clone deep-copies the aggregate so callers can read without aliasing the
// store's state.
func (c *Cart) Clone() Cart {
	out := Cart{Items: make([]Item, len(c.Items))}
	copy(out.Items, c.Items)
	for i, it := range out.Items {
		if it.Variant != nil {
			v := *it.Variant
			if it.Variant.Attributes != nil {
				v.Attributes = make(map[string]string, len(it.Variant.Attributes))
				for k, val := range it.Variant.Attributes {
					v.Attributes[k] = val
				}
			}
			out.Items[i].Variant = &v
		}
	}
	if c.AppliedCoupon != nil {
		cp := *c.AppliedCoupon
		if c.AppliedCoupon.ExpiresAt != nil {
			t := *c.AppliedCoupon.ExpiresAt
			cp.ExpiresAt = &t
		}
		out.AppliedCoupon = &cp
	}
	return out
}

// A stock of zero means no ceiling was recorded at add time; the clamp only
// binds when the ceiling is positive.
func clampQuantity(quantity, stock int) int {
	if stock > 0 && quantity > stock {
		quantity = stock
	}
	if quantity < 1 {
		quantity = 1
	}
	return quantity
}

// UserKey and GuestKey name the cart aggregates in storage. A guest's cart
// lives under its client-generated token until login syncs the user's cart.
func UserKey(userID string) string {
	return "user:" + userID
}

func GuestKey(token string) string {
	return "guest:" + token
}
