package cart_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-saree-api/internal/cart"
)

func TestCart_AddItem(t *testing.T) {
	t.Run("merges_same_product_and_variant", func(t *testing.T) {
		c := &cart.Cart{}

		first := c.AddItem(cart.Item{ProductID: "p1", VariantID: "v1", Price: 100, Quantity: 2, Stock: 10})
		second := c.AddItem(cart.Item{ProductID: "p1", VariantID: "v1", Price: 100, Quantity: 3, Stock: 10})

		assert.Len(t, c.Items, 1)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 5, c.Items[0].Quantity)
	})

	t.Run("different_variant_gets_own_line", func(t *testing.T) {
		c := &cart.Cart{}

		c.AddItem(cart.Item{ProductID: "p1", VariantID: "v1", Quantity: 1, Stock: 10})
		c.AddItem(cart.Item{ProductID: "p1", VariantID: "v2", Quantity: 1, Stock: 10})

		require.Len(t, c.Items, 2)
		assert.NotEqual(t, c.Items[0].ID, c.Items[1].ID)
	})

	t.Run("new_line_gets_store_owned_id", func(t *testing.T) {
		c := &cart.Cart{}

		stored := c.AddItem(cart.Item{ID: "caller-supplied", ProductID: "p1", Quantity: 1, Stock: 10})

		assert.NotEqual(t, "caller-supplied", stored.ID)
		assert.NotEmpty(t, stored.ID)
	})

	t.Run("merge_clamps_to_stock_ceiling", func(t *testing.T) {
		c := &cart.Cart{}

		c.AddItem(cart.Item{ProductID: "p1", Quantity: 4, Stock: 5})
		c.AddItem(cart.Item{ProductID: "p1", Quantity: 4, Stock: 5})

		assert.Equal(t, 5, c.Items[0].Quantity)
	})

	t.Run("zero_stock_means_no_ceiling", func(t *testing.T) {
		c := &cart.Cart{}

		c.AddItem(cart.Item{ProductID: "p1", Quantity: 100, Stock: 0})

		assert.Equal(t, 100, c.Items[0].Quantity)
	})
}

func TestCart_UpdateQuantity(t *testing.T) {
	newCart := func() (*cart.Cart, string) {
		c := &cart.Cart{}
		it := c.AddItem(cart.Item{ProductID: "p1", Price: 100, Quantity: 2, Stock: 5})
		return c, it.ID
	}

	t.Run("sets_quantity", func(t *testing.T) {
		c, id := newCart()
		c.UpdateQuantity(id, 3)
		assert.Equal(t, 3, c.Items[0].Quantity)
	})

	t.Run("floors_at_one", func(t *testing.T) {
		c, id := newCart()

		c.UpdateQuantity(id, 0)
		assert.Equal(t, 1, c.Items[0].Quantity)

		c.UpdateQuantity(id, -5)
		assert.Equal(t, 1, c.Items[0].Quantity)
	})

	t.Run("caps_at_stock", func(t *testing.T) {
		c, id := newCart()
		c.UpdateQuantity(id, 105)
		assert.Equal(t, 5, c.Items[0].Quantity)
	})

	t.Run("unknown_id_is_noop", func(t *testing.T) {
		c, _ := newCart()
		c.UpdateQuantity("missing", 4)
		assert.Equal(t, 2, c.Items[0].Quantity)
	})
}

func TestCart_RemoveItem(t *testing.T) {
	c := &cart.Cart{}
	a := c.AddItem(cart.Item{ProductID: "p1", Quantity: 1, Stock: 5})
	b := c.AddItem(cart.Item{ProductID: "p2", Quantity: 1, Stock: 5})

	c.RemoveItem(a.ID)
	require.Len(t, c.Items, 1)
	assert.Equal(t, b.ID, c.Items[0].ID)

	// already gone, stays a no-op
	c.RemoveItem(a.ID)
	assert.Len(t, c.Items, 1)
}

func TestCart_Totals(t *testing.T) {
	t.Run("subtotal_sums_price_times_quantity", func(t *testing.T) {
		c := &cart.Cart{}
		c.AddItem(cart.Item{ProductID: "p1", Price: 100, Quantity: 2, Stock: 10})
		c.AddItem(cart.Item{ProductID: "p2", Price: 50, Quantity: 3, Stock: 10})

		assert.Equal(t, 5, c.TotalItems())
		assert.Equal(t, 350.0, c.Subtotal())
	})

	t.Run("percentage_coupon", func(t *testing.T) {
		c := &cart.Cart{}
		c.AddItem(cart.Item{ProductID: "p1", Price: 1000, Quantity: 1, Stock: 10})

		err := c.ApplyCoupon(cart.Coupon{Code: "TEN", Type: cart.CouponPercentage, Discount: 10}, time.Now())
		require.NoError(t, err)

		assert.Equal(t, 100.0, c.Discount())
		assert.Equal(t, 900.0, c.Total())
	})

	t.Run("fixed_coupon_discount_is_raw_but_total_floors_at_zero", func(t *testing.T) {
		c := &cart.Cart{}
		c.AddItem(cart.Item{ProductID: "p1", Price: 100, Quantity: 1, Stock: 10})

		err := c.ApplyCoupon(cart.Coupon{Code: "BIG", Type: cart.CouponFixed, Discount: 150}, time.Now())
		require.NoError(t, err)

		assert.Equal(t, 150.0, c.Discount())
		assert.Equal(t, 0.0, c.Total())
	})

	t.Run("no_coupon_means_zero_discount", func(t *testing.T) {
		c := &cart.Cart{}
		c.AddItem(cart.Item{ProductID: "p1", Price: 100, Quantity: 1, Stock: 10})

		assert.Equal(t, 0.0, c.Discount())
		assert.Equal(t, 100.0, c.Total())
	})
}

func TestCart_Clear(t *testing.T) {
	c := &cart.Cart{}
	c.AddItem(cart.Item{ProductID: "p1", Price: 1000, Quantity: 1, Stock: 10})
	require.NoError(t, c.ApplyCoupon(cart.Coupon{Code: "TEN", Type: cart.CouponPercentage, Discount: 10}, time.Now()))

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Nil(t, c.AppliedCoupon)

	// clearing an empty cart is fine
	c.Clear()
	assert.Empty(t, c.Items)
}

func TestCart_ApplyCoupon(t *testing.T) {
	t.Run("validation_failure_keeps_previous_coupon", func(t *testing.T) {
		c := &cart.Cart{}
		c.AddItem(cart.Item{ProductID: "p1", Price: 300, Quantity: 1, Stock: 10})
		require.NoError(t, c.ApplyCoupon(cart.Coupon{Code: "OLD", Type: cart.CouponFixed, Discount: 10}, time.Now()))

		err := c.ApplyCoupon(cart.Coupon{Code: "NEW", Type: cart.CouponFixed, Discount: 50, MinPurchase: 500}, time.Now())

		var ineligible *cart.IneligibleError
		require.ErrorAs(t, err, &ineligible)
		assert.Equal(t, 500.0, ineligible.Required)
		assert.Equal(t, 300.0, ineligible.Subtotal)
		assert.Equal(t, "OLD", c.AppliedCoupon.Code)
	})

	t.Run("replaces_previous_coupon_on_success", func(t *testing.T) {
		c := &cart.Cart{}
		c.AddItem(cart.Item{ProductID: "p1", Price: 1000, Quantity: 1, Stock: 10})
		require.NoError(t, c.ApplyCoupon(cart.Coupon{Code: "OLD", Type: cart.CouponFixed, Discount: 10}, time.Now()))

		require.NoError(t, c.ApplyCoupon(cart.Coupon{Code: "NEW", Type: cart.CouponFixed, Discount: 50}, time.Now()))
		assert.Equal(t, "NEW", c.AppliedCoupon.Code)
	})

	t.Run("remove_coupon", func(t *testing.T) {
		c := &cart.Cart{}
		c.AddItem(cart.Item{ProductID: "p1", Price: 1000, Quantity: 1, Stock: 10})
		require.NoError(t, c.ApplyCoupon(cart.Coupon{Code: "TEN", Type: cart.CouponPercentage, Discount: 10}, time.Now()))

		c.RemoveCoupon()
		assert.Nil(t, c.AppliedCoupon)
		assert.Equal(t, 1000.0, c.Total())
	})
}

func TestCart_ReplaceItems(t *testing.T) {
	c := &cart.Cart{}
	c.AddItem(cart.Item{ProductID: "x", Quantity: 1, Stock: 5})
	c.AddItem(cart.Item{ProductID: "y", Quantity: 1, Stock: 5})
	c.AddItem(cart.Item{ProductID: "z", Quantity: 1, Stock: 5})
	require.NoError(t, c.ApplyCoupon(cart.Coupon{Code: "KEEP", Type: cart.CouponFixed, Discount: 10}, time.Now()))

	server := []cart.Item{
		{ID: "srv-a", ProductID: "a", Price: 10, Quantity: 1},
		{ID: "srv-b", ProductID: "b", Price: 20, Quantity: 2},
	}
	c.ReplaceItems(server)

	require.Len(t, c.Items, 2)
	assert.Equal(t, "a", c.Items[0].ProductID)
	assert.Equal(t, "b", c.Items[1].ProductID)

	// server wins for items only; the coupon survives the sync
	require.NotNil(t, c.AppliedCoupon)
	assert.Equal(t, "KEEP", c.AppliedCoupon.Code)
}

func TestCart_Clone(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	c := &cart.Cart{}
	c.AddItem(cart.Item{
		ProductID: "p1", Price: 100, Quantity: 1, Stock: 5,
		Variant: &cart.Variant{Size: "M", Attributes: map[string]string{"border": "zari"}},
	})
	require.NoError(t, c.ApplyCoupon(cart.Coupon{Code: "TEN", Type: cart.CouponPercentage, Discount: 10, ExpiresAt: &exp}, time.Now()))

	clone := c.Clone()
	clone.Items[0].Quantity = 99
	clone.Items[0].Variant.Attributes["border"] = "plain"
	clone.AppliedCoupon.Code = "CHANGED"

	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, "zari", c.Items[0].Variant.Attributes["border"])
	assert.Equal(t, "TEN", c.AppliedCoupon.Code)
}

func TestCart_JSONRoundTrip(t *testing.T) {
	exp := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	c := &cart.Cart{}
	c.AddItem(cart.Item{
		ProductID: "p1", VariantID: "v1", Name: "Kanchipuram Silk", Slug: "kanchipuram-silk",
		Price: 4999.50, BasePrice: 5999, Quantity: 2, Stock: 8,
		Variant: &cart.Variant{Size: "Free", Color: "Maroon", Fabric: "Silk"},
	})
	require.NoError(t, c.ApplyCoupon(cart.Coupon{Code: "FESTIVE", Type: cart.CouponPercentage, Discount: 15, ExpiresAt: &exp}, time.Now()))

	blob, err := json.Marshal(c)
	require.NoError(t, err)

	var restored cart.Cart
	require.NoError(t, json.Unmarshal(blob, &restored))

	assert.Equal(t, c.Items, restored.Items)
	assert.Equal(t, c.AppliedCoupon.Code, restored.AppliedCoupon.Code)
	assert.True(t, restored.AppliedCoupon.ExpiresAt.Equal(exp))
	assert.Equal(t, c.Total(), restored.Total())
}
