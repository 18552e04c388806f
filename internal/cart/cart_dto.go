package cart

// ==================== REQUEST STRUCTS ====================

type VariantRequest struct {
	Size       string            `json:"size"`
	Color      string            `json:"color"`
	Fabric     string            `json:"fabric"`
	Attributes map[string]string `json:"attributes"`
}

// AddItemRequest carries the product snapshot the storefront displays at add
// time; price and name are not re-synced afterwards.
type AddItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	VariantID string          `json:"variantId"`
	Name      string          `json:"name" validate:"required"`
	Slug      string          `json:"slug" validate:"required"`
	Price     float64         `json:"price" validate:"gt=0"`
	BasePrice float64         `json:"basePrice" validate:"gte=0"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	Image     string          `json:"image"`
	Variant   *VariantRequest `json:"variant"`
	Stock     int             `json:"stock" validate:"gte=0"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

type SyncRequest struct {
	Items []Item `json:"items"`
}

// ==================== RESPONSE STRUCTS ====================

type CouponResponse struct {
	Code     string     `json:"code"`
	Discount float64    `json:"discount"`
	Type     CouponType `json:"type"`
}

type CartDetailResponse struct {
	Items         []Item          `json:"items"`
	AppliedCoupon *CouponResponse `json:"appliedCoupon,omitempty"`
	TotalItems    int             `json:"totalItems"`
	Subtotal      float64         `json:"subtotal"`
	Discount      float64         `json:"discount"`
	Total         float64         `json:"total"`
}

type CountResponse struct {
	Count int `json:"count"`
}
