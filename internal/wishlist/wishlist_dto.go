package wishlist

type WishlistResponse struct {
	Items     []Item `json:"items"`
	ItemCount int    `json:"itemCount"`
}
