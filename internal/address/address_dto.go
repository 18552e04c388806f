package address

type CreateAddressRequest struct {
	Label      string `json:"label" binding:"required"`
	Recipient  string `json:"recipient" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	IsDefault  bool   `json:"isDefault"`
}

type UpdateAddressRequest struct {
	Label      string `json:"label" binding:"required"`
	Recipient  string `json:"recipient" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	IsDefault  bool   `json:"isDefault"`
}

type AddressListResponse struct {
	Addresses []Address `json:"addresses"`
	Count     int       `json:"count"`
}
