package returns

type CreateReturnRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type ReturnListResponse struct {
	Returns []ReturnRequest `json:"returns"`
	Count   int             `json:"count"`
}
