package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	carterrors "go-saree-api/internal/cart/errors"
	"go-saree-api/internal/pkg/apperror"
	"go-saree-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// resolveCartKey prefers the authenticated user's cart; guests must send
// their client-generated cart token.
func resolveCartKey(c *gin.Context) (string, error) {
	if userID := c.GetString("user_id"); userID != "" {
		return UserKey(userID), nil
	}
	if token := c.GetHeader("X-Cart-Token"); token != "" {
		return GuestKey(token), nil
	}
	return "", carterrors.ErrCartTokenRequired
}

func respondErr(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

// GET /cart
func (h *Handler) Detail(c *gin.Context) {
	key, err := resolveCartKey(c)
	if err != nil {
		respondErr(c, err)
		return
	}

	res, err := h.service.Detail(c.Request.Context(), key)
	if err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// GET /cart/count
func (h *Handler) Count(c *gin.Context) {
	key, err := resolveCartKey(c)
	if err != nil {
		respondErr(c, err)
		return
	}

	count, err := h.service.Count(c.Request.Context(), key)
	if err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, CountResponse{Count: count}, nil)
}

// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	key, err := resolveCartKey(c)
	if err != nil {
		respondErr(c, err)
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.AddItem(c.Request.Context(), key, req)
	if err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

// PATCH /cart/items/:itemId
func (h *Handler) UpdateQuantity(c *gin.Context) {
	key, err := resolveCartKey(c)
	if err != nil {
		respondErr(c, err)
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.UpdateQuantity(c.Request.Context(), key, c.Param("itemId"), req)
	if err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /cart/items/:itemId
func (h *Handler) RemoveItem(c *gin.Context) {
	key, err := resolveCartKey(c)
	if err != nil {
		respondErr(c, err)
		return
	}

	res, err := h.service.RemoveItem(c.Request.Context(), key, c.Param("itemId"))
	if err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	key, err := resolveCartKey(c)
	if err != nil {
		respondErr(c, err)
		return
	}

	if err := h.service.ClearCart(c.Request.Context(), key); err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Cart cleared"}, nil)
}

// POST /cart/coupon
func (h *Handler) ApplyCoupon(c *gin.Context) {
	key, err := resolveCartKey(c)
	if err != nil {
		respondErr(c, err)
		return
	}

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	res, err := h.service.ApplyCoupon(c.Request.Context(), key, req)
	if err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

// DELETE /cart/coupon
func (h *Handler) RemoveCoupon(c *gin.Context) {
	key, err := resolveCartKey(c)
	if err != nil {
		respondErr(c, err)
		return
	}

	res, err := h.service.RemoveCoupon(c.Request.Context(), key)
	if err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}
