package wishlist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-saree-api/internal/pkg/apperror"
	"go-saree-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// GET /wishlist
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	if items == nil {
		items = []Item{}
	}

	response.Success(c, http.StatusOK, WishlistResponse{Items: items, ItemCount: len(items)}, nil)
}

// DELETE /wishlist/:productId
func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetString("user_id")

	productID := c.Param("productId")
	if productID == "" {
		response.Error(c, ErrInvalidProductID.HTTPStatus, ErrInvalidProductID.Code, ErrInvalidProductID.Message, nil)
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, productID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Product removed from wishlist successfully",
	}, nil)
}

// DELETE /wishlist
func (h *Handler) Clear(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.service.Clear(c.Request.Context(), userID); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Wishlist cleared successfully",
	}, nil)
}
