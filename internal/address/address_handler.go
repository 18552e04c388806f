package address

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-saree-api/internal/pkg/apperror"
	"go-saree-api/internal/pkg/response"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func respondErr(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

// GET /addresses
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	addresses, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		respondErr(c, err)
		return
	}
	if addresses == nil {
		addresses = []Address{}
	}

	response.Success(c, http.StatusOK, AddressListResponse{Addresses: addresses, Count: len(addresses)}, nil)
}

// POST /addresses
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created, nil)
}

// PUT /addresses/:id
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if err := h.service.Update(c.Request.Context(), userID, id, req); err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Address updated"}, nil)
}

// DELETE /addresses/:id
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Address removed"}, nil)
}

// POST /addresses/:id/default
func (h *Handler) SetDefault(c *gin.Context) {
	userID := c.GetString("user_id")
	id := c.Param("id")

	if err := h.service.SetDefault(c.Request.Context(), userID, id); err != nil {
		respondErr(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Default address updated"}, nil)
}
