package returns

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

// GET /returns
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("user_id")

	items, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	if items == nil {
		items = []ReturnRequest{}
	}

	response.Success(c, http.StatusOK, ReturnListResponse{Returns: items, Count: len(items)}, nil)
}

// POST /returns
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, created, nil)
}
