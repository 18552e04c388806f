package cart_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-saree-api/internal/cart"
	mock "go-saree-api/internal/mock/cart"
)

func setupCartRouter(svc cart.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	cart.RegisterRoutes(api, cart.NewHandler(svc))
	return r
}

func signedToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(os.Getenv("JWT_SECRET")))
	require.NoError(t, err)
	return token
}

func TestCartHandler_Detail(t *testing.T) {
	t.Run("guest_with_cart_token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			Detail(gomock.Any(), cart.GuestKey("tok-abc")).
			Return(cart.CartDetailResponse{Items: []cart.Item{}, Total: 0}, nil)

		r := setupCartRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("X-Cart-Token", "tok-abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("authenticated_user_ignores_cart_token", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			Detail(gomock.Any(), cart.UserKey("u-7")).
			Return(cart.CartDetailResponse{Items: []cart.Item{}}, nil)

		r := setupCartRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		req.Header.Set("X-Cart-Token", "tok-ignored")
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signedToken(t, "u-7")})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no_token_no_session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r := setupCartRouter(mock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			AddItem(gomock.Any(), cart.GuestKey("tok-1"), gomock.Any()).
			DoAndReturn(func(_ any, _ string, req cart.AddItemRequest) (cart.CartDetailResponse, error) {
				assert.Equal(t, "p1", req.ProductID)
				assert.Equal(t, 2, req.Quantity)
				return cart.CartDetailResponse{TotalItems: 2}, nil
			})

		body := `{"productId":"p1","name":"Banarasi Silk","slug":"banarasi-silk","price":2500,"quantity":2,"stock":5}`

		r := setupCartRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Cart-Token", "tok-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("malformed_body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r := setupCartRouter(mock.NewMockService(ctrl))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader("{not-json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Cart-Token", "tok-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		UpdateQuantity(gomock.Any(), cart.GuestKey("tok-1"), "line-9", cart.UpdateQuantityRequest{Quantity: 3}).
		Return(cart.CartDetailResponse{TotalItems: 3}, nil)

	r := setupCartRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/cart/items/line-9", strings.NewReader(`{"quantity":3}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cart-Token", "tok-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data cart.CartDetailResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 3, envelope.Data.TotalItems)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		RemoveItem(gomock.Any(), cart.GuestKey("tok-1"), "line-9").
		Return(cart.CartDetailResponse{}, nil)

	r := setupCartRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/line-9", nil)
	req.Header.Set("X-Cart-Token", "tok-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartHandler_Coupon(t *testing.T) {
	t.Run("apply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			ApplyCoupon(gomock.Any(), cart.GuestKey("tok-1"), cart.ApplyCouponRequest{Code: "FESTIVE10"}).
			Return(cart.CartDetailResponse{Discount: 100}, nil)

		r := setupCartRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/coupon", strings.NewReader(`{"code":"FESTIVE10"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Cart-Token", "tok-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			RemoveCoupon(gomock.Any(), cart.GuestKey("tok-1")).
			Return(cart.CartDetailResponse{}, nil)

		r := setupCartRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/coupon", nil)
		req.Header.Set("X-Cart-Token", "tok-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCartHandler_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().Count(gomock.Any(), cart.GuestKey("tok-1")).Return(4, nil)

	r := setupCartRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/count", nil)
	req.Header.Set("X-Cart-Token", "tok-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":4`)
}
