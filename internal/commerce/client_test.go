package commerce_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-saree-api/internal/commerce"
)

func TestClient_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes_data_field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/coupons/FESTIVE10", r.URL.Path)
			assert.Equal(t, "Bearer key-123", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"data":{"code":"FESTIVE10","discount":10}}`))
		}))
		defer srv.Close()

		client := commerce.NewClient(srv.URL, "key-123")

		var out struct {
			Code     string  `json:"code"`
			Discount float64 `json:"discount"`
		}
		err := client.Do(ctx, http.MethodGet, "/coupons/FESTIVE10", nil, &out)
		require.NoError(t, err)
		assert.Equal(t, "FESTIVE10", out.Code)
		assert.Equal(t, 10.0, out.Discount)
	})

	t.Run("sends_json_body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "meera@example.com", body["email"])
			w.Write([]byte(`{"success":true,"data":{"id":"u-1"}}`))
		}))
		defer srv.Close()

		client := commerce.NewClient(srv.URL, "")

		var out struct {
			ID string `json:"id"`
		}
		err := client.Do(ctx, http.MethodPost, "/auth/verify", map[string]string{"email": "meera@example.com"}, &out)
		require.NoError(t, err)
		assert.Equal(t, "u-1", out.ID)
	})

	t.Run("error_envelope_becomes_api_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"error":{"code":"NOT_FOUND","message":"no such coupon"}}`))
		}))
		defer srv.Close()

		client := commerce.NewClient(srv.URL, "")

		err := client.Do(ctx, http.MethodGet, "/coupons/NOPE", nil, nil)
		require.Error(t, err)

		apiErr, ok := err.(*commerce.APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "NOT_FOUND", apiErr.Code)
		assert.Equal(t, "no such coupon", apiErr.Message)
		assert.True(t, commerce.IsNotFound(err))
	})

	t.Run("malformed_error_body_still_yields_api_error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		}))
		defer srv.Close()

		client := commerce.NewClient(srv.URL, "")

		err := client.Do(ctx, http.MethodGet, "/anything", nil, nil)
		require.Error(t, err)

		apiErr, ok := err.(*commerce.APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, apiErr.Status)
		assert.False(t, commerce.IsNotFound(err))
	})

	t.Run("nil_out_discards_body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true,"data":{"ignored":true}}`))
		}))
		defer srv.Close()

		client := commerce.NewClient(srv.URL, "")
		assert.NoError(t, client.Do(ctx, http.MethodDelete, "/whatever", nil, nil))
	})

	t.Run("empty_data_leaves_out_untouched", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"success":true}`))
		}))
		defer srv.Close()

		client := commerce.NewClient(srv.URL, "")

		out := struct{ Code string }{Code: "unchanged"}
		require.NoError(t, client.Do(ctx, http.MethodGet, "/x", nil, &out))
		assert.Equal(t, "unchanged", out.Code)
	})
}
