package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
}

func TestAdminAuth(t *testing.T) {
	logger := zerolog.Nop()
	const apiKey = "test-admin-key"

	tests := []struct {
		name           string
		path           string
		providedKey    string
		expectedStatus int
	}{
		{
			name:           "Public menu route passes without key",
			path:           "/api/menus",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public order route passes without key",
			path:           "/api/orders",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Payment route passes without key",
			path:           "/api/payments/complete",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Health check passes without key",
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Admin route with valid key",
			path:           "/api/admin/menus",
			providedKey:    apiKey,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Admin route with missing key",
			path:           "/api/admin/menus",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Admin route with wrong key",
			path:           "/api/admin/menus",
			providedKey:    "wrong-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Admin order route with missing key",
			path:           "/api/admin/orders/some-id",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AdminAuth(apiKey, logger)(okHandler())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set("X-API-Key", tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	t.Run("Adds headers", func(t *testing.T) {
		handler := CORS(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/api/menus", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-API-Key")
	})

	t.Run("Preflight short-circuits", func(t *testing.T) {
		called := false
		handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, called)
	})
}

func TestLogging(t *testing.T) {
	logger := zerolog.Nop()

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRecovery(t *testing.T) {
	logger := zerolog.Nop()

	handler := Recovery(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/menus", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
}
