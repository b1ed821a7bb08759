package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/roi-collector-api/internal/config"
)

func TestNewHandler(t *testing.T) {
	cfg := &config.Config{Server: config.Server{AllowedOrigins: []string{"https://painel.exemplo.com"}}}
	handler := NewHandler(cfg, Services{})

	t.Run("Healthcheck passa pela cadeia de middlewares", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Body.String())
	})

	t.Run("Preflight de origem liberada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/config", nil)
		req.Header.Set("Origin", "https://painel.exemplo.com")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "https://painel.exemplo.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Rota inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/users", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
