package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tukang-design/tukang-api/internal/config"

	"github.com/gin-gonic/gin"
)

func buildAdminRouter(cfg *config.AdminConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/v1/admin", AdminAuth(cfg))
	admin.GET("/submissions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	cfg := &config.AdminConfig{Token: "sekrit-token", Username: "admin", Password: "hunter2"}

	t.Run("no credentials", func(t *testing.T) {
		r := buildAdminRouter(cfg)
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"error":"Unauthorized"`) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("wrong bearer token", func(t *testing.T) {
		r := buildAdminRouter(cfg)
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions", nil)
		req.Header.Set("Authorization", "Bearer wrong")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid bearer token", func(t *testing.T) {
		r := buildAdminRouter(cfg)
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions", nil)
		req.Header.Set("Authorization", "Bearer sekrit-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("valid basic auth", func(t *testing.T) {
		r := buildAdminRouter(cfg)
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions", nil)
		req.SetBasicAuth("admin", "hunter2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("wrong basic password", func(t *testing.T) {
		r := buildAdminRouter(cfg)
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions", nil)
		req.SetBasicAuth("admin", "wrong")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("empty configured token rejects bearer", func(t *testing.T) {
		r := buildAdminRouter(&config.AdminConfig{Username: "admin", Password: "hunter2"})
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions", nil)
		req.Header.Set("Authorization", "Bearer ")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("nil config rejects everything", func(t *testing.T) {
		r := buildAdminRouter(nil)
		req := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions", nil)
		req.Header.Set("Authorization", "Bearer sekrit-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
