package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newMiddlewareRouter(allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(allowedOrigins))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates an id when absent", func(t *testing.T) {
		router := newMiddlewareRouter(nil)

		req, _ := http.NewRequest("GET", "/ping", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Header().Get(RequestIDHeader) == "" {
			t.Error("expected a generated request id")
		}
	})

	t.Run("keeps a caller-supplied id", func(t *testing.T) {
		router := newMiddlewareRouter(nil)

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set(RequestIDHeader, "caller-id-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "caller-id-123" {
			t.Errorf("request id = %q, want caller-id-123", got)
		}
	})
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("allows exact origin", func(t *testing.T) {
		router := newMiddlewareRouter([]string{"http://localhost:3000"})

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Allow-Origin = %q", got)
		}
	})

	t.Run("allows wildcard prefix", func(t *testing.T) {
		router := newMiddlewareRouter([]string{"chrome-extension://*"})

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "chrome-extension://abcdef")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "chrome-extension://abcdef" {
			t.Errorf("Allow-Origin = %q", got)
		}
	})

	t.Run("rejects unknown origin", func(t *testing.T) {
		router := newMiddlewareRouter([]string{"http://localhost:3000"})

		req, _ := http.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		router := newMiddlewareRouter([]string{"http://localhost:3000"})

		req, _ := http.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Status = %d, want 204", w.Code)
		}
	})
}
