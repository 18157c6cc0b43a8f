package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	return r
}

func TestRecovery(t *testing.T) {
	r := newEngine(Recovery(zerolog.Nop()))
	r.GET("/boom", func(c *gin.Context) { panic("nil map") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestErrors_RendersGeneric500(t *testing.T) {
	r := newEngine(Errors(zerolog.Nop()))
	r.PUT("/unguarded", func(c *gin.Context) { _ = c.Error(errors.New("KeyError: user_id")) })
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("late"))
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/unguarded", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusTeapot, w.Code, "an already written response is left alone")
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantStatus int
		wantHeader string
	}{
		{"wildcard", []string{"*"}, "http://anywhere.test", http.StatusNoContent, "*"},
		{"listed origin", []string{"http://localhost:8501"}, "http://localhost:8501", http.StatusNoContent, "http://localhost:8501"},
		{"unlisted origin", []string{"http://localhost:8501"}, "http://evil.test", http.StatusForbidden, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(CORS(tt.origins))
			r.GET("/countries", func(c *gin.Context) { c.JSON(http.StatusOK, []string{}) })

			req := httptest.NewRequest(http.MethodOptions, "/countries", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", "GET")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
