package ui

import (
	"net/http"
	"time"

	"github.com/best-life-api/internal/metrics"
	"github.com/best-life-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates the persona selector router
func NewRouter(h *Handler, m *metrics.Metrics, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logging(log))
	if m != nil {
		router.Use(m.Middleware())
		router.GET("/metrics", m.Handler())
	}
	router.SetHTMLTemplate(h.templates)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "best-life-ui",
		})
	})

	pages := router.Group("/", h.LoadSession)
	{
		pages.GET("", h.Home)
		pages.POST("/login/:persona", h.Login)
		pages.POST("/logout", h.Logout)
		for _, p := range h.personas {
			pages.GET(p.Home, h.RolePage(p))
		}
	}

	return router
}
