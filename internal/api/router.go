package api

import (
	"context"
	"net/http"
	"time"

	"github.com/best-life-api/internal/config"
	"github.com/best-life-api/internal/metrics"
	"github.com/best-life-api/internal/middleware"
	"github.com/best-life-api/internal/service"
	"github.com/best-life-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router. db may be nil, in which
// case /health reports only liveness.
func NewRouter(services *service.Services, db HealthChecker, m *metrics.Metrics, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logging(log))
	if m != nil {
		router.Use(m.Middleware())
	}
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.Errors(log))

	// Handlers
	userHandler := NewUserHandler(services, log)
	scoreHandler := NewScoreHandler(services, log)
	lookupHandler := NewLookupHandler(services, log)
	predictHandler := NewPredictHandler(services, log)

	router.GET("/health", healthCheck(db))
	if m != nil {
		router.GET("/metrics", m.Handler())
	}

	users := router.Group("/users")
	{
		users.GET("/:id", userHandler.GetUser)
		users.GET("/role/:role", userHandler.GetByRole)
		users.GET("/getID/:user_name", userHandler.GetUserID)
		users.DELETE("/remove/:id", userHandler.DeleteUser)
		users.PUT("/name", userHandler.UpdateUserName)
	}

	// The regression route shares its first wildcard with the country
	// route; gin allows one wildcard name per segment.
	router.GET("/pred_scores", scoreHandler.ListPredictedScores)
	router.GET("/pred_scores/:country_id", scoreHandler.GetCountryScores)
	router.GET("/pred_scores/:country_id/:var02", predictHandler.PredictScore)
	router.GET("/university/:country_id", scoreHandler.ListUniversities)
	router.POST("/preference", scoreHandler.CreatePreference)
	router.GET("/preference/:user_id", scoreHandler.RecentPreferences)

	router.GET("/predict/:education/:health/:safety/:environment", predictHandler.Predict)

	router.GET("/countries", lookupHandler.CountryNames)
	router.GET("/country", lookupHandler.Countries)
	router.GET("/factor", lookupHandler.Factors)
	router.GET("/orgs/:country_id/:factor_id", lookupHandler.Organizations)
	router.GET("/scores", lookupHandler.MLScores)

	return router
}

// healthCheck returns the health status
func healthCheck(db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		body := gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "best-life-api",
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := db.HealthCheck(ctx); err != nil {
				status = http.StatusServiceUnavailable
				body["status"] = "unhealthy"
				body["database"] = err.Error()
			} else {
				body["database"] = "ok"
			}
		}
		c.JSON(status, body)
	}
}

// pathID parses an integer path parameter. A non-integer segment answers
// 404, the same as a route that does not exist.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, verr := validation.ParseID(name, c.Param(name))
	if verr != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return id, true
}

// backendFailure logs err with its route and answers 500 with the raw message
func backendFailure(c *gin.Context, log zerolog.Logger, err error) {
	log.Error().
		Err(err).
		Str("route", c.FullPath()).
		Str("request_id", c.GetString("request_id")).
		Msg("Backend failure")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
