package api

import (
	"net/http"

	"github.com/best-life-api/internal/service"
	"github.com/best-life-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const predictionFailed = "Error processing prediction request"

// PredictHandler handles the model-backed endpoints
type PredictHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPredictHandler creates a new PredictHandler
func NewPredictHandler(services *service.Services, log zerolog.Logger) *PredictHandler {
	return &PredictHandler{
		services: services,
		log:      log.With().Str("handler", "predict").Logger(),
	}
}

// Predict handles GET /predict/:education/:health/:safety/:environment.
// Every failure, parse errors included, answers the same generic 500.
func (h *PredictHandler) Predict(c *gin.Context) {
	in, err := validation.ParsePredictInput(
		c.Param("education"),
		c.Param("health"),
		c.Param("safety"),
		c.Param("environment"),
	)
	if err != nil {
		h.log.Warn().Err(err).Str("route", c.FullPath()).Msg("Invalid prediction input")
		c.JSON(http.StatusInternalServerError, gin.H{"error": predictionFailed})
		return
	}

	result, err := h.services.Prediction.Predict(c.Request.Context(), in)
	if err != nil {
		h.log.Error().Err(err).Str("route", c.FullPath()).Msg("Prediction failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": predictionFailed})
		return
	}

	c.JSON(http.StatusOK, result)
}

// PredictScore handles GET /pred_scores/:var01/:var02. The first variable
// arrives under the country route's wildcard name.
func (h *PredictHandler) PredictScore(c *gin.Context) {
	var01 := c.Param("country_id")
	var02 := c.Param("var02")

	result, err := h.services.Prediction.PredictScore(c.Request.Context(), var01, var02)
	if err != nil {
		h.log.Error().Err(err).Str("route", c.FullPath()).Msg("Score prediction failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  predictionFailed,
			"detail": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
