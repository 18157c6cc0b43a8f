package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/best-life-api/internal/models"
	"github.com/best-life-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ScoreHandler handles predicted score, university and preference endpoints
type ScoreHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewScoreHandler creates a new ScoreHandler
func NewScoreHandler(services *service.Services, log zerolog.Logger) *ScoreHandler {
	return &ScoreHandler{
		services: services,
		log:      log.With().Str("handler", "scores").Logger(),
	}
}

// ListPredictedScores handles GET /pred_scores?country_id&factor_id&pred_score
func (h *ScoreHandler) ListPredictedScores(c *gin.Context) {
	filter := models.ScoreFilter{
		CountryID: c.Query("country_id"),
		FactorID:  c.Query("factor_id"),
		PredScore: c.Query("pred_score"),
	}

	scores, err := h.services.Score.ListPredictedScores(c.Request.Context(), filter)
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, scores)
}

// GetCountryScores handles GET /pred_scores/:country_id
func (h *ScoreHandler) GetCountryScores(c *gin.Context) {
	countryID, ok := pathID(c, "country_id")
	if !ok {
		return
	}

	scores, err := h.services.Score.ListCountryScores(c.Request.Context(), countryID)
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}
	if len(scores) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No scores found for country"})
		return
	}

	c.JSON(http.StatusOK, scores)
}

// ListUniversities handles GET /university/:country_id
func (h *ScoreHandler) ListUniversities(c *gin.Context) {
	countryID, ok := pathID(c, "country_id")
	if !ok {
		return
	}

	universities, err := h.services.Lookup.Universities(c.Request.Context(), countryID)
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, universities)
}

// CreatePreference handles POST /preference
func (h *ScoreHandler) CreatePreference(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	var req models.PreferenceRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.services.Score.CreatePreference(c.Request.Context(), &req); err != nil {
		backendFailure(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Preference created successfully"})
}

// RecentPreferences handles GET /preference/:user_id
func (h *ScoreHandler) RecentPreferences(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	prefs, err := h.services.Score.RecentPreferences(c.Request.Context(), userID)
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, prefs)
}
