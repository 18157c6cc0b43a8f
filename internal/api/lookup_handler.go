package api

import (
	"net/http"

	"github.com/best-life-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// LookupHandler handles reference data endpoints
type LookupHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewLookupHandler creates a new LookupHandler
func NewLookupHandler(services *service.Services, log zerolog.Logger) *LookupHandler {
	return &LookupHandler{
		services: services,
		log:      log.With().Str("handler", "lookups").Logger(),
	}
}

// CountryNames handles GET /countries
func (h *LookupHandler) CountryNames(c *gin.Context) {
	names, err := h.services.Lookup.CountryNames(c.Request.Context())
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// Countries handles GET /country
func (h *LookupHandler) Countries(c *gin.Context) {
	countries, err := h.services.Lookup.Countries(c.Request.Context())
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, countries)
}

// Factors handles GET /factor
func (h *LookupHandler) Factors(c *gin.Context) {
	factors, err := h.services.Lookup.Factors(c.Request.Context())
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, factors)
}

// Organizations handles GET /orgs/:country_id/:factor_id
func (h *LookupHandler) Organizations(c *gin.Context) {
	countryID, ok := pathID(c, "country_id")
	if !ok {
		return
	}
	factorID, ok := pathID(c, "factor_id")
	if !ok {
		return
	}

	orgs, err := h.services.Lookup.Organizations(c.Request.Context(), countryID, factorID)
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}
	if len(orgs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No organizations found for that factor and country"})
		return
	}

	c.JSON(http.StatusOK, orgs)
}

// MLScores handles GET /scores
func (h *LookupHandler) MLScores(c *gin.Context) {
	scores, err := h.services.Score.ListMLScores(c.Request.Context())
	if err != nil {
		backendFailure(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, scores)
}
