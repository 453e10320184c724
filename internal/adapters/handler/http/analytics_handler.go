package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fastline/analytics-engine/internal/adapters/handler/http/middleware"
	"github.com/fastline/analytics-engine/internal/core/domain"
	"github.com/fastline/analytics-engine/internal/core/services"
)

type AnalyticsHandler struct {
	svc *services.AnalyticsService
}

func NewAnalyticsHandler(svc *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/analytics", h.GetAnalytics)
	r.GET("/fasts/:id/effectiveness", h.GetFastEffectiveness)
}

// GetFastEffectiveness godoc
//
//	@Summary      Fast effectiveness breakdown
//	@Description  Partitions the weight change of one completed fast into fat, muscle and fluid components. Missing-data conditions come back as statuses on a 200 response.
//	@Tags         analytics
//	@Produce      json
//	@Param        id   path      string  true  "Fast ID"
//	@Success      200  {object}  domain.EffectivenessResult
//	@Failure      401  {object}  map[string]string
//	@Failure      404  {object}  domain.EffectivenessResult
//	@Failure      500  {object}  map[string]string
//	@Security     BearerAuth
//	@Router       /fasts/{id}/effectiveness [get]
func (h *AnalyticsHandler) GetFastEffectiveness(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	fastID := c.Param("id")

	result, err := h.svc.GetFastEffectiveness(c.Request.Context(), userID, fastID)
	if err != nil {
		handleError(c, err)
		return
	}

	// "not_found" is the only status that maps to an HTTP error.
	if result.Status == domain.StatusNotFound {
		c.JSON(http.StatusNotFound, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAnalytics godoc
//
//	@Summary      Rolling analytics bundle
//	@Description  Canonical weigh-ins, fasts, weekly composition, retention and rolling insights for the requested window, in one response.
//	@Tags         analytics
//	@Produce      json
//	@Param        days  query     int  false  "Rolling window in days, clamped to [1, 365]"  default(90)
//	@Success      200   {object}  domain.AnalyticsOverview
//	@Failure      400   {object}  map[string]string
//	@Failure      401   {object}  map[string]string
//	@Failure      500   {object}  map[string]string
//	@Security     BearerAuth
//	@Router       /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	days := 0
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		days = parsed
	}

	overview, err := h.svc.GetAnalytics(c.Request.Context(), userID, services.AnalyticsOptions{Days: days})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrFastNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	default:
		log.Printf("[ERROR] Request %s %s (id %s) failed: %v",
			c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c), err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
