package handlers

import (
	"errors"
	"net/http"

	"sugar_tracker/internal/analysis"
	"sugar_tracker/internal/models"
	"sugar_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	msgNoMeasurements  = "There aren't such measurements"
	errInvalidBodyPref = "invalid body: "
	errInternal        = "internal error"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// isClientError reports errors caused by request input.
func isClientError(err error) bool {
	for _, target := range []error{
		models.ErrInvalidPeriod,
		models.ErrInvalidFilter,
		models.ErrInvalidMode,
		service.ErrInvalidMeasurement,
		service.ErrInvalidTimeRange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondServiceError maps domain errors to HTTP statuses; anything unknown is logged as a 500.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, analysis.ErrEmptyResult):
		c.JSON(http.StatusNotFound, gin.H{"message": msgNoMeasurements})
	case errors.Is(err, service.ErrMeasurementNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoHistogram):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case isClientError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err, kv...)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
