package handlers

import (
	"net/http"
	"strings"
	"time"

	"sugar_tracker/internal/models"
	"sugar_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid    = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid      = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errTakenAtInvalid = "invalid 'taken_at' time; use RFC3339 or YYYY-MM-DD HH:MM"
)

// MeasurementRequest is the payload of POST /api/v1/measurements.
type MeasurementRequest struct {
	// When the reading was taken; defaults to now.
	TakenAt string `json:"taken_at,omitempty" example:"2025-04-02 07:05"`
	// Blood sugar in mg/dL.
	Value int `json:"value" binding:"required" example:"95"`
	// fasting or after_eating
	Mode string `json:"mode" binding:"required" example:"fasting"`
}

// @Summary      Record a measurement
// @Tags         measurements
// @Accept       json
// @Produce      json
// @Param        body  body      MeasurementRequest  true  "Measurement"
// @Success      201   {object}  models.Measurement
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/measurements [post]
// @Security     BearerAuth
func (h *Handler) recordMeasurement(c *gin.Context) {
	var req MeasurementRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	mode, err := models.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var takenAt time.Time
	if s := strings.TrimSpace(req.TakenAt); s != "" {
		if takenAt, err = parseQueryTime(s); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errTakenAtInvalid})
			return
		}
	}

	uid := userID(c)
	m, err := h.services.Measurements.Record(c.Request.Context(), uid, service.NewMeasurement{
		TakenAt: takenAt,
		Value:   req.Value,
		Mode:    mode,
	})
	if err != nil {
		h.respondServiceError(c, "measurement_record_failed", err, "user_id", uid)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary      List measurements
// @Description  Filter by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', 'YYYY-MM-DD HH:MM', 'DD.MM.YYYY HH:MM' or 'YYYY-MM-DD'). A date-only 'to' is treated as end of day inclusive.
// @Tags         measurements
// @Produce      json
// @Param        from  query     string  false  "Start of range"  example(2025-04-01)
// @Param        to    query     string  false  "End of range"    example(2025-04-30)
// @Param        mode  query     string  false  "Measurement mode"  Enums(fasting,after_eating)
// @Success      200   {object}  map[string]interface{}  "count, measurements"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/measurements [get]
// @Security     BearerAuth
func (h *Handler) listMeasurements(c *gin.Context) {
	var (
		f   service.MeasurementFilter
		err error
	)
	if qs := c.Query("from"); qs != "" {
		if f.From, err = parseQueryTime(qs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		if f.To, err = parseUpperBound(qs); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
	}
	if qs := c.Query("mode"); qs != "" {
		mode, err := models.ParseMode(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		f.Mode = &mode
	}

	uid := userID(c)
	ms, err := h.services.Measurements.List(c.Request.Context(), uid, f)
	if err != nil {
		h.respondServiceError(c, "measurements_list_failed", err, "user_id", uid, "from", f.From, "to", f.To)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":        len(ms),
		"measurements": ms,
	})
}

// @Summary      Delete a measurement
// @Tags         measurements
// @Param        id   path  string  true  "Measurement id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/measurements/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteMeasurement(c *gin.Context) {
	uid := userID(c)
	id := c.Param("id")
	if err := h.services.Measurements.Delete(c.Request.Context(), uid, id); err != nil {
		h.respondServiceError(c, "measurement_delete_failed", err, "user_id", uid, "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
