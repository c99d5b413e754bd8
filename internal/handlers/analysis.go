package handlers

import (
	"net/http"
	"time"

	"sugar_tracker/internal/analysis"
	"sugar_tracker/internal/models"
	"sugar_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const errEndInvalid = "invalid 'end' time; use RFC3339, YYYY-MM-DD HH:MM or DD.MM.YYYY HH:MM"

// AnalysisResponse is the JSON body of GET /api/v1/analysis.
type AnalysisResponse struct {
	Period       string                `json:"period" example:"week"`
	Start        time.Time             `json:"start"`
	End          time.Time             `json:"end"`
	Mode         string                `json:"mode" example:"fasting"`
	Count        int                   `json:"count"`
	Measurements []models.Measurement  `json:"measurements"`
	Lines        []string              `json:"lines"`
	Statistics   models.Statistics     `json:"statistics"`
	BorderValue  *int                  `json:"border_value,omitempty"`
	Bins         []models.HistogramBin `json:"bins,omitempty"`
}

func newAnalysisResponse(rep service.Report) AnalysisResponse {
	return AnalysisResponse{
		Period:       rep.Query.Period.String(),
		Start:        rep.Start,
		End:          rep.Query.End,
		Mode:         rep.Query.Filter.String(),
		Count:        len(rep.Measurements),
		Measurements: rep.Measurements,
		Lines:        analysis.Lines(rep.Measurements),
		Statistics:   rep.Statistics,
		BorderValue:  rep.BorderValue,
		Bins:         rep.Bins,
	}
}

// parseAnalysisQuery reads period, mode and end. A missing end is left zero and resolved to now by the service.
func parseAnalysisQuery(c *gin.Context) (analysis.Query, string, bool) {
	var (
		q   analysis.Query
		err error
	)
	if q.Period, err = models.ParsePeriod(c.Query("period")); err != nil {
		return q, err.Error(), false
	}
	if q.Filter, err = models.ParseModeFilter(c.Query("mode")); err != nil {
		return q, err.Error(), false
	}
	if qs := c.Query("end"); qs != "" {
		if q.End, err = parseUpperBound(qs); err != nil {
			return q, errEndInvalid, false
		}
	}
	return q, "", true
}

// @Summary      Analyse measurements
// @Description  Mode filter first, then the period window ending at 'end'. Single-mode queries also return the border value and histogram bins.
// @Tags         analysis
// @Produce      json
// @Param        period  query     string  true   "Lookback window"  Enums(year,month,week,day)
// @Param        mode    query     string  false  "Mode filter"      Enums(all,fasting,after_eating)
// @Param        end     query     string  false  "End of the window; defaults to now"  example(2025-04-10 12:00)
// @Success      200     {object}  AnalysisResponse
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string  "There aren't such measurements"
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/analysis [get]
// @Security     BearerAuth
func (h *Handler) getAnalysis(c *gin.Context) {
	q, msg, ok := parseAnalysisQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	uid := userID(c)
	rep, err := h.services.Analysis.Analyze(c.Request.Context(), uid, q)
	if err != nil {
		h.respondServiceError(c, "analysis_failed", err, "user_id", uid, "period", q.Period, "mode", q.Filter)
		return
	}
	c.JSON(http.StatusOK, newAnalysisResponse(rep))
}

// @Summary      Histogram image
// @Description  PNG histogram of a single-mode analysis; mode=all is rejected.
// @Tags         analysis
// @Produce      png
// @Param        period  query     string  true   "Lookback window"  Enums(year,month,week,day)
// @Param        mode    query     string  true   "Measurement mode"  Enums(fasting,after_eating)
// @Param        end     query     string  false  "End of the window; defaults to now"
// @Success      200     {file}    binary
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      422     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/analysis/histogram.png [get]
// @Security     BearerAuth
func (h *Handler) getHistogram(c *gin.Context) {
	q, msg, ok := parseAnalysisQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	uid := userID(c)
	img, err := h.services.Analysis.Histogram(c.Request.Context(), uid, q)
	if err != nil {
		h.respondServiceError(c, "histogram_failed", err, "user_id", uid, "period", q.Period, "mode", q.Filter)
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}
