package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"sugar_tracker/internal/analysis"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 5 * time.Second
	maxInterval      = time.Minute
	maxIntervalMilli = 60_000

	wsTypeAnalysis = "analysis"
	wsTypeEmpty    = "empty"
	wsTypeError    = "error"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	// TODO: restrict origins once the web client has a fixed host.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Live analysis stream
// @Description  WebSocket; pushes the analysis of the window ending now on every tick. Empty results are sent as {"type":"empty"}.
// @Tags         analysis
// @Param        period       query  string  true   "Lookback window"  Enums(year,month,week,day)
// @Param        mode         query  string  false  "Mode filter"      Enums(all,fasting,after_eating)
// @Param        interval     query  string  false  "Push interval, e.g. 10s"
// @Param        interval_ms  query  int     false  "Push interval in milliseconds"
// @Success      101
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/ws/analysis [get]
// @Security     BearerAuth
func (h *Handler) wsAnalysis(c *gin.Context) {
	q, msg, ok := parseAnalysisQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	uid := userID(c)
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendAnalysis(ctx, conn, uid, q); err != nil {
		h.log.Infow("ws_write_failed_initial", "err", err)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		case <-ticker.C:
			if err := h.sendAnalysis(ctx, conn, uid, q); err != nil {
				h.log.Infow("ws_write_failed", "err", err)
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Infow("ws_read_closed", "err", err)
			return
		}
	}
}

// sendAnalysis runs the query for the window ending now and writes one envelope.
// A failed analysis is reported to the client and closes the stream.
func (h *Handler) sendAnalysis(ctx context.Context, conn *websocket.Conn, uid int, q analysis.Query) error {
	q.End = time.Now()
	rep, err := h.services.Analysis.Analyze(ctx, uid, q)

	env := wsEnvelope{Type: wsTypeAnalysis}
	switch {
	case errors.Is(err, analysis.ErrEmptyResult):
		env = wsEnvelope{Type: wsTypeEmpty}
	case err != nil:
		h.log.Errorw("ws_analysis_failed", "err", err, "user_id", uid)
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteJSON(wsEnvelope{Type: wsTypeError, Error: errInternal})
		return err
	default:
		env.Data = newAnalysisResponse(rep)
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
