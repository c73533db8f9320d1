package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/markethours"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/model"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The stream is read-only market data; cross-origin pages may
	// subscribe.
	CheckOrigin: func(*http.Request) bool { return true },
}

// streamMsg is the wire envelope pushed to stream subscribers.
type streamMsg struct {
	Type   string                 `json:"type"` // "snapshot" or "update"
	Code   string                 `json:"code"`
	Points []model.IndicatorPoint `json:"points,omitempty"`
	Point  *model.IndicatorPoint  `json:"point,omitempty"`
}

// handleStream upgrades to a websocket and pushes today's indicator
// points for one security: a full snapshot on connect, then an update
// whenever a poll sees a new latest bar. Each connection polls
// independently — subscriber counts here are far below anything that
// would justify a shared fan-out hub.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		s.fail(w, r, "stream", http.StatusBadRequest, errMissingCode)
		return
	}
	freq := model.Frequency(r.URL.Query().Get("frequency"))
	if freq == "" {
		freq = model.Freq5Min
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return // Upgrade already wrote the error response
	}
	s.met.StreamClients.Inc()
	defer func() {
		s.met.StreamClients.Dec()
		conn.Close()
	}()

	// Reader goroutine: the client sends nothing meaningful, but reads
	// must be drained for close/ping frames to be processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var lastDate string
	push := func() bool {
		today := time.Now().Format("2006-01-02")
		ctx := r.Context()
		_, points, err := s.svc.GetTechnicalIndicators(ctx, code, today, today, freq)
		if err != nil || len(points) == 0 {
			if err != nil {
				s.log.Debug("stream poll failed", slog.String("code", code), slog.Any("err", err))
			}
			return true // transient; keep the connection
		}

		var msg streamMsg
		if lastDate == "" {
			msg = streamMsg{Type: "snapshot", Code: code, Points: points}
		} else if latest := points[len(points)-1]; latest.Date != lastDate {
			msg = streamMsg{Type: "update", Code: code, Point: &latest}
		} else {
			return true
		}
		lastDate = points[len(points)-1].Date

		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		return conn.WriteJSON(msg) == nil
	}

	if !push() {
		return
	}
	ticker := time.NewTicker(s.streamInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
			// No new bars arrive outside a trading session; skip the
			// upstream poll until the next open. The snapshot already
			// went out, so a quiet connection still holds state.
			if lastDate != "" && !markethours.IsMarketOpen(time.Now()) {
				continue
			}
			if !push() {
				return
			}
		}
	}
}

var errMissingCode = &missingParamError{param: "code"}

type missingParamError struct{ param string }

func (e *missingParamError) Error() string { return e.param + " is required" }
