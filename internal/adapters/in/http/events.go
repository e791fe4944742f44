package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// GetHealth handles GET /api/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Health{Ok: true})
}

// StreamEvents handles GET /api/events. The client receives every event published after it
// connected, as "event: <type>" plus the JSON envelope, until it disconnects or the
// notifier shuts down. A client that falls behind loses events; it never slows others down.
func (s *Server) StreamEvents(ctx echo.Context) error {
	events, cancel := s.stream.Subscribe(s.observerBuffer)
	defer cancel()

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	reqCtx := ctx.Request().Context()
	for {
		select {
		case <-reqCtx.Done():
			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			data, err := json.Marshal(ev)
			if err != nil {
				s.logger.ErrorContext(reqCtx, "Failed to encode event", "event_id", ev.ID.String(), "error", err)
				continue
			}

			if _, err = fmt.Fprintf(res, "id: %s\nevent: %s\ndata: %s\n\n", ev.ID.String(), ev.Type, data); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
