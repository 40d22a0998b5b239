package api

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	echo "github.com/labstack/echo/v5"

	"github.com/frugalops/foreman/pkg/events"
)

// wsWriteTimeout bounds one frame write to a slow client.
const wsWriteTimeout = 5 * time.Second

// wsEnvelope is the wire shape of one streamed event. Seq is set only on
// catchup replays of persisted events.
type wsEnvelope struct {
	Type      string      `json:"type"`
	TaskID    string      `json:"task_id,omitempty"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	Seq       int64       `json:"seq,omitempty"`
}

// wsHandler handles GET /ws: upgrades the connection and streams domain
// events. An `after` query parameter replays persisted events with id >
// after before live streaming begins.
func (s *Server) wsHandler(c *echo.Context) error {
	opts := &websocket.AcceptOptions{}
	if len(s.cfg.Server.CORSOrigins) == 0 {
		opts.InsecureSkipVerify = true
	} else {
		opts.OriginPatterns = s.cfg.Server.CORSOrigins
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), opts)
	if err != nil {
		return err
	}

	// Subscribe before catchup so nothing published in between is lost;
	// duplicates across the boundary are possible and harmless.
	sub := s.events.Bus().Subscribe(events.DefaultBufferSize)
	defer sub.Unsubscribe()

	// CloseRead reads and discards client frames; its context ends when the
	// peer disconnects.
	ctx := conn.CloseRead(c.Request().Context())

	if after := c.QueryParam("after"); after != "" {
		afterID, parseErr := strconv.ParseInt(after, 10, 64)
		if parseErr != nil {
			_ = conn.Close(websocket.StatusUnsupportedData, "after must be an integer")
			return nil
		}
		if err := s.replayCatchup(ctx, conn, afterID); err != nil {
			_ = conn.Close(websocket.StatusInternalError, "catchup failed")
			return nil
		}
	}

	s.streamEvents(ctx, conn, sub)
	_ = conn.Close(websocket.StatusNormalClosure, "")
	return nil
}

// replayCatchup sends persisted events the client missed while disconnected.
func (s *Server) replayCatchup(ctx context.Context, conn *websocket.Conn, afterID int64) error {
	const page = 200
	for {
		missed, err := s.events.ListSince(ctx, afterID, page)
		if err != nil {
			return err
		}
		for _, ev := range missed {
			env := wsEnvelope{
				Type:      ev.EventType,
				TaskID:    ev.TaskID,
				Payload:   ev.Payload,
				Timestamp: ev.CreatedAt,
				Seq:       ev.ID,
			}
			if err := writeFrame(ctx, conn, env); err != nil {
				return err
			}
			afterID = ev.ID
		}
		if len(missed) < page {
			return nil
		}
	}
}

// streamEvents forwards live bus events until the client goes away. Shed
// events surface as a "dropped" marker so the client can re-sync.
func (s *Server) streamEvents(ctx context.Context, conn *websocket.Conn, sub *events.Subscription) {
	var reported int64
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			if dropped := sub.Dropped(); dropped > reported {
				marker := wsEnvelope{
					Type:      "dropped",
					Payload:   events.DroppedPayload{Dropped: dropped - reported},
					Timestamp: time.Now().UTC(),
				}
				if err := writeFrame(ctx, conn, marker); err != nil {
					return
				}
				reported = dropped
			}
			env := wsEnvelope{
				Type:      ev.Type,
				TaskID:    ev.TaskID,
				Payload:   ev.Payload,
				Timestamp: ev.Timestamp,
			}
			if err := writeFrame(ctx, conn, env); err != nil {
				slog.Debug("WebSocket write failed, dropping client", "error", err)
				return
			}
		}
	}
}

func writeFrame(ctx context.Context, conn *websocket.Conn, env wsEnvelope) error {
	writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, env)
}
