// Package notify maintains the persistent websocket connection to the
// o!rdr event stream and republishes render completion events onto the
// internal message bus. It is the only component that knows the wire
// framing of the stream; everything downstream consumes watermill messages.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/SawshaDev/Aswo/app/shared/metrics"
	renderevents "github.com/SawshaDev/Aswo/events/render"
	"github.com/SawshaDev/Aswo/helpers"
)

// State is the connection health of the notification channel. Handlers
// check it before promising a user a follow-up notification.
type State int32

const (
	StateDisconnected State = iota
	StateConnected
	StateReconnecting
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	default:
		return "disconnected"
	}
}

const (
	// renderDoneEvent is the event name o!rdr uses for finished renders.
	renderDoneEvent = "render_done_json"

	maxBackoff     = 2 * time.Minute
	initialBackoff = 2 * time.Second
)

// Channel is the persistent event-stream connection.
type Channel struct {
	url       string
	publisher message.Publisher
	logger    *slog.Logger
	dialer    *websocket.Dialer
	state     atomic.Int32
}

// NewChannel creates a Channel publishing completion events to publisher.
func NewChannel(url string, publisher message.Publisher, logger *slog.Logger) *Channel {
	return &Channel{
		url:       url,
		publisher: publisher,
		logger:    logger,
		dialer:    websocket.DefaultDialer,
	}
}

// State returns the current connection health.
func (c *Channel) State() State {
	return State(c.state.Load())
}

func (c *Channel) setState(s State) {
	c.state.Store(int32(s))
	metrics.SetWebsocketState(float64(s))
}

// Run connects and consumes the event stream until ctx is cancelled,
// reconnecting with capped backoff after a drop. A failed connection never
// takes the bot down; the channel just reports itself degraded.
func (c *Channel) Run(ctx context.Context) {
	backoff := initialBackoff

	for {
		if ctx.Err() != nil {
			c.setState(StateDisconnected)
			return
		}

		conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
		if err != nil {
			c.setState(StateReconnecting)
			c.logger.WarnContext(ctx, "Failed to connect to render event stream",
				slog.String("url", c.url),
				slog.Duration("retry_in", backoff),
				slog.Any("error", err),
			)
			select {
			case <-ctx.Done():
				c.setState(StateDisconnected)
				return
			case <-time.After(backoff):
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}

		c.setState(StateConnected)
		backoff = initialBackoff
		c.logger.InfoContext(ctx, "Connected to render event stream", slog.String("url", c.url))

		c.readLoop(ctx, conn)

		_ = conn.Close()
		if ctx.Err() != nil {
			c.setState(StateDisconnected)
			return
		}
		c.setState(StateReconnecting)
		c.logger.WarnContext(ctx, "Render event stream dropped, reconnecting")
	}
}

// readLoop consumes frames until the connection breaks or ctx is cancelled.
func (c *Channel) readLoop(ctx context.Context, conn *websocket.Conn) {
	// Unblock ReadMessage when the context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		msgType, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}
		c.handleFrame(ctx, raw)
	}
}

// handleFrame decodes one event frame. The stream frames events either as a
// bare JSON object or as an ["event_name", {payload}] pair; both forms are
// accepted, anything else is logged and skipped.
func (c *Channel) handleFrame(ctx context.Context, raw []byte) {
	payload, ok := decodeFrame(raw)
	if !ok {
		c.logger.DebugContext(ctx, "Skipping unrecognized event frame", slog.String("frame", string(raw)))
		return
	}
	if payload.RenderID == 0 {
		c.logger.WarnContext(ctx, "Completion event without a renderID", slog.String("frame", string(raw)))
		return
	}

	correlationID := uuid.New().String()
	if err := helpers.PublishEvent(c.publisher, renderevents.RenderFinished, correlationID, payload); err != nil {
		c.logger.ErrorContext(ctx, "Failed to publish render completion event",
			slog.Int64("render_id", payload.RenderID),
			slog.Any("error", err),
		)
	}
}

func decodeFrame(raw []byte) (renderevents.RenderFinishedPayload, bool) {
	var payload renderevents.RenderFinishedPayload

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return payload, false
	}

	if trimmed[0] == '[' {
		var pair []json.RawMessage
		if err := json.Unmarshal(trimmed, &pair); err != nil || len(pair) != 2 {
			return payload, false
		}
		var name string
		if err := json.Unmarshal(pair[0], &name); err != nil || name != renderDoneEvent {
			return payload, false
		}
		if err := json.Unmarshal(pair[1], &payload); err != nil {
			return payload, false
		}
		return payload, true
	}

	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return payload, false
	}
	return payload, true
}
