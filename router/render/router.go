// Package renderrouter wires the render completion topic to the
// correlator. It is the single shared listener on the notification channel;
// demultiplexing by renderID happens inside the correlator rather than in
// per-request listeners.
package renderrouter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/SawshaDev/Aswo/app/render"
	renderevents "github.com/SawshaDev/Aswo/events/render"
)

// RenderRouter handles routing for render completion events.
type RenderRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber message.Subscriber
	correlator render.Correlator
}

// NewRenderRouter creates a new RenderRouter.
func NewRenderRouter(logger *slog.Logger, router *message.Router, subscriber message.Subscriber, correlator render.Correlator) *RenderRouter {
	return &RenderRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		correlator: correlator,
	}
}

// Configure sets up middleware and registers the completion handler.
func (r *RenderRouter) Configure() error {
	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		r.loggingMiddleware,
	)

	r.Router.AddNoPublisherHandler(
		"render.finished.dispatch",
		renderevents.RenderFinished,
		r.subscriber,
		r.handleRenderFinished,
	)
	return nil
}

// handleRenderFinished decodes a completion event and hands it to the
// correlator. Unmatched events are the correlator's business, not an error.
func (r *RenderRouter) handleRenderFinished(msg *message.Message) error {
	var payload renderevents.RenderFinishedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal render completion payload: %w", err)
	}

	r.correlator.Dispatch(msg.Context(), render.Outcome{
		RenderID:     payload.RenderID,
		VideoURL:     payload.VideoURL,
		ErrorCode:    payload.ErrorCode,
		ErrorMessage: payload.ErrorMessage,
	})
	return nil
}

func (r *RenderRouter) loggingMiddleware(next message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		startTime := time.Now()
		ctx := msg.Context()

		produced, err := next(msg)

		if err != nil {
			r.logger.ErrorContext(ctx, "Error processing render event",
				slog.String("message_id", msg.UUID),
				slog.String("correlation_id", middleware.MessageCorrelationID(msg)),
				slog.Duration("duration", time.Since(startTime)),
				slog.Any("error", err),
			)
		} else {
			r.logger.DebugContext(ctx, "Render event processed",
				slog.String("message_id", msg.UUID),
				slog.String("correlation_id", middleware.MessageCorrelationID(msg)),
				slog.Duration("duration", time.Since(startTime)),
			)
		}
		return produced, err
	}
}

// Run starts the router and blocks until ctx is cancelled.
func (r *RenderRouter) Run(ctx context.Context) error {
	return r.Router.Run(ctx)
}
