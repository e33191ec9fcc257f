// Package render owns the correlation between submitted renders and their
// asynchronous completion events. Submission happens on the command path;
// completions arrive on the websocket path. The correlator is the single
// shared structure bridging the two, and guarantees each completion action
// runs at most once per render.
package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SawshaDev/Aswo/app/shared/metrics"
)

// ErrDuplicateTicket is returned when a renderID is registered twice
// without an intervening dispatch or expiry. The render service never
// reuses a live renderID, so this indicates a caller bug.
var ErrDuplicateTicket = errors.New("render: ticket already registered for renderID")

// Outcome is the terminal result of a render, whether it arrived from the
// notification channel or was synthesized by the expiry sweep.
type Outcome struct {
	RenderID     int64
	VideoURL     string
	ErrorCode    int
	ErrorMessage string
	// TimedOut is set when the ticket expired before any event arrived.
	TimedOut bool
}

// CompletionFunc delivers an outcome back to the originating request
// context, e.g. by editing the progress message. It is invoked off the
// command path and must not assume an interaction is still deferrable.
type CompletionFunc func(ctx context.Context, outcome Outcome)

// Correlator matches completion events to pending render tickets.
type Correlator interface {
	Register(renderID int64, action CompletionFunc) error
	Dispatch(ctx context.Context, outcome Outcome)
	Expire(renderID int64) bool
	Pending() int
}

type ticket struct {
	action   CompletionFunc
	deadline time.Time
}

type correlator struct {
	mu      sync.Mutex
	tickets map[int64]*ticket
	ttl     time.Duration
	logger  *slog.Logger
}

// NewCorrelator creates a correlator whose tickets expire after ttl. The
// janitor sweep runs until ctx is cancelled and synthesizes a timed-out
// outcome for every ticket it removes, so callers have a single failure
// path to implement.
func NewCorrelator(ctx context.Context, ttl time.Duration, logger *slog.Logger) Correlator {
	c := &correlator{
		tickets: make(map[int64]*ticket),
		ttl:     ttl,
		logger:  logger,
	}
	go c.startJanitor(ctx, ttl/10)
	return c
}

// newCorrelatorNoJanitor is the sweep-free constructor used by tests that
// drive expiry explicitly.
func newCorrelatorNoJanitor(ttl time.Duration, logger *slog.Logger) *correlator {
	return &correlator{
		tickets: make(map[int64]*ticket),
		ttl:     ttl,
		logger:  logger,
	}
}

// Register stores a ticket for renderID. It must be called before the
// handler yields; an event racing registration is treated as unmatched and
// dropped, which is an accepted lossy window.
func (c *correlator) Register(renderID int64, action CompletionFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tickets[renderID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateTicket, renderID)
	}

	c.tickets[renderID] = &ticket{
		action:   action,
		deadline: time.Now().Add(c.ttl),
	}
	metrics.SetPendingTickets(len(c.tickets))

	c.logger.Debug("Registered render ticket",
		slog.Int64("render_id", renderID),
		slog.Time("deadline", c.tickets[renderID].deadline),
	)
	return nil
}

// Dispatch delivers an outcome to its ticket's completion action exactly
// once and removes the ticket. Outcomes with no matching ticket are dropped
// with a diagnostic log: the render service is shared, so events for
// renders submitted elsewhere are normal.
func (c *correlator) Dispatch(ctx context.Context, outcome Outcome) {
	c.mu.Lock()
	t, ok := c.tickets[outcome.RenderID]
	if ok {
		delete(c.tickets, outcome.RenderID)
		metrics.SetPendingTickets(len(c.tickets))
	}
	c.mu.Unlock()

	if !ok {
		if metrics.EventsDropped != nil {
			metrics.EventsDropped.Inc()
		}
		c.logger.DebugContext(ctx, "Dropping completion event with no matching ticket",
			slog.Int64("render_id", outcome.RenderID),
		)
		return
	}

	if metrics.RendersCompleted != nil {
		metrics.RendersCompleted.Inc()
	}
	t.action(ctx, outcome)
}

// Expire removes a ticket without invoking its action and reports whether
// one was present.
func (c *correlator) Expire(renderID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.tickets[renderID]; !ok {
		return false
	}
	delete(c.tickets, renderID)
	metrics.SetPendingTickets(len(c.tickets))
	return true
}

// Pending returns the number of in-flight tickets.
func (c *correlator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickets)
}

func (c *correlator) startJanitor(ctx context.Context, interval time.Duration) {
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.logger.Info("Render ticket janitor started", slog.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Render ticket janitor stopping")
			return
		case <-ticker.C:
			c.sweepExpired(ctx)
		}
	}
}

// sweepExpired removes overdue tickets and delivers a synthesized timed-out
// outcome through the normal completion path. Actions run outside the lock.
func (c *correlator) sweepExpired(ctx context.Context) {
	now := time.Now()

	c.mu.Lock()
	var expired []struct {
		renderID int64
		action   CompletionFunc
	}
	for renderID, t := range c.tickets {
		if now.After(t.deadline) {
			expired = append(expired, struct {
				renderID int64
				action   CompletionFunc
			}{renderID, t.action})
			delete(c.tickets, renderID)
		}
	}
	metrics.SetPendingTickets(len(c.tickets))
	c.mu.Unlock()

	for _, e := range expired {
		if metrics.RendersExpired != nil {
			metrics.RendersExpired.Inc()
		}
		c.logger.WarnContext(ctx, "Render ticket expired without a completion event",
			slog.Int64("render_id", e.renderID),
		)
		e.action(ctx, Outcome{RenderID: e.renderID, TimedOut: true})
	}
}
