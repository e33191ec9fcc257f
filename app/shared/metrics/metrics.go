// Package metrics registers the Prometheus instruments for the render
// pipeline and exposes them over HTTP.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	// Counters
	RendersSubmitted  prometheus.Counter
	RendersRejected   prometheus.Counter
	RendersCompleted  prometheus.Counter
	RendersExpired    prometheus.Counter
	EventsDropped     prometheus.Counter
	SkinLookupsCached prometheus.Counter

	// Gauges
	PendingTickets prometheus.Gauge
	WebsocketState prometheus.Gauge // 0=disconnected, 1=connected, 2=reconnecting
)

// Init registers all metrics (idempotent).
func Init() {
	once.Do(func() {
		RendersSubmitted = promauto.NewCounter(prometheus.CounterOpts{Name: "aswo_renders_submitted_total", Help: "Replay renders submitted to o!rdr"})
		RendersRejected = promauto.NewCounter(prometheus.CounterOpts{Name: "aswo_renders_rejected_total", Help: "Replay submissions rejected by o!rdr"})
		RendersCompleted = promauto.NewCounter(prometheus.CounterOpts{Name: "aswo_renders_completed_total", Help: "Render completion events matched to a ticket"})
		RendersExpired = promauto.NewCounter(prometheus.CounterOpts{Name: "aswo_renders_expired_total", Help: "Render tickets expired without a completion event"})
		EventsDropped = promauto.NewCounter(prometheus.CounterOpts{Name: "aswo_render_events_dropped_total", Help: "Completion events with no matching ticket"})
		SkinLookupsCached = promauto.NewCounter(prometheus.CounterOpts{Name: "aswo_skin_lookups_cached_total", Help: "Skin listings served from the memo cache"})
		PendingTickets = promauto.NewGauge(prometheus.GaugeOpts{Name: "aswo_render_tickets_pending", Help: "Render tickets currently awaiting completion"})
		WebsocketState = promauto.NewGauge(prometheus.GaugeOpts{Name: "aswo_ordr_websocket_state", Help: "o!rdr websocket state (0=disconnected, 1=connected, 2=reconnecting)"})
	})
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// SetPendingTickets records the current in-flight ticket count.
func SetPendingTickets(n int) {
	if PendingTickets != nil {
		PendingTickets.Set(float64(n))
	}
}

// SetWebsocketState records the notification channel state.
func SetWebsocketState(state float64) {
	if WebsocketState != nil {
		WebsocketState.Set(state)
	}
}
