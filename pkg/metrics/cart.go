package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CartMetrics records cart command outcomes and live session counts.
type CartMetrics struct {
	commands *prometheus.CounterVec
	sessions prometheus.Gauge
}

// NewCartMetrics registers the cart metrics on the provided registerer.
func NewCartMetrics(reg prometheus.Registerer) *CartMetrics {
	if reg == nil {
		return &CartMetrics{}
	}
	commands := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_commands_total",
		Help: "Cart commands processed, by command and outcome.",
	}, []string{"command", "outcome"})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_cart_sessions",
		Help: "Cart sessions currently held in memory.",
	})
	reg.MustRegister(commands, sessions)
	return &CartMetrics{
		commands: commands,
		sessions: sessions,
	}
}

// IncCommand counts one processed command.
func (c *CartMetrics) IncCommand(command, outcome string) {
	if c == nil || c.commands == nil {
		return
	}
	c.commands.WithLabelValues(normalizeLabel(command), normalizeLabel(outcome)).Inc()
}

// SetSessions publishes the number of live cart sessions.
func (c *CartMetrics) SetSessions(n int) {
	if c == nil || c.sessions == nil {
		return
	}
	c.sessions.Set(float64(n))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
