// Package metrics exposes Prometheus instrumentation for the contract dispatcher.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements domain.ContractMetrics on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// Commands executed, by command.
	CommandsExecuted *prometheus.CounterVec

	// Commands rejected, by command and error code.
	CommandsRejected *prometheus.CounterVec

	CommandLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with its own registry, including Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		CommandsExecuted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "poap_commands_executed_total",
			Help: "Total committed commands by command",
		}, []string{"command"}),

		CommandsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "poap_commands_rejected_total",
			Help: "Total rejected commands by command and error code",
		}, []string{"command", "code"}),

		CommandLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "poap_command_duration_seconds",
			Help:    "Duration of command execution including the store transaction",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"command"}),
	}
}

// ObserveCommand records one dispatched command. An empty code means it committed.
func (m *Metrics) ObserveCommand(command, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.CommandLatency.WithLabelValues(command).Observe(elapsed.Seconds())
	if code == "" {
		m.CommandsExecuted.WithLabelValues(command).Inc()
		return
	}
	m.CommandsRejected.WithLabelValues(command, code).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
