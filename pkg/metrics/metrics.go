// Package metrics provides Prometheus metrics for the explorer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the explorer metrics on its own registry, so several
// collectors can live side by side in one process (tests do that).
type Collector struct {
	registry *prometheus.Registry

	commandsTotal *prometheus.CounterVec
	pasteTotal    *prometheus.CounterVec
	items         prometheus.Gauge
}

// New creates a collector. withRuntime adds the Go runtime and process collectors.
func New(withRuntime bool) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		// Command metrics
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vfstug_commands_total",
				Help: "Total number of dispatched commands",
			},
			[]string{"command", "status"},
		),
		pasteTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vfstug_paste_total",
				Help: "Total number of pastes that changed the tree",
			},
			[]string{"mode"},
		),
		// Store metrics
		items: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "vfstug_items",
				Help: "Number of files and folders in the tree, root included",
			},
		),
	}
	c.registry.MustRegister(c.commandsTotal, c.pasteTotal, c.items)
	if withRuntime {
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return c
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns the HTTP handler exposing the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// CommandDone records a dispatched command with its status.
func (c *Collector) CommandDone(command, status string) {
	c.commandsTotal.WithLabelValues(command, status).Inc()
}

// Pasted records a paste by clipboard mode.
func (c *Collector) Pasted(mode string) {
	c.pasteTotal.WithLabelValues(mode).Inc()
}

// SetItems sets the current number of items.
func (c *Collector) SetItems(count int) {
	c.items.Set(float64(count))
}
