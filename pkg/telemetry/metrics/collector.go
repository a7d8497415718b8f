// Package metrics provides Prometheus metrics for Warden.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"warden-hq/warden/pkg/config"
)

// Collector owns the Prometheus registry and all Warden metric groups.
// Metric updates are cheap and safe to call from request handlers.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	moderation *ModerationMetrics
}

// NewCollector creates a metrics collector with the specified configuration
// and registry. If registry is nil, a fresh private registry is used.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "warden"
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = "moderation"
	}

	return &Collector{
		config:     cfg,
		registry:   registry,
		moderation: NewModerationMetrics(cfg, registry),
	}
}

// Moderation returns the moderation metric group.
func (c *Collector) Moderation() *ModerationMetrics {
	return c.moderation
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
