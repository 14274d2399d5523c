// Package metrics exposes the contents of a unit registry to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/dimension/qty"
)

// RegistryCollector reports registry size and depth at scrape time.
type RegistryCollector struct {
	reg *qty.Registry

	units *prometheus.Desc
	depth *prometheus.Desc
}

// NewRegistryCollector returns a collector for r (the default registry
// when r is nil). Metric names are prefixed with namespace when it is not
// empty.
func NewRegistryCollector(r *qty.Registry, namespace string) *RegistryCollector {
	if r == nil {
		r = qty.Default()
	}
	return &RegistryCollector{
		reg: r,
		units: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "units_registered"),
			"Number of registered units by kind.",
			[]string{"kind"}, nil,
		),
		depth: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "unit_definition_depth_max"),
			"Deepest definition level in the registry; base units are level 0.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *RegistryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.units
	ch <- c.depth
}

// Collect implements prometheus.Collector.
func (c *RegistryCollector) Collect(ch chan<- prometheus.Metric) {
	var base, derived, depth int
	for _, e := range c.reg.Entries() {
		if e.IsBase() {
			base++
		} else {
			derived++
		}
		depth = max(depth, e.Level)
	}
	ch <- prometheus.MustNewConstMetric(c.units, prometheus.GaugeValue, float64(base), "base")
	ch <- prometheus.MustNewConstMetric(c.units, prometheus.GaugeValue, float64(derived), "derived")
	ch <- prometheus.MustNewConstMetric(c.depth, prometheus.GaugeValue, float64(depth))
}
