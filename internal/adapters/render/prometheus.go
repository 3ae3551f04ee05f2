package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/AntonioJCosta/valuestats/internal/core/domain/frequency"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "valuestats"

// Collector exposes a frequency table as Prometheus gauges.
// It reads the table on every Collect, so it must not run concurrently with AddValue.
type Collector struct {
	table *frequency.Table

	samplesDesc     *prometheus.Desc
	distinctDesc    *prometheus.Desc
	occurrencesDesc *prometheus.Desc
}

// NewCollector creates a collector over table.
func NewCollector(table *frequency.Table, namespace string) *Collector {
	return &Collector{
		table: table,
		samplesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "samples"),
			"Number of samples recorded.",
			nil, nil,
		),
		distinctDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "distinct_values"),
			"Number of distinct values observed.",
			nil, nil,
		),
		occurrencesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "value", "occurrences"),
			"Number of times each value was observed.",
			[]string{"value"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.samplesDesc
	ch <- c.distinctDesc
	ch <- c.occurrencesDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.samplesDesc, prometheus.GaugeValue, float64(c.table.TotalSamples()))
	ch <- prometheus.MustNewConstMetric(c.distinctDesc, prometheus.GaugeValue, float64(c.table.ValuesCount()))
	for _, v := range c.table.SortedValues() {
		ch <- prometheus.MustNewConstMetric(c.occurrencesDesc, prometheus.GaugeValue, float64(c.table.CountForValue(v)), strconv.Itoa(v))
	}
}

// PrometheusRenderer writes the table in the Prometheus text exposition format.
// Series are always sorted by label value, so order has no effect.
type PrometheusRenderer struct {
	Namespace string
}

// Render implements the ports.Renderer interface.
func (r PrometheusRenderer) Render(w io.Writer, t *frequency.Table, _ frequency.Order) error {
	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(NewCollector(t, r.Namespace)); err != nil {
		return fmt.Errorf("registering collector: %w", err)
	}

	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
