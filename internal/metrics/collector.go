// internal/metrics/collector.go
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// DefaultNamespace prefixes every metric name
const DefaultNamespace = "toyvec"

// Collector records container storage events as Prometheus metrics. It
// satisfies vec.Observer.
type Collector struct {
	growths       prometheus.Counter
	relocated     prometheus.Counter
	capacity      prometheus.Histogram
	cursorsOpened prometheus.Counter
	rejections    *prometheus.CounterVec
}

// NewCollector creates a collector and registers its metrics with reg
func NewCollector(namespace string, reg prometheus.Registerer) (*Collector, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	c := &Collector{
		growths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "growths_total",
			Help:      "Total number of backing store replacements",
		}),
		relocated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relocated_elements_total",
			Help:      "Total number of elements moved into a new backing store",
		}),
		capacity: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grown_capacity_slots",
			Help:      "Capacity of backing stores allocated by growth",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
		cursorsOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cursors_opened_total",
			Help:      "Total number of cursors handed out",
		}),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "borrow_rejections_total",
				Help:      "Total number of mutations rejected because a cursor was alive",
			},
			[]string{"op"},
		),
	}

	for _, m := range []prometheus.Collector{c.growths, c.relocated, c.capacity, c.cursorsOpened, c.rejections} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return c, nil
}

// Grew records a backing store replacement
func (c *Collector) Grew(oldCap, newCap, moved int) {
	c.growths.Inc()
	c.relocated.Add(float64(moved))
	c.capacity.Observe(float64(newCap))
}

// CursorOpened records a new cursor
func (c *Collector) CursorOpened() {
	c.cursorsOpened.Inc()
}

// Rejected records a mutation refused by the aliasing check
func (c *Collector) Rejected(op string) {
	c.rejections.WithLabelValues(op).Inc()
}

// WriteText renders everything gathered from g in the Prometheus text format
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
