// Package metrics provides Prometheus metrics for drag lifecycle events
package metrics

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/lixenwraith/dropchain/event"
)

// Outcome label values for DragsTotal
const (
	OutcomeDrop     = "drop"
	OutcomeCancel   = "cancel"
	OutcomeRejected = "rejected"
)

// Collector turns lifecycle events into Prometheus series
// Implements dnd.Observer; Observe must be called from the coordinator's goroutine
type Collector struct {
	started  prometheus.Counter
	finished *prometheus.CounterVec
	enters   prometheus.Counter
	active   prometheus.Gauge
	frames   prometheus.Histogram

	startFrame map[uuid.UUID]int64
}

// NewCollector creates the collector and registers its series on reg
// Nil reg skips registration (tests, embedded use)
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		started: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dropchain_drag_started_total",
			Help: "Total number of drag sessions started.",
		}),
		// No target or label dimensions: keys are application supplied and unbounded
		finished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dropchain_drags_total",
			Help: "Total number of finished drag sessions, by outcome (drop/cancel/rejected).",
		}, []string{"outcome"}),
		enters: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dropchain_target_enter_total",
			Help: "Total number of drop target enter transitions.",
		}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dropchain_active_drags",
			Help: "Drag sessions currently in flight (0 or 1).",
		}),
		frames: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dropchain_drag_pointer_events",
			Help:    "Pointer events delivered during one drag session.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		startFrame: make(map[uuid.UUID]int64),
	}

	if reg != nil {
		for _, col := range []prometheus.Collector{c.started, c.finished, c.enters, c.active, c.frames} {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

// Observe records one lifecycle event
func (c *Collector) Observe(ev event.Event) {
	switch ev.Type {
	case event.EventDragStart:
		c.started.Inc()
		c.active.Set(1)
		c.startFrame[ev.Session] = ev.Frame
	case event.EventDragEnter:
		c.enters.Inc()
	case event.EventDrop:
		c.finish(ev, OutcomeDrop)
	case event.EventDragCancel:
		c.finish(ev, OutcomeCancel)
	case event.EventDropRejected:
		c.finish(ev, OutcomeRejected)
	}
}

func (c *Collector) finish(ev event.Event, outcome string) {
	c.finished.WithLabelValues(outcome).Inc()
	c.active.Set(0)
	if start, ok := c.startFrame[ev.Session]; ok {
		c.frames.Observe(float64(ev.Frame - start))
		delete(c.startFrame, ev.Session)
	}
}

// Totals is a point-in-time read of the counters, for status displays
type Totals struct {
	Started  int
	Drops    int
	Cancels  int
	Rejected int
}

// Totals reads the current counter values
func (c *Collector) Totals() Totals {
	return Totals{
		Started:  counterValue(c.started),
		Drops:    counterValue(c.finished.WithLabelValues(OutcomeDrop)),
		Cancels:  counterValue(c.finished.WithLabelValues(OutcomeCancel)),
		Rejected: counterValue(c.finished.WithLabelValues(OutcomeRejected)),
	}
}

func counterValue(m prometheus.Metric) int {
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		return 0
	}
	return int(out.GetCounter().GetValue())
}
