// File: observe/prom/prom.go
// Author: momentics <momentics@gmail.com>
//
// Package prom exports resumable computation lifecycle metrics to Prometheus.
package prom

import (
	"github.com/momentics/hioload-resume/api"
	"github.com/momentics/hioload-resume/resumable"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements resumable.Observer and prometheus.Collector.
type Collector struct {
	started     prometheus.Counter
	resumed     prometheus.Counter
	completed   prometheus.Counter
	closed      prometheus.Counter
	active      prometheus.Gauge
	suspended   *prometheus.CounterVec
	suspensions prometheus.Histogram
}

var (
	_ resumable.Observer   = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)

// New builds a collector; register it with a prometheus.Registerer.
func New(namespace string) *Collector {
	opts := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{Namespace: namespace, Subsystem: "resumable", Name: name, Help: help}
	}
	return &Collector{
		started:   prometheus.NewCounter(opts("started_total", "Computations started.")),
		resumed:   prometheus.NewCounter(opts("resumed_total", "Resume calls.")),
		completed: prometheus.NewCounter(opts("completed_total", "Computations that returned or panicked.")),
		closed:    prometheus.NewCounter(opts("closed_total", "Computations abandoned before completion.")),
		suspended: prometheus.NewCounterVec(opts("suspended_total", "Suspensions by awaited interest."), []string{"interest"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "resumable",
			Name:      "active",
			Help:      "Computations started and not yet completed or closed.",
		}),
		suspensions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "resumable",
			Name:      "suspensions_per_computation",
			Help:      "Suspensions a computation went through before completing.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
}

func (c *Collector) Started() {
	c.started.Inc()
	c.active.Inc()
}

func (c *Collector) Suspended(wd api.WaitDescriptor) {
	c.suspended.WithLabelValues(wd.Interest.String()).Inc()
}

func (c *Collector) Resumed(api.WaitDescriptor) { c.resumed.Inc() }

func (c *Collector) Completed(suspensions int) {
	c.completed.Inc()
	c.active.Dec()
	c.suspensions.Observe(float64(suspensions))
}

func (c *Collector) Closed(api.WaitDescriptor) {
	c.closed.Inc()
	c.active.Dec()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.started.Describe(ch)
	c.resumed.Describe(ch)
	c.completed.Describe(ch)
	c.closed.Describe(ch)
	c.active.Describe(ch)
	c.suspended.Describe(ch)
	c.suspensions.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.started.Collect(ch)
	c.resumed.Collect(ch)
	c.completed.Collect(ch)
	c.closed.Collect(ch)
	c.active.Collect(ch)
	c.suspended.Collect(ch)
	c.suspensions.Collect(ch)
}
