package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "firedispatch/core/metrics"
)

// PromSink records planning cycle results in Prometheus metrics.
type PromSink struct {
	cycles    prometheus.Counter
	fires     prometheus.Gauge
	assigned  prometheus.Gauge
	routes    *prometheus.CounterVec
	distance  prometheus.Histogram
	matchRate prometheus.Gauge
}

// NewPromSink registers planning metrics on the default Prometheus
// registerer. The Prometheus server is started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.PlanSink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.PlanSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	cycles := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plan_cycles_total",
		Help: "Total number of completed planning cycles",
	})
	fires := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_fires",
		Help: "Number of sites on fire in the last cycle",
	})
	assigned := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_assigned_agents",
		Help: "Number of agents assigned in the last cycle",
	})
	routes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_routes_total",
		Help: "Routes computed, labeled by source kind",
	}, []string{"kind"})
	distance := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "plan_cycle_distance_meters",
		Help:    "Total route distance per cycle in meters",
		Buckets: prometheus.ExponentialBuckets(100, 4, 10),
	})
	matchRate := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_optimal_match_rate",
		Help: "Share of fire assignments matching the recommended agent kind",
	})

	if err := reg.Register(cycles); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			cycles = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fires); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fires = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(assigned); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			assigned = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(routes); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			routes = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(distance); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			distance = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(matchRate); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			matchRate = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{
		cycles:    cycles,
		fires:     fires,
		assigned:  assigned,
		routes:    routes,
		distance:  distance,
		matchRate: matchRate,
	}, nil
}

// RecordCycle implements coremetrics.PlanSink.
func (s *PromSink) RecordCycle(stats coremetrics.CycleStats) error {
	s.cycles.Inc()
	s.fires.Set(float64(stats.Fires))
	s.assigned.Set(float64(stats.Assigned))
	s.routes.WithLabelValues("precise").Add(float64(stats.PreciseRoutes))
	s.routes.WithLabelValues("straight-line").Add(float64(stats.StraightLineRoutes))
	s.distance.Observe(stats.Summary.TotalDistanceMeters)
	s.matchRate.Set(stats.Summary.OptimalMatchRate)
	return nil
}
