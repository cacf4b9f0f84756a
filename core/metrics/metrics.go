package metrics

import (
	"time"

	"firedispatch/core/summary"
)

// CycleStats is the per-cycle record handed to observability sinks.
type CycleStats struct {
	CycleID            string
	Time               time.Time
	Sites              int
	Agents             int
	Fires              int
	Assigned           int
	PreciseRoutes      int
	StraightLineRoutes int
	Summary            summary.Summary
}

// PlanSink records planning cycle results for observability purposes.
type PlanSink interface {
	RecordCycle(stats CycleStats) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordCycle(CycleStats) error { return nil }

// Config selects the enabled sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusPort    string `json:"prometheus_port"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}
