package metrics

import (
	"context"
	"net/http"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "firedispatch/core/metrics"
	"firedispatch/infra/logger"
)

// InfluxSink writes planning cycle records to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a sink for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	client := influxdb2.NewClientWithOptions(cfg.InfluxURL, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a
// NopSink when the health check fails, so a missing database never blocks
// planning.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.PlanSink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordCycle writes the cycle as a single measurement point.
func (s *InfluxSink) RecordCycle(stats coremetrics.CycleStats) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("plan_cycle").
		AddTag("cycle_id", stats.CycleID).
		AddTag("component", "planner").
		AddField("sites", stats.Sites).
		AddField("agents", stats.Agents).
		AddField("fires", stats.Fires).
		AddField("assigned", stats.Assigned).
		AddField("precise_routes", stats.PreciseRoutes).
		AddField("straight_line_routes", stats.StraightLineRoutes).
		AddField("total_distance_m", stats.Summary.TotalDistanceMeters).
		AddField("total_duration_s", stats.Summary.TotalDurationSeconds).
		AddField("fire_distance_m", stats.Summary.FireDistanceMeters).
		AddField("fire_duration_s", stats.Summary.FireDurationSeconds).
		AddField("optimal_match_rate", stats.Summary.OptimalMatchRate).
		AddField("routed_agents", stats.Summary.RoutedAgents).
		SetTime(stats.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}
