package config

import "fmt"

// PlannerConfig tunes the planning cycle.
type PlannerConfig struct {
	// FireProbability is the per-site chance of an outbreak per cycle.
	FireProbability float64 `json:"fire_probability"`
	// Seed fixes the random source; zero means time-seeded.
	Seed int64 `json:"seed"`
	// RouteConcurrency bounds parallel directions-provider calls.
	RouteConcurrency int `json:"route_concurrency"`
	// DirectionsTimeoutSeconds bounds each directions-provider call.
	DirectionsTimeoutSeconds int `json:"directions_timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *PlannerConfig) SetDefaults() {
	if c.FireProbability == 0 {
		c.FireProbability = 0.3
	}
	if c.RouteConcurrency == 0 {
		c.RouteConcurrency = 4
	}
	if c.DirectionsTimeoutSeconds == 0 {
		c.DirectionsTimeoutSeconds = 10
	}
}

// Validate checks ranges.
func (c PlannerConfig) Validate() error {
	if c.FireProbability < 0 || c.FireProbability > 1 {
		return fmt.Errorf("fire_probability %f out of [0,1]", c.FireProbability)
	}
	if c.RouteConcurrency < 0 {
		return fmt.Errorf("route_concurrency must be non-negative")
	}
	return nil
}
