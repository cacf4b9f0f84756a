package fleet

import (
	"fmt"

	"firedispatch/core/geo"
	"firedispatch/core/model"
)

// Config sizes the agent pool and sets nominal speeds in meters per second.
type Config struct {
	GroundVehicles int     `json:"ground_vehicles"`
	AerialUnits    int     `json:"aerial_units"`
	FootUnits      int     `json:"foot_units"`
	GroundSpeed    float64 `json:"ground_speed"`
	AerialSpeed    float64 `json:"aerial_speed"`
	FootSpeed      float64 `json:"foot_speed"`
}

// SetDefaults applies the standard fleet: five ground vehicles, three aerial
// units and ten foot units at typical travel speeds.
func (c *Config) SetDefaults() {
	if c.GroundVehicles == 0 && c.AerialUnits == 0 && c.FootUnits == 0 {
		c.GroundVehicles = 5
		c.AerialUnits = 3
		c.FootUnits = 10
	}
	if c.GroundSpeed <= 0 {
		c.GroundSpeed = 12
	}
	if c.AerialSpeed <= 0 {
		c.AerialSpeed = 15
	}
	if c.FootSpeed <= 0 {
		c.FootSpeed = 2.5
	}
}

// Validate rejects negative pool sizes.
func (c Config) Validate() error {
	if c.GroundVehicles < 0 || c.AerialUnits < 0 || c.FootUnits < 0 {
		return fmt.Errorf("fleet sizes must be non-negative")
	}
	return nil
}

// Build constructs the agent pool at the center point. Pool order is ground
// vehicles, then aerial units, then foot units.
func Build(cfg Config, center geo.Point) []*model.Agent {
	agents := make([]*model.Agent, 0, cfg.GroundVehicles+cfg.AerialUnits+cfg.FootUnits)
	for i := 0; i < cfg.GroundVehicles; i++ {
		agents = append(agents, newAgent(model.KindGroundVehicle, "truck", i, center, cfg.GroundSpeed, model.TravelModeDriving))
	}
	for i := 0; i < cfg.AerialUnits; i++ {
		agents = append(agents, newAgent(model.KindAerial, "drone", i, center, cfg.AerialSpeed, ""))
	}
	for i := 0; i < cfg.FootUnits; i++ {
		agents = append(agents, newAgent(model.KindFoot, "walker", i, center, cfg.FootSpeed, model.TravelModeWalking))
	}
	return agents
}

func newAgent(kind model.AgentKind, prefix string, i int, center geo.Point, speed float64, mode string) *model.Agent {
	return &model.Agent{
		ID:         fmt.Sprintf("%s-%d", prefix, i),
		Kind:       kind,
		Coords:     center,
		Speed:      speed,
		TravelMode: mode,
	}
}
