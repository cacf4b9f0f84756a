package summary

import (
	"gonum.org/v1/gonum/stat"

	"firedispatch/core/advisor"
	"firedispatch/core/model"
)

// Summary aggregates one planning cycle's routes.
type Summary struct {
	TotalDistanceMeters  float64 `json:"total_distance_meters"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	// Fire-response subset: agents whose assigned site is on fire.
	FireDistanceMeters  float64 `json:"fire_distance_meters"`
	FireDurationSeconds float64 `json:"fire_duration_seconds"`
	MeanDistanceMeters  float64 `json:"mean_distance_meters"`
	MeanDurationSeconds float64 `json:"mean_duration_seconds"`
	RoutedAgents        int     `json:"routed_agents"`
	FireAssignments     int     `json:"fire_assignments"`
	// OptimalMatchRate is the share of fire assignments whose agent kind
	// equals the recommended kind for the site's severity. Zero when no
	// agent is assigned to a fire.
	OptimalMatchRate float64 `json:"optimal_match_rate"`
}

// Summarize computes totals over agents holding a route, the fire-only
// subset and the recommendation match rate against mapping.
func Summarize(agents []*model.Agent, mapping map[model.Severity]model.AgentKind) Summary {
	var s Summary
	var distances, durations []float64
	matched := 0

	for _, agent := range agents {
		if agent.Route == nil {
			continue
		}
		s.RoutedAgents++
		s.TotalDistanceMeters += agent.Route.DistanceMeters
		s.TotalDurationSeconds += agent.Route.DurationSeconds
		distances = append(distances, agent.Route.DistanceMeters)
		durations = append(durations, agent.Route.DurationSeconds)

		if agent.Site == nil || !agent.Site.OnFire {
			continue
		}
		s.FireAssignments++
		s.FireDistanceMeters += agent.Route.DistanceMeters
		s.FireDurationSeconds += agent.Route.DurationSeconds
		if agent.Kind == advisor.KindFor(mapping, agent.Site.Severity) {
			matched++
		}
	}

	if len(distances) > 0 {
		s.MeanDistanceMeters = stat.Mean(distances, nil)
		s.MeanDurationSeconds = stat.Mean(durations, nil)
	}
	if s.FireAssignments > 0 {
		s.OptimalMatchRate = float64(matched) / float64(s.FireAssignments)
	}
	return s
}
