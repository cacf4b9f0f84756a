package model

import (
	"strings"

	"firedispatch/core/geo"
)

// AgentKind identifies the travel class of a response unit.
type AgentKind string

const (
	KindGroundVehicle AgentKind = "ground-vehicle"
	KindAerial        AgentKind = "aerial"
	KindFoot          AgentKind = "foot"
)

// Travel-mode hints passed to the directions provider.
const (
	TravelModeDriving = "driving"
	TravelModeWalking = "walking"
)

// ParseAgentKind matches text against the closed agent-kind vocabulary,
// case-insensitively. It reports false for anything outside the vocabulary.
func ParseAgentKind(s string) (AgentKind, bool) {
	switch AgentKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindGroundVehicle:
		return KindGroundVehicle, true
	case KindAerial:
		return KindAerial, true
	case KindFoot:
		return KindFoot, true
	}
	return "", false
}

// RouteKind distinguishes externally sourced routes from estimates.
type RouteKind string

const (
	RoutePrecise      RouteKind = "precise"
	RouteStraightLine RouteKind = "straight-line"
)

// Route is the computed path for one agent-to-site leg. A Route is owned by
// the agent it was computed for and is replaced wholesale on recompute.
type Route struct {
	Geometry        []geo.Point `json:"geometry"`
	DistanceMeters  float64     `json:"distance_meters"`
	DurationSeconds float64     `json:"duration_seconds"`
	Kind            RouteKind   `json:"kind"`
}

// Agent is a response unit of a fixed kind.
type Agent struct {
	ID     string    `json:"id"`
	Kind   AgentKind `json:"kind"`
	Coords geo.Point `json:"coords"`
	// Speed is the nominal travel speed in meters per second.
	Speed float64 `json:"speed"`
	// TravelMode hints the directions provider profile. Empty for aerial
	// units, which never use the provider.
	TravelMode string `json:"travel_mode,omitempty"`
	Site       *Site  `json:"site,omitempty"`
	Route      *Route `json:"route,omitempty"`
}

// Assigned reports whether the agent currently holds a site.
func (a *Agent) Assigned() bool { return a.Site != nil }

// ClearAssignment drops the site reference and any computed route.
func (a *Agent) ClearAssignment() {
	a.Site = nil
	a.Route = nil
}
