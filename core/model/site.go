package model

import (
	"fmt"

	"firedispatch/core/geo"
)

// Category classifies a site's land use.
type Category string

const (
	CategoryResidential Category = "residential"
	CategoryCommercial  Category = "commercial"
	CategoryMixed       Category = "mixed"
	CategoryUnknown     Category = "unknown"
)

// Severity is the ordered fire urgency classification.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// FireSeverities lists the severities a burning site can carry, in ascending
// urgency order.
var FireSeverities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Rank returns the position of the severity in the none < low < medium <
// high < critical ordering. Unknown values rank below none.
func (s Severity) Rank() int {
	switch s {
	case SeverityNone:
		return 0
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return -1
}

// Site is an incident location that may require a response.
type Site struct {
	ID        string    `json:"id"`
	Coords    geo.Point `json:"coords"`
	Category  Category  `json:"category"`
	OnFire    bool      `json:"on_fire"`
	Severity  Severity  `json:"severity"`
	Intensity float64   `json:"intensity"`
	// Priority is recomputed every planning cycle and never persisted
	// across cycles.
	Priority float64 `json:"priority"`
}

// ClearFire resets the fire state so that a site not on fire always carries
// severity none and intensity zero.
func (s *Site) ClearFire() {
	s.OnFire = false
	s.Severity = SeverityNone
	s.Intensity = 0
}

// Validate checks the fire-state invariant.
func (s Site) Validate() error {
	if !s.OnFire && (s.Severity != SeverityNone || s.Intensity != 0) {
		return fmt.Errorf("site %s: fire fields set without fire status", s.ID)
	}
	if s.Intensity < 0 || s.Intensity > 1 {
		return fmt.Errorf("site %s: intensity %f out of range", s.ID, s.Intensity)
	}
	return nil
}
