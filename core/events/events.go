// Package events defines the planning events published on the event bus.
package events

import (
	"firedispatch/core/model"
	"firedispatch/core/summary"
)

// CycleStarted marks the beginning of a planning cycle.
type CycleStarted struct {
	CycleID string
	Sites   int
	Agents  int
}

// FiresIgnited reports how many sites caught fire this cycle.
type FiresIgnited struct {
	CycleID string
	Count   int
}

// AgentAssigned is published once per agent that received a site.
type AgentAssigned struct {
	CycleID  string
	AgentID  string
	SiteID   string
	Severity model.Severity
	Priority float64
}

// RoutesComputed reports route counts after the routing barrier.
type RoutesComputed struct {
	CycleID      string
	Precise      int
	StraightLine int
}

// CycleCompleted carries the final summary of the cycle.
type CycleCompleted struct {
	CycleID string
	Summary summary.Summary
}
