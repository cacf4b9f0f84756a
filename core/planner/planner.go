package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"firedispatch/core/advisor"
	"firedispatch/core/assignment"
	"firedispatch/core/events"
	"firedispatch/core/fire"
	"firedispatch/core/logger"
	"firedispatch/core/metrics"
	"firedispatch/core/model"
	"firedispatch/core/routing"
	"firedispatch/core/scoring"
	"firedispatch/core/summary"
	"firedispatch/internal/eventbus"
)

// Result captures one completed planning cycle.
type Result struct {
	CycleID  string                             `json:"cycle_id"`
	Time     time.Time                          `json:"time"`
	Fires    int                                `json:"fires"`
	Assigned int                                `json:"assigned"`
	Mapping  map[model.Severity]model.AgentKind `json:"mapping,omitempty"`
	Agents   []*model.Agent                     `json:"agents"`
	Summary  summary.Summary                    `json:"summary"`
}

// Planner runs planning cycles: ignite fires, rank sites, match agents,
// compute routes, summarize. Each cycle starts from a clean slate, so
// re-running it carries no state over.
type Planner struct {
	scorer          scoring.Scorer
	fires           *fire.Generator
	advisor         *advisor.Advisor
	engine          *assignment.Engine
	routes          *routing.Computer
	fireProbability float64
	log             logger.Logger
	sink            metrics.PlanSink
	bus             eventbus.EventBus
}

// New creates a planner. sink and bus may be nil; the other collaborators
// are required.
func New(scorer scoring.Scorer, fires *fire.Generator, adv *advisor.Advisor, engine *assignment.Engine, routes *routing.Computer, fireProbability float64, log logger.Logger, sink metrics.PlanSink, bus eventbus.EventBus) (*Planner, error) {
	if fires == nil || adv == nil || engine == nil || routes == nil || log == nil {
		return nil, fmt.Errorf("planner: nil collaborator provided to New")
	}
	return &Planner{
		scorer:          scorer,
		fires:           fires,
		advisor:         adv,
		engine:          engine,
		routes:          routes,
		fireProbability: fireProbability,
		log:             log,
		sink:            sink,
		bus:             bus,
	}, nil
}

// Plan runs a single cycle over sites and agents. Prior assignments and
// routes are cleared first, so calling Plan again reassigns from scratch.
// Cancellation before the route barrier discards partial routes and returns
// the context error.
func (p *Planner) Plan(ctx context.Context, sites []*model.Site, agents []*model.Agent) (*Result, error) {
	cycleID := uuid.NewString()
	for _, agent := range agents {
		agent.ClearAssignment()
	}
	p.publish(events.CycleStarted{CycleID: cycleID, Sites: len(sites), Agents: len(agents)})

	fires := p.fires.Ignite(sites, p.fireProbability)
	p.log.Infof("cycle %s: %d of %d sites on fire", cycleID, fires, len(sites))
	p.publish(events.FiresIgnited{CycleID: cycleID, Count: fires})

	ranked := p.scorer.Rank(sites)

	// The external recommendation service is only worth consulting when
	// something is burning.
	var mapping map[model.Severity]model.AgentKind
	if fires > 0 {
		mapping = p.advisor.BuildMapping(ctx)
	}

	pool := assignment.NewPool(agents)
	assigned := p.engine.Assign(ranked, mapping, pool)
	p.log.Infof("cycle %s: assigned %d agents, %d still free", cycleID, assigned, pool.FreeCount())
	for _, agent := range agents {
		if agent.Site == nil {
			continue
		}
		p.publish(events.AgentAssigned{
			CycleID:  cycleID,
			AgentID:  agent.ID,
			SiteID:   agent.Site.ID,
			Severity: agent.Site.Severity,
			Priority: agent.Site.Priority,
		})
	}

	if err := p.routes.ComputeAll(ctx, agents); err != nil {
		return nil, fmt.Errorf("route computation: %w", err)
	}
	precise, straight := countRouteKinds(agents)
	p.publish(events.RoutesComputed{CycleID: cycleID, Precise: precise, StraightLine: straight})

	sum := summary.Summarize(agents, mapping)
	p.publish(events.CycleCompleted{CycleID: cycleID, Summary: sum})

	res := &Result{
		CycleID:  cycleID,
		Time:     time.Now(),
		Fires:    fires,
		Assigned: assigned,
		Mapping:  mapping,
		Agents:   agents,
		Summary:  sum,
	}
	if p.sink != nil {
		stats := metrics.CycleStats{
			CycleID:            cycleID,
			Time:               res.Time,
			Sites:              len(sites),
			Agents:             len(agents),
			Fires:              fires,
			Assigned:           assigned,
			PreciseRoutes:      precise,
			StraightLineRoutes: straight,
			Summary:            sum,
		}
		if err := p.sink.RecordCycle(stats); err != nil {
			p.log.Errorf("cycle metrics error: %v", err)
		}
	}
	return res, nil
}

func (p *Planner) publish(e eventbus.Event) {
	if p.bus != nil {
		p.bus.Publish(e)
	}
}

func countRouteKinds(agents []*model.Agent) (precise, straight int) {
	for _, agent := range agents {
		if agent.Route == nil {
			continue
		}
		switch agent.Route.Kind {
		case model.RoutePrecise:
			precise++
		case model.RouteStraightLine:
			straight++
		}
	}
	return precise, straight
}
