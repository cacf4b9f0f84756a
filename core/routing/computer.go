package routing

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"firedispatch/core/geo"
	"firedispatch/core/logger"
	"firedispatch/core/model"
)

// DirectionsProvider produces a routed path between two points for a travel
// mode. Implementations must not block past the caller's context deadline
// and must return an error both when unreachable and when no route exists.
type DirectionsProvider interface {
	Route(ctx context.Context, start, end geo.Point, mode string) (*model.Route, error)
}

// Fixed speeds in meters per second used for straight-line estimates.
const (
	aerialSpeed          = 15.0
	groundFallbackSpeed  = 12.0
	footFallbackSpeed    = 2.5
	defaultFallbackSpeed = 1.0
)

// DefaultConcurrency caps parallel directions-provider calls to stay within
// external rate limits.
const DefaultConcurrency = 4

const defaultProviderTimeout = 10 * time.Second

// Computer fills in routes for assigned agents. Aerial units always fly a
// straight line; other kinds try the directions provider and fall back to a
// straight-line estimate when it is unavailable.
type Computer struct {
	provider    DirectionsProvider
	timeout     time.Duration
	concurrency int
	log         logger.Logger
}

// NewComputer returns a route computer. provider may be nil, in which case
// every non-aerial route is a straight-line estimate. Non-positive timeout
// and concurrency values take defaults.
func NewComputer(provider DirectionsProvider, timeout time.Duration, concurrency int, log logger.Logger) *Computer {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Computer{provider: provider, timeout: timeout, concurrency: concurrency, log: log}
}

// ComputeAll replaces the route of every assigned agent and clears routes on
// unassigned ones. Provider calls run on a bounded worker pool; the
// per-agent speed pass runs only after every route attempt has joined. If
// ctx is canceled before that barrier, partial routes are discarded and the
// context error is returned.
func (c *Computer) ComputeAll(ctx context.Context, agents []*model.Agent) error {
	g, gctx := errgroup.WithContext(ctx)
	limit := c.concurrency
	if len(agents) < limit {
		limit = len(agents)
	}
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for _, agent := range agents {
		agent.Route = nil
		if agent.Site == nil {
			continue
		}
		a := agent
		g.Go(func() error {
			a.Route = c.routeFor(gctx, a)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		for _, agent := range agents {
			agent.Route = nil
		}
		return err
	}
	UpdateDurations(agents)
	return nil
}

func (c *Computer) routeFor(ctx context.Context, agent *model.Agent) *model.Route {
	start, end := agent.Coords, agent.Site.Coords
	if agent.Kind == model.KindAerial {
		return straightLine(start, end, aerialSpeed)
	}
	if c.provider != nil {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		route, err := c.provider.Route(callCtx, start, end, agent.TravelMode)
		if err == nil && route != nil {
			route.Kind = model.RoutePrecise
			return route
		}
		c.log.Debugf("directions unavailable for %s, using straight line: %v", agent.ID, err)
	}
	return straightLine(start, end, fallbackSpeed(agent.Kind))
}

// UpdateDurations re-derives every route duration from the owning agent's
// configured speed, regardless of where the route came from. Provider
// durations are deliberately discarded so all agents share one speed model.
// Applying the pass twice yields the same durations as once.
func UpdateDurations(agents []*model.Agent) {
	for _, agent := range agents {
		if agent.Route == nil || agent.Speed <= 0 {
			continue
		}
		agent.Route.DurationSeconds = agent.Route.DistanceMeters / agent.Speed
	}
}

func straightLine(start, end geo.Point, speed float64) *model.Route {
	distance := geo.Distance(start, end)
	return &model.Route{
		Geometry:        []geo.Point{start, end},
		DistanceMeters:  distance,
		DurationSeconds: distance / speed,
		Kind:            model.RouteStraightLine,
	}
}

func fallbackSpeed(kind model.AgentKind) float64 {
	switch kind {
	case model.KindGroundVehicle:
		return groundFallbackSpeed
	case model.KindFoot:
		return footFallbackSpeed
	}
	return defaultFallbackSpeed
}
