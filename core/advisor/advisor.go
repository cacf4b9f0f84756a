package advisor

import (
	"context"

	"firedispatch/core/logger"
	"firedispatch/core/model"
)

// RecommendationService suggests an agent kind for a fire severity. The
// response text is free-form; the advisor matches it against the closed
// agent-kind vocabulary.
type RecommendationService interface {
	Recommend(ctx context.Context, severity model.Severity) (string, error)
}

// fallbackTable is the authoritative offline severity mapping. It mirrors
// the intended behavior of the recommendation service, so the advisor is
// fully functional without one.
var fallbackTable = map[model.Severity]model.AgentKind{
	model.SeverityLow:      model.KindFoot,
	model.SeverityMedium:   model.KindGroundVehicle,
	model.SeverityHigh:     model.KindAerial,
	model.SeverityCritical: model.KindAerial,
}

// KindFor looks up the recommended kind for a severity in a mapping built by
// BuildMapping. A nil mapping or a missing entry yields a ground vehicle.
func KindFor(mapping map[model.Severity]model.AgentKind, severity model.Severity) model.AgentKind {
	if kind, ok := mapping[severity]; ok {
		return kind
	}
	return model.KindGroundVehicle
}

// Advisor maps fire severities to agent kinds, preferring an external
// recommendation service and degrading to the deterministic table.
type Advisor struct {
	service RecommendationService
	log     logger.Logger
}

// New returns an advisor. A nil service means offline operation: every
// recommendation comes from the fallback table.
func New(service RecommendationService, log logger.Logger) *Advisor {
	return &Advisor{service: service, log: log}
}

// Recommend returns the agent kind for a severity. Service failure,
// unconfigured service and unrecognized responses all resolve to the
// fallback table.
func (a *Advisor) Recommend(ctx context.Context, severity model.Severity) model.AgentKind {
	fallback, ok := fallbackTable[severity]
	if !ok {
		fallback = model.KindGroundVehicle
	}
	if a.service == nil {
		return fallback
	}
	text, err := a.service.Recommend(ctx, severity)
	if err != nil {
		a.log.Debugf("recommendation service unavailable for %s: %v", severity, err)
		return fallback
	}
	kind, ok := model.ParseAgentKind(text)
	if !ok {
		a.log.Debugf("unrecognized recommendation %q for %s", text, severity)
		return fallback
	}
	return kind
}

// BuildMapping resolves a recommendation for every fire severity. Callers
// invoke it at most once per planning cycle, and only when fires exist, so
// the external service is never consulted needlessly.
func (a *Advisor) BuildMapping(ctx context.Context) map[model.Severity]model.AgentKind {
	mapping := make(map[model.Severity]model.AgentKind, len(model.FireSeverities))
	for _, severity := range model.FireSeverities {
		mapping[severity] = a.Recommend(ctx, severity)
	}
	return mapping
}
