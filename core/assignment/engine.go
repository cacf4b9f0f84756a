package assignment

import (
	"firedispatch/core/advisor"
	"firedispatch/core/logger"
	"firedispatch/core/model"
)

// Engine pairs ranked sites with free agents using a two-phase greedy match:
// fire sites first in descending priority, then the remaining sites in rank
// order against whatever agents are left.
type Engine struct {
	log logger.Logger
}

// NewEngine returns an assignment engine.
func NewEngine(log logger.Logger) *Engine {
	return &Engine{log: log}
}

// Assign binds sites from ranked (descending priority) to agents in pool.
// The mapping built by the advisor selects the preferred kind per fire
// severity; it may be nil, in which case every fire prefers a ground
// vehicle. The result is a partial injective agent-to-site mapping: sites
// beyond the agent count stay unassigned and surplus agents stay free, both
// normal terminal states. Returns the number of assignments made.
func (e *Engine) Assign(ranked []*model.Site, mapping map[model.Severity]model.AgentKind, pool *AgentPool) int {
	assigned := make(map[string]bool, len(ranked))
	count := 0

	// Fire phase: highest-priority fires pick their recommended kind
	// first, then any free agent.
	for _, site := range ranked {
		if !site.OnFire {
			continue
		}
		kind := advisor.KindFor(mapping, site.Severity)
		agent := pool.Claim(kind, true)
		if agent == nil {
			continue
		}
		e.claim(agent, site)
		assigned[site.ID] = true
		count++
	}

	// Remainder phase: leftover free agents take the remaining sites in
	// rank order until either side runs out.
	for _, site := range ranked {
		if assigned[site.ID] {
			continue
		}
		agent := pool.ClaimNext()
		if agent == nil {
			break
		}
		e.claim(agent, site)
		assigned[site.ID] = true
		count++
	}
	return count
}

func (e *Engine) claim(agent *model.Agent, site *model.Site) {
	agent.Site = site
	agent.Route = nil
	e.log.Debugf("assigned %s (priority %.2f) to %s", site.ID, site.Priority, agent.ID)
}
