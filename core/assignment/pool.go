package assignment

import (
	"sync"

	"firedispatch/core/model"
)

// AgentPool tracks which agents are still free during a planning cycle.
// Claim is the single mutation point: checking availability and claiming
// happen under one lock, so an agent can never be handed out twice.
type AgentPool struct {
	mu      sync.Mutex
	agents  []*model.Agent
	claimed map[string]bool
}

// NewPool wraps agents in a pool. Insertion order is preserved and defines
// the claim search order.
func NewPool(agents []*model.Agent) *AgentPool {
	return &AgentPool{
		agents:  agents,
		claimed: make(map[string]bool, len(agents)),
	}
}

// Claim returns the first free agent of the exact kind, in pool order. When
// none matches and fallbackAny is set, the first free agent of any kind is
// claimed instead. It returns nil when no eligible agent remains.
func (p *AgentPool) Claim(kind model.AgentKind, fallbackAny bool) *model.Agent {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, a := range p.agents {
		if !p.claimed[a.ID] && a.Kind == kind {
			p.claimed[a.ID] = true
			return a
		}
	}
	if !fallbackAny {
		return nil
	}
	return p.claimNextLocked()
}

// ClaimNext claims the first free agent in pool order regardless of kind.
func (p *AgentPool) ClaimNext() *model.Agent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.claimNextLocked()
}

func (p *AgentPool) claimNextLocked() *model.Agent {
	for _, a := range p.agents {
		if !p.claimed[a.ID] {
			p.claimed[a.ID] = true
			return a
		}
	}
	return nil
}

// Release returns a claimed agent to the pool.
func (p *AgentPool) Release(a *model.Agent) {
	if a == nil {
		return
	}
	p.mu.Lock()
	delete(p.claimed, a.ID)
	p.mu.Unlock()
}

// FreeCount reports how many agents remain unclaimed.
func (p *AgentPool) FreeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, a := range p.agents {
		if !p.claimed[a.ID] {
			n++
		}
	}
	return n
}
