package assignment

import (
	"testing"

	"firedispatch/core/model"
	"firedispatch/infra/logger"
)

func fireSite(id string, severity model.Severity, priority float64) *model.Site {
	return &model.Site{ID: id, OnFire: true, Severity: severity, Intensity: 0.8, Priority: priority}
}

func coldSite(id string, priority float64) *model.Site {
	return &model.Site{ID: id, Severity: model.SeverityNone, Priority: priority}
}

func defaultMapping() map[model.Severity]model.AgentKind {
	return map[model.Severity]model.AgentKind{
		model.SeverityLow:      model.KindFoot,
		model.SeverityMedium:   model.KindGroundVehicle,
		model.SeverityHigh:     model.KindAerial,
		model.SeverityCritical: model.KindAerial,
	}
}

func TestHighestPriorityFireWinsScarceAgent(t *testing.T) {
	e := NewEngine(logger.NopLogger{})
	agents := []*model.Agent{{ID: "truck-0", Kind: model.KindGroundVehicle}}
	high := fireSite("high", model.SeverityMedium, 50)
	low := fireSite("low", model.SeverityMedium, 30)

	n := e.Assign([]*model.Site{high, low}, defaultMapping(), NewPool(agents))
	if n != 1 {
		t.Fatalf("expected 1 assignment, got %d", n)
	}
	if agents[0].Site != high {
		t.Fatalf("expected score-50 site to win, got %v", agents[0].Site)
	}
}

func TestRecommendedKindPreferred(t *testing.T) {
	e := NewEngine(logger.NopLogger{})
	agents := []*model.Agent{
		{ID: "truck-0", Kind: model.KindGroundVehicle},
		{ID: "drone-0", Kind: model.KindAerial},
	}
	critical := fireSite("critical", model.SeverityCritical, 900)

	e.Assign([]*model.Site{critical}, defaultMapping(), NewPool(agents))
	if agents[1].Site != critical {
		t.Fatal("critical fire should go to the aerial unit, not the first agent in pool order")
	}
	if agents[0].Site != nil {
		t.Fatal("ground vehicle should stay free")
	}
}

func TestFallbackToAnyKindWhenPreferredExhausted(t *testing.T) {
	e := NewEngine(logger.NopLogger{})
	agents := []*model.Agent{{ID: "walker-0", Kind: model.KindFoot}}
	critical := fireSite("critical", model.SeverityCritical, 900)

	e.Assign([]*model.Site{critical}, defaultMapping(), NewPool(agents))
	if agents[0].Site != critical {
		t.Fatal("fire should claim any free agent when the recommended kind is unavailable")
	}
}

func TestMappingAbsentDefaultsToGroundVehicle(t *testing.T) {
	e := NewEngine(logger.NopLogger{})
	agents := []*model.Agent{
		{ID: "drone-0", Kind: model.KindAerial},
		{ID: "truck-0", Kind: model.KindGroundVehicle},
	}
	burning := fireSite("burning", model.SeverityCritical, 900)

	e.Assign([]*model.Site{burning}, nil, NewPool(agents))
	if agents[1].Site != burning {
		t.Fatal("without a mapping the fire should prefer a ground vehicle")
	}
}

func TestFirePhaseRunsBeforeRemainder(t *testing.T) {
	e := NewEngine(logger.NopLogger{})
	agents := []*model.Agent{{ID: "truck-0", Kind: model.KindGroundVehicle}}
	// The cold site outranks the fire, but the fire phase still claims the
	// only agent first.
	cold := coldSite("cold", 100)
	burning := fireSite("burning", model.SeverityLow, 1)

	e.Assign([]*model.Site{cold, burning}, defaultMapping(), NewPool(agents))
	if agents[0].Site != burning {
		t.Fatalf("fire site should be served before any non-fire site, got %v", agents[0].Site)
	}
}

func TestRemainderPhaseFollowsRankOrder(t *testing.T) {
	e := NewEngine(logger.NopLogger{})
	agents := []*model.Agent{
		{ID: "truck-0", Kind: model.KindGroundVehicle},
		{ID: "drone-0", Kind: model.KindAerial},
	}
	first := coldSite("first", 10)
	second := coldSite("second", 5)
	third := coldSite("third", 1)

	n := e.Assign([]*model.Site{first, second, third}, nil, NewPool(agents))
	if n != 2 {
		t.Fatalf("expected 2 assignments, got %d", n)
	}
	if agents[0].Site != first || agents[1].Site != second {
		t.Fatalf("remainder phase should pair pool order with rank order: %v, %v",
			agents[0].Site, agents[1].Site)
	}
}

func TestInjectiveAssignment(t *testing.T) {
	e := NewEngine(logger.NopLogger{})
	agents := []*model.Agent{
		{ID: "truck-0", Kind: model.KindGroundVehicle},
		{ID: "truck-1", Kind: model.KindGroundVehicle},
		{ID: "drone-0", Kind: model.KindAerial},
		{ID: "walker-0", Kind: model.KindFoot},
	}
	sites := []*model.Site{
		fireSite("f1", model.SeverityCritical, 900),
		fireSite("f2", model.SeverityLow, 60),
		coldSite("c1", 10),
		coldSite("c2", 5),
		coldSite("c3", 1),
	}

	n := e.Assign(sites, defaultMapping(), NewPool(agents))
	if n != 4 {
		t.Fatalf("expected 4 assignments, got %d", n)
	}
	seen := map[string]string{}
	for _, a := range agents {
		if a.Site == nil {
			t.Fatalf("agent %s should be assigned", a.ID)
		}
		if owner, dup := seen[a.Site.ID]; dup {
			t.Fatalf("site %s assigned to both %s and %s", a.Site.ID, owner, a.ID)
		}
		seen[a.Site.ID] = a.ID
	}
}

func TestMoreAgentsThanSites(t *testing.T) {
	e := NewEngine(logger.NopLogger{})
	agents := []*model.Agent{
		{ID: "truck-0", Kind: model.KindGroundVehicle},
		{ID: "truck-1", Kind: model.KindGroundVehicle},
	}
	pool := NewPool(agents)
	n := e.Assign([]*model.Site{coldSite("only", 1)}, nil, pool)
	if n != 1 {
		t.Fatalf("expected 1 assignment, got %d", n)
	}
	if pool.FreeCount() != 1 {
		t.Fatalf("expected 1 free agent, got %d", pool.FreeCount())
	}
}
