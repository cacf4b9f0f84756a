package scoring

import (
	"testing"

	"firedispatch/core/geo"
	"firedispatch/core/model"
)

var center = geo.Point{Lon: -118.1445, Lat: 34.1478}

func site(cat model.Category, coords geo.Point) *model.Site {
	return &model.Site{ID: "s", Category: cat, Coords: coords, Severity: model.SeverityNone}
}

func TestFireOutscoresNoFire(t *testing.T) {
	s := NewScorer(center)
	coords := geo.Point{Lon: -118.15, Lat: 34.15}

	cold := site(model.CategoryResidential, coords)
	hot := site(model.CategoryResidential, coords)
	hot.OnFire = true
	hot.Severity = model.SeverityLow
	hot.Intensity = 0.5

	if s.Score(hot) <= s.Score(cold) {
		t.Fatalf("fire score %f should exceed no-fire score %f", s.Score(hot), s.Score(cold))
	}
}

func TestScoreMonotonicInIntensity(t *testing.T) {
	s := NewScorer(center)
	prev := -1.0
	for _, intensity := range []float64{0.5, 0.6, 0.8, 1.0} {
		st := site(model.CategoryMixed, geo.Point{Lon: -118.15, Lat: 34.15})
		st.OnFire = true
		st.Severity = model.SeverityMedium
		st.Intensity = intensity
		if sc := s.Score(st); sc < prev {
			t.Fatalf("score decreased at intensity %f", intensity)
		} else {
			prev = sc
		}
	}
}

func TestScoreMonotonicInSeverity(t *testing.T) {
	s := NewScorer(center)
	order := []model.Severity{model.SeverityLow, model.SeverityMedium, model.SeverityHigh, model.SeverityCritical}
	prev := -1.0
	for _, severity := range order {
		st := site(model.CategoryCommercial, geo.Point{Lon: -118.15, Lat: 34.15})
		st.OnFire = true
		st.Severity = severity
		st.Intensity = 0.7
		if sc := s.Score(st); sc < prev {
			t.Fatalf("score decreased at severity %s", severity)
		} else {
			prev = sc
		}
	}
}

func TestCategoryWeights(t *testing.T) {
	s := NewScorer(center)
	coords := geo.Point{Lon: -118.15, Lat: 34.15}
	res := s.Score(site(model.CategoryResidential, coords))
	com := s.Score(site(model.CategoryCommercial, coords))
	mix := s.Score(site(model.CategoryMixed, coords))
	unk := s.Score(site(model.CategoryUnknown, coords))
	if !(com > mix && mix > res) {
		t.Fatalf("expected commercial > mixed > residential, got %f %f %f", com, mix, res)
	}
	if unk != res {
		t.Fatalf("unknown category should weigh like residential: %f vs %f", unk, res)
	}
}

func TestRankDescendingAndStable(t *testing.T) {
	s := NewScorer(center)
	coords := geo.Point{Lon: -118.15, Lat: 34.15}

	burning := site(model.CategoryResidential, coords)
	burning.ID = "burning"
	burning.OnFire = true
	burning.Severity = model.SeverityCritical
	burning.Intensity = 1

	tieA := site(model.CategoryResidential, coords)
	tieA.ID = "tie-a"
	tieB := site(model.CategoryResidential, coords)
	tieB.ID = "tie-b"

	ranked := s.Rank([]*model.Site{tieA, burning, tieB})
	if ranked[0].ID != "burning" {
		t.Fatalf("expected burning site first, got %s", ranked[0].ID)
	}
	// Equal scores keep their input order.
	if ranked[1].ID != "tie-a" || ranked[2].ID != "tie-b" {
		t.Fatalf("tie order not preserved: %s, %s", ranked[1].ID, ranked[2].ID)
	}
	for _, site := range ranked {
		if site.Priority != s.Score(site) {
			t.Errorf("priority not written for %s", site.ID)
		}
	}
}

func TestRankDoesNotReorderInput(t *testing.T) {
	s := NewScorer(center)
	a := site(model.CategoryResidential, geo.Point{Lon: -118.15, Lat: 34.15})
	b := site(model.CategoryCommercial, geo.Point{Lon: -118.15, Lat: 34.15})
	input := []*model.Site{a, b}
	s.Rank(input)
	if input[0] != a || input[1] != b {
		t.Fatal("Rank must not mutate the input slice order")
	}
}
