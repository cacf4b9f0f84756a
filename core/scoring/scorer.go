package scoring

import (
	"sort"

	"firedispatch/core/geo"
	"firedispatch/core/model"
)

// categoryWeights biases scores toward denser land use. Categories outside
// the table weigh 1.0.
var categoryWeights = map[model.Category]float64{
	model.CategoryResidential: 1.0,
	model.CategoryCommercial:  1.5,
	model.CategoryMixed:       1.2,
}

// severityMultipliers scales the fire term of the score per severity.
var severityMultipliers = map[model.Severity]float64{
	model.SeverityNone:     0,
	model.SeverityLow:      1,
	model.SeverityMedium:   3,
	model.SeverityHigh:     5,
	model.SeverityCritical: 10,
}

// Scorer converts sites into priority scores relative to a center point.
type Scorer struct {
	Center geo.Point
}

// NewScorer returns a scorer anchored at center.
func NewScorer(center geo.Point) Scorer {
	return Scorer{Center: center}
}

// Score computes the urgency of a single site. Sites on fire score their
// proximity base plus a severity-and-intensity term; sites without fire keep
// a tenth of the base so they still order by proximity and category.
func (s Scorer) Score(site *model.Site) float64 {
	weight, ok := categoryWeights[site.Category]
	if !ok {
		weight = 1.0
	}
	base := weight / (geo.Distance(site.Coords, s.Center) + 1)
	if site.OnFire {
		return base + severityMultipliers[site.Severity]*site.Intensity*100
	}
	return base * 0.1
}

// Rank writes each site's priority and returns the sites sorted by score
// descending. Equal scores keep their input order (stable sort), which makes
// the ranking deterministic for a fixed input order.
func (s Scorer) Rank(sites []*model.Site) []*model.Site {
	for _, site := range sites {
		site.Priority = s.Score(site)
	}
	ranked := make([]*model.Site, len(sites))
	copy(ranked, sites)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority > ranked[j].Priority
	})
	return ranked
}
