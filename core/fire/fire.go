package fire

import (
	"math/rand"
	"time"

	"firedispatch/core/model"
)

// severityWeights is the discrete distribution a burning site's severity is
// drawn from. Weights sum to 1.
var severityWeights = []struct {
	severity model.Severity
	weight   float64
}{
	{model.SeverityLow, 0.4},
	{model.SeverityMedium, 0.3},
	{model.SeverityHigh, 0.2},
	{model.SeverityCritical, 0.1},
}

// Generator draws fire outbreaks from an explicit random source so that
// outcomes are reproducible under a fixed seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator backed by rng. A nil rng is replaced with
// a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Ignite independently sets each site on fire with the given probability.
// Burning sites receive a weighted severity and an intensity uniform in
// [0.5, 1); all other sites are reset to severity none and intensity zero.
// It returns the number of sites on fire.
func (g *Generator) Ignite(sites []*model.Site, probability float64) int {
	count := 0
	for _, s := range sites {
		s.ClearFire()
		if g.rng.Float64() < probability {
			s.OnFire = true
			s.Severity = g.drawSeverity()
			s.Intensity = 0.5 + g.rng.Float64()*0.5
			count++
		}
	}
	return count
}

func (g *Generator) drawSeverity() model.Severity {
	r := g.rng.Float64()
	acc := 0.0
	for _, w := range severityWeights {
		acc += w.weight
		if r < acc {
			return w.severity
		}
	}
	return severityWeights[len(severityWeights)-1].severity
}
