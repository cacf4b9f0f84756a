package region

import (
	"fmt"
	"math/rand"
	"time"

	"firedispatch/core/geo"
	"firedispatch/core/model"
)

// BBox delimits the area sites are generated in.
type BBox struct {
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
}

// Contains reports whether p lies within the box.
func (b BBox) Contains(p geo.Point) bool {
	return p.Lon >= b.MinLon && p.Lon <= b.MaxLon &&
		p.Lat >= b.MinLat && p.Lat <= b.MaxLat
}

// Validate checks that the box is non-degenerate.
func (b BBox) Validate() error {
	if b.MinLon >= b.MaxLon || b.MinLat >= b.MaxLat {
		return fmt.Errorf("degenerate bounding box %+v", b)
	}
	return nil
}

var categories = []model.Category{
	model.CategoryResidential,
	model.CategoryCommercial,
	model.CategoryMixed,
}

// SiteGenerator creates incident sites at random positions. Like the fire
// generator it takes an explicit random source for reproducibility.
type SiteGenerator struct {
	rng *rand.Rand
}

// NewSiteGenerator returns a generator backed by rng. A nil rng is replaced
// with a time-seeded source.
func NewSiteGenerator(rng *rand.Rand) *SiteGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SiteGenerator{rng: rng}
}

// Generate creates n sites uniformly distributed within box, each with a
// random category and no fire.
func (g *SiteGenerator) Generate(n int, box BBox) []*model.Site {
	sites := make([]*model.Site, 0, n)
	for i := 0; i < n; i++ {
		sites = append(sites, &model.Site{
			ID: fmt.Sprintf("building-%d", i),
			Coords: geo.Point{
				Lon: box.MinLon + g.rng.Float64()*(box.MaxLon-box.MinLon),
				Lat: box.MinLat + g.rng.Float64()*(box.MaxLat-box.MinLat),
			},
			Category: categories[g.rng.Intn(len(categories))],
			Severity: model.SeverityNone,
		})
	}
	return sites
}
