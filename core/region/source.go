package region

import (
	"context"

	"firedispatch/core/geo"
	"firedispatch/core/logger"
	"firedispatch/core/model"
)

// DefaultSiteRadiusMeters is the search radius for provider-backed site
// lookups around the center point.
const DefaultSiteRadiusMeters = 1000

// SiteProvider looks up real incident sites around a center point. An empty
// result set is not an error; callers treat it as "nothing known here".
type SiteProvider interface {
	Sites(ctx context.Context, center geo.Point, radiusMeters, limit int) ([]*model.Site, error)
}

// Source produces the sites for a planning cycle. It prefers real sites from
// the provider and falls back to random bounding-box sampling when the
// provider is unconfigured, fails, or finds nothing.
type Source struct {
	provider SiteProvider
	gen      *SiteGenerator
	radius   int
	log      logger.Logger
}

// NewSource returns a site source. provider may be nil, in which case every
// cycle samples the bounding box. A non-positive radius takes the default.
func NewSource(provider SiteProvider, gen *SiteGenerator, radiusMeters int, log logger.Logger) *Source {
	if radiusMeters <= 0 {
		radiusMeters = DefaultSiteRadiusMeters
	}
	return &Source{provider: provider, gen: gen, radius: radiusMeters, log: log}
}

// Sites returns up to n sites around center. Provider results win; any
// failure or empty result degrades to uniform sampling within box.
func (s *Source) Sites(ctx context.Context, center geo.Point, n int, box BBox) []*model.Site {
	if s.provider != nil {
		sites, err := s.provider.Sites(ctx, center, s.radius, n)
		switch {
		case err != nil:
			s.log.Warnf("site provider unavailable, sampling the bounding box: %v", err)
		case len(sites) == 0:
			s.log.Warnf("site provider found nothing within %dm, sampling the bounding box", s.radius)
		default:
			s.log.Infof("loaded %d sites from the provider", len(sites))
			return sites
		}
	}
	return s.gen.Generate(n, box)
}
