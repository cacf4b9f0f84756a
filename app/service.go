package app

import (
	"context"
	"math/rand"
	"time"

	"firedispatch/config"
	"firedispatch/core/advisor"
	"firedispatch/core/assignment"
	"firedispatch/core/fire"
	"firedispatch/core/fleet"
	"firedispatch/core/geo"
	coremetrics "firedispatch/core/metrics"
	"firedispatch/core/planner"
	"firedispatch/core/region"
	"firedispatch/core/routing"
	"firedispatch/core/scoring"
	"firedispatch/infra/logger"
	"firedispatch/infra/maps"
	"firedispatch/infra/metrics"
	"firedispatch/infra/recommend"
	"firedispatch/internal/eventbus"
	"firedispatch/pkg/export"
)

// Geocoder resolves a place name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, place string) (geo.Point, error)
}

// Service wires the configuration into a planner and runs planning cycles.
type Service struct {
	cfg      *config.Config
	planner  *planner.Planner
	sites    *region.Source
	center   geo.Point
	bus      *eventbus.Bus
	log      logger.Logger
	promPort string
}

// New builds a Service from the configuration. Missing provider credentials
// are not errors: the affected provider is treated as permanently
// unavailable and its fallback path is used instead. ctx bounds startup
// lookups such as geocoding the configured place name.
func New(ctx context.Context, cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sinks []coremetrics.PlanSink
	promPort := ""
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)
		promPort = cfg.Metrics.PrometheusPort
	}
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics))
	}
	var sink coremetrics.PlanSink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	var mapsClient *maps.Client
	if cfg.Providers.MapsAPIKey != "" {
		c, err := maps.New(cfg.Providers.MapsAPIKey, logger.New("maps"))
		if err != nil {
			return nil, err
		}
		mapsClient = c
	} else {
		logg.Warnf("maps API key not configured, using straight-line routes and the default center")
	}

	var recommender advisor.RecommendationService
	if cfg.Providers.OpenAIKey != "" {
		r, err := recommend.New(cfg.Providers.OpenAIKey, cfg.Providers.OpenAIModel, logger.New("recommend"))
		if err != nil {
			return nil, err
		}
		recommender = r
	} else {
		logg.Warnf("recommendation service not configured, using the fallback table")
	}

	var geocoder Geocoder
	if mapsClient != nil {
		geocoder = mapsClient
	}
	center := resolveCenter(ctx, cfg, geocoder, logg)

	seed := cfg.Planner.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var directions routing.DirectionsProvider
	if mapsClient != nil {
		directions = mapsClient
	}
	computer := routing.NewComputer(
		directions,
		time.Duration(cfg.Planner.DirectionsTimeoutSeconds)*time.Second,
		cfg.Planner.RouteConcurrency,
		logger.New("routing"),
	)

	bus := eventbus.New()
	pl, err := planner.New(
		scoring.NewScorer(center),
		fire.NewGenerator(rng),
		advisor.New(recommender, logger.New("advisor")),
		assignment.NewEngine(logger.New("assignment")),
		computer,
		cfg.Planner.FireProbability,
		logger.New("planner"),
		sink,
		bus,
	)
	if err != nil {
		return nil, err
	}

	var siteProvider region.SiteProvider
	if mapsClient != nil {
		siteProvider = mapsClient
	}
	sites := region.NewSource(siteProvider, region.NewSiteGenerator(rng), cfg.Region.SiteRadiusMeters, logger.New("region"))

	return &Service{
		cfg:      cfg,
		planner:  pl,
		sites:    sites,
		center:   center,
		bus:      bus,
		log:      logg,
		promPort: promPort,
	}, nil
}

func resolveCenter(ctx context.Context, cfg *config.Config, geocoder Geocoder, logg logger.Logger) geo.Point {
	if geocoder == nil {
		return cfg.Region.DefaultCenter
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	center, err := geocoder.Geocode(ctx, cfg.Region.PlaceName)
	if err != nil {
		logg.Warnf("geocoding %q failed, using default center: %v", cfg.Region.PlaceName, err)
		return cfg.Region.DefaultCenter
	}
	logg.Infof("center %q resolved to lon=%.4f lat=%.4f", cfg.Region.PlaceName, center.Lon, center.Lat)
	return center
}

// Run executes one planning cycle and exports the result when configured.
func (s *Service) Run(ctx context.Context) error {
	if s.promPort != "" {
		go func() {
			if err := metrics.StartPromServer(s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	sites := s.sites.Sites(ctx, s.center, s.cfg.Region.SiteCount, s.cfg.Region.BBox)
	agents := fleet.Build(s.cfg.Fleet, s.center)
	s.log.Infof("planning for %d sites and %d agents around lon=%.4f lat=%.4f",
		len(sites), len(agents), s.center.Lon, s.center.Lat)

	res, err := s.planner.Plan(ctx, sites, agents)
	if err != nil {
		return err
	}
	s.log.Infof("cycle %s: %.1f km total, %.1f min total, match rate %.0f%%",
		res.CycleID,
		res.Summary.TotalDistanceMeters/1000,
		res.Summary.TotalDurationSeconds/60,
		res.Summary.OptimalMatchRate*100)

	if s.cfg.Export.Path != "" {
		if err := export.WriteFile(s.cfg.Export.Path, s.cfg.Export.Format, res); err != nil {
			return err
		}
		s.log.Infof("saved cycle result to %s", s.cfg.Export.Path)
	}
	return nil
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
