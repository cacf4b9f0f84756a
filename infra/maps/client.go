package maps

import (
	"context"
	"errors"
	"fmt"

	gmaps "googlemaps.github.io/maps"

	"firedispatch/core/geo"
	"firedispatch/core/model"
	"firedispatch/infra/logger"
)

// Client wraps the Google Maps APIs behind the core's geocoding and
// directions contracts.
type Client struct {
	c   *gmaps.Client
	log logger.Logger
}

// New creates a maps client with the given API key.
func New(apiKey string, log logger.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("maps: API key is required")
	}
	c, err := gmaps.NewClient(gmaps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps client: %w", err)
	}
	return &Client{c: c, log: log}, nil
}

// Geocode resolves a place name to coordinates. An empty result set is an
// error so callers can fall back to a configured default.
func (c *Client) Geocode(ctx context.Context, place string) (geo.Point, error) {
	results, err := c.c.Geocode(ctx, &gmaps.GeocodingRequest{Address: place})
	if err != nil {
		return geo.Point{}, fmt.Errorf("geocode %q: %w", place, err)
	}
	if len(results) == 0 {
		return geo.Point{}, fmt.Errorf("geocode %q: no results", place)
	}
	loc := results[0].Geometry.Location
	return geo.Point{Lon: loc.Lng, Lat: loc.Lat}, nil
}

// Route queries the Directions API for a path between start and end using
// the given travel mode hint. "No route exists" surfaces as an error, like
// transport failures; the route computer treats both as unavailable.
func (c *Client) Route(ctx context.Context, start, end geo.Point, mode string) (*model.Route, error) {
	req := &gmaps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", start.Lat, start.Lon),
		Destination: fmt.Sprintf("%f,%f", end.Lat, end.Lon),
		Mode:        travelMode(mode),
	}
	routes, _, err := c.c.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("directions: %w", err)
	}
	if len(routes) == 0 {
		return nil, errors.New("directions: no route found")
	}

	route := routes[0]
	var distance float64
	var duration float64
	for _, leg := range route.Legs {
		distance += float64(leg.Distance.Meters)
		duration += leg.Duration.Seconds()
	}

	geometry := []geo.Point{start, end}
	if pts, err := route.OverviewPolyline.Decode(); err == nil && len(pts) >= 2 {
		geometry = make([]geo.Point, 0, len(pts))
		for _, p := range pts {
			geometry = append(geometry, geo.Point{Lon: p.Lng, Lat: p.Lat})
		}
	} else if err != nil {
		c.log.Warnf("polyline decode failed, keeping endpoints only: %v", err)
	}

	return &model.Route{
		Geometry:        geometry,
		DistanceMeters:  distance,
		DurationSeconds: duration,
		Kind:            model.RoutePrecise,
	}, nil
}

// Sites looks up real places around the center via the Places API, up to
// limit results. It implements region.SiteProvider; an empty result set is
// returned as-is so the caller can fall back to sampled sites.
func (c *Client) Sites(ctx context.Context, center geo.Point, radiusMeters, limit int) ([]*model.Site, error) {
	resp, err := c.c.NearbySearch(ctx, &gmaps.NearbySearchRequest{
		Location: &gmaps.LatLng{Lat: center.Lat, Lng: center.Lon},
		Radius:   uint(radiusMeters),
	})
	if err != nil {
		return nil, fmt.Errorf("nearby search: %w", err)
	}
	sites := make([]*model.Site, 0, limit)
	for _, r := range resp.Results {
		if len(sites) == limit {
			break
		}
		loc := r.Geometry.Location
		sites = append(sites, &model.Site{
			ID:       r.PlaceID,
			Coords:   geo.Point{Lon: loc.Lng, Lat: loc.Lat},
			Category: categoryFor(r.Types),
			Severity: model.SeverityNone,
		})
	}
	return sites, nil
}

func categoryFor(types []string) model.Category {
	for _, t := range types {
		switch t {
		case "store", "shopping_mall", "supermarket", "restaurant", "bank":
			return model.CategoryCommercial
		case "lodging":
			return model.CategoryResidential
		}
	}
	return model.CategoryUnknown
}

func travelMode(mode string) gmaps.Mode {
	switch mode {
	case model.TravelModeWalking:
		return gmaps.TravelModeWalking
	default:
		return gmaps.TravelModeDriving
	}
}
