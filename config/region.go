package config

import (
	"firedispatch/core/geo"
	"firedispatch/core/region"
)

// RegionConfig describes the planning area. Defaults cover Pasadena,
// California.
type RegionConfig struct {
	// PlaceName is geocoded into the center point when a geocoder is
	// configured.
	PlaceName string `json:"place_name"`
	// DefaultCenter is used when geocoding is unavailable or fails.
	DefaultCenter geo.Point   `json:"default_center"`
	BBox          region.BBox `json:"bbox"`
	SiteCount     int         `json:"site_count"`
	// SiteRadiusMeters bounds the provider-backed site lookup around the
	// center.
	SiteRadiusMeters int `json:"site_radius_meters"`
}

// SetDefaults applies the Pasadena defaults.
func (c *RegionConfig) SetDefaults() {
	if c.PlaceName == "" {
		c.PlaceName = "Pasadena, California, USA"
	}
	if c.DefaultCenter == (geo.Point{}) {
		c.DefaultCenter = geo.Point{Lon: -118.1445, Lat: 34.1478}
	}
	if c.BBox == (region.BBox{}) {
		c.BBox = region.BBox{MinLon: -118.198, MaxLon: -118.065, MinLat: 34.119, MaxLat: 34.220}
	}
	if c.SiteCount == 0 {
		c.SiteCount = 30
	}
	if c.SiteRadiusMeters == 0 {
		c.SiteRadiusMeters = region.DefaultSiteRadiusMeters
	}
}

// Validate checks the area.
func (c RegionConfig) Validate() error {
	return c.BBox.Validate()
}
