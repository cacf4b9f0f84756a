package region

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"firedispatch/core/geo"
	"firedispatch/core/model"
	"firedispatch/infra/logger"
)

type fakeProvider struct {
	sites     []*model.Site
	err       error
	gotRadius int
	gotLimit  int
	calls     int
}

func (f *fakeProvider) Sites(ctx context.Context, center geo.Point, radiusMeters, limit int) ([]*model.Site, error) {
	f.calls++
	f.gotRadius = radiusMeters
	f.gotLimit = limit
	return f.sites, f.err
}

var testCenter = geo.Point{Lon: -118.1445, Lat: 34.1478}

func newTestSource(provider SiteProvider, radius int) *Source {
	gen := NewSiteGenerator(rand.New(rand.NewSource(7)))
	return NewSource(provider, gen, radius, logger.NopLogger{})
}

func TestSourcePrefersProviderSites(t *testing.T) {
	real := []*model.Site{
		{ID: "place-a", Coords: geo.Point{Lon: -118.14, Lat: 34.15}, Category: model.CategoryCommercial, Severity: model.SeverityNone},
		{ID: "place-b", Coords: geo.Point{Lon: -118.15, Lat: 34.14}, Category: model.CategoryUnknown, Severity: model.SeverityNone},
	}
	p := &fakeProvider{sites: real}
	s := newTestSource(p, 2500)

	got := s.Sites(context.Background(), testCenter, 30, testBox)
	if len(got) != 2 || got[0].ID != "place-a" {
		t.Fatalf("expected provider sites, got %d", len(got))
	}
	if p.gotRadius != 2500 || p.gotLimit != 30 {
		t.Fatalf("provider called with radius %d limit %d", p.gotRadius, p.gotLimit)
	}
}

func TestSourceFallsBackOnProviderError(t *testing.T) {
	p := &fakeProvider{err: errors.New("quota exceeded")}
	s := newTestSource(p, 0)

	got := s.Sites(context.Background(), testCenter, 10, testBox)
	if len(got) != 10 {
		t.Fatalf("expected 10 sampled sites, got %d", len(got))
	}
	for _, site := range got {
		if !testBox.Contains(site.Coords) {
			t.Fatalf("sampled site %s outside the box", site.ID)
		}
	}
	if p.calls != 1 {
		t.Fatalf("provider consulted %d times", p.calls)
	}
}

func TestSourceFallsBackOnEmptyResult(t *testing.T) {
	p := &fakeProvider{}
	s := newTestSource(p, 0)

	got := s.Sites(context.Background(), testCenter, 5, testBox)
	if len(got) != 5 {
		t.Fatalf("empty provider result should sample the box, got %d sites", len(got))
	}
	if p.gotRadius != DefaultSiteRadiusMeters {
		t.Fatalf("zero radius should take the default, got %d", p.gotRadius)
	}
}

func TestSourceWithoutProviderSamples(t *testing.T) {
	s := newTestSource(nil, 0)
	got := s.Sites(context.Background(), testCenter, 3, testBox)
	if len(got) != 3 {
		t.Fatalf("expected 3 sampled sites, got %d", len(got))
	}
}
