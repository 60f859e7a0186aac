package geocoding

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"

	"github.com/feral-file/ff-race-nft/internal/adapter"
	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/logger"
)

const (
	componentTypeLocality = "locality"
	componentTypeCountry  = "country"
)

// Geocoder resolves free-text locations
//
//go:generate mockgen -source=geocoder.go -destination=../../mocks/geocoder.go -package=mocks -mock_names=Geocoder=MockGeocoder
type Geocoder interface {
	// Geocode resolves a location to coordinates, city and country.
	// Returns domain.ErrLocationNotFound when the provider has no result.
	Geocode(ctx context.Context, location string) (*domain.GeoLocation, error)
}

type geocoder struct {
	client adapter.GeocodingClient
}

// NewGeocoder creates a geocoder backed by the Google geocoding API
func NewGeocoder(client adapter.GeocodingClient) Geocoder {
	return &geocoder{client: client}
}

// Geocode resolves a location to coordinates, city and country
func (g *geocoder) Geocode(ctx context.Context, location string) (*domain.GeoLocation, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: location})
	if err != nil {
		return nil, fmt.Errorf("failed to geocode: %w", err)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrLocationNotFound, location)
	}

	best := results[0]
	city, ok := longNameOf(best.AddressComponents, componentTypeLocality)
	if !ok {
		logger.WarnCtx(ctx, "Geocode result has no locality", zap.String("location", location))
	}
	country, ok := longNameOf(best.AddressComponents, componentTypeCountry)
	if !ok {
		logger.WarnCtx(ctx, "Geocode result has no country", zap.String("location", location))
	}

	return &domain.GeoLocation{
		Latitude:  best.Geometry.Location.Lat,
		Longitude: best.Geometry.Location.Lng,
		City:      city,
		Country:   country,
	}, nil
}

// longNameOf returns the long name of the first component tagged with componentType
func longNameOf(components []maps.AddressComponent, componentType string) (string, bool) {
	for _, c := range components {
		if slices.Contains(c.Types, componentType) {
			return c.LongName, true
		}
	}
	return "", false
}
