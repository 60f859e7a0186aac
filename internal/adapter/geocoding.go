package adapter

import (
	"context"

	"googlemaps.github.io/maps"
)

// GeocodingClient defines an interface for the geocoding API to enable mocking
//
//go:generate mockgen -source=geocoding.go -destination=../mocks/geocoding.go -package=mocks -mock_names=GeocodingClient=MockGeocodingClient
type GeocodingClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// NewGeocodingClient creates a new Google Maps geocoding client
func NewGeocodingClient(apiKey string) (GeocodingClient, error) {
	return maps.NewClient(maps.WithAPIKey(apiKey))
}
