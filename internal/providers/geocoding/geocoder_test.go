package geocoding_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"

	"github.com/feral-file/ff-race-nft/internal/domain"
	"github.com/feral-file/ff-race-nft/internal/mocks"
	"github.com/feral-file/ff-race-nft/internal/providers/geocoding"
)

func TestGeocode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGeocodingClient(ctrl)
	g := geocoding.NewGeocoder(client)

	client.EXPECT().
		Geocode(gomock.Any(), &maps.GeocodingRequest{Address: "Monza"}).
		Return([]maps.GeocodingResult{
			{
				AddressComponents: []maps.AddressComponent{
					{LongName: "Monza", Types: []string{"locality", "political"}},
					{LongName: "Province of Monza and Brianza", Types: []string{"administrative_area_level_2", "political"}},
					{LongName: "Italy", Types: []string{"country", "political"}},
				},
				Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 45.5845, Lng: 9.2744}},
			},
			{
				AddressComponents: []maps.AddressComponent{{LongName: "Elsewhere", Types: []string{"locality"}}},
			},
		}, nil)

	loc, err := g.Geocode(context.Background(), "Monza")
	require.NoError(t, err)
	assert.Equal(t, &domain.GeoLocation{
		Latitude:  45.5845,
		Longitude: 9.2744,
		City:      "Monza",
		Country:   "Italy",
	}, loc)
}

func TestGeocode_ZeroResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGeocodingClient(ctrl)
	g := geocoding.NewGeocoder(client)

	client.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return([]maps.GeocodingResult{}, nil)

	var loc *domain.GeoLocation
	var err error
	assert.NotPanics(t, func() {
		loc, err = g.Geocode(context.Background(), "Atlantis")
	})
	assert.Nil(t, loc)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestGeocode_NilResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGeocodingClient(ctrl)
	g := geocoding.NewGeocoder(client)

	client.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := g.Geocode(context.Background(), "nowhere")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestGeocode_MissingComponents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGeocodingClient(ctrl)
	g := geocoding.NewGeocoder(client)

	client.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return([]maps.GeocodingResult{
		{
			AddressComponents: []maps.AddressComponent{{LongName: "Antarctica", Types: []string{"continent"}}},
			Geometry:          maps.AddressGeometry{Location: maps.LatLng{Lat: -82.86, Lng: 135}},
		},
	}, nil)

	loc, err := g.Geocode(context.Background(), "South Pole")
	require.NoError(t, err)
	assert.Empty(t, loc.City)
	assert.Empty(t, loc.Country)
	assert.Equal(t, -82.86, loc.Latitude)
}

func TestGeocode_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockGeocodingClient(ctrl)
	g := geocoding.NewGeocoder(client)

	upstream := errors.New("REQUEST_DENIED")
	client.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(nil, upstream)

	_, err := g.Geocode(context.Background(), "Monza")
	assert.ErrorIs(t, err, upstream)
	assert.NotErrorIs(t, err, domain.ErrLocationNotFound)
}
