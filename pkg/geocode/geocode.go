package geocode

import (
	"context"
	"errors"

	"googlemaps.github.io/maps"
)

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Point, error)
}

type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

var ErrNoResults = errors.New("no geocoding results for address")

type googleGeocoder struct {
	client *maps.Client
}

func NewGoogleGeocoder(apiKey string) (Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &googleGeocoder{client: client}, nil
}

func (g *googleGeocoder) Geocode(ctx context.Context, address string) (*Point, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	location := results[0].Geometry.Location
	return &Point{
		Latitude:  location.Lat,
		Longitude: location.Lng,
	}, nil
}
