package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Place is a simplified Places API result used to backfill wishlist entries.
type Place struct {
	Name    string
	Address string
	Rating  float32
	PlaceID string
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// FindPlace looks up a single place by name near a destination and returns the
// best match, or an error when nothing is found.
func (s *PlacesService) FindPlace(ctx context.Context, name, destination string) (Place, error) {
	query := name
	if destination != "" {
		query = fmt.Sprintf("%s near %s", name, destination)
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return Place{}, fmt.Errorf("places api error: %w", err)
	}
	if len(resp.Results) == 0 {
		return Place{}, fmt.Errorf("no place found for %q", name)
	}

	top := resp.Results[0]
	return Place{
		Name:    top.Name,
		Address: top.FormattedAddress,
		Rating:  top.Rating,
		PlaceID: top.PlaceID,
	}, nil
}
