// README: Places-API-backed nearby lookup; optional alternative to the AI finder.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Place is a simplified nearby-place result.
type Place struct {
	Name             string
	Description      string
	Address          string
	Rating           float32
	UserRatingsTotal int
}

// PlacesFinder handles interactions with the Google Places API. It is wired
// only when a Maps API key is configured; otherwise the AI-backed finder is
// used instead.
type PlacesFinder struct {
	client *maps.Client
	limit  int
}

// NewPlacesFinder creates a PlacesFinder with the given API key.
func NewPlacesFinder(apiKey string) (*PlacesFinder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesFinder{client: client, limit: 5}, nil
}

// FindNearby searches for up to five places matching the category label near
// the given location. Low-rated results are skipped; fewer than five results
// is a valid outcome.
func (f *PlacesFinder) FindNearby(ctx context.Context, location, category string) ([]Place, error) {
	r := &maps.TextSearchRequest{
		Query:    fmt.Sprintf("%s 주변 %s", location, category),
		Language: "ko",
		Region:   "KR",
	}

	resp, err := f.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Place
	for _, result := range resp.Results {
		if result.Rating < 4.0 { // Filter for high quality
			continue
		}
		results = append(results, Place{
			Name:             result.Name,
			Description:      fmt.Sprintf("평점 %.1f점(리뷰 %d개)의 인기 %s입니다.", result.Rating, result.UserRatingsTotal, category),
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			UserRatingsTotal: result.UserRatingsTotal,
		})
		if len(results) >= f.limit {
			break
		}
	}
	return results, nil
}
