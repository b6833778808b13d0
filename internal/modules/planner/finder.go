// README: Adapts the Google Places finder to the planner's NearbyFinder contract.
package planner

import (
	"context"

	gmaps "planora/internal/maps"
	"planora/internal/modules/itinerary"
)

// PlacesNearbyFinder backs nearby-place lookups with the Google Places API
// instead of the AI model. Used when a Maps API key is configured.
type PlacesNearbyFinder struct {
	finder *gmaps.PlacesFinder
}

func NewPlacesNearbyFinder(finder *gmaps.PlacesFinder) *PlacesNearbyFinder {
	return &PlacesNearbyFinder{finder: finder}
}

func (f *PlacesNearbyFinder) FindNearbyPlaces(ctx context.Context, location string, category itinerary.PlaceCategory) ([]itinerary.NearbyPlace, error) {
	places, err := f.finder.FindNearby(ctx, location, string(category))
	if err != nil {
		return nil, err
	}
	out := make([]itinerary.NearbyPlace, 0, len(places))
	for _, p := range places {
		out = append(out, itinerary.NearbyPlace{
			Name:        p.Name,
			Description: p.Description,
			Address:     p.Address,
		})
	}
	return out, nil
}
