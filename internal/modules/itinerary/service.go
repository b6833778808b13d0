// README: Itinerary operations; each composes build prompt → AI call → parse → validate.
package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"planora/internal/ai"
	"planora/internal/maps"
)

// Service runs the five itinerary operations. It holds no plan state; every
// call is a pure request/response transform over the AI client.
type Service struct {
	client ai.Client
	loc    *time.Location
	now    func() time.Time
}

// NewService creates a Service bound to the given AI client. The reference
// timezone for relative-date resolution is Asia/Seoul.
func NewService(client ai.Client) (*Service, error) {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return nil, fmt.Errorf("failed to load Asia/Seoul location: %w", err)
	}
	return &Service{client: client, loc: loc, now: time.Now}, nil
}

// GenerateFullItinerary asks the model for a complete day-by-day schedule and
// packing checklist. All date/destination validation happens before any
// network call; startDate > endDate is rejected with ErrValidation.
func (s *Service) GenerateFullItinerary(ctx context.Context, destination, concept, startDate, endDate string, partySize int) (*GeneratedPlan, error) {
	if startDate != "" && endDate != "" && startDate > endDate {
		return nil, fmt.Errorf("%w: start date is after end date", ErrValidation)
	}
	prompt, schema, err := BuildFullItineraryPrompt(destination, concept, startDate, endDate, partySize)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.GenerateText(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}

	var plan GeneratedPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(plan.Schedule) == 0 {
		return nil, fmt.Errorf("%w: empty schedule", ErrGeneration)
	}
	if err := validateEntries(plan.Schedule); err != nil {
		return nil, err
	}
	plan.Checklist = cleanStrings(plan.Checklist)
	return &plan, nil
}

// ParseNarrativeToSchedule extracts structured schedule entries from free
// text. Whitespace-only input short-circuits to an empty list with no network
// call. A syntactically valid empty array is a success, not an error — the
// caller distinguishes "nothing found" from "request failed".
func (s *Service) ParseNarrativeToSchedule(ctx context.Context, freeText string) ([]ScheduleEntry, error) {
	if strings.TrimSpace(freeText) == "" {
		return []ScheduleEntry{}, nil
	}

	referenceDate := s.now().In(s.loc).Format("2006-01-02")
	prompt, schema, err := BuildNarrativeParsePrompt(freeText, referenceDate)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.GenerateText(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}

	var entries []ScheduleEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if entries == nil {
		entries = []ScheduleEntry{}
	}
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// DeriveChecklistFromSchedule asks the model for an exhaustive packing list
// matching the given entries. An empty schedule short-circuits to an empty
// list without a network call.
func (s *Service) DeriveChecklistFromSchedule(ctx context.Context, entries []ScheduleEntry) ([]string, error) {
	if len(entries) == 0 {
		return []string{}, nil
	}
	prompt, schema, err := BuildChecklistFromSchedulePrompt(entries)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.GenerateText(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}

	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return cleanStrings(items), nil
}

// FindNearbyPlaces recommends up to five places of the category near the
// location. The prompt always asks for exactly five; fewer is a valid
// outcome, more is truncated.
func (s *Service) FindNearbyPlaces(ctx context.Context, location string, category PlaceCategory) ([]NearbyPlace, error) {
	prompt, schema, err := BuildNearbyPlacesPrompt(location, category)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.GenerateText(ctx, prompt, schema)
	if err != nil {
		return nil, err
	}

	var places []NearbyPlace
	if err := json.Unmarshal([]byte(raw), &places); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	for _, p := range places {
		if p.Name == "" || p.Description == "" || p.Address == "" {
			return nil, fmt.Errorf("%w: incomplete place recommendation", ErrGeneration)
		}
	}
	if len(places) > 5 {
		places = places[:5]
	}
	return places, nil
}

// RenderItineraryHTML turns a schedule and checklist into one self-contained
// HTML document via a single AI call. An empty schedule returns an empty
// string with no network call; the caller treats that as "nothing generated",
// not as an error. The response text is returned verbatim — the HTML is
// opaque to this layer.
func (s *Service) RenderItineraryHTML(ctx context.Context, entries []ScheduleEntry, checklist []string) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	sorted := make([]ScheduleEntry, len(entries))
	copy(sorted, entries)
	SortSchedule(sorted)

	mapURL := maps.RouteURL(DistinctLocations(sorted))
	prompt := BuildItineraryHTMLPrompt(sorted, checklist, CostSummary(sorted), mapURL)

	return s.client.GenerateText(ctx, prompt, nil)
}

// validateEntries enforces the response shape the schema promised: date, time
// and activity present on every entry. Cost and location stay optional.
func validateEntries(entries []ScheduleEntry) error {
	for i, e := range entries {
		if e.Date == "" || e.Time == "" || strings.TrimSpace(e.Activity) == "" {
			return fmt.Errorf("%w: entry %d is missing date, time or activity", ErrGeneration, i)
		}
	}
	return nil
}

// cleanStrings trims items and drops empties.
func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
