// README: Travel plan domain model (schedule, checklist, nearby places).
package itinerary

import (
	"errors"
	"sort"
	"strings"

	"planora/internal/types"
)

var (
	// ErrValidation marks missing or malformed input detected before any
	// network call. Recoverable by the caller re-prompting the user.
	ErrValidation = errors.New("invalid input")

	// ErrGeneration marks a call that succeeded at the transport level but
	// returned empty or structurally invalid output. Shown to users the same
	// way as an upstream failure, but distinguishable internally.
	ErrGeneration = errors.New("AI did not return a valid plan")
)

// ScheduleEntry is one dated, timed activity in a trip plan. IDs are assigned
// by the planner, never by the AI; entries coming back from a generation op
// carry an empty ID until the planner merges them.
type ScheduleEntry struct {
	ID       types.ID `json:"id,omitempty"`
	Date     string   `json:"date"`     // YYYY-MM-DD
	Time     string   `json:"time"`     // HH:MM, 24-hour
	Activity string   `json:"activity"` // required, free text
	Cost     string   `json:"cost,omitempty"`     // free-text monetary string, currency-agnostic
	Location string   `json:"location,omitempty"` // searchable place name or address
}

// SortKey orders entries by calendar instant. Date and Time are zero-padded
// ISO strings, so plain string concatenation sorts correctly.
func (e ScheduleEntry) SortKey() string {
	t := e.Time
	if t == "" {
		t = "00:00"
	}
	return e.Date + "T" + t
}

// ChecklistEntry is one packing/preparation item.
type ChecklistEntry struct {
	ID      types.ID `json:"id"`
	Text    string   `json:"text"`
	Checked bool     `json:"checked"`
}

// NearbyPlace is an ephemeral recommendation near a schedule entry's
// location. It is never stored; it either gets promoted into a new
// ScheduleEntry or discarded.
type NearbyPlace struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

/// GeneratedPlan is the result of full-itinerary generation: schedule entries
// without IDs plus plain checklist item texts.
type GeneratedPlan struct {
	Schedule  []ScheduleEntry `json:"schedule"`
	Checklist []string        `json:"checklist"`
}

// PlaceCategory is the closed set of nearby-place lookup categories.
type PlaceCategory string

const (
	CategoryRestaurant PlaceCategory = "맛집"
	CategoryAttraction PlaceCategory = "명소"
)

// ParsePlaceCategory accepts either the localized label or its API alias.
func ParsePlaceCategory(v string) (PlaceCategory, error) {
	switch strings.TrimSpace(v) {
	case string(CategoryRestaurant), "restaurant":
		return CategoryRestaurant, nil
	case string(CategoryAttraction), "attraction":
		return CategoryAttraction, nil
	default:
		return "", ErrValidation
	}
}

// SortSchedule orders entries by (date, time) ascending. The sort is stable
// so entries sharing a timestamp keep their insertion order.
func SortSchedule(entries []ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortKey() < entries[j].SortKey()
	})
}
