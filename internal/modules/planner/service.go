// README: Planner session orchestration on top of the core itinerary operations.
package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"planora/internal/modules/itinerary"
	"planora/internal/types"
)

var (
	ErrNotFound       = errors.New("planner: not found")
	ErrConflict       = errors.New("planner: session already exists")
	ErrSessionLimit   = errors.New("planner: session limit reached")
	ErrNoEntriesFound = errors.New("planner: no schedule entries found in text")
)

// DownloadFilename is the suggested filename for the rendered itinerary page.
const DownloadFilename = "여행-일정.html"

// ItineraryOps is the slice of core operations the planner drives.
// *itinerary.Service satisfies it.
type ItineraryOps interface {
	GenerateFullItinerary(ctx context.Context, destination, concept, startDate, endDate string, partySize int) (*itinerary.GeneratedPlan, error)
	ParseNarrativeToSchedule(ctx context.Context, freeText string) ([]itinerary.ScheduleEntry, error)
	DeriveChecklistFromSchedule(ctx context.Context, entries []itinerary.ScheduleEntry) ([]string, error)
	RenderItineraryHTML(ctx context.Context, entries []itinerary.ScheduleEntry, checklist []string) (string, error)
}

// NearbyFinder resolves place recommendations near a location.
// *itinerary.Service satisfies it; a maps-backed finder can replace it.
type NearbyFinder interface {
	FindNearbyPlaces(ctx context.Context, location string, category itinerary.PlaceCategory) ([]itinerary.NearbyPlace, error)
}

// IDGenerator mints identifiers for schedule and checklist entries.
// Injected so tests can use a deterministic counter.
type IDGenerator func() types.ID

func UUIDGenerator() types.ID {
	return types.ID(uuid.NewString())
}

type Service struct {
	store  *Store
	ops    ItineraryOps
	finder NearbyFinder
	newID  IDGenerator
}

func NewService(store *Store, ops ItineraryOps, finder NearbyFinder, newID IDGenerator) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("planner store is required")
	}
	if ops == nil {
		return nil, fmt.Errorf("itinerary ops is required")
	}
	if newID == nil {
		newID = UUIDGenerator
	}
	return &Service{store: store, ops: ops, finder: finder, newID: newID}, nil
}

func (s *Service) CreateSession(ctx context.Context) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:        s.newID(),
		Schedule:  []itinerary.ScheduleEntry{},
		Checklist: []itinerary.ChecklistEntry{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// GetSession returns a snapshot with the schedule in display order.
func (s *Service) GetSession(ctx context.Context, id types.ID) (*Session, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	itinerary.SortSchedule(sess.Schedule)
	return sess, nil
}

func (s *Service) DeleteSession(ctx context.Context, id types.ID) error {
	return s.store.Delete(ctx, id)
}

// GeneratePlan runs full-itinerary generation and replaces the session's
// schedule and checklist wholesale. Previous contents are discarded.
func (s *Service) GeneratePlan(ctx context.Context, id types.ID, destination, concept, startDate, endDate string, partySize int) (*Session, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}
	plan, err := s.ops.GenerateFullItinerary(ctx, destination, concept, startDate, endDate, partySize)
	if err != nil {
		return nil, err
	}

	schedule := make([]itinerary.ScheduleEntry, len(plan.Schedule))
	for i, e := range plan.Schedule {
		e.ID = s.newID()
		schedule[i] = e
	}
	itinerary.SortSchedule(schedule)

	checklist := make([]itinerary.ChecklistEntry, 0, len(plan.Checklist))
	for _, text := range plan.Checklist {
		checklist = append(checklist, itinerary.ChecklistEntry{ID: s.newID(), Text: text})
	}

	if err := s.store.Mutate(ctx, id, func(sess *Session) error {
		sess.Schedule = schedule
		sess.Checklist = checklist
		return nil
	}); err != nil {
		return nil, err
	}
	return s.GetSession(ctx, id)
}

// AddFromNarrative parses free text into schedule entries, appends them, then
// derives checklist suggestions from only the new entries and merges them in.
// Entries that parsed successfully stay in the session even if the follow-up
// checklist derivation fails.
func (s *Service) AddFromNarrative(ctx context.Context, id types.ID, freeText string) ([]itinerary.ScheduleEntry, []itinerary.ChecklistEntry, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, nil, err
	}

	parsed, err := s.ops.ParseNarrativeToSchedule(ctx, freeText)
	if err != nil {
		return nil, nil, err
	}
	if len(parsed) == 0 {
		return nil, nil, ErrNoEntriesFound
	}

	added := make([]itinerary.ScheduleEntry, len(parsed))
	for i, e := range parsed {
		e.ID = s.newID()
		added[i] = e
	}
	if err := s.store.Mutate(ctx, id, func(sess *Session) error {
		sess.Schedule = append(sess.Schedule, added...)
		itinerary.SortSchedule(sess.Schedule)
		return nil
	}); err != nil {
		return nil, nil, err
	}

	texts, err := s.ops.DeriveChecklistFromSchedule(ctx, added)
	if err != nil {
		return added, nil, err
	}

	var merged []itinerary.ChecklistEntry
	if err := s.store.Mutate(ctx, id, func(sess *Session) error {
		merged = mergeChecklist(sess, texts, s.newID)
		return nil
	}); err != nil {
		return added, nil, err
	}
	return added, merged, nil
}

// mergeChecklist appends only items whose text is not already present,
// compared by exact string equality.
func mergeChecklist(sess *Session, texts []string, newID IDGenerator) []itinerary.ChecklistEntry {
	existing := make(map[string]struct{}, len(sess.Checklist))
	for _, item := range sess.Checklist {
		existing[item.Text] = struct{}{}
	}
	var added []itinerary.ChecklistEntry
	for _, text := range texts {
		if _, dup := existing[text]; dup {
			continue
		}
		existing[text] = struct{}{}
		item := itinerary.ChecklistEntry{ID: newID(), Text: text}
		sess.Checklist = append(sess.Checklist, item)
		added = append(added, item)
	}
	return added
}

// AddEntry inserts a manually composed schedule entry.
func (s *Service) AddEntry(ctx context.Context, id types.ID, entry itinerary.ScheduleEntry) (*itinerary.ScheduleEntry, error) {
	if err := validateEntryInput(entry); err != nil {
		return nil, err
	}
	entry.ID = s.newID()
	if err := s.store.Mutate(ctx, id, func(sess *Session) error {
		sess.Schedule = append(sess.Schedule, entry)
		itinerary.SortSchedule(sess.Schedule)
		return nil
	}); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateEntry replaces the fields of an existing entry, keeping its ID.
func (s *Service) UpdateEntry(ctx context.Context, id types.ID, entryID types.ID, entry itinerary.ScheduleEntry) (*itinerary.ScheduleEntry, error) {
	if err := validateEntryInput(entry); err != nil {
		return nil, err
	}
	entry.ID = entryID
	if err := s.store.Mutate(ctx, id, func(sess *Session) error {
		for i := range sess.Schedule {
			if sess.Schedule[i].ID == entryID {
				sess.Schedule[i] = entry
				itinerary.SortSchedule(sess.Schedule)
				return nil
			}
		}
		return ErrNotFound
	}); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) RemoveEntry(ctx context.Context, id types.ID, entryID types.ID) error {
	return s.store.Mutate(ctx, id, func(sess *Session) error {
		for i := range sess.Schedule {
			if sess.Schedule[i].ID == entryID {
				sess.Schedule = append(sess.Schedule[:i], sess.Schedule[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// AddChecklistItem appends a manually typed item. Manual adds are not
// de-duplicated; only AI-derived merges are.
func (s *Service) AddChecklistItem(ctx context.Context, id types.ID, text string) (*itinerary.ChecklistEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: checklist text is required", itinerary.ErrValidation)
	}
	item := itinerary.ChecklistEntry{ID: s.newID(), Text: text}
	if err := s.store.Mutate(ctx, id, func(sess *Session) error {
		sess.Checklist = append(sess.Checklist, item)
		return nil
	}); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) UpdateChecklistItem(ctx context.Context, id types.ID, itemID types.ID, text string) (*itinerary.ChecklistEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: checklist text is required", itinerary.ErrValidation)
	}
	var updated itinerary.ChecklistEntry
	if err := s.store.Mutate(ctx, id, func(sess *Session) error {
		for i := range sess.Checklist {
			if sess.Checklist[i].ID == itemID {
				sess.Checklist[i].Text = text
				updated = sess.Checklist[i]
				return nil
			}
		}
		return ErrNotFound
	}); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ToggleChecklistItem flips an item's checked state and returns the result.
func (s *Service) ToggleChecklistItem(ctx context.Context, id types.ID, itemID types.ID) (*itinerary.ChecklistEntry, error) {
	var updated itinerary.ChecklistEntry
	if err := s.store.Mutate(ctx, id, func(sess *Session) error {
		for i := range sess.Checklist {
			if sess.Checklist[i].ID == itemID {
				sess.Checklist[i].Checked = !sess.Checklist[i].Checked
				updated = sess.Checklist[i]
				return nil
			}
		}
		return ErrNotFound
	}); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) RemoveChecklistItem(ctx context.Context, id types.ID, itemID types.ID) error {
	return s.store.Mutate(ctx, id, func(sess *Session) error {
		for i := range sess.Checklist {
			if sess.Checklist[i].ID == itemID {
				sess.Checklist = append(sess.Checklist[:i], sess.Checklist[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// FindNearby recommends places near the location of one schedule entry.
func (s *Service) FindNearby(ctx context.Context, id types.ID, entryID types.ID, category itinerary.PlaceCategory) ([]itinerary.NearbyPlace, error) {
	if s.finder == nil {
		return nil, fmt.Errorf("nearby place lookup is not configured")
	}
	entry, err := s.findEntry(ctx, id, entryID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(entry.Location) == "" {
		return nil, fmt.Errorf("%w: schedule entry has no location", itinerary.ErrValidation)
	}
	return s.finder.FindNearbyPlaces(ctx, entry.Location, category)
}

// PromoteNearbyPlace turns a recommendation into a schedule entry that
// inherits the source entry's date and time, then re-sorts the schedule.
func (s *Service) PromoteNearbyPlace(ctx context.Context, id types.ID, entryID types.ID, place itinerary.NearbyPlace) (*itinerary.ScheduleEntry, error) {
	if strings.TrimSpace(place.Name) == "" {
		return nil, fmt.Errorf("%w: place name is required", itinerary.ErrValidation)
	}
	source, err := s.findEntry(ctx, id, entryID)
	if err != nil {
		return nil, err
	}
	entry := itinerary.ScheduleEntry{
		ID:       s.newID(),
		Date:     source.Date,
		Time:     source.Time,
		Activity: place.Name + " 방문",
		Location: place.Name,
	}
	if err := s.store.Mutate(ctx, id, func(sess *Session) error {
		sess.Schedule = append(sess.Schedule, entry)
		itinerary.SortSchedule(sess.Schedule)
		return nil
	}); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RenderHTML renders the session's current state into a standalone page and
// returns it with the suggested download filename. An empty schedule yields
// an empty document with no upstream call.
func (s *Service) RenderHTML(ctx context.Context, id types.ID) (string, string, error) {
	sess, err := s.GetSession(ctx, id)
	if err != nil {
		return "", "", err
	}
	texts := make([]string, 0, len(sess.Checklist))
	for _, item := range sess.Checklist {
		texts = append(texts, item.Text)
	}
	html, err := s.ops.RenderItineraryHTML(ctx, sess.Schedule, texts)
	if err != nil {
		return "", "", err
	}
	return html, DownloadFilename, nil
}

func (s *Service) findEntry(ctx context.Context, id types.ID, entryID types.ID) (*itinerary.ScheduleEntry, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range sess.Schedule {
		if sess.Schedule[i].ID == entryID {
			return &sess.Schedule[i], nil
		}
	}
	return nil, ErrNotFound
}

func validateEntryInput(entry itinerary.ScheduleEntry) error {
	if _, err := time.Parse("2006-01-02", entry.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", itinerary.ErrValidation)
	}
	if _, err := time.Parse("15:04", entry.Time); err != nil {
		return fmt.Errorf("%w: time must be HH:MM", itinerary.ErrValidation)
	}
	if strings.TrimSpace(entry.Activity) == "" {
		return fmt.Errorf("%w: activity is required", itinerary.ErrValidation)
	}
	return nil
}
