// README: In-memory session store; the only state holder in the process.
package planner

import (
	"context"
	"sync"
	"time"

	"planora/internal/modules/itinerary"
	"planora/internal/types"
)

// Session owns the live schedule and checklist collections for one planning
// surface. The core itinerary operations never see a Session; they receive
// and return plain copies.
type Session struct {
	ID        types.ID                   `json:"id"`
	Schedule  []itinerary.ScheduleEntry  `json:"schedule"`
	Checklist []itinerary.ChecklistEntry `json:"checklist"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

func (s *Session) clone() *Session {
	cp := *s
	cp.Schedule = make([]itinerary.ScheduleEntry, len(s.Schedule))
	copy(cp.Schedule, s.Schedule)
	cp.Checklist = make([]itinerary.ChecklistEntry, len(s.Checklist))
	copy(cp.Checklist, s.Checklist)
	return &cp
}

// Store keeps sessions in process memory behind a RWMutex. There is no
// persistence layer; restarting the process drops all plans.
type Store struct {
	mu          sync.RWMutex
	sessions    map[types.ID]*Session
	maxSessions int
}

func NewStore(maxSessions int) *Store {
	if maxSessions <= 0 {
		maxSessions = 1024
	}
	return &Store{
		sessions:    make(map[types.ID]*Session),
		maxSessions: maxSessions,
	}
}

func (s *Store) Create(_ context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) >= s.maxSessions {
		return ErrSessionLimit
	}
	if _, exists := s.sessions[sess.ID]; exists {
		return ErrConflict
	}
	s.sessions[sess.ID] = sess.clone()
	return nil
}

// Get returns a deep copy; no shared mutable references escape the store.
func (s *Store) Get(_ context.Context, id types.ID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess.clone(), nil
}

// Mutate applies fn to the session under the write lock. fn receives the
// live session; an error from fn aborts the mutation's timestamp update but
// any changes fn already made are kept (callers mutate last).
func (s *Store) Mutate(_ context.Context, id types.ID, fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if err := fn(sess); err != nil {
		return err
	}
	sess.UpdatedAt = time.Now()
	return nil
}

func (s *Store) Delete(_ context.Context, id types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
