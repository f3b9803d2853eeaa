package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SnapshotStore persists the whole state tree. Load returns nil with no
// error when nothing has been saved yet.
type SnapshotStore interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, st *State) error
}

// Service owns the single state tree and is the only mutation entry point.
// Every transition runs to completion under the mutex: clone, apply,
// swap, persist. A failed transition leaves the published state untouched.
type Service struct {
	mu    sync.Mutex
	state *State

	store SnapshotStore
	log   *slog.Logger

	now   func() time.Time
	newID func(prefix string) string

	onChange func(prev, next *State)
}

// NewService builds a service over an optional snapshot store. A nil store
// keeps the tree purely in memory.
func NewService(store SnapshotStore) *Service {
	return &Service{
		state: NewState(),
		store: store,
		log:   slog.Default(),
		now:   time.Now,
		newID: func(prefix string) string { return prefix + "-" + uuid.NewString() },
	}
}

// Load replaces the in-memory tree with the persisted snapshot, if any.
func (s *Service) Load(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	st, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if st == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.Player.Streaks == nil {
		st.Player.Streaks = map[string]int{}
	}
	s.state = st
	return nil
}

// OnChange registers a hook observing every published transition as a
// (previous, next) snapshot pair.
func (s *Service) OnChange(fn func(prev, next *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Snapshot returns a copy of the current tree.
func (s *Service) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// mutate applies fn to a clone of the tree and publishes the clone only if
// fn succeeds. Persistence is fire-and-forget: a save failure is logged,
// never surfaced as a transition failure.
func (s *Service) mutate(fn func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}

	prev := s.state
	s.state = next
	if s.store != nil {
		if err := s.store.Save(context.Background(), next); err != nil {
			s.log.Warn("snapshot save failed", "error", err)
		}
	}
	if s.onChange != nil {
		s.onChange(prev, next)
	}
	return nil
}
