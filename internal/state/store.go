package state

import (
	"sync"
	"time"

	"github.com/five82/shelf/internal/catalog"
)

// Snapshot represents the latest data available to a view.
type Snapshot struct {
	Books       []catalog.Book
	Settings    catalog.Settings
	Loading     bool
	Errors      []*catalog.SourceError // ordered by source: books, then settings
	LastUpdated time.Time              // zero until the first load finishes
}

// ErrorText joins the recorded errors for display; empty when there are none.
func (s Snapshot) ErrorText() string {
	return catalog.JoinErrors(s.Errors)
}

// HasError reports whether the last load recorded any failure.
func (s Snapshot) HasError() bool {
	return len(s.Errors) > 0
}

// Result is the outcome of one load round-trip.
type Result struct {
	Books       []catalog.Book
	HasBooks    bool
	Settings    catalog.Settings
	HasSettings bool
	Errors      []*catalog.SourceError
}

// Store is the single owner of loaded catalog state. The zero value is
// ready to use and reports itself as loading until Finish is called.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin marks a load as in flight and clears the previous errors.
func (s *Store) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Loading = true
	s.snapshot.Errors = nil
}

// Finish records a completed load and always clears the loading flag.
// Data from a failed source is left as it was before the load.
func (s *Store) Finish(res Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res.HasBooks {
		s.snapshot.Books = catalog.CloneBooks(res.Books)
	}
	if res.HasSettings {
		s.snapshot.Settings = res.Settings.Clone()
	}
	s.snapshot.Errors = cloneErrors(res.Errors)
	s.snapshot.Loading = false
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Books = catalog.CloneBooks(s.snapshot.Books)
	snap.Settings = s.snapshot.Settings.Clone()
	snap.Errors = cloneErrors(s.snapshot.Errors)
	if snap.LastUpdated.IsZero() {
		snap.Loading = true
	}
	return snap
}

func cloneErrors(errs []*catalog.SourceError) []*catalog.SourceError {
	if len(errs) == 0 {
		return nil
	}
	dup := make([]*catalog.SourceError, len(errs))
	for i, e := range errs {
		if e == nil {
			continue
		}
		cp := *e
		dup[i] = &cp
	}
	return dup
}
