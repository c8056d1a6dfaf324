// Package store provides thread-safe in-memory storage for playground runs.
package store

import (
	"fmt"
	"sync"
	"time"
)

// MaxRuns bounds the history; the oldest run is evicted past this.
const MaxRuns = 100

// Run represents one executed playground submission.
type Run struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Output        string    `json:"output"`
	Errors        []string  `json:"errors,omitempty"`
	RuntimeErrors []string  `json:"runtimeErrors,omitempty"`
	StartTime     time.Time `json:"startTime"`
	DurationMS    int64     `json:"durationMs"`
}

// Store is a thread-safe in-memory history of runs, newest last.
type Store struct {
	mu      sync.RWMutex
	runs    map[string]*Run
	order   []string
	counter int64
}

// New creates a new empty store.
func New() *Store {
	return &Store{runs: make(map[string]*Run)}
}

// AddRun records a run and assigns it an ID. Evicts the oldest run when
// the history is full.
func (s *Store) AddRun(run *Run) *Run {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	run.ID = fmt.Sprintf("run-%06d", s.counter)
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)

	if len(s.order) > MaxRuns {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
	return run
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(id string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, fmt.Errorf("run '%s' not found", id)
	}
	return run, nil
}

// ListRuns returns up to limit runs, newest first. A non-positive limit
// returns the whole history.
func (s *Store) ListRuns(limit int) []*Run {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}

	result := make([]*Run, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, s.runs[s.order[i]])
	}
	return result
}

// Len returns the number of stored runs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
