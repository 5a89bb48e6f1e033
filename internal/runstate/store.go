// Package runstate provides an ephemeral, thread-safe store for the
// execution state of one plan run.
//
// A Store is created fresh for each run and discarded afterwards. It uses
// sync.Map because the executor's workers update independent keys
// concurrently while the summary logic reads them; the key space (the
// item IDs) is fixed up front and only the values change.
package runstate

import (
	"sync"

	"github.com/google/uuid"
)

// Status is the execution state of a single work item within a run.
type Status string

const (
	// StatusPending means the item has not been dispatched yet.
	StatusPending Status = "pending"
	// StatusRunning means a worker is currently executing the item.
	StatusRunning Status = "running"
	// StatusCompleted means the item finished successfully.
	StatusCompleted Status = "completed"
	// StatusFailed means the item's handler returned an error.
	StatusFailed Status = "failed"
	// StatusSkipped means the item was never dispatched because an
	// earlier stage failed.
	StatusSkipped Status = "skipped"
)

// Store tracks per-item status and error for a single run.
type Store struct {
	runID    string
	statuses sync.Map // Key: item ID string, Value: Status
	errors   sync.Map // Key: item ID string, Value: error
}

// New creates an empty store with a freshly minted run identifier.
func New() *Store {
	return &Store{runID: uuid.NewString()}
}

// RunID returns the unique identifier of this run.
func (s *Store) RunID() string {
	return s.runID
}

// SetStatus updates the execution status of an item.
func (s *Store) SetStatus(id string, status Status) {
	s.statuses.Store(id, status)
}

// Status retrieves the execution status of an item. Items that were never
// touched report StatusPending.
func (s *Store) Status(id string) Status {
	status, ok := s.statuses.Load(id)
	if !ok {
		return StatusPending
	}
	return status.(Status)
}

// SetError records the failure error of an item.
func (s *Store) SetError(id string, itemErr error) {
	s.errors.Store(id, itemErr)
}

// Err retrieves the recorded error of an item, or nil if it has none.
func (s *Store) Err(id string) error {
	err, ok := s.errors.Load(id)
	if !ok {
		return nil
	}
	return err.(error)
}

// Snapshot returns a copy of all recorded statuses keyed by item ID.
func (s *Store) Snapshot() map[string]Status {
	out := make(map[string]Status)
	s.statuses.Range(func(key, value any) bool {
		out[key.(string)] = value.(Status)
		return true
	})
	return out
}
