// Package inflight tracks which row actions are currently processing so a
// second submit of the same action is refused while other rows stay usable.
package inflight

import (
	"errors"
	"sync"

	dErrors "paynet/pkg/domain-errors"
)

// ErrBusy is returned by Run while the same key is still processing.
var ErrBusy = &dErrors.Error{Code: dErrors.CodeConflict, Message: "action already in progress"}

// Tracker is a set of keys in the Processing state. Keys absent from the set
// are Idle. Safe for concurrent use.
type Tracker struct {
	mu     sync.Mutex
	active map[string]struct{}
}

// New creates an empty tracker.
func New() *Tracker {
	return &Tracker{active: make(map[string]struct{})}
}

// Begin moves key from Idle to Processing. It returns false when key is
// already processing, in which case the caller must not proceed.
func (t *Tracker) Begin(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, busy := t.active[key]; busy {
		return false
	}
	t.active[key] = struct{}{}
	return true
}

// Done returns key to Idle. It is called on success and failure alike.
func (t *Tracker) Done(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.active, key)
}

// Processing reports whether key is currently in flight.
func (t *Tracker) Processing(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, busy := t.active[key]
	return busy
}

// Run executes fn with key held in Processing, returning ErrBusy without
// calling fn when key is already in flight.
func (t *Tracker) Run(key string, fn func() error) error {
	if !t.Begin(key) {
		return ErrBusy
	}
	defer t.Done(key)
	return fn()
}

// IsBusy reports whether err came from a refused Run.
func IsBusy(err error) bool {
	var e *dErrors.Error
	return errors.As(err, &e) && e == ErrBusy
}

// Key joins an action name and row id, e.g. Key("refund", "tx_42").
func Key(action, rowID string) string {
	return action + ":" + rowID
}
