// Package store holds the shared, ordered sequence of order records.
// All writers go through Replace, Reset or Restore; every write notifies
// subscribers after the lock is released.
package store

import (
	"errors"
	"fmt"
	"sync"

	"ordertable/internal/logging"
	"ordertable/internal/orders"

	"github.com/google/uuid"
)

var (
	// ErrIndexOutOfRange is returned when a write addresses no record.
	ErrIndexOutOfRange = errors.New("store: index out of range")
	// ErrStaleRecord is returned when the record at an index is no longer
	// the one the caller read, usually because the store was reset.
	ErrStaleRecord = errors.New("store: record changed since it was read")
)

// Store is the single mutable sequence of orders shared by the UI and CLI.
type Store struct {
	mu     sync.RWMutex
	orders []orders.Order
	seed   []orders.Order

	subMu  sync.Mutex
	subs   map[int]func(Event)
	nextID int
}

// New creates a store from seed. Records without an ID get a fresh UUID.
// The seed is also kept as the state Restore returns to.
func New(seed []orders.Order) *Store {
	s := &Store{subs: make(map[int]func(Event))}
	s.seed = assignIDs(seed)
	s.orders = clone(s.seed)
	logging.StoreDebug("store created with %d orders", len(s.orders))
	return s
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// At returns a copy of the record at index i.
func (s *Store) At(i int) (orders.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.orders) {
		return orders.Order{}, fmt.Errorf("read %d of %d: %w", i, len(s.orders), ErrIndexOutOfRange)
	}
	return s.orders[i], nil
}

// Snapshot returns a copy of every record in store order.
func (s *Store) Snapshot() []orders.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.orders)
}

// Seed returns a copy of the state Restore returns to.
func (s *Store) Seed() []orders.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.seed)
}

// Replace swaps the record at index i for o. id must be the ID of the record
// currently at i; the replacement keeps that ID. No other record changes.
func (s *Store) Replace(i int, id string, o orders.Order) error {
	s.mu.Lock()
	if i < 0 || i >= len(s.orders) {
		n := len(s.orders)
		s.mu.Unlock()
		return fmt.Errorf("replace %d of %d: %w", i, n, ErrIndexOutOfRange)
	}
	if s.orders[i].ID != id {
		s.mu.Unlock()
		return fmt.Errorf("replace %d (%s): %w", i, id, ErrStaleRecord)
	}
	o.ID = id
	s.orders[i] = o
	s.mu.Unlock()

	logging.Store("replaced order %d (%s) user=%q", i, id, o.User)
	s.notify(Event{Kind: EventReplaced, Index: i, ID: id})
	return nil
}

// Reset replaces the whole sequence and the restore state with seed.
func (s *Store) Reset(seed []orders.Order) {
	fresh := assignIDs(seed)
	s.mu.Lock()
	s.seed = fresh
	s.orders = clone(fresh)
	s.mu.Unlock()

	logging.Store("store reset with %d orders", len(fresh))
	s.notify(Event{Kind: EventReset, Index: -1})
}

// Restore discards every edit and returns to the last seed.
func (s *Store) Restore() {
	s.mu.Lock()
	s.orders = clone(s.seed)
	n := len(s.orders)
	s.mu.Unlock()

	logging.Store("store restored to %d seed orders", n)
	s.notify(Event{Kind: EventReset, Index: -1})
}

func assignIDs(in []orders.Order) []orders.Order {
	out := clone(in)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}

func clone(in []orders.Order) []orders.Order {
	out := make([]orders.Order, len(in))
	copy(out, in)
	return out
}
