package store

import "sort"

// EventKind says what kind of write happened.
type EventKind int

const (
	EventReplaced EventKind = iota // one record replaced in place
	EventReset                     // whole sequence replaced
)

func (k EventKind) String() string {
	switch k {
	case EventReplaced:
		return "replaced"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Event describes one write. Index is -1 for resets.
type Event struct {
	Kind  EventKind
	Index int
	ID    string
}

// Subscribe registers fn to run after every write, in subscription order.
// The returned function removes the subscription; calling it twice is safe.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(Event), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
