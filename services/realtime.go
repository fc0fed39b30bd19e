package services

import (
	"sync"
)

// ChangeAction is the kind of row mutation a change event reports.
type ChangeAction string

const (
	ChangeInsert ChangeAction = "insert"
	ChangeUpdate ChangeAction = "update"
	ChangeDelete ChangeAction = "delete"
)

// ChangeEvent is a push notification that a row in a watched table was
// inserted, updated, or deleted.
type ChangeEvent struct {
	Table  string       `json:"table"`
	Action ChangeAction `json:"action"`
	ID     uint         `json:"id"`
}

// Hub routes change events to table subscribers. Dispatch is edge-triggered:
// every published event reaches every live subscriber of its table, and
// coalescing of bursts is left to the consumers.
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]func(ChangeEvent)
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[uint64]func(ChangeEvent)),
	}
}

// Changes is the hub the controllers publish to after every committed write.
var Changes = NewHub()

// Subscribe registers fn for every event on table. The caller owns the
// returned subscription and must tear it down with Unsubscribe.
func (h *Hub) Subscribe(table string, fn func(ChangeEvent)) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	if h.subs[table] == nil {
		h.subs[table] = make(map[uint64]func(ChangeEvent))
	}
	h.subs[table][id] = fn

	return &Subscription{hub: h, table: table, id: id}
}

// Publish delivers ev to every subscriber of its table. Callbacks run outside
// the hub lock so they may subscribe or unsubscribe freely.
func (h *Hub) Publish(ev ChangeEvent) {
	h.mu.Lock()
	fns := make([]func(ChangeEvent), 0, len(h.subs[ev.Table]))
	for _, fn := range h.subs[ev.Table] {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Subscription is a handle on one table registration.
type Subscription struct {
	hub   *Hub
	table string
	id    uint64
	once  sync.Once
}

// Unsubscribe releases the registration. Safe to call more than once; the
// teardown runs exactly once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		if fns, ok := s.hub.subs[s.table]; ok {
			delete(fns, s.id)
			if len(fns) == 0 {
				delete(s.hub.subs, s.table)
			}
		}
	})
}
