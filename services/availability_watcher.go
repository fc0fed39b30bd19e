package services

import (
	"encoding/json"
	"time"

	"hotelpms/constants"
	"hotelpms/dto"
	"hotelpms/services/logger"

	"github.com/olahol/melody"
)

// AvailabilityRefresher recomputes the derived view for a given day.
// AvailabilityService is the production implementation.
type AvailabilityRefresher interface {
	Refresh(today time.Time) ([]dto.RoomAvailability, error)
}

// AvailabilityWatcher keeps the derived availability view consistent with
// live mutations on room_types and bookings: every change event triggers a
// full refetch-and-recompute, then the fresh view is pushed to every
// connected dashboard.
type AvailabilityWatcher struct {
	svc  AvailabilityRefresher
	m    *melody.Melody
	log  logger.Logger
	subs []*Subscription
}

// StartAvailabilityWatcher subscribes to both backing tables on hub. The
// returned watcher must be stopped when its consumer goes away.
func StartAvailabilityWatcher(hub *Hub, svc AvailabilityRefresher, m *melody.Melody, log logger.Logger) *AvailabilityWatcher {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	w := &AvailabilityWatcher{svc: svc, m: m, log: log}

	handler := func(ev ChangeEvent) {
		w.recompute(ev)
	}
	w.subs = append(w.subs,
		hub.Subscribe(constants.TableRoomTypes, handler),
		hub.Subscribe(constants.TableBookings, handler),
	)
	return w
}

func (w *AvailabilityWatcher) recompute(ev ChangeEvent) {
	view, err := w.svc.Refresh(Today())
	if err != nil {
		// Keep the last-known-good projection; the next event retries.
		w.log.Error("availability refresh after %s on %s failed: %v", ev.Action, ev.Table, err)
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type": "availability:update",
		"data": view,
	})
	if err != nil {
		w.log.Error("failed to encode availability broadcast: %v", err)
		return
	}

	if w.m != nil {
		if err := w.m.Broadcast(payload); err != nil {
			w.log.Error("failed to broadcast availability update: %v", err)
		}
	}
}

// Stop releases both table subscriptions. Idempotent.
func (w *AvailabilityWatcher) Stop() {
	for _, s := range w.subs {
		s.Unsubscribe()
	}
}
