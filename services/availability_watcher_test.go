package services

import (
	"fmt"
	"testing"
	"time"

	"hotelpms/constants"
	"hotelpms/dto"

	"github.com/stretchr/testify/assert"
)

type fakeRefresher struct {
	calls int
	view  []dto.RoomAvailability
	err   error
}

func (f *fakeRefresher) Refresh(today time.Time) ([]dto.RoomAvailability, error) {
	f.calls++
	return f.view, f.err
}

func TestWatcherRecomputesOncePerEvent(t *testing.T) {
	hub := NewHub()
	refresher := &fakeRefresher{view: []dto.RoomAvailability{{ID: 1, Name: "Deluxe Double"}}}

	w := StartAvailabilityWatcher(hub, refresher, nil, nil)
	defer w.Stop()

	hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeInsert, ID: 1})
	assert.Equal(t, 1, refresher.calls)

	hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeUpdate, ID: 1})
	hub.Publish(ChangeEvent{Table: constants.TableRoomTypes, Action: ChangeUpdate, ID: 2})
	assert.Equal(t, 3, refresher.calls)
}

func TestWatcherIgnoresUnwatchedTables(t *testing.T) {
	hub := NewHub()
	refresher := &fakeRefresher{}

	w := StartAvailabilityWatcher(hub, refresher, nil, nil)
	defer w.Stop()

	hub.Publish(ChangeEvent{Table: "blog_posts", Action: ChangeInsert, ID: 1})
	assert.Equal(t, 0, refresher.calls)
}

func TestWatcherKeepsGoingAfterRefreshFailure(t *testing.T) {
	hub := NewHub()
	refresher := &fakeRefresher{err: fmt.Errorf("store unreachable")}

	w := StartAvailabilityWatcher(hub, refresher, nil, nil)
	defer w.Stop()

	// A failed refresh keeps the last-known-good view; the next event retries.
	hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeInsert, ID: 1})
	refresher.err = nil
	hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeUpdate, ID: 1})

	assert.Equal(t, 2, refresher.calls)
}

func TestWatcherStopReleasesSubscriptions(t *testing.T) {
	hub := NewHub()
	refresher := &fakeRefresher{}

	w := StartAvailabilityWatcher(hub, refresher, nil, nil)
	w.Stop()

	hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeInsert, ID: 1})
	assert.Equal(t, 0, refresher.calls)

	assert.NotPanics(t, w.Stop)
}
