package services

import (
	"testing"

	"hotelpms/constants"

	"github.com/stretchr/testify/assert"
)

func TestHubRoutesByTable(t *testing.T) {
	hub := NewHub()

	var bookingEvents, roomTypeEvents []ChangeEvent
	hub.Subscribe(constants.TableBookings, func(ev ChangeEvent) {
		bookingEvents = append(bookingEvents, ev)
	})
	hub.Subscribe(constants.TableRoomTypes, func(ev ChangeEvent) {
		roomTypeEvents = append(roomTypeEvents, ev)
	})

	hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeInsert, ID: 1})
	hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeUpdate, ID: 1})
	hub.Publish(ChangeEvent{Table: constants.TableRoomTypes, Action: ChangeDelete, ID: 2})

	assert.Len(t, bookingEvents, 2)
	assert.Len(t, roomTypeEvents, 1)
	assert.Equal(t, ChangeDelete, roomTypeEvents[0].Action)
	assert.Equal(t, uint(2), roomTypeEvents[0].ID)
}

func TestHubEveryEventReachesEverySubscriber(t *testing.T) {
	hub := NewHub()

	first := 0
	second := 0
	hub.Subscribe(constants.TableBookings, func(ChangeEvent) { first++ })
	hub.Subscribe(constants.TableBookings, func(ChangeEvent) { second++ })

	for i := 0; i < 3; i++ {
		hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeUpdate, ID: uint(i)})
	}

	assert.Equal(t, 3, first)
	assert.Equal(t, 3, second)
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub()

	calls := 0
	sub := hub.Subscribe(constants.TableBookings, func(ChangeEvent) { calls++ })

	hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeInsert, ID: 1})
	sub.Unsubscribe()
	hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeInsert, ID: 2})

	assert.Equal(t, 1, calls)
}

func TestHubUnsubscribeIsIdempotent(t *testing.T) {
	hub := NewHub()

	sub := hub.Subscribe(constants.TableBookings, func(ChangeEvent) {})
	sub.Unsubscribe()

	assert.NotPanics(t, func() {
		sub.Unsubscribe()
		sub.Unsubscribe()
	})
}

func TestHubPublishWithoutSubscribers(t *testing.T) {
	hub := NewHub()

	assert.NotPanics(t, func() {
		hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeInsert, ID: 1})
	})
}

func TestHubSubscriberMayUnsubscribeDuringDispatch(t *testing.T) {
	hub := NewHub()

	var sub *Subscription
	calls := 0
	sub = hub.Subscribe(constants.TableBookings, func(ChangeEvent) {
		calls++
		sub.Unsubscribe()
	})

	hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeInsert, ID: 1})
	hub.Publish(ChangeEvent{Table: constants.TableBookings, Action: ChangeInsert, ID: 2})

	assert.Equal(t, 1, calls)
}
