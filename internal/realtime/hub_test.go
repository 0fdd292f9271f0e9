package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"autofixpro/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub()
	go h.Run()
	return h
}

func subscribe(t *testing.T, h *Hub, username string) chan []byte {
	t.Helper()
	c := &client{hub: h, username: username, send: make(chan []byte, clientSendBuf)}
	select {
	case h.register <- c:
	case <-time.After(time.Second):
		t.Fatal("hub did not accept registration")
	}
	return c.send
}

func receiveEvent(t *testing.T, ch chan []byte) entities.NotificationEvent {
	t.Helper()
	select {
	case payload := <-ch:
		var event entities.NotificationEvent
		require.NoError(t, json.Unmarshal(payload, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
		return entities.NotificationEvent{}
	}
}

func assertNoEvent(t *testing.T, ch chan []byte) {
	t.Helper()
	select {
	case payload := <-ch:
		t.Fatalf("unexpected event: %s", payload)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubRoutesDirectEventsByUsername(t *testing.T) {
	h := startHub(t)
	ana := subscribe(t, h, "ana")
	bob := subscribe(t, h, "bob")

	h.NotifyUser("ana", entities.NotificationEvent{Type: entities.EventCustomMessage, Title: "hi"})

	event := receiveEvent(t, ana)
	assert.Equal(t, entities.EventCustomMessage, event.Type)
	assert.Equal(t, "hi", event.Title)
	assertNoEvent(t, bob)
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	h := startHub(t)
	ana := subscribe(t, h, "ana")
	bob := subscribe(t, h, "bob")

	h.NotifyBroadcast(entities.NotificationEvent{Type: entities.EventCustomMessage, Title: "all"})

	assert.Equal(t, "all", receiveEvent(t, ana).Title)
	assert.Equal(t, "all", receiveEvent(t, bob).Title)
}

func TestHubStateChangeResolvesOwner(t *testing.T) {
	h := startHub(t)
	ana := subscribe(t, h, "ana")

	order := entities.ServiceOrder{ID: "ord-1", State: entities.OrderStateInRepair}
	vehicle := entities.Vehicle{ID: "veh-1", Brand: "Toyota", Model: "Yaris", Owner: entities.OwnerContact{Username: "ana"}}

	h.NotifyStateChange(order, vehicle, entities.OrderStateInDiagnosis)

	event := receiveEvent(t, ana)
	assert.Equal(t, entities.EventStateChanged, event.Type)
	assert.Equal(t, string(entities.OrderStateInDiagnosis), event.PreviousState)
	assert.Equal(t, string(entities.OrderStateInRepair), event.NewState)
	assert.Equal(t, 50, event.Progress)
}

func TestHubStateChangeWithoutUsernameIsSilent(t *testing.T) {
	h := startHub(t)
	ana := subscribe(t, h, "ana")

	order := entities.ServiceOrder{ID: "ord-1", State: entities.OrderStateInRepair}
	h.NotifyStateChange(order, entities.Vehicle{ID: "veh-1"}, entities.OrderStateReceived)

	assertNoEvent(t, ana)
}

func TestHubCompletionEventIsAlwaysFullProgress(t *testing.T) {
	h := startHub(t)
	ana := subscribe(t, h, "ana")

	order := entities.ServiceOrder{ID: "ord-1", State: entities.OrderStateCompleted}
	vehicle := entities.Vehicle{ID: "veh-1", Owner: entities.OwnerContact{Username: "ana"}}

	h.NotifyCompletion(order, vehicle)

	event := receiveEvent(t, ana)
	assert.Equal(t, entities.EventOrderComplete, event.Type)
	assert.Equal(t, 100, event.Progress)
}

func TestHubOrderCreatedNotifiesOwnerAndStaffTopic(t *testing.T) {
	h := startHub(t)
	owner := subscribe(t, h, "ana")
	staff := subscribe(t, h, "staff")

	order := entities.ServiceOrder{ID: "ord-1", State: entities.OrderStateReceived}
	vehicle := entities.Vehicle{ID: "veh-1", Plate: "ABC123", Owner: entities.OwnerContact{Username: "ana"}}

	h.NotifyOrderCreated(order, vehicle)

	// Owner receives both their private confirmation and the broadcast.
	first := receiveEvent(t, owner)
	second := receiveEvent(t, owner)
	titles := []string{first.Title, second.Title}
	assert.Contains(t, titles, "Repair Request Created")
	assert.Contains(t, titles, "New Repair Request")

	assert.Equal(t, "New Repair Request", receiveEvent(t, staff).Title)
}
