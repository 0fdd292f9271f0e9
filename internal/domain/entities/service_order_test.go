package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStateProgress(t *testing.T) {
	cases := map[OrderState]int{
		OrderStateReceived:    10,
		OrderStateInDiagnosis: 25,
		OrderStateInRepair:    50,
		OrderStateInTesting:   80,
		OrderStateCompleted:   100,
		OrderStateDelivered:   100,
		OrderStateCancelled:   0,
		OrderState("BOGUS"):   0,
	}
	for state, want := range cases {
		assert.Equal(t, want, state.Progress(), "progress for %s", state)
	}
}

func TestOrderStateSMSWorthy(t *testing.T) {
	assert.True(t, OrderStateCompleted.SMSWorthy())
	assert.True(t, OrderStateInRepair.SMSWorthy())

	for _, state := range []OrderState{
		OrderStateReceived, OrderStateInDiagnosis, OrderStateInTesting,
		OrderStateDelivered, OrderStateCancelled,
	} {
		assert.False(t, state.SMSWorthy(), "state %s should not trigger SMS", state)
	}
}

func TestOrderStateIsOpen(t *testing.T) {
	assert.False(t, OrderStateCompleted.IsOpen())
	assert.False(t, OrderStateDelivered.IsOpen())
	assert.True(t, OrderStateReceived.IsOpen())
	assert.True(t, OrderStateInRepair.IsOpen())
	assert.True(t, OrderStateCancelled.IsOpen())
}

func TestOrderStateIsDefined(t *testing.T) {
	for _, state := range []OrderState{
		OrderStateReceived, OrderStateInDiagnosis, OrderStateInRepair,
		OrderStateInTesting, OrderStateCompleted, OrderStateDelivered,
		OrderStateCancelled,
	} {
		assert.True(t, state.IsDefined(), "state %s", state)
	}
	assert.False(t, OrderState("RECEBIDO").IsDefined())
	assert.False(t, OrderState("").IsDefined())
}

func TestPriorityIsDefined(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent} {
		assert.True(t, p.IsDefined())
	}
	assert.False(t, Priority("CRITICAL").IsDefined())
}

func TestServiceOrderAssigned(t *testing.T) {
	assert.False(t, ServiceOrder{}.Assigned())
	assert.True(t, ServiceOrder{TechnicianID: "tech-1"}.Assigned())
}
