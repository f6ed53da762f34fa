package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var order []int

	bus.Connect(SigAuthenticated, func(_ any) { order = append(order, 1) })
	bus.Connect(SigAuthenticated, func(_ any) { order = append(order, 2) })

	bus.Emit(SigAuthenticated, nil)

	assert.Equal(t, []int{1, 2}, order)
}

func TestBus_SenderPassedToHandler(t *testing.T) {
	bus := NewBus()
	var got any

	bus.Connect(SigRoleChanged, func(sender any) { got = sender })
	bus.Emit(SigRoleChanged, "payload")

	assert.Equal(t, "payload", got)
}

func TestBus_SignalWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewBus()

	assert.NotPanics(t, func() { bus.Emit(SigAnonymous, nil) })
}
