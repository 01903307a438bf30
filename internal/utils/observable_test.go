package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservable_GetSet(t *testing.T) {
	o := NewObservable(1, nil)
	assert.Equal(t, 1, o.Get())

	assert.True(t, o.Set(2))
	assert.Equal(t, 2, o.Get())
}

func TestObservable_EqualSuppressesNoop(t *testing.T) {
	o := NewObservable(1, func(a, b int) bool { return a == b })

	assert.False(t, o.Set(1))
	assert.True(t, o.Set(3))
}

func TestObservable_SubscribeReceivesCurrentThenChanges(t *testing.T) {
	o := NewObservable("a", nil)
	ch, cancel := o.Subscribe()
	defer cancel()

	assert.Equal(t, "a", <-ch)

	o.Set("b")
	assert.Equal(t, "b", <-ch)
}

func TestObservable_SlowSubscriberGetsLatest(t *testing.T) {
	o := NewObservable(0, nil)
	ch, cancel := o.Subscribe()
	defer cancel()

	for i := 1; i <= 10; i++ {
		o.Set(i)
	}

	assert.Equal(t, 10, <-ch)
	select {
	case v := <-ch:
		t.Fatalf("unexpected extra value %d", v)
	default:
	}
}

func TestObservable_CancelClosesChannel(t *testing.T) {
	o := NewObservable(0, nil)
	ch, cancel := o.Subscribe()
	<-ch

	cancel()
	cancel()

	_, open := <-ch
	require.False(t, open)

	// Set after cancel must not panic
	o.Set(5)
	assert.Equal(t, 5, o.Get())
}
