package service

import (
	"errors"
	"fmt"
)

// TimerState is one of [TimerReady] or [TimerNotReady].
type TimerState interface {
	fmt.Stringer
	isTimerState()
}

// TimerReady means the ledger is reachable and the timer is ticking.
type TimerReady struct{}

// TimerNotReady carries the reason the timer does not tick:
// models.ErrNotStarted or models.ErrNoNetworkConnection.
type TimerNotReady struct {
	Err error
}

func (TimerReady) isTimerState()    {}
func (TimerNotReady) isTimerState() {}

func (TimerReady) String() string { return "Ready" }

func (s TimerNotReady) String() string {
	if s.Err == nil {
		return "NotReady"
	}
	return "NotReady(" + s.Err.Error() + ")"
}

func timerStatesEqual(a, b TimerState) bool {
	switch av := a.(type) {
	case TimerReady:
		_, ok := b.(TimerReady)
		return ok
	case TimerNotReady:
		bv, ok := b.(TimerNotReady)
		return ok && errors.Is(av.Err, bv.Err)
	default:
		return false
	}
}
