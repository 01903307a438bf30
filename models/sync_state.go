// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// Reasons a kit is not synced that are not transport failures.
var (
	ErrNotStarted          = errors.New("not started")
	ErrNoNetworkConnection = errors.New("no network connection")
)

// SyncState is one of [Synced], [NotSynced] or [Syncing].
type SyncState interface {
	fmt.Stringer
	isSyncState()
}

// Synced means the local mirror reflects the last observed ledger.
type Synced struct{}

// NotSynced carries the reason the last cycle (or the timer) failed.
type NotSynced struct {
	Err error
}

// Syncing means a cycle is running or the timer just became ready.
type Syncing struct {
	Progress *float64
}

func (Synced) isSyncState()    {}
func (NotSynced) isSyncState() {}
func (Syncing) isSyncState()   {}

func (Synced) String() string { return "Synced" }

func (s NotSynced) String() string {
	if s.Err == nil {
		return "NotSynced"
	}
	return fmt.Sprintf("NotSynced %T - message: %s", s.Err, s.Err.Error())
}

func (s Syncing) String() string {
	if s.Progress == nil {
		return "Syncing"
	}
	return fmt.Sprintf("Syncing %v", *s.Progress*100)
}

// SyncStatesEqual reports whether a transition from a to b is a no-op.
// NotSynced states are equal when their errors match.
func SyncStatesEqual(a, b SyncState) bool {
	switch av := a.(type) {
	case Synced:
		_, ok := b.(Synced)
		return ok
	case NotSynced:
		bv, ok := b.(NotSynced)
		if !ok {
			return false
		}
		if av.Err == nil || bv.Err == nil {
			return av.Err == bv.Err
		}
		return errors.Is(av.Err, bv.Err) || av.Err.Error() == bv.Err.Error()
	case Syncing:
		bv, ok := b.(Syncing)
		if !ok {
			return false
		}
		if av.Progress == nil || bv.Progress == nil {
			return av.Progress == nil && bv.Progress == nil
		}
		return *av.Progress == *bv.Progress
	default:
		return false
	}
}

// SyncStateName returns a short machine-readable name for s.
func SyncStateName(s SyncState) string {
	switch s.(type) {
	case Synced:
		return "synced"
	case NotSynced:
		return "not_synced"
	case Syncing:
		return "syncing"
	default:
		return "unknown"
	}
}
