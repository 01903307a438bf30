// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-stellar-kit/internal/adapter"
	"github.com/MKhiriev/go-stellar-kit/internal/logger"
	"github.com/MKhiriev/go-stellar-kit/models"
)

// DefaultSyncInterval is the tick period used when none is configured.
const DefaultSyncInterval = 15 * time.Second

type pollTimer struct {
	conn     adapter.ConnectionManager
	interval time.Duration

	mu       sync.Mutex
	started  bool
	ctx      context.Context
	listener TimerListener
	state    TimerState

	tickCancel context.CancelFunc
	tickDone   chan struct{}

	logger *logger.Logger
}

// NewSyncTimer creates a stopped timer driven by conn. If interval is zero or
// negative it defaults to [DefaultSyncInterval].
func NewSyncTimer(conn adapter.ConnectionManager, interval time.Duration, logger *logger.Logger) SyncTimer {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &pollTimer{
		conn:     conn,
		interval: interval,
		state:    TimerNotReady{Err: models.ErrNotStarted},
		logger:   logger,
	}
}

// Start implements SyncTimer. It starts the connection manager and evaluates
// connectivity right away. Starting a started timer re-evaluates
// connectivity.
func (t *pollTimer) Start(ctx context.Context, listener TimerListener) {
	t.mu.Lock()
	t.started = true
	t.ctx = ctx
	t.listener = listener
	t.mu.Unlock()

	t.conn.SetListener(t.handleConnectionChange)
	t.conn.Start(ctx)
	t.handleConnectionChange()
}

// Stop implements SyncTimer. It blocks until the tick goroutine has exited.
func (t *pollTimer) Stop() {
	t.conn.SetListener(nil)

	t.mu.Lock()
	t.started = false
	done := t.stopTickingLocked()
	t.state = TimerNotReady{Err: models.ErrNotStarted}
	t.listener = nil
	t.ctx = nil
	t.mu.Unlock()

	if done != nil {
		<-done
	}
	t.conn.Stop()
}

func (t *pollTimer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *pollTimer) handleConnectionChange() {
	t.mu.Lock()
	if !t.started {
		t.mu.Unlock()
		return
	}

	connected := t.conn.IsConnected()

	var (
		next TimerState = TimerReady{}
		done chan struct{}
	)
	if !connected {
		next = TimerNotReady{Err: models.ErrNoNetworkConnection}
		done = t.stopTickingLocked()
	}

	changed := !timerStatesEqual(t.state, next)
	t.state = next
	listener := t.listener
	t.mu.Unlock()

	if done != nil {
		<-done
	}

	if changed {
		t.logger.Info().Str("func", "pollTimer.handleConnectionChange").Str("state", next.String()).Msg("timer state changed")
		if listener != nil {
			listener.OnTimerStateChanged(next)
		}
	}

	// The listener learns about Ready before the first tick reaches it.
	if connected {
		t.mu.Lock()
		if _, ready := t.state.(TimerReady); ready && t.started {
			t.startTickingLocked()
		}
		t.mu.Unlock()
	}
}

func (t *pollTimer) startTickingLocked() {
	if t.tickCancel != nil || t.listener == nil {
		return
	}

	ctx, cancel := context.WithCancel(t.ctx)
	t.tickCancel = cancel
	t.tickDone = make(chan struct{})

	go t.tick(ctx, t.listener, t.tickDone)
}

func (t *pollTimer) stopTickingLocked() chan struct{} {
	if t.tickCancel == nil {
		return nil
	}
	t.tickCancel()
	done := t.tickDone
	t.tickCancel, t.tickDone = nil, nil
	return done
}

func (t *pollTimer) tick(ctx context.Context, listener TimerListener, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return
		}
		listener.OnTick()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
