package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-stellar-kit/internal/logger"
)

// Serial is a single-consumer job queue. At most one job runs at a time and
// at most one job waits behind it: a job submitted while another is already
// pending is coalesced into the pending one.
type Serial struct {
	name string

	mu      sync.Mutex
	pending chan Job
	cancel  context.CancelFunc
	done    chan struct{}

	logger *logger.Logger
}

// NewSerial creates a stopped queue. name only appears in logs.
func NewSerial(name string, log *logger.Logger) *Serial {
	return &Serial{name: name, logger: log}
}

// Start launches the consumer goroutine. Calling Start on a running queue
// does nothing.
func (s *Serial) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.pending = make(chan Job, 1)
	s.done = make(chan struct{})

	go s.run(ctx, s.pending, s.done)
}

// Stop cancels the running job, drops the pending one and waits for the
// consumer to exit.
func (s *Serial) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done, s.pending = nil, nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Submit enqueues job without blocking. It reports false when the job was
// coalesced into an already pending one or the queue is stopped.
func (s *Serial) Submit(job Job) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return false
	}

	select {
	case s.pending <- job:
		return true
	default:
		s.logger.Debug().Str("func", "Serial.Submit").Str("queue", s.name).Msg("job coalesced with pending one")
		return false
	}
}

func (s *Serial) run(ctx context.Context, pending <-chan Job, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			return
		case job := <-pending:
			if ctx.Err() != nil {
				return
			}
			s.exec(ctx, job)
		}
	}
}

func (s *Serial) exec(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Str("func", "Serial.exec").Str("queue", s.name).Interface("panic", r).Msg("job panicked")
		}
	}()
	job(ctx)
}
