package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fliklylike-cyber/Media-Grab/internal/model"
	"github.com/fliklylike-cyber/Media-Grab/internal/simulate"
	"github.com/rs/zerolog/log"
)

// ErrBusy is returned by Submit while another download is in flight.
var ErrBusy = errors.New("another download is in progress")

// Resolver produces the deferred result of one submission. The simulator
// satisfies it today; a real fetcher would take its place.
type Resolver interface {
	Start(ctx context.Context, sub model.Submission) *simulate.Operation
}

type task struct {
	sub  model.Submission
	done chan simulate.Outcome
}

// ResolverWorker runs submissions one at a time. Acceptance is decided by
// the busy slot: Submit claims it atomically, so a valid submission to an
// idle worker is always accepted, regardless of where the resolver loop is
// between receives. Everything else is rejected immediately with ErrBusy.
// This is the Idle -> Busy -> Idle gate of the service.
type ResolverWorker struct {
	resolver     Resolver
	requestChan  chan task
	stopChan     chan struct{}
	busy         atomic.Bool
	closed       atomic.Bool
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// NewResolverWorker creates a worker driving the given resolver.
func NewResolverWorker(resolver Resolver) *ResolverWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &ResolverWorker{
		resolver:    resolver,
		requestChan: make(chan task, 1),
		stopChan:    make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start launches the resolver loop.
func (w *ResolverWorker) Start() {
	log.Info().Msg("Starting resolver worker")

	w.wg.Add(1)
	go w.run()
}

func (w *ResolverWorker) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			log.Debug().Msg("Resolver worker shutting down")
			w.drainPending()
			return

		case <-w.stopChan:
			log.Debug().Msg("Stop requested, resolver worker exiting")
			w.drainPending()
			return

		case t := <-w.requestChan:
			op := w.resolver.Start(w.ctx, t.sub)

			select {
			case outcome := <-op.Done():
				t.done <- outcome
			case <-w.ctx.Done():
				// Forced shutdown mid-operation: unblock the waiter with a failure.
				t.done <- simulate.Outcome{}
			}

			w.busy.Store(false)
		}
	}
}

// drainPending unblocks a waiter whose submission was accepted but never
// picked up before the loop exited.
func (w *ResolverWorker) drainPending() {
	select {
	case t := <-w.requestChan:
		t.done <- simulate.Outcome{}
		w.busy.Store(false)
	default:
	}
}

// Submit hands a submission to the worker. It never blocks: if the busy slot
// is already claimed the submission is rejected with ErrBusy and the caller
// must resubmit later.
func (w *ResolverWorker) Submit(ctx context.Context, sub model.Submission) (<-chan simulate.Outcome, error) {
	if w.closed.Load() {
		return nil, context.Canceled
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !w.busy.CompareAndSwap(false, true) {
		log.Debug().Str("url", sub.URL).Msg("Submission rejected, worker busy")
		return nil, ErrBusy
	}

	if w.closed.Load() {
		w.busy.Store(false)
		return nil, context.Canceled
	}

	t := task{sub: sub, done: make(chan simulate.Outcome, 1)}

	// The slot is held, so the buffered hand-over never blocks.
	w.requestChan <- t
	return t.done, nil
}

// State reports whether a simulated operation is currently in flight.
func (w *ResolverWorker) State() model.State {
	if w.busy.Load() {
		return model.StateBusy
	}
	return model.StateIdle
}

// Shutdown stops the worker, waiting up to timeout for an in-flight
// operation to resolve before forcing it.
func (w *ResolverWorker) Shutdown(timeout time.Duration) error {
	var shutdownErr error

	w.shutdownOnce.Do(func() {
		log.Info().Msg("Shutting down resolver worker")

		w.closed.Store(true)
		close(w.stopChan)

		done := make(chan struct{})
		go func() {
			w.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			log.Info().Msg("Resolver worker shut down gracefully")
		case <-time.After(timeout):
			log.Warn().Msg("Resolver worker shutdown timeout, forcing shutdown")
			w.cancel()
			<-done
			shutdownErr = context.DeadlineExceeded
		}
	})

	return shutdownErr
}
