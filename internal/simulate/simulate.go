package simulate

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/fliklylike-cyber/Media-Grab/internal/model"
	"github.com/rs/zerolog/log"
)

// Outcome is the resolution of a simulated download.
type Outcome struct {
	Success bool
}

// Operation is a deferred result: it resolves exactly once, after the
// simulated delay has elapsed. There is no cancellation path — a started
// operation always eventually resolves.
type Operation struct {
	done chan Outcome
}

// Done returns the channel on which the outcome is delivered.
func (o *Operation) Done() <-chan Outcome {
	return o.done
}

// NewOperation returns an unresolved operation together with its resolve
// function. The resolve function must be called exactly once.
func NewOperation() (*Operation, func(Outcome)) {
	op := &Operation{done: make(chan Outcome, 1)}
	return op, func(outcome Outcome) {
		op.done <- outcome
	}
}

// Rand is the source of randomness for delays and outcomes. It is an
// interface so tests can pin the result.
type Rand interface {
	Float64() float64
}

// Config controls the simulated operation.
type Config struct {
	DelayMin    time.Duration // Lower bound of the simulated delay
	DelayMax    time.Duration // Upper bound of the simulated delay
	SuccessRate float64       // Probability of a successful outcome, in [0,1]
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		DelayMin:    1500 * time.Millisecond,
		DelayMax:    4 * time.Second,
		SuccessRate: 0.8,
	}
}

// Simulator fakes the download work: it suspends for a duration drawn
// uniformly from [DelayMin, DelayMax] and then resolves with a weighted
// random outcome. No real network or file work happens here.
type Simulator struct {
	cfg Config

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng Rand
}

// NewSimulator creates a Simulator with a time-seeded random source.
func NewSimulator(cfg Config) *Simulator {
	return NewSimulatorWithRand(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewSimulatorWithRand creates a Simulator with the given random source.
func NewSimulatorWithRand(cfg Config, rng Rand) *Simulator {
	if cfg.DelayMax < cfg.DelayMin {
		cfg.DelayMax = cfg.DelayMin
	}
	return &Simulator{
		cfg: cfg,
		rng: rng,
	}
}

// Start begins a simulated download for the submission and returns the
// deferred result. The context is accepted for interface parity with a real
// fetcher but is not used: simulated operations cannot be cancelled.
func (s *Simulator) Start(_ context.Context, sub model.Submission) *Operation {
	s.mu.Lock()
	delay := s.cfg.DelayMin + time.Duration(s.rng.Float64()*float64(s.cfg.DelayMax-s.cfg.DelayMin))
	success := s.rng.Float64() < s.cfg.SuccessRate
	s.mu.Unlock()

	op, resolve := NewOperation()

	log.Debug().
		Str("url", sub.URL).
		Str("format", string(sub.Format)).
		Dur("delay", delay).
		Bool("success", success).
		Msg("Simulated download started")

	time.AfterFunc(delay, func() {
		resolve(Outcome{Success: success})
	})

	return op
}
