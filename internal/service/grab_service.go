package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/fliklylike-cyber/Media-Grab/internal/model"
	"github.com/fliklylike-cyber/Media-Grab/internal/platform"
	"github.com/fliklylike-cyber/Media-Grab/internal/simulate"
	"github.com/fliklylike-cyber/Media-Grab/internal/validate"
	"github.com/fliklylike-cyber/Media-Grab/internal/worker"
	"github.com/rs/zerolog/log"
)

// FailureMessage is the generic user-facing message for a randomly failed
// download. The real cause is a coin flip, so there is nothing more to say.
const FailureMessage = "Download failed. Please try again."

// Gate accepts at most one submission at a time and returns its deferred
// outcome.
type Gate interface {
	Submit(ctx context.Context, sub model.Submission) (<-chan simulate.Outcome, error)
	State() model.State
}

// GrabService runs the full submission lifecycle: syntax validation,
// advisory platform classification, and the simulated download behind the
// busy gate.
type GrabService struct {
	gate  Gate
	rules []platform.Rule

	accepted  atomic.Uint64
	rejected  atomic.Uint64
	succeeded atomic.Uint64
	failed    atomic.Uint64
}

// NewGrabService constructs a GrabService using the default platform rules.
func NewGrabService(gate Gate) *GrabService {
	return &GrabService{
		gate:  gate,
		rules: platform.DefaultRules,
	}
}

// Grab processes one submission and blocks until its outcome is known.
// Empty and malformed URLs are rejected synchronously, before the busy state
// is ever entered. An unmatched platform is not an error: it only emits an
// advisory log and the submission proceeds unchanged.
func (s *GrabService) Grab(ctx context.Context, sub model.Submission) (model.Result, error) {
	sub.URL = strings.TrimSpace(sub.URL)

	if err := validate.CheckURL(sub.URL); err != nil {
		s.rejected.Add(1)
		return model.Result{}, err
	}

	name, matched := platform.ClassifyWith(s.rules, sub.URL)
	if !matched {
		log.Warn().Str("url", sub.URL).Msg("Unsupported platform, processing anyway")
	}

	outcomeChan, err := s.gate.Submit(ctx, sub)
	if err != nil {
		if errors.Is(err, worker.ErrBusy) {
			s.rejected.Add(1)
		}
		return model.Result{}, err
	}

	s.accepted.Add(1)

	select {
	case <-ctx.Done():
		return model.Result{}, ctx.Err()
	case outcome := <-outcomeChan:
		if !outcome.Success {
			s.failed.Add(1)
			return model.Result{
				Status:   model.StatusError,
				Message:  FailureMessage,
				Platform: name,
			}, nil
		}

		s.succeeded.Add(1)
		return model.Result{
			Status:   model.StatusSuccess,
			Message:  fmt.Sprintf("Success! Your %s is ready for download.", sub.Format.Label()),
			Platform: name,
		}, nil
	}
}

// State reports whether a download is currently being simulated.
func (s *GrabService) State() model.State {
	return s.gate.State()
}

// Stats returns the lifetime submission counters.
func (s *GrabService) Stats() model.Stats {
	return model.Stats{
		Accepted:  s.accepted.Load(),
		Rejected:  s.rejected.Load(),
		Succeeded: s.succeeded.Load(),
		Failed:    s.failed.Load(),
	}
}

// CheckURL exposes the pure syntax predicate for the debug surfaces.
func (s *GrabService) CheckURL(raw string) error {
	return validate.CheckURL(raw)
}

// Classify exposes the pure platform predicate for the debug surfaces.
func (s *GrabService) Classify(raw string) (string, bool) {
	return platform.ClassifyWith(s.rules, raw)
}
