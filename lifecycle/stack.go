// Package lifecycle implements staged, ordered resource acquisition.
//
// A subsystem pushes one Resource per acquisition step as the step succeeds.
// When a later step fails, the stack releases exactly the held resources,
// most recent first, and each resource at most once. Closing a healthy stack
// is the same teardown with every step held.
package lifecycle

import (
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// Resource is one acquired step.
type Resource struct {
	stack    *Stack
	step     string
	release  func() error
	released bool
}

// Step returns the step name the resource was pushed under.
func (r *Resource) Step() string {
	return r.step
}

// Released reports whether the resource has been let go.
func (r *Resource) Released() bool {
	return r.released
}

// Release frees the resource once. Later calls are no-ops.
func (r *Resource) Release() error {
	if r == nil || r.released {
		return nil
	}
	r.released = true
	s := r.stack
	s.forget(r)

	if r.release == nil {
		return nil
	}
	if err := r.release(); err != nil {
		s.log.Warn().Err(err).Str("step", r.step).Msg("release failed")
		return err
	}
	s.log.Debug().Str("step", r.step).Msg("released")
	return nil
}

// Stack owns the resources of one subsystem in acquisition order.
type Stack struct {
	name   string
	log    zerolog.Logger
	held   []*Resource
	closed bool
}

// New creates an empty stack for the named subsystem.
func New(name string, log zerolog.Logger) *Stack {
	return &Stack{
		name: name,
		log:  log.With().Str("subsystem", name).Logger(),
	}
}

// Name returns the subsystem name.
func (s *Stack) Name() string {
	return s.name
}

// Closed reports whether the stack has been torn down.
func (s *Stack) Closed() bool {
	return s.closed
}

// Held lists the steps still owned, oldest first.
func (s *Stack) Held() []string {
	out := make([]string, 0, len(s.held))
	for _, r := range s.held {
		out = append(out, r.step)
	}
	return out
}

// Push records a successfully acquired step. release may be nil when the step
// owns nothing that needs explicit freeing. Pushing onto a closed stack
// releases the resource immediately.
func (s *Stack) Push(step string, release func() error) *Resource {
	r := &Resource{stack: s, step: step, release: release}
	if s.closed {
		s.log.Warn().Str("step", step).Msg("acquired after teardown, releasing")
		s.held = append(s.held, r)
		_ = r.Release()
		return r
	}
	s.held = append(s.held, r)
	s.log.Debug().Str("step", step).Msg("acquired")
	return r
}

// Release frees the most recent held resource pushed under step ahead of
// teardown. It returns false if no such resource is held.
func (s *Stack) Release(step string) (bool, error) {
	for i := len(s.held) - 1; i >= 0; i-- {
		if s.held[i].step == step {
			return true, s.held[i].Release()
		}
	}
	return false, nil
}

// Do runs one acquisition step. On failure nothing from this step is held and
// the stack is rolled back.
func (s *Stack) Do(step string, kind Kind, acquire func() (func() error, error)) error {
	release, err := acquire()
	if err != nil {
		return s.Fail(step, kind, err)
	}
	s.Push(step, release)
	return nil
}

// Step runs an acquisition that yields a value, pushing release(v) on success.
func Step[T any](s *Stack, step string, kind Kind, acquire func() (T, error), release func(T) error) (T, error) {
	v, err := acquire()
	if err != nil {
		var zero T
		return zero, s.Fail(step, kind, err)
	}
	var rel func() error
	if release != nil {
		rel = func() error { return release(v) }
	}
	s.Push(step, rel)
	return v, nil
}

// Fail rolls the stack back and returns a *StepError for step. Release
// failures during rollback are appended to the returned error.
func (s *Stack) Fail(step string, kind Kind, cause error) error {
	kind = Classify(cause, kind)
	stepErr := &StepError{Subsystem: s.name, Step: step, Kind: kind, Err: cause}
	s.log.Error().Err(cause).Str("step", step).Stringer("kind", kind).Strs("rollback", s.Held()).Msg("acquisition failed")

	if err := s.teardown(); err != nil {
		return multierror.Append(stepErr, err)
	}
	return stepErr
}

// Rollback releases every held resource, most recent first.
func (s *Stack) Rollback() error {
	return s.teardown()
}

// Close tears down a fully acquired stack. It is safe to call more than once.
func (s *Stack) Close() error {
	return s.teardown()
}

func (s *Stack) teardown() error {
	s.closed = true

	var result *multierror.Error
	for len(s.held) > 0 {
		r := s.held[len(s.held)-1]
		if err := r.Release(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func (s *Stack) forget(r *Resource) {
	for i := len(s.held) - 1; i >= 0; i-- {
		if s.held[i] == r {
			s.held = append(s.held[:i], s.held[i+1:]...)
			return
		}
	}
}
