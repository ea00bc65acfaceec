package lifecycle

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/milk9111/swarm/pool"
)

// Kind classifies why a step failed.
type Kind uint8

const (
	KindAllocation Kind = iota + 1
	KindAssetLoad
	KindDeviceBind
	KindPoolExhaustion
)

var (
	ErrAllocation     = errors.New("lifecycle: allocation failure")
	ErrAssetLoad      = errors.New("lifecycle: asset load failure")
	ErrDeviceBind     = errors.New("lifecycle: device bind failure")
	ErrPoolExhaustion = errors.New("lifecycle: pool exhausted")
)

func (k Kind) String() string {
	switch k {
	case KindAllocation:
		return "allocation"
	case KindAssetLoad:
		return "asset load"
	case KindDeviceBind:
		return "device bind"
	case KindPoolExhaustion:
		return "pool exhaustion"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) sentinel() error {
	switch k {
	case KindAllocation:
		return ErrAllocation
	case KindAssetLoad:
		return ErrAssetLoad
	case KindDeviceBind:
		return ErrDeviceBind
	case KindPoolExhaustion:
		return ErrPoolExhaustion
	}
	return nil
}

// StepError reports the step that broke a subsystem's acquisition sequence.
// It matches both its kind sentinel and its cause with errors.Is.
type StepError struct {
	Subsystem string
	Step      string
	Kind      Kind
	Err       error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s (%s): %v", e.Subsystem, e.Step, e.Kind, e.Err)
}

func (e *StepError) Unwrap() []error {
	if s := e.Kind.sentinel(); s != nil {
		return []error{s, e.Err}
	}
	return []error{e.Err}
}

// Classify picks the kind for err. Nested step errors keep their own kind;
// otherwise fallback is used.
func Classify(err error, fallback Kind) Kind {
	var se *StepError
	switch {
	case errors.As(err, &se):
		return se.Kind
	case errors.Is(err, pool.ErrExhausted):
		return KindPoolExhaustion
	case errors.Is(err, pool.ErrCapacity):
		return KindAllocation
	case errors.Is(err, fs.ErrNotExist):
		return KindAssetLoad
	}
	return fallback
}
