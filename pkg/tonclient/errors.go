package tonclient

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hsiuhsiu/tonclient-go/internal/bindings"
)

var (
	// ErrModuleUnavailable reports that no candidate module could be loaded.
	// Every *LoadError matches it.
	ErrModuleUnavailable = errors.New("tonclient: native module unavailable")

	// ErrModuleNotFound is the "not found" class of load failure; the loader
	// falls back to the next strategy when it sees it.
	ErrModuleNotFound = errors.New("tonclient: native module not found")

	// ErrPermission is the permission/security class of load failure; the
	// loader gives up on the candidate when it sees it.
	ErrPermission = errors.New("tonclient: native module load not permitted")

	// ErrMissingSymbol reports a module that lacks one of the tc_* exports.
	ErrMissingSymbol = errors.New("tonclient: native module missing symbol")

	// ErrNotBuilt reports a binary compiled without cgo.
	ErrNotBuilt = errors.New("tonclient: native bindings not built")

	// ErrResourceMissing reports that the bundle has no resource for the
	// candidate being extracted.
	ErrResourceMissing = errors.New("tonclient: bundled module resource missing")

	ErrContextClosed    = errors.New("tonclient: context has been closed")
	ErrResponseConsumed = errors.New("tonclient: response already read")
	ErrResponseClosed   = errors.New("tonclient: response has been closed")
)

// RemapError converts bindings layer errors to public API errors. The
// original error stays in the chain for its detail.
func RemapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, bindings.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrModuleNotFound, err)
	case errors.Is(err, bindings.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermission, err)
	case errors.Is(err, bindings.ErrSymbol):
		return fmt.Errorf("%w: %w", ErrMissingSymbol, err)
	case errors.Is(err, bindings.ErrNotBuilt):
		return ErrNotBuilt
	}
	return err
}

// Outcome records one strategy attempt for one candidate.
type Outcome struct {
	Candidate string
	Strategy  string
	Path      string
	Err       error
}

// Skipped reports an outcome recorded without an attempt.
func (o Outcome) Skipped() bool {
	return errors.Is(o.Err, errSkipped)
}

func (o Outcome) String() string {
	if o.Skipped() {
		return o.Candidate + ": " + o.Err.Error()
	}
	if o.Err == nil {
		return fmt.Sprintf("%s via %s: loaded %s", o.Candidate, o.Strategy, o.Path)
	}
	return fmt.Sprintf("%s via %s: %v", o.Candidate, o.Strategy, o.Err)
}

var errSkipped = errors.New("skipped: an earlier candidate loaded")

// LoadError is returned when every candidate failed. It matches
// ErrModuleUnavailable and unwraps to each attempt's error.
type LoadError struct {
	Outcomes []Outcome
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString(ErrModuleUnavailable.Error())
	for _, o := range e.Outcomes {
		b.WriteString("; ")
		b.WriteString(o.String())
	}
	return b.String()
}

func (e *LoadError) Is(target error) bool {
	return target == ErrModuleUnavailable
}

func (e *LoadError) Unwrap() []error {
	errs := make([]error, 0, len(e.Outcomes))
	for _, o := range e.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errs
}
