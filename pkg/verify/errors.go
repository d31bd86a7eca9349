package verify

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotMonotonic is reported when a larger index yields a prime that is
	// not strictly greater.
	ErrNotMonotonic = errors.New("nth prime not strictly increasing")
	// ErrNotPrime is reported when NthPrime returns a value IsPrime rejects.
	ErrNotPrime = errors.New("nth prime is not prime")
	// ErrTooManyMismatches is appended when reporting stops early.
	ErrTooManyMismatches = errors.New("too many mismatches")
)

// MismatchError describes a strategy that disagrees with the reference.
type MismatchError struct {
	Op        string // IsPrime or NthPrime
	Strategy  string
	Reference string
	Input     uint32
	Got       any
	Want      any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s(%d): %s returned %v, %s returned %v",
		e.Op, e.Input, e.Strategy, e.Got, e.Reference, e.Want)
}
