package primes

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned for indices whose prime does not fit in a uint32.
	ErrIndexOutOfRange = errors.New("prime index out of range")
	// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
	ErrUnknownStrategy = errors.New("unknown primality strategy")

	// errDivisible aborts a divisor traversal.
	errDivisible = errors.New("divisor found")
)

func checkIndex(n uint32) error {
	if n > MaxIndex {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d exceeds %d", n, MaxIndex)
	}
	return nil
}

func mustIndex(n uint32) {
	if err := checkIndex(n); err != nil {
		panic(err)
	}
}
