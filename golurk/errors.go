package golurk

import "errors"

var (
	ErrUnknownType       = errors.New("unknown type")
	ErrUnknownMove       = errors.New("unknown move")
	ErrUnknownGeneration = errors.New("unknown generation")
	ErrMalformedTarget   = errors.New("malformed move target")
	// Returned when a move's branches don't add up to a probability of 1. Always a bug in composition.
	ErrBranchWeightDrift = errors.New("branch weights do not sum to 1")
	ErrNoUser            = errors.New("no pokemon in user position")
)

// Must returns the value passed in if there is no error, otherwise it will panic
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
