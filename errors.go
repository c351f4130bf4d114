package perceptron

import (
	"fmt"
)

// Error is a wrapper for specific types of errors for which there is no
// additional information necessary. These errors are defined as global
// variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned or panicked.
var (
	ErrExamplesNotPositive = Error{"Number of accumulated examples is not positive"}
)

// NilArgError documents errors resulting from certain arguments provided to a
// function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}

// SizeMismatchError documents errors resulting from vectors whose lengths do
// not match the Network's topology.
type SizeMismatchError struct {
	Expected, Got int

	// what the vector was supposed to be: "inputs" or "targets"
	what string
}

func (err SizeMismatchError) Error() string {
	return fmt.Sprintf("Wrong number of %s (expected %d, got %d)", err.what, err.Expected, err.Got)
}
