// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public method
// returns one of these (possibly wrapped with call-site context) and tests
// match them via errors.Is. No method panics on user-triggered conditions.

package vector

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and grepping.
// Call sites wrap with vectorErrorf("Vector.At(3)", ErrX); callers still
// match with errors.Is. utmatrix re-exports the same sentinels.

var (
	// ErrInvalidArgument is returned by constructors when the requested size is
	// non-positive, exceeds the configured limit, or the start index is negative.
	ErrInvalidArgument = errors.New("vector: invalid argument")

	// ErrOutOfRange indicates that a logical index falls outside
	// [StartIndex, StartIndex+Size).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates incompatible operand sizes in Add/Sub/Dot,
	// or an attempt to reshape a fixed-shape vector through Assign.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")
)

// vectorErrorf wraps an underlying error with the given call-site tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
