// SPDX-License-Identifier: MIT
// Package utmatrix: sentinel error set.
// The element-level sentinels are the vector package's own values, so
// errors.Is matches regardless of whether a failure was detected by the
// matrix (row index) or by a row vector (column index).

package utmatrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinear/vector"
)

var (
	// ErrInvalidArgument is returned by New for size <= 0 or size > limit.
	ErrInvalidArgument = vector.ErrInvalidArgument

	// ErrOutOfRange indicates a row index outside [0, Size) or a column
	// index outside [row, Size).
	ErrOutOfRange = vector.ErrOutOfRange

	// ErrSizeMismatch indicates operands of different dimension in Add/Sub.
	ErrSizeMismatch = vector.ErrSizeMismatch

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("utmatrix: nil matrix")
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
