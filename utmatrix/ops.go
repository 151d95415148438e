// SPDX-License-Identifier: MIT
// Package: utmatrix
//
// Purpose:
//   - Matrix addition and subtraction, computed row by row with the row
//     vectors' own Add/Sub.
//
// Design:
//   - Operands are validated before anything is allocated; a failed call
//     leaves both operands untouched.
//   - Equal dimension guarantees equal row shapes, so the per-row vector
//     operation cannot report a mismatch for well-formed matrices.

package utmatrix

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/vector"
)

// ValidateSameSize ensures a and b are non-nil and of the same dimension.
func ValidateSameSize[T vector.Numeric](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return matrixErrorf("ValidateSameSize", ErrNilMatrix)
	}
	if a.size != b.size {
		return matrixErrorf("ValidateSameSize", ErrSizeMismatch)
	}

	return nil
}

// rowWise builds out.rows[i] = op(a.rows[i], b.rows[i]) for every row.
func rowWise[T vector.Numeric](
	tag string,
	a, b *Matrix[T],
	op func(x, y *vector.Vector[T]) (*vector.Vector[T], error),
) (*Matrix[T], error) {
	if err := ValidateSameSize(a, b); err != nil {
		return nil, matrixErrorf("Matrix."+tag, err)
	}
	out, err := alloc[T](a.size)
	if err != nil {
		return nil, matrixErrorf("Matrix."+tag, err)
	}
	for i := 0; i < a.size; i++ {
		r, err := op(a.rows[i], b.rows[i])
		if err != nil {
			return nil, matrixErrorf(fmt.Sprintf("Matrix.%s: row %d", tag, i), err)
		}
		// r has the left row's start index, i.e. the same shape as out.rows[i].
		if _, err = out.rows[i].Assign(r); err != nil {
			return nil, matrixErrorf(fmt.Sprintf("Matrix.%s: row %d", tag, i), err)
		}
	}

	return out, nil
}

// Add returns m + o.
// Errors: ErrSizeMismatch for different dimensions, ErrNilMatrix for nil.
// Complexity: O(N²).
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	return rowWise(opAdd, m, o, func(x, y *vector.Vector[T]) (*vector.Vector[T], error) {
		return x.Add(y)
	})
}

// Sub returns m - o.
// Errors: ErrSizeMismatch for different dimensions, ErrNilMatrix for nil.
// Complexity: O(N²).
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	return rowWise(opSub, m, o, func(x, y *vector.Vector[T]) (*vector.Vector[T], error) {
		return x.Sub(y)
	})
}
