// SPDX-License-Identifier: MIT

// Package utmatrix - upper-triangular storage built from vector rows.
//
// Purpose:
//   - Store an N×N upper-triangular matrix compactly: row i is a
//     *vector.Vector of length N-i with start index i, so its logical
//     column indices are exactly i..N-1.
//   - Compose rather than inherit: every element-level rule (bounds, copy,
//     equality, arithmetic) is delegated to the row vectors.
//   - Rows are created WithFixedShape, so no handle returned by Row can break
//     the triangular shape.
//
// Layout (N=4, "-" is not stored):
//
//	row 0: [a00, a01, a02, a03]   start 0
//	row 1: [ - , a11, a12, a13]   start 1
//	row 2: [ - ,  - , a22, a23]   start 2
//	row 3: [ - ,  - ,  - , a33]   start 3
//
// Complexity quicksheet:
//   - New/Clone/Assign/Equal/Add/Sub: O(N²); Row/At/Set: O(1).

package utmatrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlinear/vector"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxRow    = "Row"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAssign = "Assign"
	opAdd     = "Add"
	opSub     = "Sub"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtHole     = "-"
)

// Matrix is an N×N upper-triangular matrix of T.
//   - size is N (0 < N <= limit).
//   - rows[i] has Size() == N-i and StartIndex() == i.
type Matrix[T vector.Numeric] struct {
	size int
	rows []*vector.Vector[T]
}

var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates a zero-filled N×N upper-triangular matrix.
// Implementation:
//   - Stage 1: resolve options; validate 0 < size <= limit.
//   - Stage 2: allocate N row vectors of decreasing length.
//
// Errors:
//   - ErrInvalidArgument when size is non-positive or above the limit.
//
// Complexity:
//   - Time O(N²), Space O(N²/2).
func New[T vector.Numeric](size int, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if size <= 0 {
		return nil, fmt.Errorf("Matrix.%s(%d): size must be > 0: %w", ctxNew, size, ErrInvalidArgument)
	}
	if size > o.limit {
		return nil, fmt.Errorf("Matrix.%s(%d): size exceeds limit %d: %w", ctxNew, size, o.limit, ErrInvalidArgument)
	}

	return alloc[T](size)
}

// alloc builds the triangular row set for an already validated size.
func alloc[T vector.Numeric](size int) (*Matrix[T], error) {
	rows := make([]*vector.Vector[T], size)
	for i := 0; i < size; i++ {
		row, err := vector.New[T](size-i, vector.WithStartIndex(i), vector.WithFixedShape())
		if err != nil {
			return nil, matrixErrorf(fmt.Sprintf("Matrix.%s(%d): row %d", ctxNew, size, i), err)
		}
		rows[i] = row
	}

	return &Matrix[T]{size: size, rows: rows}, nil
}

// Size returns the dimension N. Complexity: O(1).
func (m *Matrix[T]) Size() int { return m.size }

// Row returns row i as a live vector: writes through it are visible in m.
// Valid column indices on the returned row are i..Size()-1.
// Errors: ErrOutOfRange when i is outside [0, Size).
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= m.size {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}

	return m.rows[i], nil
}

// At returns element (i, j).
// Cells below the diagonal (j < i) are not stored and yield ErrOutOfRange,
// the same as any index outside [0, Size).
func (m *Matrix[T]) At(i, j int) (T, error) {
	row, err := m.Row(i)
	if err != nil {
		var zero T
		return zero, matrixErrorf(fmt.Sprintf("Matrix.%s(%d,%d)", ctxAt, i, j), err)
	}
	v, err := row.At(j)
	if err != nil {
		return v, matrixErrorf(fmt.Sprintf("Matrix.%s(%d,%d)", ctxAt, i, j), err)
	}

	return v, nil
}

// Set stores val at (i, j); same bounds as At. m is unchanged on error.
func (m *Matrix[T]) Set(i, j int, val T) error {
	row, err := m.Row(i)
	if err != nil {
		return matrixErrorf(fmt.Sprintf("Matrix.%s(%d,%d)", ctxSet, i, j), err)
	}
	if err = row.Set(j, val); err != nil {
		return matrixErrorf(fmt.Sprintf("Matrix.%s(%d,%d)", ctxSet, i, j), err)
	}

	return nil
}

// Clone returns a deep copy; no row storage is shared.
// Complexity: O(N²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	rows := make([]*vector.Vector[T], m.size)
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Matrix[T]{size: m.size, rows: rows}
}

// Assign makes m an independent copy of src and returns m.
// Behavior highlights:
//   - Self-assignment is a no-op.
//   - Equal dimension: values are copied row by row into the existing rows.
//   - Different dimension: all rows are replaced by fresh copies of src's rows;
//     row handles obtained from Row before the call keep the old rows.
//
// Errors: ErrNilMatrix if src is nil (m untouched).
// Complexity: O(N²).
func (m *Matrix[T]) Assign(src *Matrix[T]) (*Matrix[T], error) {
	if src == nil {
		return m, matrixErrorf("Matrix."+ctxAssign, ErrNilMatrix)
	}
	if m == src {
		return m, nil
	}
	if m.size != src.size {
		*m = *src.Clone()
		return m, nil
	}
	for i := range m.rows {
		// Same dimension implies same row shape; Assign cannot fail here.
		if _, err := m.rows[i].Assign(src.rows[i]); err != nil {
			return m, matrixErrorf(fmt.Sprintf("Matrix.%s: row %d", ctxAssign, i), err)
		}
	}

	return m, nil
}

// Equal reports whether m and o have the same dimension and every row is
// Equal as a vector. A nil matrix equals only another nil matrix.
// Complexity: O(N²).
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || m.size != o.size {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool { return !m.Equal(o) }

// Fill sets every stored cell to val.
func (m *Matrix[T]) Fill(val T) {
	for _, r := range m.rows {
		r.Fill(val)
	}
}

// Do visits stored cells in row-major order (j >= i only) and calls
// f(i, j, v); it stops early when f returns false.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	stop := false
	for i, r := range m.rows {
		r.Do(func(j int, v T) bool {
			stop = !f(i, j, v)
			return !stop
		})
		if stop {
			return
		}
	}
}

// String renders one line per row; cells below the diagonal print as "-".
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i, r := range m.rows {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < i; j++ {
			b.WriteString(_fmtHole)
			b.WriteString(_fmtSep)
		}
		r.Do(func(j int, v T) bool {
			fmt.Fprintf(&b, "%v", v)
			if j+1 < m.size {
				b.WriteString(_fmtSep)
			}
			return true
		})
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
