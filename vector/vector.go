// SPDX-License-Identifier: MIT

// Package vector - owned storage, start-index offsetting & safe accessors.
//
// Purpose:
//   - Provide a fixed-size-at-construction sequence of numbers with an optional
//     start index: logical indices run over [start, start+size).
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Keep value semantics explicit: Clone and Assign always deep-copy; no two
//     vectors ever share a backing slice.
//
// AI-Hints:
//   - All element access funnels through offsetOf, the single bounds check.
//   - Use Ref when the caller needs a writable handle (m[i][j] = v style code).
//   - Equality ignores the start index: only size and content matter.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; At/Set/Ref: O(1); Clone/Assign/Equal: O(n).

package vector

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxFrom   = "FromSlice"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRef    = "Ref"
	ctxAssign = "Assign"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Numeric is the element constraint shared by Vector and utmatrix.Matrix:
// every built-in integer and floating-point type.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Vector is a bounds-checked, value-semantic sequence of T.
//   - size is the number of elements (0 < size <= limit at all times).
//   - start is the logical index of data[0] (start >= 0).
//   - data is exclusively owned storage, len(data) == size.
//   - fixed locks size/start against reshaping through Assign.
type Vector[T Numeric] struct {
	size  int  // element count
	start int  // logical index of the first element
	data  []T  // owned storage, len == size
	fixed bool // shape lock (WithFixedShape)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int])(nil)

// New creates a zero-filled Vector of the given size.
// MAIN DESCRIPTION:
//   - Public constructor with strict argument validation.
//
// Implementation:
//   - Stage 1: resolve options (start index, limit, shape lock).
//   - Stage 2: validate 0 < size <= limit and start >= 0; else ErrInvalidArgument.
//   - Stage 3: allocate owned storage (make() zero-fills it).
//
// Inputs:
//   - size: number of elements.
//   - opts: WithStartIndex, WithLimit, WithFixedShape.
//
// Returns:
//   - *Vector[T]: newly allocated vector.
//
// Errors:
//   - ErrInvalidArgument (size or start index contract violation).
//
// Complexity:
//   - Time O(n), Space O(n).
func New[T Numeric](size int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if err := validateShape(size, o.startIndex, o.limit); err != nil {
		return nil, fmt.Errorf("Vector.%s(%d): %w", ctxNew, size, err)
	}

	return &Vector[T]{
		size:  size,
		start: o.startIndex,
		data:  make([]T, size),
		fixed: o.fixedShape,
	}, nil
}

// FromSlice creates a Vector holding a copy of values.
// Validation is identical to New with size = len(values); the caller's slice
// is never retained.
// Complexity: O(n).
func FromSlice[T Numeric](values []T, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	if err := validateShape(len(values), o.startIndex, o.limit); err != nil {
		return nil, fmt.Errorf("Vector.%s(len=%d): %w", ctxFrom, len(values), err)
	}
	data := make([]T, len(values))
	copy(data, values)

	return &Vector[T]{
		size:  len(values),
		start: o.startIndex,
		data:  data,
		fixed: o.fixedShape,
	}, nil
}

// Size returns the number of elements. Complexity: O(1).
func (v *Vector[T]) Size() int { return v.size }

// StartIndex returns the logical index of the first element. Complexity: O(1).
func (v *Vector[T]) StartIndex() int { return v.start }

// FixedShape reports whether Assign is restricted to same-shape sources.
func (v *Vector[T]) FixedShape() bool { return v.fixed }

// offsetOf translates a logical index into a storage offset.
// Behavior highlights:
//   - The only bounds check in the package; At/Set/Ref reuse it so the
//     accepted range is identical everywhere.
//   - Returns the bare sentinel; public methods wrap it with context.
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector[T]) offsetOf(idx int) (int, error) {
	off := idx - v.start
	if off < 0 || off >= v.size {
		return 0, ErrOutOfRange
	}

	return off, nil
}

// At returns the element at logical index idx or ErrOutOfRange.
// Complexity: O(1).
func (v *Vector[T]) At(idx int) (T, error) {
	off, err := v.offsetOf(idx)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("Vector.%s(%d): %w", ctxAt, idx, err)
	}

	return v.data[off], nil
}

// Set stores val at logical index idx or returns ErrOutOfRange.
// The vector is unchanged on error.
// Complexity: O(1).
func (v *Vector[T]) Set(idx int, val T) error {
	off, err := v.offsetOf(idx)
	if err != nil {
		return fmt.Errorf("Vector.%s(%d): %w", ctxSet, idx, err)
	}
	v.data[off] = val

	return nil
}

// Ref returns a pointer to the element at logical index idx.
// The pointer stays valid until the next Assign that reshapes the vector.
//
//	p, err := v.Ref(2)
//	*p = 7 // same effect as v.Set(2, 7)
//
// Complexity: O(1).
func (v *Vector[T]) Ref(idx int) (*T, error) {
	off, err := v.offsetOf(idx)
	if err != nil {
		return nil, fmt.Errorf("Vector.%s(%d): %w", ctxRef, idx, err)
	}

	return &v.data[off], nil
}

// Clone returns a deep copy (new storage, same size/start/shape lock).
// Mutations of the clone never affect the original and vice versa.
// Complexity: O(n).
func (v *Vector[T]) Clone() *Vector[T] {
	cp := make([]T, len(v.data))
	copy(cp, v.data)

	return &Vector[T]{
		size:  v.size,
		start: v.start,
		data:  cp,
		fixed: v.fixed,
	}
}

// Assign makes v an independent copy of src and returns v.
// MAIN DESCRIPTION:
//   - Copy-assignment: size, start index and elements are taken from src.
//
// Implementation:
//   - Stage 1: self-assignment is a no-op.
//   - Stage 2: for fixed-shape receivers, require identical size and start.
//   - Stage 3: same size reuses storage; otherwise fresh storage is allocated.
//
// Behavior highlights:
//   - Sizes need not match for ordinary vectors.
//   - The shape lock of v is kept; src's lock is not copied.
//   - On error v is left exactly as it was.
//
// Errors:
//   - ErrNilVector if src is nil.
//   - ErrSizeMismatch if v is fixed-shape and src differs in size or start.
//
// Complexity:
//   - Time O(n), Space O(n) when the size changes.
func (v *Vector[T]) Assign(src *Vector[T]) (*Vector[T], error) {
	if src == nil {
		return v, vectorErrorf("Vector."+ctxAssign, ErrNilVector)
	}
	if v == src {
		return v, nil
	}
	if v.fixed && (v.size != src.size || v.start != src.start) {
		return v, fmt.Errorf("Vector.%s(size=%d,start=%d <- size=%d,start=%d): %w",
			ctxAssign, v.size, v.start, src.size, src.start, ErrSizeMismatch)
	}
	if v.size != src.size {
		v.data = make([]T, src.size) // release old storage, allocate new
	}
	copy(v.data, src.data)
	v.size = src.size
	v.start = src.start

	return v, nil
}

// Equal reports whether v and o have the same size and the same elements
// position by position. The start index takes no part in the comparison.
// Vectors of different size are unequal without touching any element.
// A nil vector equals only another nil vector.
// Complexity: O(n).
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}
	if v.size != o.size {
		return false
	}
	for i := 0; i < v.size; i++ {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool { return !v.Equal(o) }

// Fill sets every element to val. Complexity: O(n).
func (v *Vector[T]) Fill(val T) {
	for i := range v.data {
		v.data[i] = val
	}
}

// Values returns a copy of the elements in positional order.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Do visits every element in order and calls f(idx, val) with its logical
// index. It stops early when f returns false.
// Complexity: O(n), no allocations.
func (v *Vector[T]) Do(f func(idx int, val T) bool) {
	for i := 0; i < v.size; i++ {
		if !f(v.start+i, v.data[i]) {
			return
		}
	}
}

// String renders the elements as "[a, b, c]" for diagnostics.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < v.size; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprintf(&b, "%v", v.data[i])
	}
	b.WriteString(_fmtClose)

	return b.String()
}
