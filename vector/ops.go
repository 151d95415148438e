// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Element-wise and reduction arithmetic on Vector: scalar +,-,* and
//     vector +,- and dot product.
//
// Design:
//   - Every operation allocates its result; operands are never mutated.
//   - Binary operations pair elements by position (offset 0..size-1), not by
//     logical index, and the result takes the receiver's start index.
//   - Validation happens before any allocation, so a failed call has no
//     observable effect.
//
// Determinism & Performance:
//   - Single flat loop over the storage slices; O(n) time, O(n) space.

package vector

// ---------- operation tags (error context) ----------

const (
	opAdd = "Add"
	opSub = "Sub"
	opDot = "Dot"
)

// mapScalar returns a new vector with out[i] = f(v[i]); same size and start.
func (v *Vector[T]) mapScalar(f func(T) T) *Vector[T] {
	out := &Vector[T]{
		size:  v.size,
		start: v.start,
		data:  make([]T, v.size),
	}
	for i, x := range v.data {
		out.data[i] = f(x)
	}

	return out
}

// AddScalar returns v + s element-wise.
// Complexity: O(n).
func (v *Vector[T]) AddScalar(s T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x + s })
}

// SubScalar returns v - s element-wise.
// Complexity: O(n).
func (v *Vector[T]) SubScalar(s T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x - s })
}

// MulScalar returns v * s element-wise.
// Complexity: O(n).
func (v *Vector[T]) MulScalar(s T) *Vector[T] {
	return v.mapScalar(func(x T) T { return x * s })
}

// zipWith validates sizes and returns out[i] = f(v[i], o[i]).
// The result inherits v's start index.
func (v *Vector[T]) zipWith(tag string, o *Vector[T], f func(a, b T) T) (*Vector[T], error) {
	if err := ValidateSameSize(v, o); err != nil {
		return nil, vectorErrorf("Vector."+tag, err)
	}
	out := &Vector[T]{
		size:  v.size,
		start: v.start,
		data:  make([]T, v.size),
	}
	for i := 0; i < v.size; i++ {
		out.data[i] = f(v.data[i], o.data[i])
	}

	return out, nil
}

// Add returns v + o element-wise.
// Errors: ErrSizeMismatch when sizes differ, ErrNilVector for a nil operand.
// Complexity: O(n).
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	return v.zipWith(opAdd, o, func(a, b T) T { return a + b })
}

// Sub returns v - o element-wise.
// Errors: ErrSizeMismatch when sizes differ, ErrNilVector for a nil operand.
// Complexity: O(n).
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	return v.zipWith(opSub, o, func(a, b T) T { return a - b })
}

// Dot returns Σ v[i]*o[i] over all positions.
// Errors: ErrSizeMismatch when sizes differ, ErrNilVector for a nil operand.
// Complexity: O(n), no allocations.
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	var sum T
	if err := ValidateSameSize(v, o); err != nil {
		return sum, vectorErrorf("Vector."+opDot, err)
	}
	for i := 0; i < v.size; i++ {
		sum += v.data[i] * o.data[i]
	}

	return sum, nil
}
