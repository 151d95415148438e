// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Provide a single, canonical source of truth for argument and operand checks.
//   - Return plain (tag-wrapped) sentinels so call sites can add context uniformly.
//
// Note:
//   - Composite validators follow a fixed sequence: NotNil → Size.

package vector

// validateShape checks constructor arguments against the size limit.
// Order: size > 0, size <= limit, start >= 0.
// Complexity: O(1).
func validateShape(size, start, limit int) error {
	if size <= 0 {
		return vectorErrorf("size must be > 0", ErrInvalidArgument)
	}
	if size > limit {
		return vectorErrorf("size exceeds limit", ErrInvalidArgument)
	}
	if start < 0 {
		return vectorErrorf("start index must be >= 0", ErrInvalidArgument)
	}

	return nil
}

// ValidateNotNil ensures both operands are non-nil.
// Returns ErrNilVector otherwise.
func ValidateNotNil[T Numeric](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return vectorErrorf("ValidateNotNil", ErrNilVector)
	}

	return nil
}

// ValidateSameSize ensures a and b are non-nil and hold the same number of
// elements. Start indices are not compared.
// Complexity: O(1).
func ValidateSameSize[T Numeric](a, b *Vector[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.size != b.size {
		return vectorErrorf("ValidateSameSize", ErrSizeMismatch)
	}

	return nil
}
