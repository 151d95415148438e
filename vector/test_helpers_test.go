// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructor/operator tests.

package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvlinear/vector"
)

// mustVector ALLOCATES a Vector[int] of size n or fails the test.
// Implementation:
//   - Stage 1: call vector.New[int](n, opts...).
//   - Stage 2: t.Fatalf on error to abort the test early.
func mustVector(tb testing.TB, n int, opts ...vector.Option) *vector.Vector[int] {
	tb.Helper()
	v, err := vector.New[int](n, opts...)
	if err != nil {
		tb.Fatalf("New(%d): %v", n, err)
	}

	return v
}

// filled RETURNS a Vector[int] of size n where every element equals val.
// Elements are written through Set with logical indices, the way callers do.
func filled(tb testing.TB, n, val int, opts ...vector.Option) *vector.Vector[int] {
	tb.Helper()
	v := mustVector(tb, n, opts...)
	for i := v.StartIndex(); i < v.StartIndex()+n; i++ {
		if err := v.Set(i, val); err != nil {
			tb.Fatalf("Set(%d): %v", i, err)
		}
	}

	return v
}

// mustFloat64 ALLOCATES a Vector[float64] of size n for benchmarks.
func mustFloat64(tb testing.TB, n int) *vector.Vector[float64] {
	tb.Helper()
	v, err := vector.New[float64](n)
	if err != nil {
		tb.Fatalf("New(%d): %v", n, err)
	}

	return v
}
