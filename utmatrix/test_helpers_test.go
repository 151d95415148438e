// SPDX-License-Identifier: MIT
// Package utmatrix_test contains test helpers

package utmatrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlinear/utmatrix"
)

// mustMatrix ALLOCATES an n×n Matrix[int] or fails the test.
func mustMatrix(tb testing.TB, n int, opts ...utmatrix.Option) *utmatrix.Matrix[int] {
	tb.Helper()
	m, err := utmatrix.New[int](n, opts...)
	if err != nil {
		tb.Fatalf("New(%d): %v", n, err)
	}

	return m
}

// triangle RETURNS an n×n matrix whose stored cells (j >= i) all equal val.
// Cells are written as m[i][j] = val through the row handles.
func triangle(tb testing.TB, n, val int) *utmatrix.Matrix[int] {
	tb.Helper()
	m := mustMatrix(tb, n)
	for i := 0; i < n; i++ {
		row, err := m.Row(i)
		if err != nil {
			tb.Fatalf("Row(%d): %v", i, err)
		}
		for j := i; j < n; j++ {
			if err = row.Set(j, val); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}
