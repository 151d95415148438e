// File: utmatrix/example_test.go
package utmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/utmatrix"
)

// ExampleMatrix_Add builds two 3×3 upper-triangular matrices and adds them.
// Cells below the diagonal are not stored and print as "-".
func ExampleMatrix_Add() {
	a, _ := utmatrix.New[int](3)
	b, _ := utmatrix.New[int](3)
	a.Fill(1)
	b.Fill(2)

	c, _ := a.Add(b)
	fmt.Print(c)

	_, err := c.At(2, 0)
	fmt.Println(err)

	// Output:
	// [3, 3, 3]
	// [-, 3, 3]
	// [-, -, 3]
	// Matrix.At(2,0): Vector.At(0): vector: index out of range
}
