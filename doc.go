// Package lvlinear is a small, value-semantic linear container library:
// a bounds-checked Vector and an upper-triangular Matrix built from it.
//
// What is in the box?
//
//	• vector/        Vector[T]: fixed size at construction, optional start index,
//	                 bounds-checked At/Set/Ref, deep Clone/Assign, Equal,
//	                 scalar and element-wise arithmetic, dot product.
//	• utmatrix/      Matrix[T]: N×N upper-triangular storage where row i is a
//	                 Vector of length N-i starting at column i; row access,
//	                 deep copy, equality, addition and subtraction.
//	• config/        size limits and logging settings (YAML file + LVLINEAR_* env).
//	• cmd/lvlinear   command-line harness over both containers.
//
// Guarantees:
//
//   - No panics on user input: every failure is one of the sentinels
//     ErrInvalidArgument, ErrOutOfRange, ErrSizeMismatch (matched with errors.Is).
//   - No partial mutation: a failed call leaves every operand as it was.
//   - No aliasing: Clone, Assign and every arithmetic result own fresh storage.
//
// Quick ASCII example (N=3, "-" is not stored):
//
//	[a00, a01, a02]
//	[ - , a11, a12]
//	[ - ,  - , a22]
//
//	go get github.com/katalvlaran/lvlinear
package lvlinear
