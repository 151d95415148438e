// SPDX-License-Identifier: MIT

// Package vector: functional configuration for Vector construction.
// This file defines:
//   - documented defaults and hard limits (constants),
//   - Option / options (functional options with internal state),
//   - WithX constructors (panic only on nonsensical programmer input),
//   - gatherOptions helper that resolves setters against defaults.
//
// Notes:
//   - A negative start index is a user error, not a programmer error: it is
//     recorded as-is and rejected by New with ErrInvalidArgument.
//   - The limit can only be lowered below MaxSize, never raised.
package vector

// ---------- Defaults (single source of truth) ----------

const (
	// MaxSize is the hard upper bound on the number of elements of any Vector.
	MaxSize = 100_000_000

	// DefaultStartIndex is the logical index of the first element.
	DefaultStartIndex = 0

	// DefaultFixedShape leaves Assign free to replace size and start index.
	DefaultFixedShape = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLimitInvalid = "vector: WithLimit: limit must be in (0, MaxSize]"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	startIndex int  // logical index of element 0; validated by New
	limit      int  // per-instance size cap; 0 < limit <= MaxSize
	fixedShape bool // Assign may copy values but never reshape
}

// WithStartIndex sets the logical index of the first element.
// Indices accepted by At/Set become [start, start+size).
// Negative values are rejected by New with ErrInvalidArgument.
func WithStartIndex(start int) Option {
	return func(o *options) {
		o.startIndex = start
	}
}

// WithLimit lowers the maximum size accepted by New for this call.
// Implementation:
//   - Stage 1: validate 0 < limit <= MaxSize (panic otherwise).
//   - Stage 2: return a setter that writes the limit into options.
//
// Errors:
//   - Panics with a stable message when limit is nonsensical; configuration
//     layers are expected to validate user-provided limits first.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithLimit(limit int) Option {
	if limit <= 0 || limit > MaxSize {
		panic(panicLimitInvalid)
	}

	return func(o *options) {
		o.limit = limit
	}
}

// WithFixedShape locks size and start index after construction.
// Assign into such a vector succeeds only for a source of identical shape,
// otherwise ErrSizeMismatch is returned and the vector is left untouched.
// Used by utmatrix for its triangular rows.
func WithFixedShape() Option {
	return func(o *options) {
		o.fixedShape = true
	}
}

// gatherOptions applies user setters on top of the documented defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) options {
	o := options{
		startIndex: DefaultStartIndex,
		limit:      MaxSize,
		fixedShape: DefaultFixedShape,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
