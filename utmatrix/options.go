// SPDX-License-Identifier: MIT

// Package utmatrix: functional configuration for Matrix construction.
package utmatrix

// MaxSize is the hard upper bound on the dimension of any Matrix.
const MaxSize = 10_000

const panicLimitInvalid = "utmatrix: WithLimit: limit must be in (0, MaxSize]"

// Option mutates internal options (last-writer-wins).
type Option func(*options)

type options struct {
	limit int // per-instance dimension cap; 0 < limit <= MaxSize
}

// WithLimit lowers the maximum dimension accepted by New.
// Panics when limit is outside (0, MaxSize]; validate user input first.
func WithLimit(limit int) Option {
	if limit <= 0 || limit > MaxSize {
		panic(panicLimitInvalid)
	}

	return func(o *options) {
		o.limit = limit
	}
}

func gatherOptions(user ...Option) options {
	o := options{limit: MaxSize}
	for _, set := range user {
		set(&o)
	}

	return o
}
