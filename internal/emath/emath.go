// SPDX-License-Identifier: Unlicense OR MIT

// Package emath contains the small numeric helpers shared by
// layout code.
package emath

import "golang.org/x/exp/constraints"

// Clamp limits v to the range [lo, hi]. If lo > hi the result is lo,
// so that an inverted range degrades to its lower bound.
func Clamp[T constraints.Float | constraints.Integer](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Remap linearly maps x from the range [from0, from1] to
// [to0, to1]. An empty source range maps everything to to0.
func Remap[T constraints.Float](x, from0, from1, to0, to1 T) T {
	if from1 == from0 {
		return to0
	}
	t := (x - from0) / (from1 - from0)
	return to0 + t*(to1-to0)
}

// RemapClamp is like Remap but clamps x to the source range first.
func RemapClamp[T constraints.Float](x, from0, from1, to0, to1 T) T {
	lo, hi := from0, from1
	if lo > hi {
		lo, hi = hi, lo
	}
	return Remap(Clamp(x, lo, hi), from0, from1, to0, to1)
}
