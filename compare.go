// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import "cmp"

// Comparisons between a handle and a plain value.
// Go methods cannot add type constraints, so these are package functions;
// each delegates to the value's own comparison.

// Equal reports whether the value held by h equals w.
func Equal[T comparable](h Occupied[T], w T) bool {
	return h.Value() == w
}

// EqualFunc reports whether eq considers the value held by h equal to w.
func EqualFunc[T any](h Occupied[T], w T, eq func(T, T) bool) bool {
	return eq(h.Value(), w)
}

// Compare compares the value held by h with w as cmp.Compare does.
func Compare[T cmp.Ordered](h Occupied[T], w T) int {
	return cmp.Compare(h.Value(), w)
}

// Less reports whether the value held by h is less than w, as cmp.Less does.
func Less[T cmp.Ordered](h Occupied[T], w T) bool {
	return cmp.Less(h.Value(), w)
}

// CompareFunc compares the value held by h with w using compare.
func CompareFunc[T any](h Occupied[T], w T, compare func(T, T) int) int {
	return compare(h.Value(), w)
}
