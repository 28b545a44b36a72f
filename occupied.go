// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import "fmt"

// Occupied is a handle over a [Cell] that is known to hold a value.
//
// A handle is obtained only from [Cell.Occupied] and holds the cell's
// exclusive lease until it is consumed by [Occupied.Take],
// [Occupied.IntoMut], [Occupied.IntoCell] or [Occupied.Release].
// While the handle is live the cell stays occupied, so every operation on it
// is total: none of them can observe an empty cell.
//
// Occupied is a small value and may be passed by value. Copies share the
// lease; once any copy consumes it, all copies are dead. Using a dead handle
// (or the zero Occupied) panics.
type Occupied[T any] struct {
	cell  *Cell[T]
	token uint64
}

// live returns the cell if h still holds its lease.
func (h Occupied[T]) live() *Cell[T] {
	c := h.cell
	if c == nil || !c.lease.holds(h.token) {
		panic("slot: occupied handle used after release")
	}
	return c
}

// Take moves the value out of the cell, leaving the cell empty,
// and consumes the handle.
func (h Occupied[T]) Take() T {
	c := h.live()
	// Occupancy was established when h was acquired and no handle
	// operation clears it, so c.some is not consulted here.
	v := c.value
	var zero T
	c.value = zero
	c.some = false
	c.lease.release(h.token)
	return v
}

// IntoMut consumes the handle and returns a pointer to the value stored in
// the cell. The cell stays occupied.
//
// The pointer refers to the cell's storage: it observes later changes made
// through the cell, and once the cell is emptied it points at the zero value.
func (h Occupied[T]) IntoMut() *T {
	c := h.live()
	c.lease.release(h.token)
	return &c.value
}

// IntoCell consumes the handle and returns the cell it was acquired from,
// without any occupancy guarantee attached.
func (h Occupied[T]) IntoCell() *Cell[T] {
	c := h.live()
	c.lease.release(h.token)
	return c
}

// Release ends the handle's lease and leaves the cell unchanged.
// Calling Release on a consumed handle is a no-op, so it is safe to defer.
func (h Occupied[T]) Release() {
	if h.cell != nil {
		h.cell.lease.release(h.token)
	}
}

// Value returns the held value.
func (h Occupied[T]) Value() T {
	return h.live().value
}

// Mut returns a pointer to the held value.
// The pointer is valid for mutation while the handle is live.
func (h Occupied[T]) Mut() *T {
	return &h.live().value
}

// Set replaces the held value with v. The cell stays occupied.
func (h Occupied[T]) Set(v T) {
	h.live().value = v
}

// String renders the held value as fmt.Sprint would.
func (h Occupied[T]) String() string {
	return fmt.Sprint(h.Value())
}

// Format forwards the verb and flags to the held value,
// so the handle prints exactly like the value it holds.
// The exceptions are %T and %p, which fmt resolves before calling Format:
// they describe the handle itself.
func (h Occupied[T]) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), h.Value())
}

var (
	_ fmt.Stringer  = Occupied[int]{}
	_ fmt.Formatter = Occupied[int]{}
)
