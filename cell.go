// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

// Cell is an optional-value storage cell: it holds zero or one value of type T.
// The zero value is an empty cell ready to use.
//
// A Cell must not be copied after first use.
//
// While an [Occupied] handle over the cell is live, the handle is the only
// legitimate way to reach the cell: every Cell method panics until the handle
// is consumed or released.
type Cell[T any] struct {
	lease lease
	value T
	some  bool
}

// Capability is implemented by cells that can produce an [Occupied] handle.
//
// The unexported marker method keeps other packages from declaring their own
// implementations. A type that embeds *Cell still satisfies Capability and may
// override Occupied, but it cannot mint a live handle: handles come only from
// [Cell.Occupied], so a live handle always means its cell is occupied.
type Capability[T any] interface {
	// Occupied returns a live handle if the cell holds a value,
	// or (zero, false) if it is empty.
	Occupied() (Occupied[T], bool)

	capability() // unexported marker method
}

func (*Cell[T]) capability() {}

var _ Capability[int] = (*Cell[int])(nil)

// Occupied attempts to acquire a handle over the cell.
// Returns (handle, true) if the cell holds a value, or (zero, false) if it is
// empty. This is the only place occupancy is tested; the cell is not modified.
//
// Panics if another handle over the cell is still live.
func (c *Cell[T]) Occupied() (Occupied[T], bool) {
	token, ok := c.lease.acquire()
	if !ok {
		panic("slot: cell already leased")
	}
	// Occupancy is read under the lease, so no Take can slip in between.
	if !c.some {
		c.lease.release(token)
		return Occupied[T]{}, false
	}
	return Occupied[T]{cell: c, token: token}, true
}

// Set stores v in the cell, replacing any previous value.
func (c *Cell[T]) Set(v T) {
	token := c.lock()
	c.value = v
	c.some = true
	c.lease.release(token)
}

// Get returns the stored value and true, or the zero value and false if the
// cell is empty.
func (c *Cell[T]) Get() (T, bool) {
	token := c.lock()
	v, some := c.value, c.some
	c.lease.release(token)
	return v, some
}

// IsSome reports whether the cell holds a value.
func (c *Cell[T]) IsSome() bool {
	token := c.lock()
	some := c.some
	c.lease.release(token)
	return some
}

// IsNone reports whether the cell is empty.
func (c *Cell[T]) IsNone() bool {
	return !c.IsSome()
}

// Leased reports whether a live handle currently holds the cell.
// It is the one Cell method that may be called while leased.
func (c *Cell[T]) Leased() bool {
	return c.lease.held()
}

// lock holds the lease for the duration of a single Cell method.
func (c *Cell[T]) lock() uint64 {
	token, ok := c.lease.acquire()
	if !ok {
		panic("slot: cell accessed while leased")
	}
	return token
}
