// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slot provides occupied-slot handles: proof-carrying handles over an
// optional-value cell that is known to hold a value.
//
// Code that is re-entered repeatedly (step functions, pollers, incremental
// computations) often asks "is a value pending?" on every entry, but may
// consume the value only once some other condition holds. With a plain
// optional type the value has to be checked again at the point of
// consumption. Here the check happens once, when the handle is acquired,
// and the handle itself is the witness that extraction will succeed.
//
// # Design Philosophy
//
// slot provides:
//   - One designated cell type and one handle type, nothing more
//   - A sealed capability so only [Cell] can mint handles
//   - Runtime-checked exclusive leases in place of compile-time borrows
//   - Allocation-free acquire, access, take and release
//
// # Cell
//
// [Cell] holds zero or one value. Its zero value is empty.
//
//   - [Cell.Set]: Store a value (Empty → Occupied)
//   - [Cell.Get], [Cell.IsSome], [Cell.IsNone]: Observe the cell
//   - [Cell.Leased]: Report whether a handle currently holds the cell
//
// A cell can be emptied only through a handle.
//
// # Capability
//
// [Capability] is the sealed interface through which handles are obtained:
//
//   - [Cell.Occupied]: Returns (handle, true) if the cell is occupied,
//     (zero, false) if it is empty
//
// # Occupied Handle
//
// [Occupied] holds the cell's exclusive lease. While it is live:
//
//   - [Occupied.Value], [Occupied.Mut], [Occupied.Set]: Read and mutate through
//   - [Occupied.String], [Occupied.Format]: Render exactly like the held value
//   - [Equal], [EqualFunc], [Compare], [Less], [CompareFunc]: Compare against a
//     plain value by delegating to the value's own comparison
//
// Consumption is terminal:
//
//   - [Occupied.Take]: Move the value out; the cell becomes empty
//   - [Occupied.IntoMut]: Narrow to a pointer to the value; the cell stays occupied
//   - [Occupied.IntoCell]: Downgrade to the plain cell, dropping the guarantee
//   - [Occupied.Release]: End the lease without touching the cell
//
// # Exclusivity
//
// Go cannot reject aliasing at compile time, so each cell carries an atomic
// lease. Acquiring a handle takes the lease; consuming the handle releases it.
// Contract violations panic rather than return errors:
//
//   - Acquiring a second handle while one is live
//   - Calling any other Cell method while a handle is live
//   - Using a handle (or any copy of it) after it was consumed
//
// A handle that is neither consumed nor released keeps its cell leased.
//
// # Example
//
//	var pending slot.Cell[int]
//	pending.Set(5)
//
//	if h, ok := pending.Occupied(); ok {
//		if ready(h.Value()) {
//			v := h.Take() // never fails; pending is now empty
//			use(v)
//		} else {
//			h.Release()
//		}
//	}
package slot
