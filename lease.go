// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot

import (
	"sync/atomic"
)

// lease is the exclusive, single-owner right to a cell.
//
// The low bit of word is set while a handle holds the lease; the upper bits
// count acquisitions. A handle keeps the word it observed when acquiring as
// its token, so a released lease (token+1) or a later one (token+2k) never
// matches a stale copy of the handle.
type lease struct {
	word atomic.Uint64
}

// acquire takes the lease if it is free.
// Returns (token, true) on success, or (0, false) if it is already held.
func (l *lease) acquire() (uint64, bool) {
	w := l.word.Load()
	if w&1 != 0 {
		return 0, false
	}
	if !l.word.CompareAndSwap(w, w+1) {
		return 0, false
	}
	return w + 1, true
}

// holds reports whether token is the current holder of the lease.
func (l *lease) holds(token uint64) bool {
	return token&1 != 0 && l.word.Load() == token
}

// release frees the lease if token still holds it.
// Releasing with a stale token is a no-op and returns false.
func (l *lease) release(token uint64) bool {
	if token&1 == 0 {
		return false
	}
	return l.word.CompareAndSwap(token, token+1)
}

// held reports whether any handle holds the lease.
func (l *lease) held() bool {
	return l.word.Load()&1 != 0
}
