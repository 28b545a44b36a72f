// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slot_test

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/slot"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// model is a plain optional used as the reference for Cell behaviour.
type model struct {
	value int
	some  bool
}

// TestPropertyAcquireMatchesOccupancy: Occupied() succeeds iff the cell holds a value,
// and reads through the handle yield exactly that value.
func TestPropertyAcquireMatchesOccupancy(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		var c slot.Cell[int]
		m := model{}
		if rng.IntN(2) == 0 {
			m = model{value: randInt(rng), some: true}
			c.Set(m.value)
		}
		h, ok := c.Occupied()
		if ok != m.some {
			t.Fatalf("acquire: got ok=%v, want %v", ok, m.some)
		}
		if !ok {
			continue
		}
		if got := h.Value(); got != m.value {
			t.Fatalf("read: got %d, want %d", got, m.value)
		}
		h.Release()
	}
}

// TestPropertyRandomOps: random operation sequences keep Cell in step with the model.
func TestPropertyRandomOps(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for range propertyN {
		var c slot.Cell[int]
		m := model{}
		for range 20 {
			v := randInt(rng)
			switch rng.IntN(6) {
			case 0: // set
				c.Set(v)
				m = model{value: v, some: true}
			case 1: // take
				h, ok := c.Occupied()
				if ok != m.some {
					t.Fatalf("take: acquire ok=%v, want %v", ok, m.some)
				}
				if ok {
					if got := h.Take(); got != m.value {
						t.Fatalf("take: got %d, want %d", got, m.value)
					}
					m = model{}
				}
			case 2: // mutate and release
				if h, ok := c.Occupied(); ok {
					h.Set(v)
					h.Release()
					m.value = v
				}
			case 3: // narrow to value pointer
				if h, ok := c.Occupied(); ok {
					*h.IntoMut() += v
					m.value += v
				}
			case 4: // downgrade to cell
				if h, ok := c.Occupied(); ok {
					if h.IntoCell() != &c {
						t.Fatal("IntoCell returned a different cell")
					}
				}
			case 5: // observe
				got, ok := c.Get()
				if ok != m.some || (ok && got != m.value) {
					t.Fatalf("get: got (%d, %v), want (%d, %v)", got, ok, m.value, m.some)
				}
			}
			if c.Leased() {
				t.Fatal("lease leaked across operations")
			}
			if c.IsSome() != m.some {
				t.Fatalf("occupancy: got %v, want %v", c.IsSome(), m.some)
			}
		}
	}
}

// TestPropertyCompareDelegates: Compare(h, w) ≡ cmp.Compare(v, w), Equal(h, w) ≡ v == w
func TestPropertyCompareDelegates(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))
	for range propertyN {
		v, w := randInt(rng), randInt(rng)
		if rng.IntN(4) == 0 {
			w = v
		}
		var c slot.Cell[int]
		c.Set(v)
		h, _ := c.Occupied()
		if got, want := slot.Compare(h, w), cmp.Compare(v, w); got != want {
			t.Fatalf("Compare(%d, %d) = %d, want %d", v, w, got, want)
		}
		if got, want := slot.Equal(h, w), v == w; got != want {
			t.Fatalf("Equal(%d, %d) = %v, want %v", v, w, got, want)
		}
		if got, want := fmt.Sprintf("%+06d", h), fmt.Sprintf("%+06d", v); got != want {
			t.Fatalf("format: got %q, want %q", got, want)
		}
		h.Release()
	}
}
