// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pending holds one offered value until a stepper, re-entered once
// per tick, finds it ready to consume.
package pending

import (
	"errors"
	"fmt"

	"github.com/apex/log"

	"code.hybscloud.com/slot"
)

// ErrBusy is returned by Offer when a value is already pending.
var ErrBusy = errors.New("value already pending")

// Gate holds at most one pending value of type T.
//
// It is not safe for concurrent use.
type Gate[T any] struct {
	name  string
	cell  slot.Cell[T]
	steps int
	log   log.Interface
}

// New returns an empty gate. A nil logger logs through log.Log.
func New[T any](name string, logger log.Interface) *Gate[T] {
	if logger == nil {
		logger = log.Log
	}
	return &Gate[T]{
		name: name,
		log:  logger.WithField("gate", name),
	}
}

// Offer makes v the pending value.
func (g *Gate[T]) Offer(v T) error {
	if g.cell.IsSome() {
		return fmt.Errorf("pending %s: %w", g.name, ErrBusy)
	}
	g.cell.Set(v)
	g.log.WithField("value", v).Debug("offered")
	return nil
}

// Step is called once per tick. If a value is pending, ready is given a
// pointer to it and may update it in place; the pointer must not be kept
// after ready returns. When ready reports true the value is consumed and
// returned with true. Otherwise the value stays pending and Step returns
// the zero value and false.
//
// ready must not call back into the gate. If ready panics, the value stays
// pending and the gate remains usable.
func (g *Gate[T]) Step(ready func(*T) bool) (T, bool) {
	g.steps++
	h, ok := g.cell.Occupied()
	if !ok {
		g.log.WithField("step", g.steps).Debug("idle")
		var zero T
		return zero, false
	}
	// No-op once Take has consumed h.
	defer h.Release()

	if !ready(h.Mut()) {
		g.log.WithFields(log.Fields{
			"step":  g.steps,
			"value": h.Value(),
		}).Debug("not ready")
		var zero T
		return zero, false
	}
	v := h.Take()
	g.log.WithFields(log.Fields{
		"step":  g.steps,
		"value": v,
	}).Info("consumed")
	return v, true
}

// Cancel drops the pending value, if any, and returns it.
func (g *Gate[T]) Cancel() (T, bool) {
	h, ok := g.cell.Occupied()
	if !ok {
		var zero T
		return zero, false
	}
	v := h.Take()
	g.log.WithField("value", v).Info("cancelled")
	return v, true
}

// Pending reports whether a value is waiting.
func (g *Gate[T]) Pending() bool {
	return g.cell.IsSome()
}

// Steps returns how many times Step has been called.
func (g *Gate[T]) Steps() int {
	return g.steps
}
