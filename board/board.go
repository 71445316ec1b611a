// Package board implements the round-robin cycle scheduler that
// steps a set of Microcontrollers, coordinating their sleep
// deadlines and freezing each cycle's port reads so that every
// controller in a cycle sees the same pre-cycle circuit state.
package board

import (
	"github.com/Yuffster/mcx4/clock"
	"github.com/Yuffster/mcx4/mc"
	"github.com/Yuffster/mcx4/port"
)

// steppable is the subset of *mc.Microcontroller a Board drives.
type steppable interface {
	Step() error
	Sleeping() bool
	SleepUntil() int64
}

// Board owns a port.Registry and steps a list of controllers once per
// cycle, round-robin, in the order they were added.
type Board struct {
	registry *port.Registry
	items    []steppable
	seen     map[steppable]bool
}

// New returns an empty Board backed by reg, binding the process-wide
// clock on first use (matching the source language's lazy
// `time.advance_cycle()` call in Board's constructor).
func New(reg *port.Registry) *Board {
	if _, bound := clock.Now(); !bound {
		clock.AdvanceCycle()
	}
	return &Board{registry: reg, seen: map[steppable]bool{}}
}

// Add attaches m to the board so its steps are driven here. Adding
// the same controller twice is a no-op.
func (b *Board) Add(m *mc.Microcontroller) {
	if b.seen[m] {
		return
	}
	b.seen[m] = true
	b.items = append(b.items, m)
}

// Step runs one cycle: every non-sleeping controller steps once, in
// add order; the board's registry freezes a read snapshot before any
// controller steps and releases it once every controller in the
// cycle has had a turn, so a write from one controller is never
// visible to another until the next cycle. If every controller is
// asleep, the clock fast-forwards to the earliest wake time instead
// of idling cycle by cycle.
func (b *Board) Step() error {
	if len(b.items) == 0 {
		return nil
	}

	b.registry.BeginCycle()
	var sleepUntils []int64
	for _, item := range b.items {
		if item.Sleeping() {
			sleepUntils = append(sleepUntils, item.SleepUntil())
			continue
		}
		if err := item.Step(); err != nil {
			b.registry.EndCycle()
			return err
		}
	}
	b.registry.EndCycle()

	if len(sleepUntils) == len(b.items) {
		clock.Set(earliest(sleepUntils))
	}
	clock.AdvanceCycle()
	return nil
}

// Advance steps the board repeatedly until one arbitrary time unit
// has elapsed on the clock.
func (b *Board) Advance() error {
	end := clock.EndTime(1)
	for {
		now, _ := clock.Now()
		if now >= end {
			return nil
		}
		if err := b.Step(); err != nil {
			return err
		}
	}
}

func earliest(times []int64) int64 {
	min := times[0]
	for _, t := range times[1:] {
		if t < min {
			min = t
		}
	}
	return min
}
