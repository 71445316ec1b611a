// Package mc implements a Microcontroller: the register table, the
// lazily-allocated GPIO/XBUS port table, the CPU that runs its
// program, and the sleep state a Board checks before stepping it.
package mc

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/Yuffster/mcx4/clock"
	"github.com/Yuffster/mcx4/compiler"
	"github.com/Yuffster/mcx4/cpu"
	"github.com/Yuffster/mcx4/mcerr"
	"github.com/Yuffster/mcx4/port"
	"github.com/Yuffster/mcx4/register"
)

// portCell adapts *port.Port to register.Cell, so CPU operand
// resolution can treat registers and ports uniformly without either
// package importing the other.
type portCell struct{ p *port.Port }

func (c portCell) Name() string { return c.p.QualifiedName() }
func (c portCell) Read() int    { return c.p.Read() }
func (c portCell) Write(v int)  { c.p.Write(v) }

// Microcontroller is one programmable device: a register table, a
// port table, and the CPU that executes against them.
type Microcontroller struct {
	name string

	gpioMax int // highest legal GPIO index, -1 if none
	xbusMax int // highest legal XBUS index, -1 if none

	registers map[string]register.Cell
	ports     map[string]*port.Port

	registry *port.Registry
	cpu      *cpu.CPU

	sleepUntil int64
	sleeping   bool
}

var partCount int

// New builds a Microcontroller with gpio GPIO ports (indices 0..gpio-1),
// xbus XBUS ports (indices 0..xbus-1), and dats `dat` registers (plus
// the always-present `acc` and `null` registers), backed by reg for
// port linking. An empty name is replaced with "mc<N>" using a
// process-wide counter, matching the source language's part-count
// convention.
func New(reg *port.Registry, name string, gpio, xbus, dats int) *Microcontroller {
	if name == "" {
		name = "mc" + strconv.Itoa(partCount)
	}
	partCount++

	m := &Microcontroller{
		name:      name,
		gpioMax:   gpio - 1,
		xbusMax:   xbus - 1,
		registers: map[string]register.Cell{},
		ports:     map[string]*port.Port{},
		registry:  reg,
	}
	m.registers["acc"] = register.New("acc")
	m.registers["null"] = register.NewNull("null")
	for n := 0; n < dats; n++ {
		m.registers["dat"+strconv.Itoa(n)] = register.New("dat" + strconv.Itoa(n))
	}
	if dats > 0 {
		m.registers["dat"] = m.registers["dat0"]
	}
	m.cpu = cpu.New(m)
	return m
}

// MC4000 builds a preset device: 2 GPIO ports, 1 XBUS port, no dat
// registers.
func MC4000(reg *port.Registry, name string) *Microcontroller {
	return New(reg, name, 2, 1, 0)
}

// MC4000X builds a preset device: no GPIO ports, 4 XBUS ports, no dat
// registers.
func MC4000X(reg *port.Registry, name string) *Microcontroller {
	return New(reg, name, 0, 4, 0)
}

// MC6000 builds a preset device: 2 GPIO ports, 4 XBUS ports, 1 dat
// register.
func MC6000(reg *port.Registry, name string) *Microcontroller {
	return New(reg, name, 2, 4, 1)
}

// Name satisfies port.Owner.
func (m *Microcontroller) Name() string { return m.name }

// Acc returns the current value of the accumulator register.
func (m *Microcontroller) Acc() int { return m.registers["acc"].Read() }

// Value resolves a CPU operand: a register/port name reads that
// cell's current value; anything else is parsed as a literal integer.
func (m *Microcontroller) Value(operand string) (int, error) {
	if cell := m.Interface(operand); cell != nil {
		return cell.Read(), nil
	}
	n, err := strconv.Atoi(operand)
	if err != nil {
		return 0, mcerr.Wrap(mcerr.Register, err, "not a register or literal: %s", operand)
	}
	return n, nil
}

// Interface resolves name to a register or port cell, or nil if name
// is neither. name is matched case-insensitively.
func (m *Microcontroller) Interface(name string) register.Cell {
	lower := strings.ToLower(name)
	if r, ok := m.registers[lower]; ok {
		return r
	}
	if isPortName(lower) {
		p, err := m.Port(lower)
		if err != nil {
			return nil
		}
		return portCell{p}
	}
	return nil
}

// Register returns the named register, or a Register-kind mcerr.Error
// if name does not name a register.
func (m *Microcontroller) Register(name string) (register.Cell, error) {
	lower := strings.ToLower(name)
	if r, ok := m.registers[lower]; ok {
		return r, nil
	}
	return nil, mcerr.New(mcerr.Register, "register not found: %s", name)
}

func isPortName(name string) bool {
	if len(name) < 2 {
		return false
	}
	if name[0] != 'p' && name[0] != 'x' {
		return false
	}
	for _, r := range name[1:] {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Port returns the port named by name ("p0", "x3", ...), allocating it
// on first reference. Returns a Port-kind mcerr.Error for an unknown
// port type, a malformed number, or an index beyond this
// controller's configured port count.
func (m *Microcontroller) Port(name string) (*port.Port, error) {
	lower := strings.ToLower(name)
	if p, ok := m.ports[lower]; ok {
		return p, nil
	}
	if len(lower) < 2 {
		return nil, mcerr.New(mcerr.Port, "invalid port name: %s", name)
	}
	var kind port.Kind
	var max int
	switch lower[0] {
	case 'p':
		kind, max = port.GPIO, m.gpioMax
	case 'x':
		kind, max = port.XBUS, m.xbusMax
	default:
		return nil, mcerr.New(mcerr.Port, "unknown port type: %s", name)
	}
	idx, err := strconv.Atoi(lower[1:])
	if err != nil {
		return nil, mcerr.Wrap(mcerr.Port, err, "invalid port number: %s", name)
	}
	if idx > max {
		return nil, mcerr.New(mcerr.Port, "port out of supported range: %s", name)
	}
	p := m.registry.NewPort(m, lower, kind)
	m.ports[lower] = p
	return p, nil
}

// SetTracer installs t to receive a notification for every
// instruction this controller's CPU executes from now on.
func (m *Microcontroller) SetTracer(t cpu.Tracer) {
	m.cpu.Tracer = t
}

// Compile loads code into this controller's CPU, replacing any
// program already loaded.
func (m *Microcontroller) Compile(code string) compiler.Program {
	return m.cpu.Compile(code)
}

// Execute compiles and runs code once through to completion,
// ignoring the controller's sleep state.
func (m *Microcontroller) Execute(code string) error {
	return m.cpu.Execute(code)
}

// Step executes the controller's next instruction, unless the
// controller is currently sleeping.
func (m *Microcontroller) Step() error {
	if m.Sleeping() {
		return nil
	}
	return m.cpu.Step()
}

// Sleep puts the controller to sleep until atus arbitrary time units
// from the current cycle.
func (m *Microcontroller) Sleep(atus int) {
	m.sleepUntil = clock.EndTime(int64(atus))
	m.sleeping = true
}

// Sleeping reports whether the controller is still within a sleep
// window, waking it (and clearing the window) if the clock has caught
// up.
func (m *Microcontroller) Sleeping() bool {
	if !m.sleeping {
		return false
	}
	now, bound := clock.Now()
	if !bound || now >= m.sleepUntil {
		m.sleeping = false
		m.sleepUntil = 0
		return false
	}
	return true
}

// SleepUntil returns the absolute cycle this controller will next be
// runnable, for a Board's fast-forward scheduling. Only meaningful
// while Sleeping() is true.
func (m *Microcontroller) SleepUntil() int64 { return m.sleepUntil }
