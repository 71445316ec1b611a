// Package cpu implements the instruction set a Microcontroller steps:
// compiling assembly text into a tagged instruction stream and
// executing it one instruction at a time against a Machine.
//
// This keeps the teacher's shape of a CPU type owning an instruction
// pointer and a fetch/decode-style loop, but dispatches through a
// switch over a tagged Instruction variant (see instructions.go)
// rather than the teacher's byte-indexed Opcode table or the source
// language's string-keyed `do_<opcode>` method lookup.
package cpu

import (
	"github.com/Yuffster/mcx4/compiler"
	"github.com/Yuffster/mcx4/register"
)

// Machine is everything a CPU needs from its owning Microcontroller:
// operand resolution, register/port lookup, and sleep control. It
// exists so cpu does not import mc (mc imports cpu to build one per
// controller).
type Machine interface {
	// Value resolves an operand: a register/port name reads that
	// cell, anything else parses as a literal integer.
	Value(operand string) (int, error)
	// Register resolves a register name, or an mcerr Register error.
	Register(name string) (register.Cell, error)
	// Interface resolves a register or port name to its cell, or nil
	// if name names neither.
	Interface(name string) register.Cell
	// Sleep suspends the owning controller for atus time units.
	Sleep(atus int)
}

// CPU runs one Microcontroller's compiled program.
type CPU struct {
	machine Machine

	program compiler.Program
	pointer int

	// predicate flags set by the most recent test instruction and
	// consulted by the cond instructions that follow it, persisting
	// across steps the way the source CPU carries _exec_plus/
	// _exec_minus between calls.
	plus  bool
	minus bool

	Tracer Tracer
}

// New returns a CPU with no program loaded.
func New(m Machine) *CPU {
	return &CPU{machine: m}
}

// Compile parses code and loads it as this CPU's program, resetting
// the instruction pointer and predicate flags but not any registers.
func (c *CPU) Compile(code string) compiler.Program {
	c.program = compiler.Compile(code)
	c.pointer = 0
	c.plus, c.minus = false, false
	return c.program
}

// Execute compiles code and runs it once through to completion,
// ignoring any program already loaded and not looping at the end.
func (c *CPU) Execute(code string) error {
	c.Compile(code)
	for c.pointer < len(c.program.Instructions) {
		if err := c.step(false); err != nil {
			return err
		}
	}
	c.pointer = 0
	return nil
}

// Step executes the next instruction of the currently loaded program,
// looping back to the start once the pointer runs past the end.
func (c *CPU) Step() error {
	return c.step(true)
}

func (c *CPU) step(loop bool) error {
	if len(c.program.Instructions) == 0 {
		return nil
	}
	inst := c.program.Instructions[c.pointer]
	jump, err := c.exec(inst)
	if err != nil {
		return err
	}
	if jump >= 0 {
		c.pointer = jump
	} else {
		c.pointer++
	}
	if loop && c.pointer == len(c.program.Instructions) {
		c.pointer = 0
	}
	if c.Tracer != nil {
		c.Tracer.Trace(inst, c.pointer)
	}
	return nil
}

// exec runs one Instruction, returning a non-negative jump target
// when the instruction redirects control flow (jmp, or a cond whose
// guarded instruction is itself a jmp); otherwise -1, meaning advance
// sequentially.
func (c *CPU) exec(inst compiler.Instruction) (jump int, err error) {
	switch inst.Kind {
	case compiler.Test:
		return -1, c.execTest(inst)
	case compiler.Cond:
		if inst.Plus && c.plus || !inst.Plus && c.minus {
			return c.exec(*inst.Inner)
		}
		return -1, nil
	default:
		return c.execPlain(inst)
	}
}
