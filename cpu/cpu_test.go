package cpu_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yuffster/mcx4/cpu"
	"github.com/Yuffster/mcx4/register"
)

// fakeMachine is a minimal cpu.Machine backed by a register table,
// with no ports, so instruction tests don't need the port/mc
// packages.
type fakeMachine struct {
	regs     map[string]register.Cell
	slept    int
	sleptAny bool
}

func newFakeMachine() *fakeMachine {
	m := &fakeMachine{regs: map[string]register.Cell{}}
	m.regs["acc"] = register.New("acc")
	m.regs["dat"] = register.New("dat")
	m.regs["null"] = register.NewNull("null")
	return m
}

func (m *fakeMachine) Value(operand string) (int, error) {
	if c := m.Interface(operand); c != nil {
		return c.Read(), nil
	}
	return strconv.Atoi(operand)
}

func (m *fakeMachine) Register(name string) (register.Cell, error) {
	if r, ok := m.regs[name]; ok {
		return r, nil
	}
	return nil, assertableErr{name}
}

func (m *fakeMachine) Interface(name string) register.Cell {
	if r, ok := m.regs[name]; ok {
		return r
	}
	return nil
}

func (m *fakeMachine) Sleep(atus int) {
	m.slept = atus
	m.sleptAny = true
}

type assertableErr struct{ name string }

func (e assertableErr) Error() string { return "register not found: " + e.name }

func (m *fakeMachine) acc() int { return m.regs["acc"].Read() }

func TestAddSubMul(t *testing.T) {
	m := newFakeMachine()
	c := cpu.New(m)
	c.Execute("add 5\nadd 3\nsub 2\nmul 4")
	assert.Equal(t, 24, m.acc())
}

func TestNotTogglesZero(t *testing.T) {
	m := newFakeMachine()
	c := cpu.New(m)
	c.Execute("not")
	assert.Equal(t, 100, m.acc())

	c.Execute("not")
	assert.Equal(t, 0, m.acc())
}

func TestMovLiteralAndRegister(t *testing.T) {
	m := newFakeMachine()
	c := cpu.New(m)
	c.Execute("mov 7 dat\nmov dat acc")
	assert.Equal(t, 7, m.acc())
}

func TestTestAndCondGatesExecution(t *testing.T) {
	m := newFakeMachine()
	c := cpu.New(m)
	c.Execute("teq 1 1\n+ mov 9 acc\n- mov 1 acc")
	assert.Equal(t, 9, m.acc())

	m2 := newFakeMachine()
	c2 := cpu.New(m2)
	c2.Execute("teq 1 2\n+ mov 9 acc\n- mov 1 acc")
	assert.Equal(t, 1, m2.acc())
}

func TestJmpLoopsToLabel(t *testing.T) {
	m := newFakeMachine()
	c := cpu.New(m)
	c.Execute("mov 0 dat\nloop: add 1\nmov acc dat\ntcp dat 3\n- jmp loop")
	assert.Equal(t, 3, m.acc())
}

func TestSleepDelegatesToMachine(t *testing.T) {
	m := newFakeMachine()
	c := cpu.New(m)
	c.Execute("slp 5")
	assert.Equal(t, 5, m.slept)
	assert.True(t, m.sleptAny)
}

func TestDgtAndDst(t *testing.T) {
	m := newFakeMachine()
	c := cpu.New(m)
	c.Execute("mov 567 acc\ndgt 1")
	assert.Equal(t, 6, m.acc())

	m2 := newFakeMachine()
	c2 := cpu.New(m2)
	c2.Execute("mov 567 acc\ndst 1 9")
	assert.Equal(t, 597, m2.acc())
}

func TestStepLoopsBackToStart(t *testing.T) {
	m := newFakeMachine()
	c := cpu.New(m)
	c.Compile("add 1\nadd 1")
	assert.NoError(t, c.Step())
	assert.NoError(t, c.Step())
	assert.NoError(t, c.Step()) // loops back to first instruction
	assert.Equal(t, 3, m.acc())
}
