package cpu

import (
	"github.com/Yuffster/mcx4/compiler"
	"github.com/Yuffster/mcx4/digit"
	"github.com/Yuffster/mcx4/mcerr"
	"github.com/Yuffster/mcx4/register"
)

// execPlain runs a Plain instruction. It returns a jump target for
// jmp, -1 otherwise.
func (c *CPU) execPlain(inst compiler.Instruction) (int, error) {
	switch inst.Op {
	case "add":
		return -1, c.doAdd(inst.Args)
	case "sub":
		return -1, c.doSub(inst.Args)
	case "mul":
		return -1, c.doMul(inst.Args)
	case "not":
		return -1, c.doNot()
	case "dgt":
		return -1, c.doDgt(inst.Args)
	case "dst":
		return -1, c.doDst(inst.Args)
	case "mov":
		return -1, c.doMov(inst.Args)
	case "jmp":
		return c.doJmp(inst.Args)
	case "slp":
		return -1, c.doSlp(inst.Args)
	case "nop":
		return -1, nil
	default:
		return -1, mcerr.New(mcerr.Command, "invalid instruction: %s", inst.Op)
	}
}

func (c *CPU) acc() (register.Cell, error) {
	return c.machine.Register("acc")
}

func (c *CPU) doAdd(args []string) error {
	a, err := c.machine.Value(args[0])
	if err != nil {
		return err
	}
	acc, err := c.acc()
	if err != nil {
		return err
	}
	acc.Write(acc.Read() + a)
	return nil
}

func (c *CPU) doSub(args []string) error {
	a, err := c.machine.Value(args[0])
	if err != nil {
		return err
	}
	acc, err := c.acc()
	if err != nil {
		return err
	}
	acc.Write(acc.Read() - a)
	return nil
}

func (c *CPU) doMul(args []string) error {
	a, err := c.machine.Value(args[0])
	if err != nil {
		return err
	}
	acc, err := c.acc()
	if err != nil {
		return err
	}
	acc.Write(acc.Read() * a)
	return nil
}

func (c *CPU) doNot() error {
	acc, err := c.acc()
	if err != nil {
		return err
	}
	if acc.Read() == 0 {
		acc.Write(100)
	} else {
		acc.Write(0)
	}
	return nil
}

// doDgt rewrites the accumulator with one isolated little-endian
// decimal digit, resetting it to 0 if the position named is past the
// accumulator's current number of digits.
func (c *CPU) doDgt(args []string) error {
	pos, err := c.machine.Value(args[0])
	if err != nil {
		return err
	}
	acc, err := c.acc()
	if err != nil {
		return err
	}
	d, ok := digit.At(acc.Read(), digit.Pos(pos))
	if !ok {
		acc.Write(0)
		return nil
	}
	acc.Write(d)
	return nil
}

// doDst sets one little-endian decimal digit of the accumulator to
// the least significant digit of val, resetting to 0 if the position
// named is past the accumulator's current number of digits. The
// position operand, like val, is itself reduced to its own least
// significant digit before use.
func (c *CPU) doDst(args []string) error {
	posVal, err := c.machine.Value(args[0])
	if err != nil {
		return err
	}
	val, err := c.machine.Value(args[1])
	if err != nil {
		return err
	}
	acc, err := c.acc()
	if err != nil {
		return err
	}

	lastDigit := func(v int) int {
		d, _ := digit.At(v, 0)
		return d
	}
	pos := digit.Pos(lastDigit(posVal))
	newDigit := lastDigit(val)

	out, ok := digit.With(acc.Read(), pos, newDigit)
	if !ok {
		acc.Write(0)
		return nil
	}
	acc.Write(out)
	return nil
}

func (c *CPU) doMov(args []string) error {
	a, err := c.machine.Value(args[0])
	if err != nil {
		return err
	}
	dst := c.machine.Interface(args[1])
	if dst == nil {
		return mcerr.New(mcerr.Register, "invalid register: %s", args[1])
	}
	dst.Write(a)
	return nil
}

func (c *CPU) doJmp(args []string) (int, error) {
	label := args[0]
	target, ok := c.program.Labels[label]
	if !ok {
		return -1, mcerr.New(mcerr.Label, "label not found: %s", label)
	}
	return target, nil
}

func (c *CPU) doSlp(args []string) error {
	a, err := c.machine.Value(args[0])
	if err != nil {
		return err
	}
	c.machine.Sleep(a)
	return nil
}

func (c *CPU) execTest(inst compiler.Instruction) error {
	a, err := c.machine.Value(inst.Args[0])
	if err != nil {
		return err
	}
	b, err := c.machine.Value(inst.Args[1])
	if err != nil {
		return err
	}
	plus, minus, err := compare(inst.Comp, a, b)
	if err != nil {
		return err
	}
	c.plus, c.minus = plus, minus
	return nil
}

// compare looks up the named comparator (eq/cp/lt/gt) in the
// comparator table and applies it to a, b.
func compare(name string, a, b int) (plus, minus bool, err error) {
	cmp, ok := comparators[name]
	if !ok {
		return false, false, mcerr.New(mcerr.Command, "invalid comparison: %s", name)
	}
	plus, minus = cmp(a, b)
	return plus, minus, nil
}

// comparators mirrors the source language's test_eq/test_cp/test_lt/
// test_gt table: each returns the (+, -) predicate pair a test
// instruction sets for the cond instructions that follow it.
var comparators = map[string]func(a, b int) (plus, minus bool){
	"eq": func(a, b int) (bool, bool) { return a == b, a != b },
	"cp": func(a, b int) (bool, bool) { return a > b, a < b },
	"lt": func(a, b int) (bool, bool) { return a < b, !(a < b) },
	"gt": func(a, b int) (bool, bool) { return a > b, !(a > b) },
}
