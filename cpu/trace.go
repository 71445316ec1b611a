package cpu

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/Yuffster/mcx4/compiler"
)

// Tracer receives one notification per executed instruction. Unlike
// the teacher's interactive Bubble Tea stepper (which paused after
// every instruction for a keypress), a Tracer never blocks or alters
// execution: it only observes.
type Tracer interface {
	Trace(inst compiler.Instruction, pointer int)
}

// VerboseTracer writes a go-spew dump of each executed instruction
// and the resulting instruction pointer to an io.Writer, for the
// `--verbose` run of the CLI.
type VerboseTracer struct {
	Out io.Writer
}

// NewVerboseTracer returns a Tracer that writes to out.
func NewVerboseTracer(out io.Writer) *VerboseTracer {
	return &VerboseTracer{Out: out}
}

func (t *VerboseTracer) Trace(inst compiler.Instruction, pointer int) {
	fmt.Fprintf(t.Out, "-> pointer=%d\n%s", pointer, spew.Sdump(inst))
}
