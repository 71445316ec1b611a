// Package port implements mcx4's electrical interconnect: Port (the
// GPIO and XBUS variants), Circuit (the shared node two or more ports
// link through), and the Registry arena that backs both.
//
// Circuits are kept in a Registry arena indexed by CircuitID
// rather than being shared directly by pointer between Ports. This
// keeps the ownership graph acyclic and gives Board a single place to
// freeze and release a cycle's read snapshot (see BeginCycle/EndCycle)
// to implement the one-cycle cross-controller read delay.
package port

import "github.com/Yuffster/mcx4/mcerr"

// Kind distinguishes the two port variants.
type Kind int

const (
	// GPIO ports saturate writes to 0..100.
	GPIO Kind = iota
	// XBUS ports store writes unchanged.
	XBUS
)

func (k Kind) String() string {
	if k == GPIO {
		return "GPIO"
	}
	return "XBUS"
}

// Owner identifies the controller that exclusively owns a Port, for
// self-link detection and error messages. Implemented by
// *mc.Microcontroller.
type Owner interface {
	Name() string
}

// CircuitID is an opaque handle into a Registry's circuit arena.
type CircuitID int

const noCircuit CircuitID = -1

// Port is an output-buffered endpoint owned by exactly one
// controller, belonging to at most one Circuit at a time.
type Port struct {
	owner   Owner
	name    string
	kind    Kind
	output  int // live value, set by Write, visible immediately to non-board-mediated reads
	frozen  int // snapshot of output as of the start of the current board cycle
	circuit CircuitID
	reg     *Registry
}

// QualifiedName returns "owner.name", matching the source language's
// Interface.name property.
func (p *Port) QualifiedName() string {
	return p.owner.Name() + "." + p.name
}

// Kind returns the port's variant.
func (p *Port) Kind() Kind { return p.kind }

// Output returns the live (uncommitted) output buffer value.
func (p *Port) Output() int { return p.output }

// Write stores v in the port's output buffer, saturating to 0..100
// for GPIO ports and storing it unchanged for XBUS ports.
func (p *Port) Write(v int) {
	if p.kind == GPIO {
		if v > 100 {
			v = 100
		}
		if v < 0 {
			v = 0
		}
	}
	p.output = v
}

// Read returns the maximum output buffer among every other port on
// this port's Circuit (0 if unlinked or alone on the Circuit). While a
// board cycle is in progress (between BeginCycle and EndCycle), this
// reads the frozen snapshot taken at BeginCycle instead of the live
// value, producing the one-cycle cross-controller delay; outside of a
// board cycle it reads live values with no added latency.
func (p *Port) Read() int {
	if p.circuit == noCircuit {
		return 0
	}
	c := p.reg.circuit(p.circuit)
	return c.maxExcluding(p, p.reg.frozen)
}

// Linked reports whether the port currently belongs to a Circuit.
func (p *Port) Linked() bool { return p.circuit != noCircuit }

// Link joins a and b into the same Circuit, creating one if neither
// already belongs to one, or joining whichever one already exists.
// Returns a PortCompat error if the variants differ, or a
// PortSelfLink error if a and b share an owner. Neither port is
// modified if validation fails.
func Link(a, b *Port) error {
	if a.owner == b.owner {
		return mcerr.New(mcerr.PortSelfLink, "part linked to self (%s via %s)", b.QualifiedName(), a.QualifiedName())
	}
	if a.kind != b.kind {
		return mcerr.New(mcerr.PortCompat, "incompatible ports: %s / %s", a.kind, b.kind)
	}
	cid := b.circuit
	if cid == noCircuit {
		cid = a.circuit
	}
	reg := a.reg
	if cid == noCircuit {
		cid = reg.newCircuit(a.kind)
	}
	if a.circuit != noCircuit && a.circuit != cid {
		reg.circuit(a.circuit).detach(a)
	}
	c := reg.circuit(cid)
	c.attach(a)
	c.attach(b)
	a.circuit = cid
	b.circuit = cid
	return nil
}

// Unlink removes p from its Circuit. p keeps no reference to the
// Circuit afterward; other attached ports are unaffected.
func (p *Port) Unlink() {
	if p.circuit == noCircuit {
		return
	}
	c := p.reg.circuit(p.circuit)
	c.detach(p)
	p.circuit = noCircuit
}
