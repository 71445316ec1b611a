package port

// circuit is the shared node two or more Ports join through. It
// tracks its attached ports, over which Port.Read applies the
// maximum-output rule for GPIO and XBUS circuits alike.
type circuit struct {
	kind    Kind
	members []*Port
}

func (c *circuit) attach(p *Port) {
	for _, m := range c.members {
		if m == p {
			return
		}
	}
	c.members = append(c.members, p)
}

func (c *circuit) detach(p *Port) {
	for i, m := range c.members {
		if m == p {
			c.members = append(c.members[:i], c.members[i+1:]...)
			return
		}
	}
}

// maxExcluding returns the maximum output value among c's members
// other than exclude, reading from snapshots if frozen is true.
func (c *circuit) maxExcluding(exclude *Port, frozen bool) int {
	max := 0
	any := false
	for _, m := range c.members {
		if m == exclude {
			continue
		}
		v := m.output
		if frozen {
			v = m.frozen
		}
		if !any || v > max {
			max = v
			any = true
		}
	}
	if !any {
		return 0
	}
	return max
}

// Registry is an arena of circuits and the ports attached to them.
// Ports reference circuits only through the small integer CircuitID
// handle, never by pointer, so the ownership graph stays acyclic:
// a Microcontroller owns Ports, a Board owns a Registry, and nothing
// points back from a circuit to the controllers linked through it.
type Registry struct {
	circuits []*circuit
	ports    []*Port
	frozen   bool // true while a board cycle's read snapshot is active
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// NewPort allocates a Port of the given kind owned by owner, not yet
// attached to any circuit.
func (r *Registry) NewPort(owner Owner, name string, kind Kind) *Port {
	p := &Port{owner: owner, name: name, kind: kind, circuit: noCircuit, reg: r}
	r.ports = append(r.ports, p)
	return p
}

func (r *Registry) newCircuit(kind Kind) CircuitID {
	r.circuits = append(r.circuits, &circuit{kind: kind})
	return CircuitID(len(r.circuits) - 1)
}

func (r *Registry) circuit(id CircuitID) *circuit {
	return r.circuits[id]
}

// BeginCycle freezes every port's current output into its snapshot
// buffer and switches Read to consult snapshots instead of live
// values, for the duration of one board cycle. This is what produces
// the one-cycle cross-controller read delay: whichever order a
// Board visits its controllers in within a cycle, every controller
// reads the same pre-cycle values as every other.
func (r *Registry) BeginCycle() {
	for _, p := range r.ports {
		p.frozen = p.output
	}
	r.frozen = true
}

// EndCycle releases the snapshot taken by BeginCycle; subsequent
// Reads (outside of the next BeginCycle/EndCycle bracket) observe
// live output values with no added delay.
func (r *Registry) EndCycle() {
	r.frozen = false
}
