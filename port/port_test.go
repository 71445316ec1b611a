package port_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yuffster/mcx4/mcerr"
	"github.com/Yuffster/mcx4/port"
)

type fakeOwner string

func (f fakeOwner) Name() string { return string(f) }

func TestUnlinkedReadIsZero(t *testing.T) {
	reg := port.NewRegistry()
	p := reg.NewPort(fakeOwner("mc1"), "g0", port.GPIO)
	p.Write(42)
	assert.Equal(t, 0, p.Read())
}

func TestGPIOWriteSaturates(t *testing.T) {
	reg := port.NewRegistry()
	p := reg.NewPort(fakeOwner("mc1"), "g0", port.GPIO)
	p.Write(150)
	assert.Equal(t, 100, p.Output())
	p.Write(-5)
	assert.Equal(t, 0, p.Output())
}

func TestXBUSWriteUnclamped(t *testing.T) {
	reg := port.NewRegistry()
	p := reg.NewPort(fakeOwner("mc1"), "x0", port.XBUS)
	p.Write(9999)
	assert.Equal(t, 9999, p.Output())
}

func TestLinkReadsMaxOfOthers(t *testing.T) {
	reg := port.NewRegistry()
	a := reg.NewPort(fakeOwner("mc1"), "g0", port.GPIO)
	b := reg.NewPort(fakeOwner("mc2"), "g0", port.GPIO)
	c := reg.NewPort(fakeOwner("mc3"), "g0", port.GPIO)
	assert.NoError(t, port.Link(a, b))
	assert.NoError(t, port.Link(b, c))

	a.Write(10)
	c.Write(30)
	assert.Equal(t, 30, b.Read())
	assert.Equal(t, 30, a.Read()) // a excludes itself: max of b=0, c=30
}

func TestLinkRejectsSelf(t *testing.T) {
	reg := port.NewRegistry()
	owner := fakeOwner("mc1")
	a := reg.NewPort(owner, "g0", port.GPIO)
	b := reg.NewPort(owner, "g1", port.GPIO)
	err := port.Link(a, b)
	assert.True(t, mcerr.Is(err, mcerr.PortSelfLink))
}

func TestLinkRejectsIncompatibleKinds(t *testing.T) {
	reg := port.NewRegistry()
	a := reg.NewPort(fakeOwner("mc1"), "g0", port.GPIO)
	b := reg.NewPort(fakeOwner("mc2"), "x0", port.XBUS)
	err := port.Link(a, b)
	assert.True(t, mcerr.Is(err, mcerr.PortCompat))
}

func TestUnlinkDetaches(t *testing.T) {
	reg := port.NewRegistry()
	a := reg.NewPort(fakeOwner("mc1"), "g0", port.GPIO)
	b := reg.NewPort(fakeOwner("mc2"), "g0", port.GPIO)
	assert.NoError(t, port.Link(a, b))
	b.Write(77)
	assert.Equal(t, 77, a.Read())
	a.Unlink()
	assert.False(t, a.Linked())
	assert.Equal(t, 0, a.Read())
	assert.Equal(t, 0, b.Read()) // b now alone on the circuit
}

// TestBoardCycleFreezesReads exercises the scenario that decides the
// double-buffering design: a writer stepped before a reader within
// the same board cycle must not be visible to the reader until the
// cycle ends.
func TestBoardCycleFreezesReads(t *testing.T) {
	reg := port.NewRegistry()
	writer := reg.NewPort(fakeOwner("mc1"), "g0", port.GPIO)
	reader := reg.NewPort(fakeOwner("mc2"), "g0", port.GPIO)
	assert.NoError(t, port.Link(writer, reader))

	writer.Write(5)
	reg.BeginCycle()
	writer.Write(40) // writer "steps" mid-cycle, writing a new value
	assert.Equal(t, 5, reader.Read(), "reader must see the pre-cycle value while the cycle is open")
	reg.EndCycle()
	assert.Equal(t, 40, reader.Read(), "reader sees the committed value once the cycle closes")
}

func TestDirectReadOutsideCycleIsLive(t *testing.T) {
	reg := port.NewRegistry()
	writer := reg.NewPort(fakeOwner("mc1"), "g0", port.GPIO)
	reader := reg.NewPort(fakeOwner("mc2"), "g0", port.GPIO)
	assert.NoError(t, port.Link(writer, reader))

	writer.Write(12)
	assert.Equal(t, 12, reader.Read(), "no board cycle open: reads are live")
}
