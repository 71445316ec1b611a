package register_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yuffster/mcx4/register"
)

func TestRegisterReadWrite(t *testing.T) {
	r := register.New("acc")
	assert.Equal(t, 0, r.Read())
	r.Write(5)
	assert.Equal(t, 5, r.Read())
}

func TestRegisterIncDec(t *testing.T) {
	r := register.New("dat0")
	r.Write(5)
	r.Inc(1)
	assert.Equal(t, 6, r.Read())
	r.Dec(2)
	assert.Equal(t, 4, r.Read())
}

func TestRegisterWriteString(t *testing.T) {
	r := register.New("acc")
	assert.NoError(t, r.WriteString("42"))
	assert.Equal(t, 42, r.Read())
	assert.Error(t, r.WriteString("nope"))
}

func TestNullRegisterAlwaysReadsZero(t *testing.T) {
	n := register.NewNull("null")
	n.Write(100)
	assert.Equal(t, 0, n.Read())
}

func TestCellInterfaceSatisfiedByBoth(t *testing.T) {
	var cells []register.Cell
	cells = append(cells, register.New("acc"), register.NewNull("null"))
	for _, c := range cells {
		c.Write(10)
	}
	assert.Equal(t, 10, cells[0].Read())
	assert.Equal(t, 0, cells[1].Read())
}
