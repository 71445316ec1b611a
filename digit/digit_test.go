package digit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yuffster/mcx4/digit"
)

func TestAt(t *testing.T) {
	cases := []struct {
		pos  digit.Pos
		want int
		ok   bool
	}{
		{0, 7, true},
		{1, 6, true},
		{2, 5, true},
		{3, 0, false},
	}
	for _, c := range cases {
		d, ok := digit.At(567, c.pos)
		assert.Equal(t, c.ok, ok)
		if ok {
			assert.Equal(t, c.want, d)
		}
	}
}

func TestWith(t *testing.T) {
	cases := []struct {
		pos  digit.Pos
		d    int
		want int
		ok   bool
	}{
		{0, 9, 569, true},
		{1, 9, 597, true},
		{2, 9, 967, true},
		{3, 9, 0, false},
	}
	for _, c := range cases {
		got, ok := digit.With(567, c.pos, c.d)
		assert.Equal(t, c.ok, ok)
		if ok {
			assert.Equal(t, c.want, got)
		}
	}
}

func TestAtPanicsOnNegativePosition(t *testing.T) {
	assert.Panics(t, func() { digit.At(1, -1) })
}
