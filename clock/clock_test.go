package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yuffster/mcx4/clock"
)

func TestAdvanceCycleBindsOnFirstTouch(t *testing.T) {
	before := clock.Snapshot()
	clock.AdvanceCycle()
	after := clock.Snapshot()
	assert.Equal(t, before+1, after)

	_, bound := clock.Now()
	assert.True(t, bound)
}

func TestEndTimeIsRelativeToNow(t *testing.T) {
	clock.AdvanceCycle()
	now := clock.Snapshot()
	assert.Equal(t, now+2000, clock.EndTime(2))
	assert.Equal(t, now, clock.EndTime(0))
}

func TestSetPinsClock(t *testing.T) {
	clock.Set(42)
	now, bound := clock.Now()
	assert.Equal(t, int64(42), now)
	assert.True(t, bound)
}
