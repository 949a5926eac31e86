package ta

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMA(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}

	assert.Equal(t, 4.0, SMA(vals, 3))
	assert.Equal(t, 3.0, SMA(vals, 5))
	assert.True(t, math.IsNaN(SMA(vals, 6)), "window longer than series must be NaN")
	assert.True(t, math.IsNaN(SMA(vals, 0)))
	assert.True(t, math.IsNaN(SMA(nil, 1)))
}

func TestRollingSMA(t *testing.T) {
	vals := []float64{2, 4, 6, 8, 10}
	out := RollingSMA(vals, 3)

	assert.Len(t, out, len(vals))
	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.Equal(t, 4.0, out[2])
	assert.Equal(t, 6.0, out[3])
	assert.Equal(t, 8.0, out[4])
}

func TestRollingSMAWindowOne(t *testing.T) {
	vals := []float64{7, 8, 9}
	out := RollingSMA(vals, 1)

	assert.Equal(t, vals, out, "window of one is the identity")
}

func TestRollingSMAShortSeries(t *testing.T) {
	out := RollingSMA([]float64{1, 2}, 5)

	assert.Equal(t, 2, CountNaN(out), "every entry undefined when the window never fills")
}

func TestCountNaN(t *testing.T) {
	assert.Equal(t, 0, CountNaN(nil))
	assert.Equal(t, 0, CountNaN([]float64{1, 2}))
	assert.Equal(t, 2, CountNaN([]float64{math.NaN(), 1, math.NaN()}))
}
