package legs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Meridian/internal/calc"
	"Meridian/internal/vessel"
)

func fourLegs() []vessel.Leg {
	return []vessel.Leg{
		{Name: "aft_port", LCG: 10, TCG: 10},
		{Name: "aft_stbd", LCG: 10, TCG: -10},
		{Name: "fwd_port", LCG: 50, TCG: 10},
		{Name: "fwd_stbd", LCG: 50, TCG: -10},
	}
}

func TestDistributeCentroidLoadIsUniform(t *testing.T) {
	reactions, levers, err := Distribute(fourLegs(), 800, 30, 0)
	require.NoError(t, err)
	require.Len(t, reactions, 4)

	assert.Zero(t, levers.Longitudinal)
	assert.Zero(t, levers.Transverse)
	for _, r := range reactions {
		assert.InDeltaf(t, 200, r.Load, 1e-9, "leg %s", r.Name)
	}
}

func TestDistributeMomentsShiftTheLoad(t *testing.T) {
	// CG 10 m forward and 2 m to port of the centroid.
	reactions, levers, err := Distribute(fourLegs(), 800, 40, 2)
	require.NoError(t, err)

	assert.InDelta(t, 10, levers.Longitudinal, 1e-9)
	assert.InDelta(t, 2, levers.Transverse, 1e-9)

	byName := map[string]Reaction{}
	var sum float64
	for _, r := range reactions {
		byName[r.Name] = r
		sum += r.Load
	}
	// 200 uniform, +-100 longitudinal, +-40 transverse.
	assert.InDelta(t, 60, byName["aft_stbd"].Load, 1e-9)
	assert.InDelta(t, 140, byName["aft_port"].Load, 1e-9)
	assert.InDelta(t, 340, byName["fwd_port"].Load, 1e-9)
	assert.InDelta(t, 260, byName["fwd_stbd"].Load, 1e-9)
	assert.InDelta(t, 800, sum, 1e-9)
}

func TestDistributeDegenerate(t *testing.T) {
	_, _, err := Distribute(nil, 800, 30, 0)
	assert.ErrorIs(t, err, calc.ErrMissingTable)

	collinear := []vessel.Leg{{LCG: 10, TCG: 0}, {LCG: 50, TCG: 0}}
	_, _, err = Distribute(collinear, 800, 30, 0)
	assert.ErrorIs(t, err, calc.ErrDegenerateGeometry)
}
