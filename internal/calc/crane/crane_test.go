package crane

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Meridian/internal/calc"
	"Meridian/internal/calc/weights"
	"Meridian/internal/vessel"
)

func loadCurve(t *testing.T, key vessel.SWLKey) vessel.SWLTable {
	t.Helper()
	tbl, err := vessel.NewSWLTable(key, []vessel.SWLPoint{
		{Radius: 10, SWL: 100},
		{Radius: 20, SWL: 80},
		{Radius: 30, SWL: 50},
	})
	require.NoError(t, err)
	return tbl
}

func unityCorrections() Corrections {
	return Corrections{WCF: 1, WCFRigging: 1, DAF: 1, DAFIncl: 1}
}

func TestLiftClear(t *testing.T) {
	geo := &vessel.CraneGeometry{
		PedestalBase: [3]float64{0, 0, 5},
		Tip:          [3]float64{40, 0, 45},
	}
	tables := []vessel.SWLTable{loadCurve(t, vessel.SWLKey{Boom: "Main Boom", Operation: "harbour", Height: "30"})}

	o, err := Lift(geo, tables, Input{
		Boom:        "Main Boom",
		Operation:   "harbour",
		Height:      "30",
		Cargo:       weights.Item{Weight: 10, LCG: 25, TCG: 0},
		Corrections: unityCorrections(),
	})
	require.NoError(t, err)

	assert.Equal(t, StateClear, o.State)
	assert.InDelta(t, 25, o.RequiredOutreach, 1e-9)
	assert.InDelta(t, 0, o.SlewAngle, 1e-9)
	assert.InDelta(t, 51.317812, o.BoomAngle, 1e-5) // acos(25/40)

	b := o.Breakdown
	assert.InDelta(t, 10, b.SHLub, 1e-9)
	assert.InDelta(t, 10, b.SWLreq, 1e-9)
	assert.InDelta(t, 65, b.SWL, 1e-9)
	assert.InDelta(t, 65, b.SWLcorr, 1e-9)
	assert.InDelta(t, 10.0/65, b.UCl, 1e-9)
	// 10 t is available even at the farthest tabulated radius.
	assert.InDelta(t, 30, b.Rm, 1e-9)
	assert.InDelta(t, 25.0/30, b.UCr, 1e-9)
}

func TestLiftGeometryErrors(t *testing.T) {
	tables := []vessel.SWLTable{loadCurve(t, vessel.SWLKey{})}

	_, err := Lift(nil, tables, Input{Corrections: unityCorrections()})
	assert.ErrorIs(t, err, calc.ErrMissingTable)

	_, err = Lift(&vessel.CraneGeometry{}, nil, Input{Corrections: unityCorrections()})
	assert.ErrorIs(t, err, calc.ErrMissingTable)

	// Tip aft of the pedestal yields a non-positive derived boom length.
	geo := &vessel.CraneGeometry{PedestalBase: [3]float64{0, 0, 0}, Tip: [3]float64{-5, 0, 0}}
	_, err = Lift(geo, tables, Input{Corrections: unityCorrections()})
	assert.ErrorIs(t, err, calc.ErrDegenerateGeometry)
}

func TestLiftUsesBoomTypeTipPoint(t *testing.T) {
	geo := &vessel.CraneGeometry{
		PedestalBase: [3]float64{0, 0, 0},
		BoomTips:     map[string][3]float64{"Main": {30, 0, 0}},
		Tip:          [3]float64{99, 0, 0},
	}
	tables := []vessel.SWLTable{loadCurve(t, vessel.SWLKey{})}

	o, err := Lift(geo, tables, Input{
		Boom:        "Main Boom",
		Cargo:       weights.Item{Weight: 1, LCG: 15},
		Corrections: unityCorrections(),
	})
	require.NoError(t, err)
	// acos(15/30), not acos(15/99)
	assert.InDelta(t, 60, o.BoomAngle, 1e-9)
}

func TestRequiredSWLAmplification(t *testing.T) {
	points := loadCurve(t, vessel.SWLKey{}).Points
	b := requiredSWL(points, 15, 50, Corrections{
		Rigging: 2, Hook: 1, Block: 3,
		WCF: 1.1, WCFRigging: 1.05,
		DAF: 1.3, DAFIncl: 1.0,
	})

	assert.InDelta(t, 53, b.SHLbe, 1e-9)
	assert.InDelta(t, 58.1, b.SHLub, 1e-9)
	assert.InDelta(t, 76.43, b.SWLreq, 1e-9)
	assert.InDelta(t, 90, b.SWL, 1e-9)
	assert.InDelta(t, (90+3)/1.3-3, b.SWLcorr, 1e-9)
	assert.InDelta(t, 58.1/((90+3)/1.3-3), b.UCl, 1e-9)
	assert.InDelta(t, 21.19, b.Rm, 1e-9)
	assert.InDelta(t, 15/21.19, b.UCr, 1e-9)
}

func TestBoomAngleStatePrecedence(t *testing.T) {
	tests := []struct {
		name      string
		outreach  float64
		ucl, ucr  float64
		wantState State
	}{
		{"both overloads", 20, 1.2, 1.3, StateBeyondCapacityAndRadius},
		{"capacity only", 20, 1.2, 0.5, StateBeyondCapacity},
		{"radius only", 20, 0.9, 1.3, StateBeyondRadius},
		{"too steep", 5, 0.5, 0.5, StateInsideMinimumOutreach},
		{"clear", 25, 0.5, 0.5, StateClear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			angle, state := boomAngle(40, tt.outreach, tt.ucl, tt.ucr)
			assert.Equal(t, tt.wantState, state)
			if state != StateClear {
				assert.Zero(t, angle)
			}
		})
	}
}

func TestSlewAngleQuadrants(t *testing.T) {
	base := [3]float64{0, 0, 0}
	tip := [3]float64{10, 0, 0}

	assert.InDelta(t, 90, slewAngle(base, tip, 0, 5), 1e-9)
	assert.InDelta(t, 270, slewAngle(base, tip, 0, -5), 1e-9)
	assert.InDelta(t, 180, slewAngle(base, tip, -5, 0), 1e-9)
	assert.Zero(t, slewAngle(base, tip, 0, 0))
}

func TestSWLCurveLookup(t *testing.T) {
	points := loadCurve(t, vessel.SWLKey{}).Points

	assert.InDelta(t, 80, swlAtRadius(points, 20), 1e-9)
	assert.InDelta(t, 65, swlAtRadius(points, 25), 1e-9)
	assert.InDelta(t, 100, swlAtRadius(points, 5), 1e-9)
	assert.InDelta(t, 50, swlAtRadius(points, 35), 1e-9)

	assert.InDelta(t, 20, radiusAtSWL(points, 80), 1e-9)
	assert.InDelta(t, 25, radiusAtSWL(points, 65), 1e-9)
	assert.InDelta(t, 30, radiusAtSWL(points, 40), 1e-9)
	assert.InDelta(t, 10, radiusAtSWL(points, 120), 1e-9)
}

func TestSelectTable(t *testing.T) {
	a := loadCurve(t, vessel.SWLKey{Boom: "Main Boom", Operation: "harbour", Height: "30"})
	b := loadCurve(t, vessel.SWLKey{Boom: "Main Boom", Operation: "offshore", Height: "30"})

	tbl, err := selectTable([]vessel.SWLTable{a, b}, "Main Boom", "offshore", "30")
	require.NoError(t, err)
	assert.Equal(t, "offshore", tbl.Key.Operation)

	// A blank selector falls back to the first table.
	tbl, err = selectTable([]vessel.SWLTable{a, b}, "Main Boom", "", "30")
	require.NoError(t, err)
	assert.Equal(t, "harbour", tbl.Key.Operation)

	_, err = selectTable(nil, "", "", "")
	assert.ErrorIs(t, err, calc.ErrMissingTable)
}
