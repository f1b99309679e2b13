package vessel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCrossCurveTableRejectsBadAxes(t *testing.T) {
	kn := [][][]float64{{{1, 3}, {1, 3}}}

	_, err := NewCrossCurveTable([]float64{0}, []float64{-2, 2}, []float64{3000, 1000}, kn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "displacement axis not ascending")

	_, err = NewCrossCurveTable([]float64{30, 0}, []float64{-2, 2}, []float64{1000, 3000}, [][][]float64{
		{{1, 3}, {1, 3}},
		{{2, 4}, {2, 4}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "heel axis not ascending")
}

func TestNewCrossCurveTableAscendingAxes(t *testing.T) {
	cc, err := NewCrossCurveTable([]float64{0, 30}, []float64{-2, 2}, []float64{1000, 3000}, [][][]float64{
		{{1, 3}, {1, 3}},
		{{2, 4}, {2, 4}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 3, cc.KN(0, 0, 3000), 1e-9)
	assert.InDelta(t, 1, cc.KN(0, 0, 1000), 1e-9)
}
