package criteria

import (
	"math"

	"Meridian/internal/table"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// plotArea integrates the curve between two heel angles by the trapezoid
// rule over the tabulated stations. The degree measure is converted on
// both the integral and the result, reproducing the booklet figures.
// Bounds that leave fewer than two stations yield zero.
func plotArea(x, y []float64, start, end float64) float64 {
	si := firstAtOrAbove(x, start)
	ei := -1
	if end <= x[len(x)-1] {
		ei = firstAtOrAbove(x, end)
	}
	if si >= len(x)-1 || si >= ei {
		return 0
	}
	area := integrate.Trapezoidal(x[si:ei+1], y[si:ei+1]) * (math.Pi / 180)
	return area * math.Pi / 180
}

// firstAtOrAbove returns the first index with x[i] >= v, or 0 when no
// station qualifies.
func firstAtOrAbove(x []float64, v float64) int {
	for i, xv := range x {
		if xv >= v {
			return i
		}
	}
	return 0
}

// initialGM derives the metacentric height from the slope of the first
// curve segment, scaled out to one radian of heel.
func initialGM(x, y []float64) float64 {
	slope := (y[1] - y[0]) / (x[1] - x[0])
	oneRadianDeg := 180 / math.Pi
	return slope*oneRadianDeg + y[0] - slope*x[0]
}

// maxGZAngle samples the fitted curve densely across the tabulated angle
// range and returns the angle of the largest righting arm.
func maxGZAngle(fit *table.Interp1D, x []float64) float64 {
	const samples = 1000
	lo, hi := x[0], x[len(x)-1]
	step := (hi - lo) / float64(samples-1)
	ys := make([]float64, samples)
	for i := range ys {
		ys[i] = fit.At(lo + float64(i)*step)
	}
	return lo + float64(floats.MaxIdx(ys))*step
}
