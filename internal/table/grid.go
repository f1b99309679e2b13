package table

import "fmt"

// Grid is an immutable 2-D table over (xAxis, yAxis) with values[i][j]
// sampled at (xAxis[i], yAxis[j]). Lookups are bilinear; queries outside
// the grid are clamped onto each axis independently.
type Grid struct {
	xs, ys []float64
	vals   [][]float64
}

func NewGrid(xs, ys []float64, vals [][]float64) (*Grid, error) {
	if len(xs) < 2 || len(ys) < 2 {
		return nil, ErrInsufficientData
	}
	if len(vals) != len(xs) {
		return nil, fmt.Errorf("table: grid has %d rows for %d x-axis points", len(vals), len(xs))
	}
	g := &Grid{
		xs:   append([]float64(nil), xs...),
		ys:   append([]float64(nil), ys...),
		vals: make([][]float64, len(vals)),
	}
	for i, row := range vals {
		if len(row) != len(ys) {
			return nil, fmt.Errorf("table: grid row %d has %d values for %d y-axis points", i, len(row), len(ys))
		}
		g.vals[i] = append([]float64(nil), row...)
	}
	return g, nil
}

// At evaluates the grid at (x, y).
func (g *Grid) At(x, y float64) float64 {
	x = clamp(x, g.xs[0], g.xs[len(g.xs)-1])
	y = clamp(y, g.ys[0], g.ys[len(g.ys)-1])

	i := segment(g.xs, x)
	j := segment(g.ys, y)

	tx := fraction(g.xs[i], g.xs[i+1], x)
	ty := fraction(g.ys[j], g.ys[j+1], y)

	v00 := g.vals[i][j]
	v01 := g.vals[i][j+1]
	v10 := g.vals[i+1][j]
	v11 := g.vals[i+1][j+1]

	lower := v00 + (v01-v00)*ty
	upper := v10 + (v11-v10)*ty
	return lower + (upper-lower)*tx
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// segment returns i such that xs[i] <= x <= xs[i+1], for x already clamped
// into the axis range.
func segment(xs []float64, x float64) int {
	lo, hi := 0, len(xs)-2
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if xs[mid] <= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func fraction(a, b, v float64) float64 {
	if b == a {
		return 0
	}
	return (v - a) / (b - a)
}
