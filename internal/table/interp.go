// Package table provides the interpolation primitives used for vessel
// reference tables: 1-D linear and cubic lookups and bilinear grids.
// Axis data must already be sorted ascending; callers own the sorting.
package table

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// ErrInsufficientData is returned when an interpolation axis carries fewer
// than two points.
var ErrInsufficientData = errors.New("table: need at least two points per axis")

type Kind string

const (
	KindLinear Kind = "linear"
	KindCubic  Kind = "cubic"
)

// Interp1D is an immutable 1-D lookup over (xs, ys). Linear lookups clamp
// to the nearest table edge outside the fitted range; cubic lookups use a
// natural spline and extend it past the edges instead of clamping.
type Interp1D struct {
	kind  Kind
	xs    []float64
	ys    []float64
	lin   interp.PiecewiseLinear
	cubic interp.NaturalCubic
}

func NewInterp1D(xs, ys []float64, kind Kind) (*Interp1D, error) {
	if len(xs) < 2 || len(ys) < 2 {
		return nil, ErrInsufficientData
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("table: axis length %d does not match %d values", len(xs), len(ys))
	}
	ip := &Interp1D{
		kind: kind,
		xs:   append([]float64(nil), xs...),
		ys:   append([]float64(nil), ys...),
	}
	var err error
	switch kind {
	case KindCubic:
		err = ip.cubic.Fit(ip.xs, ip.ys)
	case KindLinear:
		err = ip.lin.Fit(ip.xs, ip.ys)
	default:
		return nil, fmt.Errorf("table: unknown interpolation kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("table: fit failed: %w", err)
	}
	return ip, nil
}

// At evaluates the fit at x.
func (ip *Interp1D) At(x float64) float64 {
	lo, hi := ip.xs[0], ip.xs[len(ip.xs)-1]
	if ip.kind == KindCubic {
		// A natural spline has zero curvature at its ends, so its analytic
		// continuation beyond the table is the boundary tangent line.
		switch {
		case x < lo:
			return ip.cubic.Predict(lo) + ip.cubic.PredictDerivative(lo)*(x-lo)
		case x > hi:
			return ip.cubic.Predict(hi) + ip.cubic.PredictDerivative(hi)*(x-hi)
		default:
			return ip.cubic.Predict(x)
		}
	}
	switch {
	case x <= lo:
		return ip.ys[0]
	case x >= hi:
		return ip.ys[len(ip.ys)-1]
	default:
		return ip.lin.Predict(x)
	}
}

// Min and Max report the fitted axis range.
func (ip *Interp1D) Min() float64 { return ip.xs[0] }
func (ip *Interp1D) Max() float64 { return ip.xs[len(ip.xs)-1] }
