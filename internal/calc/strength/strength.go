// Package strength builds the weight and buoyancy distributions along the
// hull and derives the shear-force and bending-moment envelopes.
package strength

import (
	"fmt"
	"math"

	"Meridian/internal/calc"
	"Meridian/internal/table"
	"Meridian/internal/vessel"

	"gonum.org/v1/gonum/floats"
)

const gravity = 9.81

// Load is one distributed weight across a longitudinal extent.
type Load struct {
	Weight float64 `json:"weight"`
	Aft    float64 `json:"aft"`
	Fwd    float64 `json:"fwd"`
}

// Input gathers everything the strength solve needs.
type Input struct {
	Loads           []Load
	Lightship       vessel.Distribution
	Buoyancy        vessel.Distribution
	Length          float64
	TotalDeadWeight float64
	DraftAft        float64
	Trim            float64
	Limits          vessel.StrengthLimits
}

// Result is the station-wise strength output with the limits check.
type Result struct {
	Location      []float64 `json:"location"`
	WeightDist    []float64 `json:"wd"`
	BuoyancyDist  []float64 `json:"bd"`
	ShearForce    []float64 `json:"sf"`
	BendingMoment []float64 `json:"bm"`

	SFLimit   float64 `json:"sf_limit"`
	SFMax     float64 `json:"sf_max"`
	SFMaxLoc  float64 `json:"sf_max_loc"`
	UCShear   float64 `json:"uc_sf"`
	BMLimit   float64 `json:"bm_limit"`
	BMMax     float64 `json:"bm_max"`
	BMMaxLoc  float64 `json:"bm_max_loc"`
	UCBending float64 `json:"uc_bm"`
}

// Compute builds the distributions and integrates them. The lightship
// baseline is copied, never mutated.
func Compute(in Input) (Result, error) {
	if in.Length <= 0 {
		return Result{}, fmt.Errorf("strength: vessel length %g: %w", in.Length, calc.ErrDegenerateGeometry)
	}
	x := in.Lightship.X
	if len(x) < 2 {
		return Result{}, fmt.Errorf("strength: lightship distribution: %w", table.ErrInsufficientData)
	}

	wd := weightDistribution(x, in.Lightship.Y, in.Loads)
	bd, err := buoyancyDistribution(x, wd, in)
	if err != nil {
		return Result{}, err
	}

	// Shear force: running sum of the net load up each station.
	sf := make([]float64, len(x))
	for i := range x {
		sf[i] = (bd[i] - wd[i]) * gravity
		if i > 0 {
			sf[i] += sf[i-1]
		}
	}

	// Bending moment: trapezoid integration of shear force, detrended by
	// the linear ramp that closes the moment at the last station.
	if x[len(x)-1] == 0 {
		return Result{}, fmt.Errorf("strength: last station at origin: %w", calc.ErrDegenerateGeometry)
	}
	run := make([]float64, len(x))
	for i := 1; i < len(x); i++ {
		run[i] = run[i-1] + (0.5*(sf[i]-sf[i-1])+sf[i-1])*(x[i]-x[i-1])
	}
	bm := make([]float64, len(x))
	for i := range x {
		bm[i] = run[i] - run[len(run)-1]*(x[i]/x[len(x)-1])
	}

	sfMax, sfLoc := maxAbs(sf, x)
	bmMax, bmLoc := maxAbs(bm, x)

	return Result{
		Location:      x,
		WeightDist:    wd,
		BuoyancyDist:  bd,
		ShearForce:    sf,
		BendingMoment: bm,
		SFLimit:       in.Limits.SFMax,
		SFMax:         sfMax,
		SFMaxLoc:      sfLoc,
		UCShear:       utilization(sfMax, in.Limits.SFMax),
		BMLimit:       in.Limits.BMMax,
		BMMax:         bmMax,
		BMMaxLoc:      bmLoc,
		UCBending:     utilization(bmMax, in.Limits.BMMax),
	}, nil
}

// weightDistribution adds each load onto a copy of the lightship
// baseline, apportioned across the stations inside its extent: the first
// station carries the share from the aft boundary, later stations the
// share since the previous station.
func weightDistribution(x, lightship []float64, loads []Load) []float64 {
	wd := append([]float64(nil), lightship...)
	for _, ld := range loads {
		span := ld.Fwd - ld.Aft
		if span <= 0 {
			continue
		}
		first := true
		for i, xv := range x {
			if !(ld.Aft < xv && xv < ld.Fwd) {
				continue
			}
			if first {
				wd[i] += ld.Weight * (xv - ld.Aft) / span
				first = false
			} else {
				wd[i] += ld.Weight * (xv - x[i-1]) / span
			}
		}
	}
	return wd
}

// buoyancyDistribution samples the reference curve at the weight
// stations, spreads the deadweight by the trim-adjusted local draft and
// scales the whole curve so total buoyancy matches total weight.
func buoyancyDistribution(x, wd []float64, in Input) ([]float64, error) {
	bx, by := in.Buoyancy.X, in.Buoyancy.Y
	if len(bx) < 2 {
		return nil, fmt.Errorf("strength: buoyancy distribution: %w", table.ErrInsufficientData)
	}
	ref, err := table.NewInterp1D(bx, by, table.KindLinear)
	if err != nil {
		return nil, fmt.Errorf("strength: fit buoyancy curve: %w", err)
	}
	sample := func(v float64) float64 {
		// Outside the reference curve there is no hull, hence no buoyancy.
		if v < ref.Min() || v > ref.Max() {
			return 0
		}
		return ref.At(v)
	}

	drafts := make([]float64, len(x))
	for i, xv := range x {
		if xv != 0 {
			drafts[i] = in.DraftAft + in.Trim/(in.Length*xv)
		} else {
			drafts[i] = in.DraftAft + in.Trim/in.Length
		}
	}
	draftSum := floats.Sum(drafts)
	if draftSum == 0 {
		return nil, fmt.Errorf("strength: zero draft sum: %w", calc.ErrDegenerateGeometry)
	}

	bd := make([]float64, len(x))
	for i, xv := range x {
		bd[i] = sample(xv) + in.TotalDeadWeight*drafts[i]/draftSum
	}

	total := floats.Sum(bd)
	if total == 0 {
		return nil, fmt.Errorf("strength: zero total buoyancy: %w", calc.ErrDegenerateGeometry)
	}
	correction := 1 + (floats.Sum(wd)-total)/total
	for i := range bd {
		bd[i] *= correction
	}
	return bd, nil
}

func maxAbs(vals, x []float64) (value, location float64) {
	idx := 0
	for i, v := range vals {
		if math.Abs(v) > math.Abs(vals[idx]) {
			idx = i
		}
	}
	return vals[idx], x[idx]
}

func utilization(value, limit float64) float64 {
	if limit == 0 {
		return 0
	}
	return math.Abs(value / limit)
}
