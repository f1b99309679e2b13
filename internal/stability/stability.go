// Package stability runs the full per-vessel calculations: weight rollup,
// floating position, righting-arm curve, criteria, longitudinal strength,
// jackup leg loads and crane lifts. Every solve takes the vessel dataset
// as an explicit argument and shares it read-only.
package stability

import (
	"fmt"

	"Meridian/internal/calc/crane"
	"Meridian/internal/calc/criteria"
	"Meridian/internal/calc/floating"
	"Meridian/internal/calc/gz"
	"Meridian/internal/calc/legs"
	"Meridian/internal/calc/strength"
	"Meridian/internal/calc/weights"
	"Meridian/internal/vessel"
)

// Condition is one loading condition: cargo on deck, tank fills, the
// optional drilling platform, criteria overrides and an optional lift.
type Condition struct {
	Cargo          []weights.Item     `json:"cargo" yaml:"cargo"`
	TankFills      map[string]float64 `json:"tank_fills" yaml:"tank_fills"`
	Platform       *weights.Item      `json:"platform,omitempty" yaml:"platform"`
	CriteriaLimits criteria.Limits    `json:"criteria_limits,omitempty" yaml:"criteria_limits"`
	Lift           *crane.Input       `json:"lift,omitempty" yaml:"lift"`
}

// Breakdown is the weight rollup for a condition.
type Breakdown struct {
	Tanks        []weights.TankState `json:"tank_vals"`
	TankGroup    weights.Group       `json:"tank_weight_data"`
	FixedGroup   weights.Group       `json:"fixed_weight_data"`
	Lightship    weights.Group       `json:"lightship_data"`
	Deadweight   weights.Group       `json:"dead_weight_data"`
	Total        weights.Group       `json:"total_weight_data"`
	FSM          float64             `json:"fsm"`
	VCGCorrected float64             `json:"vcg_corrected"`
}

// Result is the complete stability solve output.
type Result struct {
	Weights  Breakdown         `json:"weights"`
	Floating floating.Status   `json:"floating_status"`
	GZ       gz.Curve          `json:"gz_curve"`
	Criteria []criteria.Result `json:"criteria_data"`
	Strength strength.Result   `json:"ls_data"`
}

// JackupResult is the elevated-condition solve output.
type JackupResult struct {
	Weights Breakdown          `json:"weights"`
	Legs    []legs.Reaction    `json:"leg_data"`
	Levers  legs.Levers        `json:"lever_coordinates"`
	Lift    *crane.Orientation `json:"crane_orientation,omitempty"`
}

// CraneResult is the lifting solve output.
type CraneResult struct {
	Weights Breakdown         `json:"weights"`
	Lift    crane.Orientation `json:"crane_orientation"`
}

// rollup aggregates tanks, cargo, the platform and lightship into the
// deadweight and total groups with the free surface correction.
func rollup(v *vessel.Vessel, cond Condition) Breakdown {
	fixedItems := cond.Cargo
	if cond.Platform != nil {
		fixedItems = append(append([]weights.Item(nil), fixedItems...), *cond.Platform)
	}

	tanks, tankGroup, fsm := weights.Tanks(v.Tanks, cond.TankFills)
	fixed := weights.Fixed(fixedItems)
	light := weights.Group{
		Weight: v.Lightship.Weight,
		LCG:    v.Lightship.LCG,
		TCG:    v.Lightship.TCG,
		VCG:    v.Lightship.VCG,
	}
	dead := weights.Combine(tankGroup, fixed)
	total := weights.Combine(dead, light)

	return Breakdown{
		Tanks:        tanks,
		TankGroup:    tankGroup,
		FixedGroup:   fixed,
		Lightship:    light,
		Deadweight:   dead,
		Total:        total,
		FSM:          fsm,
		VCGCorrected: weights.VCGCorrected(total.VCG, fsm, total.Weight),
	}
}

// Solve runs the intact-stability calculation for one loading condition.
func Solve(v *vessel.Vessel, cond Condition) (*Result, error) {
	bd := rollup(v, cond)

	status, err := floating.Solve(v.Hydro, floating.Input{
		Weight:       bd.Total.Weight,
		LCG:          bd.Total.LCG,
		TCG:          bd.Total.TCG,
		VCG:          bd.Total.VCG,
		VCGCorrected: bd.VCGCorrected,
		Length:       v.Particulars.LOA,
	})
	if err != nil {
		return nil, err
	}

	curve := gz.Build(v.CrossCurves, bd.Total.Weight, bd.Total.VCG, bd.Total.TCG, status.TrimDeg)

	crit, err := criteria.Evaluate(curve, criteria.Geometry{
		Length:       v.Particulars.LOA,
		Depth:        v.Particulars.Depth,
		Breadth:      v.Particulars.Breadth,
		Draft:        status.Draft,
		MaxDraft:     status.Draft + status.TrimDeg,
		TotalWeight:  bd.Total.Weight,
		GMTCorrected: status.KMT - bd.Total.VCG,
	}, cond.CriteriaLimits)
	if err != nil {
		return nil, err
	}

	ls, err := computeStrength(v, cond, bd, status)
	if err != nil {
		return nil, err
	}

	return &Result{
		Weights:  bd,
		Floating: status,
		GZ:       curve,
		Criteria: crit,
		Strength: ls,
	}, nil
}

func computeStrength(v *vessel.Vessel, cond Condition, bd Breakdown, status floating.Status) (strength.Result, error) {
	items := cond.Cargo
	if cond.Platform != nil {
		items = append(append([]weights.Item(nil), items...), *cond.Platform)
	}

	var loads []strength.Load
	var deadWeight float64
	for _, it := range items {
		deadWeight += it.Weight * it.Length
		loads = append(loads, strength.Load{
			Weight: it.Weight,
			Aft:    it.LCG - it.Length/2,
			Fwd:    it.LCG + it.Length/2,
		})
	}
	for _, t := range bd.Tanks {
		if t.Weight == 0 {
			continue
		}
		ext, ok := v.TankExtents[t.Name]
		if !ok {
			return strength.Result{}, fmt.Errorf("stability: tank %s has no longitudinal extent", t.Name)
		}
		deadWeight += t.Weight
		loads = append(loads, strength.Load{Weight: t.Weight, Aft: ext.Aft, Fwd: ext.Forward})
	}

	return strength.Compute(strength.Input{
		Loads:           loads,
		Lightship:       v.LightshipDist,
		Buoyancy:        v.BuoyancyDist,
		Length:          v.Particulars.LOA,
		TotalDeadWeight: deadWeight,
		DraftAft:        status.Draft + status.DraftAft,
		Trim:            status.TrimDeg,
		Limits:          v.Limits,
	})
}

// SolveJackup runs the elevated-condition calculation: the same weight
// rollup, the leg load split and, when a lift is requested, the crane
// check.
func SolveJackup(v *vessel.Vessel, cond Condition) (*JackupResult, error) {
	bd := rollup(v, cond)

	reactions, levers, err := legs.Distribute(v.Legs, bd.Total.Weight, bd.Total.LCG, bd.Total.TCG)
	if err != nil {
		return nil, err
	}

	res := &JackupResult{Weights: bd, Legs: reactions, Levers: levers}
	if cond.Lift != nil {
		o, err := crane.Lift(v.Crane, v.SWLTables, *cond.Lift)
		if err != nil {
			return nil, err
		}
		res.Lift = &o
	}
	return res, nil
}

// SolveCrane runs the lifting calculation for one cargo item.
func SolveCrane(v *vessel.Vessel, cond Condition) (*CraneResult, error) {
	if cond.Lift == nil {
		return nil, fmt.Errorf("stability: no lift requested")
	}
	bd := rollup(v, cond)
	o, err := crane.Lift(v.Crane, v.SWLTables, *cond.Lift)
	if err != nil {
		return nil, err
	}
	return &CraneResult{Weights: bd, Lift: o}, nil
}
