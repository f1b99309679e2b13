// Package floating finds the floating position of the vessel for a given
// total weight and center of gravity.
package floating

import (
	"fmt"
	"math"

	"Meridian/internal/calc"
	"Meridian/internal/vessel"
)

// Input is the resultant loading condition.
type Input struct {
	Weight       float64 `json:"weight"`
	LCG          float64 `json:"lcg"`
	TCG          float64 `json:"tcg"`
	VCG          float64 `json:"vcg"`
	VCGCorrected float64 `json:"vcg_corrected"` // after free surface correction
	Length       float64 `json:"length"`
}

// Status is the solved floating position. A fresh value is produced per
// solve; nothing is mutated in place.
type Status struct {
	vessel.Hydrostatics

	DraftFwd   float64 `json:"draft_fwd"`
	DraftAft   float64 `json:"draft_aft"`
	TrimMeters float64 `json:"trim_meters"`
	TrimDeg    float64 `json:"trim"`
	Heel       float64 `json:"heel"`
	GMTSolid   float64 `json:"gmt_solid"`
	GMTLiquid  float64 `json:"gmt_liquid"`
	GML        float64 `json:"gml"`
}

// Solve runs two fixed passes over the hydrostatic table: parameters at
// even keel, a first-order trim correction from the LCB/LCG separation,
// then parameters at the corrected trim. It is deliberately a single
// correction step, not a convergence loop.
func Solve(hydro *vessel.HydrostaticTable, in Input) (Status, error) {
	if in.Length <= 0 {
		return Status{}, fmt.Errorf("floating: vessel length %g: %w", in.Length, calc.ErrDegenerateGeometry)
	}

	first := hydro.At(0, in.Weight)
	if first.MCT == 0 {
		return Status{}, fmt.Errorf("floating: zero MCT at even keel: %w", calc.ErrDegenerateGeometry)
	}
	trim := in.Weight * (first.LCB - in.LCG) / (first.MCT * 100)

	h := hydro.At(trim, in.Weight)

	lever := h.KMT - in.VCGCorrected
	if lever == 0 {
		return Status{}, fmt.Errorf("floating: zero metacentric lever: %w", calc.ErrDegenerateGeometry)
	}

	return Status{
		Hydrostatics: h,
		DraftAft:     h.Draft + trim/2,
		DraftFwd:     h.Draft - trim/2,
		TrimMeters:   trim,
		TrimDeg:      degrees(math.Atan(trim / in.Length)),
		Heel:         degrees(math.Atan(in.TCG / lever)),
		GMTSolid:     h.KMT - in.VCG,
		GMTLiquid:    h.KMT - in.VCGCorrected,
		GML:          h.KML - in.VCG,
	}, nil
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
