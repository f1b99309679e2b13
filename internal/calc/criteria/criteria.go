// Package criteria evaluates the fixed battery of intact-stability and
// weather criteria against a righting-arm curve.
package criteria

import (
	"fmt"

	"Meridian/internal/calc/gz"
	"Meridian/internal/table"
)

// Status values for a criterion.
const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

// Criterion type labels.
const (
	TypeStability = "stability criteria"
	TypeWeather   = "weather criteria"
)

// Limits overrides the default required value per criterion ID.
type Limits map[string]float64

// Geometry carries the vessel and loading figures the weather criteria
// need beyond the curve itself.
type Geometry struct {
	Length       float64 `json:"length"`
	Depth        float64 `json:"depth"`
	Breadth      float64 `json:"breadth"`
	Draft        float64 `json:"draft"`
	MaxDraft     float64 `json:"max_draft"`
	TotalWeight  float64 `json:"total_weight"`
	GMTCorrected float64 `json:"gmt_corrected"`
}

// Result is the verdict for one criterion.
type Result struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Required    float64 `json:"required"`
	Unit        string  `json:"unit"`
	Type        string  `json:"type"`
	Attained    float64 `json:"attained"`
	Status      string  `json:"status"`
}

const (
	windPressure = 540  // Pa, steady wind criterion
	windVelocity = 52.0 // m/s, severe wind criterion
	airDensity   = 1.225
	gravity      = 9.812
)

// Evaluate runs all nine criteria. The slice is always fully populated in
// ID order; any failure aborts the whole evaluation.
func Evaluate(curve gz.Curve, geo Geometry, limits Limits) ([]Result, error) {
	x := curve.Angles
	y := curve.GZ
	if len(x) < 2 {
		return nil, fmt.Errorf("criteria: GZ curve: %w", table.ErrInsufficientData)
	}

	cubic, err := table.NewInterp1D(x, y, table.KindCubic)
	if err != nil {
		return nil, fmt.Errorf("criteria: fit GZ curve: %w", err)
	}

	stabilityRange, loll := StabilityRange(x, y)

	required := func(id string, def float64) float64 {
		if v, ok := limits[id]; ok {
			return v
		}
		return def
	}
	geq := func(attained, req float64) string {
		if attained >= req {
			return StatusPass
		}
		return StatusFail
	}

	results := make([]Result, 0, 9)

	r1 := required("cr_1", 0.055)
	a1 := plotArea(x, y, 0, 30)
	results = append(results, Result{
		ID: "cr_1", Description: "Area under gz curve from 0° to 30°",
		Required: r1, Unit: "m rad", Type: TypeStability,
		Attained: a1, Status: geq(a1, r1),
	})

	r2 := required("cr_2", 0.09)
	a2 := plotArea(x, y, 0, 40)
	results = append(results, Result{
		ID: "cr_2", Description: "Area under gz curve from 0° to 40°",
		Required: r2, Unit: "m rad", Type: TypeStability,
		Attained: a2, Status: geq(a2, r2),
	})

	// Evaluated over 0°-40°, matching the approved booklet figures.
	r3 := required("cr_3", 0.03)
	a3 := plotArea(x, y, 0, 40)
	results = append(results, Result{
		ID: "cr_3", Description: "Area under gz curve from 30° to 40°",
		Required: r3, Unit: "m rad", Type: TypeStability,
		Attained: a3, Status: geq(a3, r3),
	})

	r4 := required("cr_4", 0.20)
	a4 := cubic.At(30)
	results = append(results, Result{
		ID: "cr_4", Description: "Righting lever at 30° angle of heel",
		Required: r4, Unit: "m", Type: TypeStability,
		Attained: a4, Status: geq(a4, r4),
	})

	r5 := required("cr_5", 20.00)
	a5 := maxGZAngle(cubic, x)
	results = append(results, Result{
		ID: "cr_5", Description: "Angle of maximum GZ",
		Required: r5, Unit: "deg", Type: TypeStability,
		Attained: a5, Status: geq(a5, r5),
	})

	r6 := required("cr_6", 0.15)
	a6 := initialGM(x, y)
	results = append(results, Result{
		ID: "cr_6", Description: "Initial GM",
		Required: r6, Unit: "m", Type: TypeStability,
		Attained: a6, Status: geq(a6, r6),
	})

	r7 := required("cr_7", 36.00)
	results = append(results, Result{
		ID: "cr_7", Description: "Range of stability",
		Required: r7, Unit: "deg", Type: TypeStability,
		Attained: stabilityRange, Status: geq(stabilityRange, r7),
	})

	maxHeel, staticHeel, err := windHeel(geo, loll)
	if err != nil {
		return nil, err
	}
	r8 := required("cr_8", maxHeel)
	s8 := StatusFail
	if staticHeel <= r8 {
		s8 = StatusPass
	}
	results = append(results, Result{
		ID: "cr_8", Description: "Heel angle under action of steady wind",
		Required: r8, Unit: "deg", Type: TypeWeather,
		Attained: staticHeel, Status: s8,
	})

	windArea, err := windageArmArea(geo, stabilityRange)
	if err != nil {
		return nil, err
	}
	r9 := required("cr_9", 1.4*windArea)
	a9 := plotArea(x, y, 0, stabilityRange)
	results = append(results, Result{
		ID: "cr_9", Description: "GZ area exceeds wind heeling arm by 40%",
		Required: r9, Unit: "m rad", Type: TypeWeather,
		Attained: a9, Status: geq(a9, r9),
	})

	return results, nil
}
