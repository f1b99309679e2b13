// Package crane computes lift geometry (slew and boom angles) and the
// required versus available safe working load for a single cargo lift.
package crane

import (
	"fmt"
	"math"
	"strings"

	"Meridian/internal/calc"
	"Meridian/internal/calc/weights"
	"Meridian/internal/vessel"
)

// Corrections are the lift factors applied to the hook load.
type Corrections struct {
	Rigging    float64 `json:"m_rigging" yaml:"m_rigging"`
	Hook       float64 `json:"m_hook" yaml:"m_hook"`
	Block      float64 `json:"m_block" yaml:"m_block"`
	WCF        float64 `json:"wcf" yaml:"wcf"`
	WCFRigging float64 `json:"wcf_rigging" yaml:"wcf_rigging"`
	DAF        float64 `json:"daf" yaml:"daf"`
	DAFIncl    float64 `json:"daf_incl" yaml:"daf_incl"`
}

// Input selects the load curve and names the cargo to lift.
type Input struct {
	Boom        string       `json:"boom" yaml:"boom"`
	Operation   string       `json:"operation" yaml:"operation"`
	Height      string       `json:"height" yaml:"height"`
	Cargo       weights.Item `json:"cargo" yaml:"cargo"`
	Corrections `yaml:",inline"`
}

// Breakdown is the load side of the lift check.
type Breakdown struct {
	SHLbe   float64 `json:"SHLbe"`   // static hook load, best estimate
	SHLub   float64 `json:"SHLub"`   // static hook load, upper bound
	SWLreq  float64 `json:"SWLreq"`  // required SWL after dynamic amplification
	SWL     float64 `json:"SWL"`     // available SWL at the required outreach
	SWLcorr float64 `json:"SWLcorr"` // available SWL corrected for amplification
	UCl     float64 `json:"UCl"`     // load utilization
	Rm      float64 `json:"Rm"`      // outreach at which SWLreq is met
	UCr     float64 `json:"UCr"`     // outreach utilization
}

// State is the discrete outcome of the boom-angle check. Callers must
// branch on the state; the numeric angle is only meaningful for StateClear.
type State string

const (
	StateClear                   State = "clear"
	StateBeyondCapacityAndRadius State = "beyond capacity and radius"
	StateBeyondCapacity          State = "beyond capacity"
	StateBeyondRadius            State = "beyond max radius"
	StateInsideMinimumOutreach   State = "inside minimum outreach"
)

// Orientation is the solved lift.
type Orientation struct {
	SlewAngle        float64       `json:"slew_angle"`
	BoomAngle        float64       `json:"boom_angle"`
	State            State         `json:"state"`
	RequiredOutreach float64       `json:"required_outreach"`
	Table            vessel.SWLKey `json:"swl_table"`
	Breakdown        Breakdown     `json:"breakdown"`
}

// Lift solves the geometry and SWL check for one cargo lift.
func Lift(geo *vessel.CraneGeometry, tables []vessel.SWLTable, in Input) (Orientation, error) {
	if geo == nil {
		return Orientation{}, fmt.Errorf("crane: vessel carries no crane geometry: %w", calc.ErrMissingTable)
	}
	tbl, err := selectTable(tables, in.Boom, in.Operation, in.Height)
	if err != nil {
		return Orientation{}, err
	}

	base := geo.PedestalBase
	tip := geo.TipFor(strings.TrimSuffix(in.Boom, " Boom"))

	boomLength := geo.BoomLength
	if boomLength == 0 {
		boomLength = tip[0] - base[0]
	}
	if boomLength <= 0 {
		return Orientation{}, fmt.Errorf("crane: boom length %g: %w", boomLength, calc.ErrDegenerateGeometry)
	}

	outreach := math.Hypot(in.Cargo.LCG-base[0], in.Cargo.TCG-base[1])
	breakdown := requiredSWL(tbl.Points, outreach, in.Cargo.Weight, in.Corrections)

	o := Orientation{
		SlewAngle:        slewAngle(base, tip, in.Cargo.LCG, in.Cargo.TCG),
		RequiredOutreach: outreach,
		Table:            tbl.Key,
		Breakdown:        breakdown,
	}
	o.BoomAngle, o.State = boomAngle(boomLength, outreach, breakdown.UCl, breakdown.UCr)
	return o, nil
}

// selectTable picks the load curve for the (boom, operation, height) key.
// With any selector blank, or no exact match, it falls back to the first
// table of the sorted set; with no tables at all the lookup fails.
func selectTable(tables []vessel.SWLTable, boom, operation, height string) (vessel.SWLTable, error) {
	if len(tables) == 0 {
		return vessel.SWLTable{}, fmt.Errorf("crane: no SWL tables: %w", calc.ErrMissingTable)
	}
	if boom != "" && operation != "" && height != "" {
		for _, t := range tables {
			if t.Key.Boom == boom && t.Key.Operation == operation && t.Key.Height == height {
				return t, nil
			}
		}
	}
	return tables[0], nil
}

// slewAngle is the angle from the pedestal-to-tip vector around to the
// pedestal-to-cargo vector, resolved over the full circle by the cross
// product sign.
func slewAngle(base, tip [3]float64, cargoX, cargoY float64) float64 {
	ax, ay := tip[0]-base[0], tip[1]-base[1]
	bx, by := cargoX-base[0], cargoY-base[1]

	magA := math.Hypot(ax, ay)
	magB := math.Hypot(bx, by)
	if magA == 0 || magB == 0 {
		return 0
	}
	cos := (ax*bx + ay*by) / (magA * magB)
	cos = math.Max(-1, math.Min(1, cos))
	angle := math.Acos(cos) * 180 / math.Pi
	if ax*by-ay*bx < 0 {
		angle = 360 - angle
	}
	return angle
}

// boomAngle reports the luffing angle, or the overload state that takes
// precedence over it.
func boomAngle(boomLength, outreach, ucl, ucr float64) (float64, State) {
	switch {
	case ucl > 1 && ucr > 1:
		return 0, StateBeyondCapacityAndRadius
	case ucl > 1:
		return 0, StateBeyondCapacity
	case ucr > 1:
		return 0, StateBeyondRadius
	}
	ratio := math.Max(-1, math.Min(1, outreach/boomLength))
	angle := math.Acos(ratio) * 180 / math.Pi
	if angle > 75 {
		return 0, StateInsideMinimumOutreach
	}
	return angle, StateClear
}
