// Package vessel holds the immutable reference dataset for one vessel:
// principal particulars, hydrostatic and cross-curve tables, tank curves,
// lightship and buoyancy distributions, jackup leg positions and crane
// geometry with its SWL tables. A Vessel is loaded once and shared
// read-only across concurrent calculations.
package vessel

// Particulars are the principal dimensions of the vessel.
type Particulars struct {
	Name     string  `yaml:"name" json:"name"`
	LOA      float64 `yaml:"loa" json:"loa"`
	Breadth  float64 `yaml:"breadth" json:"breadth"`
	Depth    float64 `yaml:"depth" json:"depth"`
	MaxDraft float64 `yaml:"max_draft" json:"max_draft"`
}

// Lightship is the empty-ship weight and its centers of gravity.
type Lightship struct {
	Weight float64 `yaml:"weight" json:"weight"`
	LCG    float64 `yaml:"lcg" json:"lcg"`
	TCG    float64 `yaml:"tcg" json:"tcg"`
	VCG    float64 `yaml:"vcg" json:"vcg"`
}

// StrengthLimits are the allowable shear force and bending moment.
type StrengthLimits struct {
	SFMax float64 `yaml:"sf_max" json:"sf_max"`
	BMMax float64 `yaml:"bm_max" json:"bm_max"`
}

// Leg is one jackup leg position.
type Leg struct {
	Name string  `yaml:"name" json:"name"`
	LCG  float64 `yaml:"lcg" json:"lcg"`
	TCG  float64 `yaml:"tcg" json:"tcg"`
}

// TankExtent is the longitudinal extent of a tank, for the strength
// distribution.
type TankExtent struct {
	Aft     float64 `yaml:"aft" json:"aft"`
	Forward float64 `yaml:"forward" json:"forward"`
}

// CraneGeometry places the crane on deck. Boom tip points are keyed by
// boom type; Tip is the unkeyed fallback when a type has no entry.
type CraneGeometry struct {
	PedestalBase [3]float64            `yaml:"pedestal_base_point" json:"pedestal_base_point"`
	BoomTips     map[string][3]float64 `yaml:"boom_tip_points" json:"boom_tip_points"`
	Tip          [3]float64            `yaml:"boom_tip_point" json:"boom_tip_point"`
	BoomLength   float64               `yaml:"boom_length" json:"boom_length"`
}

// TipFor returns the boom tip point for a boom type, falling back to the
// unkeyed tip when the type is not listed.
func (g *CraneGeometry) TipFor(boomType string) [3]float64 {
	if p, ok := g.BoomTips[boomType]; ok {
		return p
	}
	return g.Tip
}

// Distribution is an ordered sequence of (longitudinal position, value)
// samples, positions ascending.
type Distribution struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Vessel is the complete reference dataset.
type Vessel struct {
	Particulars   Particulars
	Lightship     Lightship
	Limits        StrengthLimits
	Legs          []Leg
	Crane         *CraneGeometry
	Hydro         *HydrostaticTable
	CrossCurves   *CrossCurveTable
	Tanks         map[string]*TankCurve
	TankExtents   map[string]TankExtent
	LightshipDist Distribution
	BuoyancyDist  Distribution
	SWLTables     []SWLTable
}
