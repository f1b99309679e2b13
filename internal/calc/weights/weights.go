// Package weights combines tank fills and fixed weight items into
// resultant weight groups with their centers of gravity.
package weights

import (
	"sort"

	"Meridian/internal/vessel"
)

// Item is one weight entry: cargo, the drilling platform, or any other
// fixed weight on deck. Length is the longitudinal extent used by the
// strength distribution; zero means a point load.
type Item struct {
	Name   string  `json:"name,omitempty" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"`
	LCG    float64 `json:"lcg" yaml:"lcg"`
	TCG    float64 `json:"tcg" yaml:"tcg"`
	VCG    float64 `json:"vcg" yaml:"vcg"`
	Length float64 `json:"length,omitempty" yaml:"length"`
}

// Group is a resultant weight with its weighted-average centers.
type Group struct {
	Weight float64 `json:"weight"`
	LCG    float64 `json:"lcg"`
	TCG    float64 `json:"tcg"`
	VCG    float64 `json:"vcg"`
}

// TankState is the interpolated condition of one tank at its fill
// percentage.
type TankState struct {
	Name        string  `json:"tank_name"`
	FillPercent float64 `json:"fill_percent"`
	vessel.TankSounding
}

// Fixed sums the items into one group. A zero total weight yields zero
// centers, not NaN.
func Fixed(items []Item) Group {
	var g Group
	for _, it := range items {
		g.Weight += it.Weight
		g.LCG += it.Weight * it.LCG
		g.TCG += it.Weight * it.TCG
		g.VCG += it.Weight * it.VCG
	}
	if g.Weight != 0 {
		g.LCG /= g.Weight
		g.TCG /= g.Weight
		g.VCG /= g.Weight
	} else {
		g.LCG, g.TCG, g.VCG = 0, 0, 0
	}
	return g
}

// Tanks interpolates every filled tank on its curve and combines them into
// one group. Free surface moments are summed, not averaged. Fill entries
// for tanks the vessel does not carry are ignored; tanks without a fill
// entry are taken as empty.
func Tanks(curves map[string]*vessel.TankCurve, fillByName map[string]float64) ([]TankState, Group, float64) {
	names := make([]string, 0, len(curves))
	for name := range curves {
		names = append(names, name)
	}
	sort.Strings(names)

	states := make([]TankState, 0, len(names))
	var fsm float64
	var g Group
	for _, name := range names {
		fill := fillByName[name]
		s := curves[name].At(fill)
		states = append(states, TankState{Name: name, FillPercent: fill, TankSounding: s})
		g.Weight += s.Weight
		g.LCG += s.Weight * s.LCG
		g.TCG += s.Weight * s.TCG
		g.VCG += s.Weight * s.VCG
		fsm += s.FSM
	}
	if g.Weight != 0 {
		g.LCG /= g.Weight
		g.TCG /= g.Weight
		g.VCG /= g.Weight
	} else {
		g.LCG, g.TCG, g.VCG = 0, 0, 0
	}
	return states, g, fsm
}

// Combine rolls groups up into one, with the same zero-weight rule as
// Fixed. Used for deadweight (tanks + fixed) and the final total
// (deadweight + lightship).
func Combine(groups ...Group) Group {
	var g Group
	for _, p := range groups {
		g.Weight += p.Weight
		g.LCG += p.Weight * p.LCG
		g.TCG += p.Weight * p.TCG
		g.VCG += p.Weight * p.VCG
	}
	if g.Weight != 0 {
		g.LCG /= g.Weight
		g.TCG /= g.Weight
		g.VCG /= g.Weight
	} else {
		g.LCG, g.TCG, g.VCG = 0, 0, 0
	}
	return g
}

// VCGCorrected applies the free surface correction to the solid VCG.
func VCGCorrected(vcg, fsm, totalWeight float64) float64 {
	if totalWeight == 0 {
		return vcg
	}
	return vcg - fsm/totalWeight
}
