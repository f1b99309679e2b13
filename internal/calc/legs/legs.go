// Package legs splits the total elevated weight of a jackup over its leg
// positions.
package legs

import (
	"fmt"

	"Meridian/internal/calc"
	"Meridian/internal/vessel"
)

// Reaction is the load carried by one leg.
type Reaction struct {
	Name string  `json:"name"`
	LCG  float64 `json:"lcg"`
	TCG  float64 `json:"tcg"`
	Load float64 `json:"weight"`
}

// Levers is the offset of the total center of gravity from the leg
// pattern centroid.
type Levers struct {
	Longitudinal float64 `json:"longitudinal"`
	Transverse   float64 `json:"transverse"`
}

// Distribute shares the total weight uniformly over the legs and then
// shifts it by the longitudinal and transverse moments about the leg
// pattern centroid.
func Distribute(positions []vessel.Leg, totalWeight, lcg, tcg float64) ([]Reaction, Levers, error) {
	if len(positions) == 0 {
		return nil, Levers{}, fmt.Errorf("legs: no leg positions: %w", calc.ErrMissingTable)
	}

	var centerL, centerB float64
	minL, maxL := positions[0].LCG, positions[0].LCG
	minB, maxB := positions[0].TCG, positions[0].TCG
	for _, leg := range positions {
		centerL += leg.LCG
		centerB += leg.TCG
		minL = min(minL, leg.LCG)
		maxL = max(maxL, leg.LCG)
		minB = min(minB, leg.TCG)
		maxB = max(maxB, leg.TCG)
	}
	n := float64(len(positions))
	centerL /= n
	centerB /= n

	spacingL := maxL - minL
	spacingB := maxB - minB
	if spacingL == 0 || spacingB == 0 {
		return nil, Levers{}, fmt.Errorf("legs: legs are collinear: %w", calc.ErrDegenerateGeometry)
	}

	levers := Levers{Longitudinal: lcg - centerL, Transverse: tcg - centerB}
	momentL := totalWeight * levers.Longitudinal
	momentB := totalWeight * levers.Transverse
	uniform := totalWeight / n

	reactions := make([]Reaction, len(positions))
	for i, leg := range positions {
		load := uniform
		if leg.LCG > centerL {
			load += momentL / (spacingL * 2)
		} else {
			load -= momentL / (spacingL * 2)
		}
		if leg.TCG > centerB {
			load += momentB / (spacingB * 2)
		} else {
			load -= momentB / (spacingB * 2)
		}
		reactions[i] = Reaction{Name: leg.Name, LCG: leg.LCG, TCG: leg.TCG, Load: load}
	}
	return reactions, levers, nil
}
