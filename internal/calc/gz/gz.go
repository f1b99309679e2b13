// Package gz builds the righting-arm curve from the vessel cross curves.
package gz

import (
	"math"

	"Meridian/internal/vessel"
)

// Curve is the righting arm per heel angle, ordered by ascending angle.
// The angle domain is exactly the cross-curve heel grid.
type Curve struct {
	Angles []float64 `json:"angles"` // degrees
	GZ     []float64 `json:"gz"`     // meters
}

// Build interpolates KN at (trim, displacement) for every heel angle of
// the cross-curve grid and corrects it for the centers of gravity:
//
//	GZ = KN - VCG*sin(theta) - TCG*cos(theta)
func Build(cross *vessel.CrossCurveTable, displacement, vcg, tcg, trim float64) Curve {
	heels := cross.Heels()
	c := Curve{
		Angles: heels,
		GZ:     make([]float64, len(heels)),
	}
	for i, angle := range heels {
		kn := cross.KN(i, trim, displacement)
		theta := angle * math.Pi / 180
		c.GZ[i] = kn - vcg*math.Sin(theta) - tcg*math.Cos(theta)
	}
	return c
}
