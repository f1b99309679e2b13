package criteria

import (
	"fmt"
	"math"

	"Meridian/internal/calc"
)

// windage returns the lateral wind area above the waterline and its
// centroid height over mid-draft.
func windage(geo Geometry) (area, centroid float64, err error) {
	area = geo.Length * (geo.Depth - geo.Draft)
	if area == 0 {
		return 0, 0, fmt.Errorf("criteria: zero windage area: %w", calc.ErrDegenerateGeometry)
	}
	centroid = geo.Draft/2 + (math.Pow(geo.Depth-geo.Draft, 2)/2*geo.Length)/area
	return area, centroid, nil
}

// windHeel computes the static heel angle under the fixed steady wind
// pressure and the maximum permissible heel from freeboard geometry.
func windHeel(geo Geometry, angleOfLoll float64) (maxHeel, staticHeel float64, err error) {
	area, centroid, err := windage(geo)
	if err != nil {
		return 0, 0, err
	}
	overturning := windPressure * area * centroid / (gravity * 1000)

	lever := geo.TotalWeight * geo.GMTCorrected
	if lever <= 0 {
		return 0, 0, fmt.Errorf("criteria: non-positive righting lever %g: %w", lever, calc.ErrDegenerateGeometry)
	}
	ratio := overturning / lever
	if ratio > 1 || ratio < -1 {
		return 0, 0, fmt.Errorf("criteria: wind moment exceeds righting capacity: %w", calc.ErrDegenerateGeometry)
	}
	staticHeel = degrees(math.Asin(ratio)) + angleOfLoll

	if geo.Breadth == 0 {
		return 0, 0, fmt.Errorf("criteria: zero breadth: %w", calc.ErrDegenerateGeometry)
	}
	maxHeel = degrees(math.Atan((geo.Depth - geo.MaxDraft) / geo.Breadth))
	return maxHeel, staticHeel, nil
}

// windageArmArea returns the area under the constant severe-wind heeling
// arm across the range of stability.
func windageArmArea(geo Geometry, stabilityRange float64) (float64, error) {
	area, centroid, err := windage(geo)
	if err != nil {
		return 0, err
	}
	if geo.TotalWeight <= 0 {
		return 0, fmt.Errorf("criteria: non-positive displacement %g: %w", geo.TotalWeight, calc.ErrDegenerateGeometry)
	}
	arm := 0.5 * airDensity * area * centroid * windVelocity * windVelocity /
		(gravity * 1000 * geo.TotalWeight)
	return arm * stabilityRange * math.Pi / 180, nil
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
