package crane

import "Meridian/internal/vessel"

// requiredSWL computes the hook loads, derates the available SWL for
// dynamic amplification and forms both utilization ratios.
func requiredSWL(points []vessel.SWLPoint, outreach, cargoWeight float64, c Corrections) Breakdown {
	b := Breakdown{
		SHLbe: cargoWeight + c.Rigging + c.Hook,
		SHLub: cargoWeight*c.WCF + c.Rigging*c.WCFRigging + c.Hook,
	}

	if c.DAF > c.DAFIncl {
		b.SWLreq = (b.SHLub+c.Block)*c.DAF/c.DAFIncl - c.Block
	} else {
		b.SWLreq = b.SHLub
	}

	if outreach != 0 {
		b.SWL = swlAtRadius(points, outreach)
	}
	if b.SWLreq != 0 {
		b.Rm = radiusAtSWL(points, b.SWLreq)
	}

	if c.DAF > c.DAFIncl {
		b.SWLcorr = (b.SWL+c.Block)*c.DAFIncl/c.DAF - c.Block
	} else {
		b.SWLcorr = b.SWL
	}

	if b.SWLcorr != 0 {
		b.UCl = b.SHLub / b.SWLcorr
	}
	if b.Rm != 0 {
		b.UCr = outreach / b.Rm
	}
	return b
}

// swlAtRadius reads the load curve at an outreach: exact hit, clamp
// outside the tabulated radii, linear in between. Points are sorted
// ascending by radius.
func swlAtRadius(points []vessel.SWLPoint, radius float64) float64 {
	for _, p := range points {
		if p.Radius == radius {
			return p.SWL
		}
	}
	if radius > points[len(points)-1].Radius {
		return points[len(points)-1].SWL
	}
	if radius < points[0].Radius {
		return points[0].SWL
	}
	lower, upper := bracketByRadius(points, radius)
	return lower.SWL + (radius-lower.Radius)*(upper.SWL-lower.SWL)/(upper.Radius-lower.Radius)
}

// radiusAtSWL inverts the curve: the outreach at which the required SWL
// is available. SWL falls with radius, so a requirement below the table
// clamps to the farthest radius and one above it to the nearest.
func radiusAtSWL(points []vessel.SWLPoint, swl float64) float64 {
	minSWL, maxSWL := points[0].SWL, points[0].SWL
	for _, p := range points {
		if p.SWL == swl {
			return p.Radius
		}
		if p.SWL < minSWL {
			minSWL = p.SWL
		}
		if p.SWL > maxSWL {
			maxSWL = p.SWL
		}
	}
	if swl < minSWL {
		return points[len(points)-1].Radius
	}
	if swl > maxSWL {
		return points[0].Radius
	}

	// Tightest pair of tabulated SWL values around the requirement.
	var lower, higher *vessel.SWLPoint
	for i := range points {
		p := &points[i]
		if p.SWL <= swl && (lower == nil || p.SWL > lower.SWL) {
			lower = p
		}
		if p.SWL >= swl && (higher == nil || p.SWL < higher.SWL) {
			higher = p
		}
	}
	if lower == nil || higher == nil || lower.SWL == higher.SWL {
		return 0
	}
	return higher.Radius + (swl-higher.SWL)*(lower.Radius-higher.Radius)/(lower.SWL-higher.SWL)
}

// bracketByRadius returns the nearest tabulated points below and above a
// radius strictly inside the table range.
func bracketByRadius(points []vessel.SWLPoint, radius float64) (lower, upper vessel.SWLPoint) {
	lower = points[0]
	upper = points[len(points)-1]
	for _, p := range points {
		if p.Radius <= radius && p.Radius >= lower.Radius {
			lower = p
		}
	}
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Radius >= radius && points[i].Radius <= upper.Radius {
			upper = points[i]
		}
	}
	return lower, upper
}
