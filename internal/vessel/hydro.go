package vessel

import (
	"fmt"

	"Meridian/internal/table"
)

// Hydrostatics are the tabulated hull parameters at one floating
// condition.
type Hydrostatics struct {
	Draft float64 `json:"draft"`
	LCB   float64 `json:"lcb"`
	VCB   float64 `json:"vcb"`
	LCF   float64 `json:"lcf"`
	KML   float64 `json:"kml"`
	KMT   float64 `json:"kmt"`
	MCT   float64 `json:"mct"`
	TPC   float64 `json:"tpc"`
}

// HydrostaticTable interpolates hull parameters over a
// (trim, displacement) grid. Both axes are ascending.
type HydrostaticTable struct {
	trims []float64
	disps []float64

	draft, lcb, vcb, lcf *table.Grid
	kml, kmt, mct, tpc   *table.Grid
}

// HydroRow is one displacement sample of a single trim sheet.
type HydroRow struct {
	Displacement float64
	Draft        float64
	LCB          float64
	VCB          float64
	LCF          float64
	KML          float64
	KMT          float64
	MCT          float64
	TPC          float64
}

// NewHydrostaticTable builds the table from one row set per trim value.
// Trims must be ascending and every trim sheet must carry the same
// ascending displacement axis.
func NewHydrostaticTable(trims []float64, sheets [][]HydroRow) (*HydrostaticTable, error) {
	if len(trims) != len(sheets) {
		return nil, fmt.Errorf("vessel: %d trims for %d hydrostatic sheets", len(trims), len(sheets))
	}
	if len(trims) < 2 {
		return nil, fmt.Errorf("vessel: hydrostatic trim axis: %w", table.ErrInsufficientData)
	}
	disps, err := displacementAxis(sheets)
	if err != nil {
		return nil, err
	}

	t := &HydrostaticTable{
		trims: append([]float64(nil), trims...),
		disps: disps,
	}
	pick := func(get func(HydroRow) float64) (*table.Grid, error) {
		vals := make([][]float64, len(sheets))
		for i, sheet := range sheets {
			row := make([]float64, len(sheet))
			for j, h := range sheet {
				row[j] = get(h)
			}
			vals[i] = row
		}
		return table.NewGrid(t.trims, t.disps, vals)
	}
	grids := []struct {
		dst **table.Grid
		get func(HydroRow) float64
	}{
		{&t.draft, func(r HydroRow) float64 { return r.Draft }},
		{&t.lcb, func(r HydroRow) float64 { return r.LCB }},
		{&t.vcb, func(r HydroRow) float64 { return r.VCB }},
		{&t.lcf, func(r HydroRow) float64 { return r.LCF }},
		{&t.kml, func(r HydroRow) float64 { return r.KML }},
		{&t.kmt, func(r HydroRow) float64 { return r.KMT }},
		{&t.mct, func(r HydroRow) float64 { return r.MCT }},
		{&t.tpc, func(r HydroRow) float64 { return r.TPC }},
	}
	for _, g := range grids {
		grid, err := pick(g.get)
		if err != nil {
			return nil, fmt.Errorf("vessel: hydrostatic grid: %w", err)
		}
		*g.dst = grid
	}
	return t, nil
}

func displacementAxis(sheets [][]HydroRow) ([]float64, error) {
	first := sheets[0]
	if len(first) < 2 {
		return nil, fmt.Errorf("vessel: hydrostatic displacement axis: %w", table.ErrInsufficientData)
	}
	disps := make([]float64, len(first))
	for j, r := range first {
		disps[j] = r.Displacement
	}
	for j := 1; j < len(disps); j++ {
		if disps[j] <= disps[j-1] {
			return nil, fmt.Errorf("vessel: displacement axis not ascending at index %d", j)
		}
	}
	for i, sheet := range sheets[1:] {
		if len(sheet) != len(disps) {
			return nil, fmt.Errorf("vessel: trim sheet %d has %d rows, want %d", i+1, len(sheet), len(disps))
		}
		for j, r := range sheet {
			if r.Displacement != disps[j] {
				return nil, fmt.Errorf("vessel: trim sheet %d displacement %g differs from axis %g", i+1, r.Displacement, disps[j])
			}
		}
	}
	return disps, nil
}

// At interpolates every hull parameter at (trim, displacement),
// clamping to the grid edges outside the tabulated range.
func (t *HydrostaticTable) At(trim, displacement float64) Hydrostatics {
	return Hydrostatics{
		Draft: t.draft.At(trim, displacement),
		LCB:   t.lcb.At(trim, displacement),
		VCB:   t.vcb.At(trim, displacement),
		LCF:   t.lcf.At(trim, displacement),
		KML:   t.kml.At(trim, displacement),
		KMT:   t.kmt.At(trim, displacement),
		MCT:   t.mct.At(trim, displacement),
		TPC:   t.tpc.At(trim, displacement),
	}
}
