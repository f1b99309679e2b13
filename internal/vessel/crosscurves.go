package vessel

import (
	"fmt"

	"Meridian/internal/table"
)

// CrossCurveTable holds one KN grid per heel angle, each grid spanning the
// same (trim, displacement) axes. Heel angles are ascending and fixed by
// the dataset; the GZ curve is evaluated exactly at these angles.
type CrossCurveTable struct {
	heels []float64
	grids []*table.Grid
}

// NewCrossCurveTable builds the table from kn[h][i][j], the KN value at
// heel angle h, trim i and displacement j.
func NewCrossCurveTable(heels, trims, disps []float64, kn [][][]float64) (*CrossCurveTable, error) {
	if len(heels) == 0 {
		return nil, fmt.Errorf("vessel: cross curves carry no heel angles")
	}
	if len(kn) != len(heels) {
		return nil, fmt.Errorf("vessel: %d KN grids for %d heel angles", len(kn), len(heels))
	}
	for i := 1; i < len(heels); i++ {
		if heels[i] <= heels[i-1] {
			return nil, fmt.Errorf("vessel: heel axis not ascending at index %d", i)
		}
	}
	for j := 1; j < len(disps); j++ {
		if disps[j] <= disps[j-1] {
			return nil, fmt.Errorf("vessel: cross curve displacement axis not ascending at index %d", j)
		}
	}
	t := &CrossCurveTable{
		heels: append([]float64(nil), heels...),
		grids: make([]*table.Grid, len(heels)),
	}
	for h := range heels {
		g, err := table.NewGrid(trims, disps, kn[h])
		if err != nil {
			return nil, fmt.Errorf("vessel: cross curve grid at %g deg: %w", heels[h], err)
		}
		t.grids[h] = g
	}
	return t, nil
}

// Heels returns the heel-angle axis in degrees.
func (t *CrossCurveTable) Heels() []float64 {
	return append([]float64(nil), t.heels...)
}

// KN interpolates the cross curve for heel index h at
// (trim, displacement).
func (t *CrossCurveTable) KN(h int, trim, displacement float64) float64 {
	return t.grids[h].At(trim, displacement)
}
