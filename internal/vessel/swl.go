package vessel

import (
	"fmt"
	"sort"
)

// SWLKey selects one crane load curve by boom type, operation mode and
// lifting height.
type SWLKey struct {
	Boom      string `json:"boom"`
	Operation string `json:"operation"`
	Height    string `json:"height"`
}

// SWLPoint is one (radius, safe working load) sample.
type SWLPoint struct {
	Radius float64 `csv:"radius" json:"radius"`
	SWL    float64 `csv:"swl" json:"swl"`
}

// SWLTable is a crane load curve, sorted ascending by radius.
type SWLTable struct {
	Key    SWLKey     `json:"key"`
	Points []SWLPoint `json:"points"`
}

// NewSWLTable copies and sorts the points by radius.
func NewSWLTable(key SWLKey, points []SWLPoint) (SWLTable, error) {
	if len(points) == 0 {
		return SWLTable{}, fmt.Errorf("vessel: SWL table %v has no points", key)
	}
	sorted := append([]SWLPoint(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Radius < sorted[j].Radius })
	return SWLTable{Key: key, Points: sorted}, nil
}
