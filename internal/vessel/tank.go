package vessel

import (
	"fmt"

	"Meridian/internal/table"
)

// TankSounding is the tank state at one fill percentage.
type TankSounding struct {
	Volume float64 `json:"volume"`
	Weight float64 `json:"weight"`
	LCG    float64 `json:"lcg"`
	TCG    float64 `json:"tcg"`
	VCG    float64 `json:"vcg"`
	FSM    float64 `json:"fsm"`
}

// TankCurve maps fill percentage to tank volume, weight, centers of
// gravity and free surface moment for one tank.
type TankCurve struct {
	name string

	volume, weight *table.Interp1D
	lcg, tcg, vcg  *table.Interp1D
	fsm            *table.Interp1D
}

// TankCurvePoint is one calibration row of a tank curve.
type TankCurvePoint struct {
	FillPercent float64 `csv:"fill_percent"`
	Volume      float64 `csv:"volume"`
	Weight      float64 `csv:"weight"`
	LCG         float64 `csv:"lcg"`
	TCG         float64 `csv:"tcg"`
	VCG         float64 `csv:"vcg"`
	FSM         float64 `csv:"fsm"`
}

// NewTankCurve fits the calibration rows, which must be ascending in fill
// percentage.
func NewTankCurve(name string, points []TankCurvePoint) (*TankCurve, error) {
	fills := make([]float64, len(points))
	for i, p := range points {
		fills[i] = p.FillPercent
	}
	tc := &TankCurve{name: name}
	fit := func(dst **table.Interp1D, get func(TankCurvePoint) float64) error {
		ys := make([]float64, len(points))
		for i, p := range points {
			ys[i] = get(p)
		}
		ip, err := table.NewInterp1D(fills, ys, table.KindLinear)
		if err != nil {
			return fmt.Errorf("vessel: tank %s curve: %w", name, err)
		}
		*dst = ip
		return nil
	}
	if err := fit(&tc.volume, func(p TankCurvePoint) float64 { return p.Volume }); err != nil {
		return nil, err
	}
	if err := fit(&tc.weight, func(p TankCurvePoint) float64 { return p.Weight }); err != nil {
		return nil, err
	}
	if err := fit(&tc.lcg, func(p TankCurvePoint) float64 { return p.LCG }); err != nil {
		return nil, err
	}
	if err := fit(&tc.tcg, func(p TankCurvePoint) float64 { return p.TCG }); err != nil {
		return nil, err
	}
	if err := fit(&tc.vcg, func(p TankCurvePoint) float64 { return p.VCG }); err != nil {
		return nil, err
	}
	if err := fit(&tc.fsm, func(p TankCurvePoint) float64 { return p.FSM }); err != nil {
		return nil, err
	}
	return tc, nil
}

// Name returns the tank name.
func (tc *TankCurve) Name() string { return tc.name }

// At interpolates the tank state at a fill percentage.
func (tc *TankCurve) At(fillPercent float64) TankSounding {
	return TankSounding{
		Volume: tc.volume.At(fillPercent),
		Weight: tc.weight.At(fillPercent),
		LCG:    tc.lcg.At(fillPercent),
		TCG:    tc.tcg.At(fillPercent),
		VCG:    tc.vcg.At(fillPercent),
		FSM:    tc.fsm.At(fillPercent),
	}
}
