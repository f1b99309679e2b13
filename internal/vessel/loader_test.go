package vessel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const particularsYAML = `name: test barge
loa: 100
breadth: 20
depth: 8
max_draft: 5
lightship:
  weight: 1600
  lcg: 48
  tcg: 0
  vcg: 6
longitudinal_strength:
  sf_max: 10000
  bm_max: 100000
legs:
  - name: aft_port
    lcg: 10
    tcg: 10
  - name: fwd_stbd
    lcg: 50
    tcg: -10
crane:
  pedestal_base_point: [0, 0, 5]
  boom_tip_point: [40, 0, 45]
tank_extents:
  ballast_1:
    aft: 15
    forward: 25
`

func writeHydrostatics(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "-1"))
	_, err := f.NewSheet("1")
	require.NoError(t, err)

	header := []interface{}{"weight", "draft", "lcb", "vcb", "lcf", "kml", "kmt", "mct", "tpc"}
	for _, sheet := range []string{"-1", "1"} {
		require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
		require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{1000, 1.0, 50, 0.5, 48, 120, 10, 100, 12}))
		require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{2000, 2.0, 50, 1.0, 48, 120, 10, 100, 12}))
	}
	require.NoError(t, f.SaveAs(path))
}

func writeCrossCurves(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "-1"))
	_, err := f.NewSheet("1")
	require.NoError(t, err)

	for _, sheet := range []string{"-1", "1"} {
		require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"displacement", 0, 30, 60}))
		require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{1000, 0.1, 3.0, 5.0}))
		require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{2000, 0.2, 3.5, 5.5}))
	}
	require.NoError(t, f.SaveAs(path))
}

func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "particulars.yaml"), []byte(particularsYAML), 0o644))
	writeHydrostatics(t, filepath.Join(dir, "hydrostatics.xlsx"))
	writeCrossCurves(t, filepath.Join(dir, "cross_curves.xlsx"))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "tanks"), 0o755))
	tank := "fill_percent,volume,weight,lcg,tcg,vcg,fsm\n" +
		"0,0,0,20,0,0.5,0\n" +
		"100,195,200,20,0,2,50\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tanks", "ballast_1.csv"), []byte(tank), 0o644))

	dist := "x,y\n0,16\n50,16\n100,16\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lightship_distribution.csv"), []byte(dist), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "buoyancy_distribution.csv"), []byte(dist), 0o644))

	craneDir := filepath.Join(dir, "crane", "Main Boom", "harbour")
	require.NoError(t, os.MkdirAll(craneDir, 0o755))
	swl := "radius,swl\n10,100\n20,80\n30,50\n"
	require.NoError(t, os.WriteFile(filepath.Join(craneDir, "30.csv"), []byte(swl), 0o644))

	return dir
}

func TestLoad(t *testing.T) {
	v, err := Load(writeDataset(t))
	require.NoError(t, err)

	assert.Equal(t, "test barge", v.Particulars.Name)
	assert.InDelta(t, 100, v.Particulars.LOA, 1e-9)
	assert.InDelta(t, 1600, v.Lightship.Weight, 1e-9)
	assert.InDelta(t, 10000, v.Limits.SFMax, 1e-9)
	require.Len(t, v.Legs, 2)
	assert.Equal(t, "aft_port", v.Legs[0].Name)

	require.NotNil(t, v.Crane)
	assert.Equal(t, [3]float64{40, 0, 45}, v.Crane.Tip)

	// Hydrostatics interpolate between the tabulated displacements.
	h := v.Hydro.At(0, 1500)
	assert.InDelta(t, 1.5, h.Draft, 1e-9)
	assert.InDelta(t, 10, h.KMT, 1e-9)

	// Cross curves interpolate between sheets and displacement rows.
	require.Equal(t, []float64{0, 30, 60}, v.CrossCurves.Heels())
	assert.InDelta(t, 3.25, v.CrossCurves.KN(1, 0, 1500), 1e-9)

	require.Contains(t, v.Tanks, "ballast_1")
	s := v.Tanks["ballast_1"].At(50)
	assert.InDelta(t, 100, s.Weight, 1e-9)
	assert.InDelta(t, 25, s.FSM, 1e-9)
	assert.Equal(t, TankExtent{Aft: 15, Forward: 25}, v.TankExtents["ballast_1"])

	require.Len(t, v.LightshipDist.X, 3)
	assert.InDelta(t, 16, v.BuoyancyDist.Y[2], 1e-9)

	require.Len(t, v.SWLTables, 1)
	assert.Equal(t, SWLKey{Boom: "Main Boom", Operation: "harbour", Height: "30"}, v.SWLTables[0].Key)
	require.Len(t, v.SWLTables[0].Points, 3)
	assert.InDelta(t, 80, v.SWLTables[0].Points[1].SWL, 1e-9)
}

func TestLoadWithoutCraneDirectory(t *testing.T) {
	dir := writeDataset(t)
	require.NoError(t, os.RemoveAll(filepath.Join(dir, "crane")))

	v, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, v.SWLTables)
}

func TestLoadRejectsBadTrimSheet(t *testing.T) {
	dir := writeDataset(t)

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "not a trim"))
	require.NoError(t, f.SetSheetRow("not a trim", "A1", &[]interface{}{"weight"}))
	require.NoError(t, f.SaveAs(filepath.Join(dir, "hydrostatics.xlsx")))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a trim")
}

func TestLoadRejectsCrossCurveAxisMismatch(t *testing.T) {
	dir := writeDataset(t)

	// Second sheet tabulates a different displacement axis.
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "-1"))
	_, err := f.NewSheet("1")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("-1", "A1", &[]interface{}{"displacement", 0, 30}))
	require.NoError(t, f.SetSheetRow("-1", "A2", &[]interface{}{1000, 0.1, 3.0}))
	require.NoError(t, f.SetSheetRow("-1", "A3", &[]interface{}{2000, 0.2, 3.5}))
	require.NoError(t, f.SetSheetRow("1", "A1", &[]interface{}{"displacement", 0, 30}))
	require.NoError(t, f.SetSheetRow("1", "A2", &[]interface{}{1000, 0.1, 3.0}))
	require.NoError(t, f.SetSheetRow("1", "A3", &[]interface{}{2500, 0.2, 3.5}))
	require.NoError(t, f.SaveAs(filepath.Join(dir, "cross_curves.xlsx")))

	_, err = Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "differs from axis")
}

func TestLoadRejectsDescendingCrossCurveDisplacements(t *testing.T) {
	dir := writeDataset(t)

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "-1"))
	_, err := f.NewSheet("1")
	require.NoError(t, err)
	for _, sheet := range []string{"-1", "1"} {
		require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"displacement", 0, 30}))
		require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{2000, 0.2, 3.5}))
		require.NoError(t, f.SetSheetRow(sheet, "A3", &[]interface{}{1000, 0.1, 3.0}))
	}
	require.NoError(t, f.SaveAs(filepath.Join(dir, "cross_curves.xlsx")))

	_, err = Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ascending")
}

func TestLoadRejectsNonAscendingDistribution(t *testing.T) {
	dir := writeDataset(t)
	bad := "x,y\n0,16\n50,16\n50,16\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lightship_distribution.csv"), []byte(bad), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ascending")
}
