package vessel

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// particularsFile is the on-disk shape of particulars.yaml.
type particularsFile struct {
	Particulars `yaml:",inline"`
	Lightship   Lightship             `yaml:"lightship"`
	Strength    StrengthLimits        `yaml:"longitudinal_strength"`
	Legs        []Leg                 `yaml:"legs"`
	Crane       *CraneGeometry        `yaml:"crane"`
	TankExtents map[string]TankExtent `yaml:"tank_extents"`
}

type distributionRow struct {
	X float64 `csv:"x"`
	Y float64 `csv:"y"`
}

// Load reads a vessel dataset directory into an immutable Vessel.
//
// Expected layout:
//
//	particulars.yaml
//	hydrostatics.xlsx          one sheet per trim value
//	cross_curves.xlsx          one sheet per trim value
//	lightship_distribution.csv
//	buoyancy_distribution.csv
//	tanks/<name>.csv
//	crane/<boom>/<operation>/<height>.csv
func Load(dir string) (*Vessel, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "particulars.yaml"))
	if err != nil {
		return nil, fmt.Errorf("vessel: read particulars: %w", err)
	}
	var pf particularsFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("vessel: parse particulars: %w", err)
	}

	hydro, err := loadHydrostatics(filepath.Join(dir, "hydrostatics.xlsx"))
	if err != nil {
		return nil, err
	}
	cross, err := loadCrossCurves(filepath.Join(dir, "cross_curves.xlsx"))
	if err != nil {
		return nil, err
	}
	tanks, err := loadTanks(filepath.Join(dir, "tanks"))
	if err != nil {
		return nil, err
	}
	lightshipDist, err := loadDistribution(filepath.Join(dir, "lightship_distribution.csv"))
	if err != nil {
		return nil, err
	}
	buoyancyDist, err := loadDistribution(filepath.Join(dir, "buoyancy_distribution.csv"))
	if err != nil {
		return nil, err
	}
	swl, err := loadSWLTables(filepath.Join(dir, "crane"))
	if err != nil {
		return nil, err
	}

	v := &Vessel{
		Particulars:   pf.Particulars,
		Lightship:     pf.Lightship,
		Limits:        pf.Strength,
		Legs:          pf.Legs,
		Crane:         pf.Crane,
		Hydro:         hydro,
		CrossCurves:   cross,
		Tanks:         tanks,
		TankExtents:   pf.TankExtents,
		LightshipDist: lightshipDist,
		BuoyancyDist:  buoyancyDist,
		SWLTables:     swl,
	}
	log.Info().
		Str("vessel", v.Particulars.Name).
		Int("tanks", len(tanks)).
		Int("swl_tables", len(swl)).
		Msg("vessel dataset loaded")
	return v, nil
}

// trimSheets returns the workbook sheet names sorted by their numeric trim
// value, with the parsed trims.
func trimSheets(f *excelize.File) ([]float64, []string, error) {
	names := f.GetSheetList()
	type sheet struct {
		trim float64
		name string
	}
	sheets := make([]sheet, 0, len(names))
	for _, name := range names {
		trim, err := strconv.ParseFloat(strings.TrimSpace(name), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("vessel: sheet %q is not a trim value", name)
		}
		sheets = append(sheets, sheet{trim: trim, name: name})
	}
	sort.Slice(sheets, func(i, j int) bool { return sheets[i].trim < sheets[j].trim })
	trims := make([]float64, len(sheets))
	ordered := make([]string, len(sheets))
	for i, s := range sheets {
		trims[i] = s.trim
		ordered[i] = s.name
	}
	return trims, ordered, nil
}

func loadHydrostatics(path string) (*HydrostaticTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("vessel: open hydrostatics: %w", err)
	}
	defer f.Close()

	trims, sheets, err := trimSheets(f)
	if err != nil {
		return nil, err
	}
	all := make([][]HydroRow, len(sheets))
	for i, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("vessel: hydrostatics sheet %s: %w", name, err)
		}
		if len(rows) < 2 {
			return nil, fmt.Errorf("vessel: hydrostatics sheet %s is empty", name)
		}
		col := headerIndex(rows[0])
		parsed := make([]HydroRow, 0, len(rows)-1)
		for _, row := range rows[1:] {
			if blankRow(row) {
				continue
			}
			h := HydroRow{}
			fields := []struct {
				name string
				dst  *float64
			}{
				{"weight", &h.Displacement},
				{"draft", &h.Draft},
				{"lcb", &h.LCB},
				{"vcb", &h.VCB},
				{"lcf", &h.LCF},
				{"kml", &h.KML},
				{"kmt", &h.KMT},
				{"mct", &h.MCT},
				{"tpc", &h.TPC},
			}
			for _, fd := range fields {
				v, err := cellFloat(row, col, fd.name)
				if err != nil {
					return nil, fmt.Errorf("vessel: hydrostatics sheet %s: %w", name, err)
				}
				*fd.dst = v
			}
			parsed = append(parsed, h)
		}
		all[i] = parsed
	}
	return NewHydrostaticTable(trims, all)
}

func loadCrossCurves(path string) (*CrossCurveTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("vessel: open cross curves: %w", err)
	}
	defer f.Close()

	trims, sheets, err := trimSheets(f)
	if err != nil {
		return nil, err
	}

	var heels []float64
	var disps []float64
	var kn [][][]float64 // [heel][trim][disp]
	for i, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("vessel: cross curve sheet %s: %w", name, err)
		}
		if len(rows) < 2 {
			return nil, fmt.Errorf("vessel: cross curve sheet %s is empty", name)
		}
		header := rows[0]
		if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "displacement") {
			return nil, fmt.Errorf("vessel: cross curve sheet %s must start with a displacement column", name)
		}
		sheetHeels := make([]float64, 0, len(header)-1)
		for _, cell := range header[1:] {
			angle, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("vessel: cross curve sheet %s: heel column %q: %w", name, cell, err)
			}
			sheetHeels = append(sheetHeels, angle)
		}
		if heels == nil {
			heels = sheetHeels
			kn = make([][][]float64, len(heels))
			for h := range kn {
				kn[h] = make([][]float64, len(sheets))
			}
		} else if len(sheetHeels) != len(heels) {
			return nil, fmt.Errorf("vessel: cross curve sheet %s has %d heel columns, want %d", name, len(sheetHeels), len(heels))
		}

		var sheetDisps []float64
		for _, row := range rows[1:] {
			if blankRow(row) {
				continue
			}
			d, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
			if err != nil {
				return nil, fmt.Errorf("vessel: cross curve sheet %s: displacement %q: %w", name, row[0], err)
			}
			sheetDisps = append(sheetDisps, d)
			for h := range heels {
				if h+1 >= len(row) {
					return nil, fmt.Errorf("vessel: cross curve sheet %s: short row at displacement %g", name, d)
				}
				v, err := strconv.ParseFloat(strings.TrimSpace(row[h+1]), 64)
				if err != nil {
					return nil, fmt.Errorf("vessel: cross curve sheet %s: KN %q: %w", name, row[h+1], err)
				}
				kn[h][i] = append(kn[h][i], v)
			}
		}
		if disps == nil {
			disps = sheetDisps
		} else {
			if len(sheetDisps) != len(disps) {
				return nil, fmt.Errorf("vessel: cross curve sheet %s has %d rows, want %d", name, len(sheetDisps), len(disps))
			}
			for j, d := range sheetDisps {
				if d != disps[j] {
					return nil, fmt.Errorf("vessel: cross curve sheet %s displacement %g differs from axis %g", name, d, disps[j])
				}
			}
		}
	}
	return NewCrossCurveTable(heels, trims, disps, kn)
}

func loadTanks(dir string) (map[string]*TankCurve, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("vessel: list tanks: %w", err)
	}
	tanks := make(map[string]*TankCurve, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("vessel: read tank curve: %w", err)
		}
		var points []TankCurvePoint
		if err := gocsv.UnmarshalBytes(raw, &points); err != nil {
			return nil, fmt.Errorf("vessel: parse %s: %w", filepath.Base(path), err)
		}
		name := strings.TrimSuffix(filepath.Base(path), ".csv")
		tc, err := NewTankCurve(name, points)
		if err != nil {
			return nil, err
		}
		tanks[name] = tc
	}
	return tanks, nil
}

func loadDistribution(path string) (Distribution, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Distribution{}, fmt.Errorf("vessel: read distribution: %w", err)
	}
	var rows []distributionRow
	if err := gocsv.UnmarshalBytes(raw, &rows); err != nil {
		return Distribution{}, fmt.Errorf("vessel: parse %s: %w", filepath.Base(path), err)
	}
	d := Distribution{
		X: make([]float64, len(rows)),
		Y: make([]float64, len(rows)),
	}
	for i, r := range rows {
		if i > 0 && r.X <= d.X[i-1] {
			return Distribution{}, fmt.Errorf("vessel: %s: stations not ascending at row %d", filepath.Base(path), i)
		}
		d.X[i] = r.X
		d.Y[i] = r.Y
	}
	return d, nil
}

// loadSWLTables walks crane/<boom>/<operation>/<height>.csv. A missing
// crane directory is fine; not every vessel carries a crane.
func loadSWLTables(dir string) ([]SWLTable, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*", "*", "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("vessel: list SWL tables: %w", err)
	}
	sort.Strings(paths)
	tables := make([]SWLTable, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, fmt.Errorf("vessel: SWL table path: %w", err)
		}
		parts := strings.Split(rel, string(filepath.Separator))
		key := SWLKey{
			Boom:      parts[0],
			Operation: parts[1],
			Height:    strings.TrimSuffix(parts[2], ".csv"),
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("vessel: read SWL table: %w", err)
		}
		var points []SWLPoint
		if err := gocsv.UnmarshalBytes(raw, &points); err != nil {
			return nil, fmt.Errorf("vessel: parse %s: %w", rel, err)
		}
		t, err := NewSWLTable(key, points)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, cell := range header {
		idx[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	return idx
}

func cellFloat(row []string, col map[string]int, name string) (float64, error) {
	i, ok := col[name]
	if !ok {
		return 0, fmt.Errorf("missing column %q", name)
	}
	if i >= len(row) {
		return 0, fmt.Errorf("short row, no %q cell", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", name, err)
	}
	return v, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
