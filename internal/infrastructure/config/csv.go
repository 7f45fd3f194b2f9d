package config

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// LoadCSV reads a layer exported by Tiled as CSV
func (l *Loader) LoadCSV(path string) (Grid, error) {
	f, err := l.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return parseCSV(f, path)
}

func parseCSV(f fs.File, path string) (Grid, error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	grid := make(Grid, 0, len(records))
	for row, rec := range records {
		cells := make([]int64, 0, len(rec))
		for col, field := range rec {
			field = strings.TrimSpace(field)
			if field == "" {
				// trailing comma
				if col == len(rec)-1 {
					continue
				}
				return nil, fmt.Errorf("failed to parse %s: empty cell at row %d col %d", path, row, col)
			}
			v, err := strconv.ParseInt(field, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: row %d col %d: %w", path, row, col, err)
			}
			cells = append(cells, v)
		}
		grid = append(grid, cells)
	}
	return grid, nil
}
