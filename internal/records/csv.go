package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// FromCSV decodes a CSV stream with a header row into a Table. Values are
// kept as trimmed strings; rows that are entirely empty are skipped.
func FromCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = strings.TrimSpace(h)
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read row %d: %w", len(rows)+1, err)
		}

		row := Row{}
		empty := true
		for i, v := range rec {
			if i >= len(columns) {
				break
			}
			v = strings.TrimSpace(v)
			if v != "" {
				empty = false
			}
			row[columns[i]] = v
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}

	return NewTable(columns, rows), nil
}
