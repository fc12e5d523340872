// Package records holds the tabular record sets produced by the external
// data loaders. A Table is immutable once built: builders and analysis
// code only ever read from it.
package records

type Row map[string]string

type Table struct {
	columns []string
	rows    []Row
}

func NewTable(columns []string, rows []Row) *Table {
	return &Table{columns: columns, rows: rows}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

func (t *Table) Empty() bool { return t.Len() == 0 }

func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	return t.rows
}

// MissingColumns returns the subset of required that the table does not
// expose, in the order given.
func (t *Table) MissingColumns(required ...string) []string {
	have := map[string]bool{}
	if t != nil {
		for _, c := range t.columns {
			have[c] = true
		}
	}
	var missing []string
	for _, c := range required {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	return missing
}
