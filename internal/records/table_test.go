package records_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sig-gov/sig-backend/internal/records"
)

func TestTable_Basics(t *testing.T) {
	tbl := records.NewTable([]string{"from", "to"}, []records.Row{
		{"from": "a", "to": "b"},
		{"from": "b", "to": "c"},
	})

	assert.Equal(t, 2, tbl.Len())
	assert.False(t, tbl.Empty())
	assert.Equal(t, []string{"from", "to"}, tbl.Columns())
	assert.Equal(t, "a", tbl.Rows()[0]["from"])
}

func TestTable_MissingColumns(t *testing.T) {
	tbl := records.NewTable([]string{"from", "to"}, nil)

	assert.Nil(t, tbl.MissingColumns("from", "to"))
	assert.Equal(t, []string{"node", "node_context"}, tbl.MissingColumns("node", "node_context"))
}

func TestTable_NilSafe(t *testing.T) {
	var tbl *records.Table

	assert.Equal(t, 0, tbl.Len())
	assert.True(t, tbl.Empty())
	assert.Equal(t, []string{"x"}, tbl.MissingColumns("x"))
}
