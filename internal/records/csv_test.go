package records_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sig-gov/sig-backend/internal/records"
)

func TestFromCSV(t *testing.T) {
	t.Run("decodes header and rows", func(t *testing.T) {
		in := "from,to,arrowkeeper\nfield,roles,alice\ndeciders,roles,\n"
		tbl, err := records.FromCSV(strings.NewReader(in))
		require.NoError(t, err)

		assert.Equal(t, []string{"from", "to", "arrowkeeper"}, tbl.Columns())
		require.Equal(t, 2, tbl.Len())
		assert.Equal(t, "alice", tbl.Rows()[0]["arrowkeeper"])
		assert.Equal(t, "", tbl.Rows()[1]["arrowkeeper"])
	})

	t.Run("trims whitespace", func(t *testing.T) {
		in := " from , to \n a , roles \n"
		tbl, err := records.FromCSV(strings.NewReader(in))
		require.NoError(t, err)

		assert.Equal(t, []string{"from", "to"}, tbl.Columns())
		assert.Equal(t, "a", tbl.Rows()[0]["from"])
	})

	t.Run("skips fully empty rows", func(t *testing.T) {
		in := "from,to\na,b\n,\nc,d\n"
		tbl, err := records.FromCSV(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, 2, tbl.Len())
	})

	t.Run("fails on empty input", func(t *testing.T) {
		_, err := records.FromCSV(strings.NewReader(""))
		assert.Error(t, err)
	})
}
