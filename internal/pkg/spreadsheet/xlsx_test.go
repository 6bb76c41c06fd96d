package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf := &bytes.Buffer{}
	require.NoError(t, f.Write(buf))

	return buf.Bytes()
}

func TestXLSXRead(t *testing.T) {
	t.Run("HeaderAndRows", func(t *testing.T) {
		data := buildWorkbook(t, [][]any{
			{"name", "email"},
			{"Alice", "alice@example.com"},
			{"Bob", "bob@example.com"},
		})

		ds, err := NewXLSX().Read(data)
		require.NoError(t, err)

		assert.Equal(t, []string{"name", "email"}, ds.Columns)
		require.Len(t, ds.Rows, 2)
		assert.Equal(t, []string{"Alice", "alice@example.com"}, ds.Rows[0])
	})

	t.Run("PadsShortRows", func(t *testing.T) {
		data := buildWorkbook(t, [][]any{
			{"name", "email"},
			{"Alice"},
		})

		ds, err := NewXLSX().Read(data)
		require.NoError(t, err)

		require.Len(t, ds.Rows, 1)
		assert.Equal(t, []string{"Alice", ""}, ds.Rows[0])
	})

	t.Run("EmptyWorkbook", func(t *testing.T) {
		data := buildWorkbook(t, nil)

		ds, err := NewXLSX().Read(data)
		require.NoError(t, err)

		assert.Empty(t, ds.Columns)
		assert.Empty(t, ds.Rows)
	})

	t.Run("NotAWorkbook", func(t *testing.T) {
		_, err := NewXLSX().Read([]byte("definitely not xlsx"))

		require.Error(t, err)
	})
}

func TestDatasetColumnIndex(t *testing.T) {
	ds := Dataset{Columns: []string{"name", "email"}}

	assert.Equal(t, 1, ds.ColumnIndex("email"))
	assert.Equal(t, -1, ds.ColumnIndex("Email"))
	assert.Equal(t, -1, ds.ColumnIndex("missing"))
}
