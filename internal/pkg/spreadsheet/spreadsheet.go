// Package spreadsheet abstracts tabular workbook parsing.
//
// The rest of the application works with an ordered Dataset; the concrete
// file format (xlsx) is implemented elsewhere in this package.
package spreadsheet

import "errors"

// ErrNoSheet is returned when the workbook contains no sheets.
var ErrNoSheet = errors.New("workbook has no sheets")

// Dataset is the parsed content of the first sheet.
//
// Columns preserves the header order; every row is aligned to Columns, with
// short rows padded with empty strings.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1 when absent.
func (d Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}

	return -1
}

// Reader parses workbook bytes into a Dataset.
type Reader interface {
	Read(data []byte) (Dataset, error)
}
