package spreadsheet

import (
	"bytes"

	"github.com/xuri/excelize/v2"
)

// XLSX is a Reader implementation backed by excelize.
type XLSX struct{}

// NewXLSX returns an xlsx workbook reader.
func NewXLSX() *XLSX {
	return &XLSX{}
}

// Read parses the first sheet of an xlsx workbook.
func (x *XLSX) Read(data []byte) (Dataset, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return Dataset{}, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Dataset{}, ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Dataset{}, err
	}

	if len(rows) == 0 {
		return Dataset{}, nil
	}

	ds := Dataset{Columns: rows[0]}
	for _, row := range rows[1:] {
		aligned := make([]string, len(ds.Columns))
		copy(aligned, row)
		ds.Rows = append(ds.Rows, aligned)
	}

	return ds, nil
}
