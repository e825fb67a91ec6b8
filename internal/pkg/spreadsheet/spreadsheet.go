// Package spreadsheet renders simple tabular reports as xlsx workbooks.
package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheet = "Sheet1"

// Table is a titled grid. Widths apply to the leading columns in order.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]any
	Widths  []float64
}

// Render writes the table to a single-sheet workbook: the title in the first
// row, bold headers in the second and the data below.
func Render(t Table) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	for i, w := range t.Widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("set width of column %s: %w", col, err)
		}
	}

	row := 1
	if t.Title != "" {
		if err := f.SetCellValue(sheet, "A1", t.Title); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, "A1", "A1", title); err != nil {
			return nil, err
		}
		row++
	}

	if len(t.Headers) > 0 {
		for i, h := range t.Headers {
			if err := setCell(f, i+1, row, h); err != nil {
				return nil, err
			}
		}
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(t.Headers), row)
		if err := f.SetCellStyle(sheet, first, last, bold); err != nil {
			return nil, fmt.Errorf("style header row: %w", err)
		}
		row++
	}

	for _, values := range t.Rows {
		for i, v := range values {
			if err := setCell(f, i+1, row, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}
