// Package sheet reads and writes the "Bibliografia" spreadsheet.
package sheet

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gbazo/bibproc/internal/biblio"
)

// SheetName is the sheet the processor reads from and writes to.
const SheetName = "Bibliografia"

// ErrSheetMissing indicates the workbook has no "Bibliografia" sheet.
var ErrSheetMissing = errors.New(`workbook has no "Bibliografia" sheet`)

// Read loads all reference rows from the named sheet of an .xlsx workbook.
// The first row must hold column headers; cells are read as text and columns
// with unknown headers are ignored.
func Read(path string) ([]biblio.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	cells, err := f.GetRows(SheetName)
	if err != nil {
		return nil, ErrSheetMissing
	}
	if len(cells) == 0 {
		return nil, nil
	}

	headers := cells[0]
	rows := make([]biblio.Row, 0, len(cells)-1)
	for _, record := range cells[1:] {
		var row biblio.Row
		for i, value := range record {
			if i >= len(headers) {
				break
			}
			row.Set(headers[i], value)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Write saves rows to a new .xlsx workbook under the fixed schema, headers
// first.
func Write(path string, rows []biblio.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet is "Sheet1"; rename it to our schema sheet.
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]interface{}, len(biblio.Columns))
	for i, col := range biblio.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		record := make([]interface{}, len(biblio.Columns))
		for j, col := range biblio.Columns {
			record[j] = row.Get(col)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("computing cell for row %d: %w", i, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
