// Package export renders table widgets as downloadable files, backing the
// csv and excel buttons of the tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/GregMSThompson/village-dashboard/internal/models"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	columnWidth = 20
)

// WriteCSV writes the header row followed by every table row.
func WriteCSV(w io.Writer, spec models.TableSpec, rows []models.TableRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(spec.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	record := make([]string, len(spec.Columns))
	for i, row := range rows {
		for j := range record {
			record[j] = ""
			if j < len(row) {
				record[j] = fmt.Sprint(row[j])
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the table to a single worksheet named sheet with a bold
// header row. Cell values keep their types, so numbers stay numeric.
func WriteXLSX(w io.Writer, sheet string, spec models.TableSpec, rows []models.TableRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := make([]any, len(spec.Columns))
	for i, c := range spec.Columns {
		header[i] = c
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, columnWidth); err != nil {
			return err
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if len(spec.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(spec.Columns), 1)
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return err
		}
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any(row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	return f.Write(w)
}
