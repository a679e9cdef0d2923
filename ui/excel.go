package ui

import (
	"github.com/xuri/excelize/v2"

	"rocketeda/internal/errors"
	"rocketeda/models"
)

// buildTableWorkbook turns one literal table into a single-sheet
// workbook for download.
func buildTableWorkbook(table *models.Table) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	for col, header := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "resolve header cell")
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, errors.Wrap(err, "write header cell")
		}
	}

	for rowIdx, row := range table.Rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return nil, errors.Wrap(err, "resolve data cell")
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, errors.Wrap(err, "write data cell")
			}
		}
	}

	return f, nil
}
