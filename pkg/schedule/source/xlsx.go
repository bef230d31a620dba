package source

import (
	"fmt"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/parser"
	"github.com/xuri/excelize/v2"
)

func openXLSX(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		g, err := loadXLSXSheet(f, name)
		if err != nil {
			return nil, schedule.NewExtractionError(name, "cells", err)
		}
		sheets = append(sheets, Sheet{Name: name, Grid: g})
	}
	return sheets, nil
}

// loadXLSXSheet copies the non-empty cells of a sheet into a grid.
// Merged ranges keep their value in the top-left cell only.
func loadXLSXSheet(f *excelize.File, sheetName string) (*parser.MapGrid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	g := parser.NewMapGrid()
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			col, err := excelize.ColumnNumberToName(colIdx + 1)
			if err != nil {
				return nil, err
			}
			g.Set(col, rowIdx+1, cellValue)
		}
	}
	return g, nil
}
