package source

import (
	"fmt"

	"github.com/extrame/xls"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/parser"
	"github.com/xuri/excelize/v2"
)

// xlsCharset decodes BIFF5 byte strings found in older Russian workbooks.
const xlsCharset = "windows-1251"

func openXLS(path string) ([]Sheet, error) {
	wb, err := xls.Open(path, xlsCharset)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var sheets []Sheet
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		g, err := loadXLSSheet(ws)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", ws.Name, err)
		}
		sheets = append(sheets, Sheet{Name: ws.Name, Grid: g})
	}
	return sheets, nil
}

func loadXLSSheet(ws *xls.WorkSheet) (*parser.MapGrid, error) {
	g := parser.NewMapGrid()
	for rowIdx := 0; rowIdx <= int(ws.MaxRow); rowIdx++ {
		row := ws.Row(rowIdx)
		if row == nil {
			continue
		}
		for colIdx := row.FirstCol(); colIdx < row.LastCol(); colIdx++ {
			cellValue := row.Col(colIdx)
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
