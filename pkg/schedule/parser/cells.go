package parser

import (
	"sort"
	"strconv"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells lists the non-blank cells of a grid row by row.
// Rows from..to (inclusive) are included; to <= 0 means no upper bound.
func ExtractCells(g *MapGrid, from, to int) []models.CellRow {
	var result []models.CellRow
	for _, rowNum := range g.RowNumbers() {
		if rowNum < from || (to > 0 && rowNum > to) {
			continue
		}
		cellMap := make(map[string]interface{})
		for _, col := range g.columns(rowNum) {
			v := g.Cell(col, rowNum)
			if v.Blank() {
				continue
			}
			cellMap[col] = parseValue(v.Trimmed())
		}
		if len(cellMap) > 0 {
			result = append(result, models.CellRow{R: rowNum, C: cellMap})
		}
	}
	return result
}

// columns returns the column letters present in a row, in sheet order.
func (g *MapGrid) columns(row int) []string {
	cols := make([]string, 0, len(g.rows[row]))
	for col := range g.rows[row] {
		cols = append(cols, col)
	}
	sort.Slice(cols, func(i, j int) bool {
		a, _ := excelize.ColumnNameToNumber(cols[i])
		b, _ := excelize.ColumnNameToNumber(cols[j])
		return a < b
	})
	return cols
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
