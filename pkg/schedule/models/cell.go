// Package models defines the schedule structures produced by extraction.
package models

// CellRow represents a single sheet row of non-empty cells.
type CellRow struct {
	// R is the row number (1-based).
	R int `json:"r"`
	// C maps column letter to cell value.
	C map[string]interface{} `json:"c"`
}
