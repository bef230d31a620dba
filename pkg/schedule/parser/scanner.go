package parser

import "strings"

const (
	mondayAbbrev = "пн"
	mondayName   = "понедельник"
)

// mondayMarker reports whether a day-column cell opens the first day block.
// A bare "ПН" labels the first lesson row itself. A cell naming the full
// weekday is a header row above it, and header is true.
func mondayMarker(v Value) (header, ok bool) {
	token := strings.ToLower(v.Trimmed())
	switch {
	case token == mondayAbbrev:
		return false, true
	case strings.Contains(token, mondayName):
		return true, true
	}
	return false, false
}

// FindFirstDay scans the day column from HeaderSearchStart for the Monday
// marker and returns the first lesson row of the Monday block: the marker
// row for "ПН", the row below it for a "ПОНЕДЕЛЬНИК" header. At most
// ScanLimit rows are read.
func FindFirstDay(g Grid, layout Layout) (int, error) {
	from := layout.HeaderSearchStart
	to := from + layout.ScanLimit - 1
	for row := from; row <= to; row++ {
		header, ok := mondayMarker(g.Cell(layout.DayColumn, row))
		if !ok {
			continue
		}
		if header {
			return row + 1, nil
		}
		return row, nil
	}
	return 0, &LayoutError{Column: layout.DayColumn, From: from, To: to, Err: ErrMarkerNotFound}
}

// DayHeader is the label data surrounding a day block's first row.
type DayHeader struct {
	Row       int
	Location  string
	DayOfWeek string
	// Known is false when the weekday label was not recognized.
	Known bool
}

// ReadDayHeader reads the weekday label at row and the location one row above.
func ReadDayHeader(g Grid, layout Layout, row int) DayHeader {
	label := g.Cell(layout.DayColumn, row)
	name, ok := CanonicalDay(label.Trimmed())
	return DayHeader{
		Row:       row,
		Location:  g.Cell(layout.DayColumn, row-1).Trimmed(),
		DayOfWeek: name,
		Known:     ok,
	}
}
