// Package source loads workbook sheets into grids for extraction.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/parser"
)

// Sheet is one named sheet loaded into memory.
type Sheet struct {
	Name string
	Grid *parser.MapGrid
}

// Open reads every sheet of an .xlsx/.xlsm or legacy .xls workbook.
// Sheets are fully loaded so they can be extracted concurrently afterwards.
func Open(path string) ([]Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", schedule.ErrFileNotFound, path)
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return openXLSX(path)
	case ".xls":
		return openXLS(path)
	default:
		return nil, fmt.Errorf("%w: %s", schedule.ErrUnsupportedFormat, path)
	}
}

// Excluded reports whether a sheet name contains any exclusion substring,
// ignoring case.
func Excluded(name string, exclusions []string) bool {
	lower := strings.ToLower(name)
	for _, ex := range exclusions {
		if strings.Contains(lower, strings.ToLower(ex)) {
			return true
		}
	}
	return false
}

// FilterSheets drops excluded sheets and returns the names it skipped.
func FilterSheets(sheets []Sheet, exclusions []string) (kept []Sheet, skipped []string) {
	for _, s := range sheets {
		if Excluded(s.Name, exclusions) {
			skipped = append(skipped, s.Name)
			continue
		}
		kept = append(kept, s)
	}
	return kept, skipped
}
