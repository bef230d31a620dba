package schedule

import (
	"fmt"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/parser"
)

// Extraction is the result of extracting one group's sheet.
type Extraction struct {
	Group    string                `json:"group"`
	Schedule models.WeeklySchedule `json:"schedule"`
	Facts    []models.LessonFact   `json:"lessons"`
	Warnings []parser.Warning      `json:"warnings,omitempty"`
}

// ExtractGroupSchedule builds the weekly schedule and lesson facts of one group
// from its sheet grid. It fails with a *parser.LayoutError (wrapped in an
// *ExtractionError) when the Monday marker is not found within the scan window;
// no partial schedule is returned in that case.
func ExtractGroupSchedule(group string, grid parser.Grid, layout parser.Layout) (*Extraction, error) {
	if err := layout.Validate(); err != nil {
		return nil, NewExtractionError(group, "layout", err)
	}

	row, err := parser.FindFirstDay(grid, layout)
	if err != nil {
		return nil, NewExtractionError(group, "days", err)
	}

	ex := &Extraction{
		Group:    group,
		Schedule: make(models.WeeklySchedule, 0, layout.DaysPerWeek),
		Facts:    []models.LessonFact{},
	}

	for day := 0; day < layout.DaysPerWeek; day++ {
		header := parser.ReadDayHeader(grid, layout, row)
		if !header.Known {
			ex.Warnings = append(ex.Warnings, unrecognizedDay(grid, layout, day, row))
		}

		block := parser.ExtractBlock(grid, layout, group, day, row)
		ex.Schedule = append(ex.Schedule, models.DaySchedule{
			Location:  header.Location,
			DayOfWeek: header.DayOfWeek,
			Odd:       parser.MakeCouples(block.Odd),
			Even:      parser.MakeCouples(block.Even),
		})
		ex.Facts = append(ex.Facts, block.Facts...)
		ex.Warnings = append(ex.Warnings, block.Warnings...)

		row = block.Next
	}

	return ex, nil
}

func unrecognizedDay(grid parser.Grid, layout parser.Layout, day, row int) parser.Warning {
	label := grid.Cell(layout.DayColumn, row)
	detail := fmt.Sprintf("%s has no weekday label", parser.CellName(layout.DayColumn, row))
	if label.Exists() {
		detail = fmt.Sprintf("%s = %q kept as is", parser.CellName(layout.DayColumn, row), label.Trimmed())
	}
	return parser.Warning{
		Kind:   parser.UnrecognizedDayToken,
		Day:    day,
		Row:    row,
		Detail: detail,
	}
}
