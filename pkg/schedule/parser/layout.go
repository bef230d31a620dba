package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Variant maps the semantic fields of one week variant to column letters.
type Variant struct {
	LessonNumber string `yaml:"lessonNumber"`
	Time         string `yaml:"time"`
	Classroom    string `yaml:"classroom"`
	LessonType   string `yaml:"lessonType"`
	Teacher      string `yaml:"teacher"`
	Lesson       string `yaml:"lesson"`
}

func (v Variant) columns() map[string]string {
	return map[string]string{
		"lessonNumber": v.LessonNumber,
		"time":         v.Time,
		"classroom":    v.Classroom,
		"lessonType":   v.LessonType,
		"teacher":      v.Teacher,
		"lesson":       v.Lesson,
	}
}

// Layout describes where a timetable lives inside a sheet.
// It is a plain value and is never mutated by extraction.
type Layout struct {
	// DayColumn holds weekday labels and the location header above them.
	DayColumn string  `yaml:"dayColumn"`
	Odd       Variant `yaml:"odd"`
	Even      Variant `yaml:"even"`
	// HeaderSearchStart is the first row scanned for the Monday marker.
	HeaderSearchStart int `yaml:"headerSearchStart"`
	// DaysPerWeek must match the number of day blocks in the sheet.
	DaysPerWeek int `yaml:"daysPerWeek"`
	// ScanLimit bounds the number of rows scanned for the Monday marker.
	ScanLimit int `yaml:"scanLimit"`
}

// DefaultLayout returns the column map used by the Kosygin university sheets.
func DefaultLayout() Layout {
	return Layout{
		DayColumn: "A",
		Odd: Variant{
			LessonNumber: "B",
			Time:         "C",
			Classroom:    "D",
			LessonType:   "E",
			Teacher:      "F",
			Lesson:       "G",
		},
		Even: Variant{
			LessonNumber: "L",
			Time:         "M",
			Classroom:    "K",
			LessonType:   "J",
			Teacher:      "I",
			Lesson:       "H",
		},
		HeaderSearchStart: 10,
		DaysPerWeek:       6,
		ScanLimit:         500,
	}
}

// MarkerColumn is the column whose presence keeps a day block going.
func (l Layout) MarkerColumn() string {
	return l.Odd.LessonNumber
}

// Validate checks column letters and structural constants.
func (l Layout) Validate() error {
	if _, err := excelize.ColumnNameToNumber(l.DayColumn); err != nil {
		return fmt.Errorf("dayColumn: %w", err)
	}
	for name, v := range map[string]Variant{"odd": l.Odd, "even": l.Even} {
		for field, col := range v.columns() {
			if _, err := excelize.ColumnNameToNumber(col); err != nil {
				return fmt.Errorf("%s.%s: %w", name, field, err)
			}
		}
	}
	if l.HeaderSearchStart < 1 {
		return fmt.Errorf("headerSearchStart must be positive, got %d", l.HeaderSearchStart)
	}
	if l.DaysPerWeek < 1 {
		return fmt.Errorf("daysPerWeek must be positive, got %d", l.DaysPerWeek)
	}
	if l.ScanLimit < 1 {
		return fmt.Errorf("scanLimit must be positive, got %d", l.ScanLimit)
	}
	return nil
}
