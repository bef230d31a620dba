package parser

import (
	"fmt"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
)

const (
	variantOdd  = "odd"
	variantEven = "even"
)

// Block is the result of walking one day block.
type Block struct {
	// Odd and Even hold one slot per row, so they always have equal length.
	Odd  []models.LessonSlot
	Even []models.LessonSlot
	// Facts lists one fact per non-empty lesson cell, even variant first within a row.
	Facts    []models.LessonFact
	Warnings []Warning
	// Next is the first row of the following day block.
	Next int
}

// ExtractBlock walks rows from start while the marker column is non-empty.
// A block whose marker is blank at start is empty, not an error.
func ExtractBlock(g Grid, layout Layout, group string, day, start int) Block {
	b := Block{}
	marker := layout.MarkerColumn()

	row := start
	for lessonNumber := 1; !g.Cell(marker, row).Blank(); lessonNumber++ {
		odd := readSlot(g, layout.Odd, row, lessonNumber)
		even := readSlot(g, layout.Even, row, lessonNumber)
		b.Odd = append(b.Odd, odd)
		b.Even = append(b.Even, even)

		if even.Lesson != "" {
			b.Facts = append(b.Facts, models.NewLessonFact(group, day, true, even))
		}
		if odd.Lesson != "" {
			b.Facts = append(b.Facts, models.NewLessonFact(group, day, false, odd))
		}

		b.Warnings = append(b.Warnings, checkRow(g, layout, day, row, odd, even)...)
		row++
	}

	if !g.Cell(layout.Even.LessonNumber, row).Blank() {
		b.Warnings = append(b.Warnings, Warning{
			Kind:    MisalignedVariantWarning,
			Day:     day,
			Row:     row,
			Variant: variantEven,
			Detail:  fmt.Sprintf("%s continues after the odd block ended", CellName(layout.Even.LessonNumber, row)),
		})
	}

	// one blank separator row between day blocks
	b.Next = row + 1
	return b
}

func readSlot(g Grid, v Variant, row, lessonNumber int) models.LessonSlot {
	return models.LessonSlot{
		LessonNumber: lessonNumber,
		Time:         g.Cell(v.Time, row).Trimmed(),
		Classroom:    g.Cell(v.Classroom, row).Trimmed(),
		LessonType:   g.Cell(v.LessonType, row).Trimmed(),
		Teacher:      g.Cell(v.Teacher, row).Trimmed(),
		Lesson:       g.Cell(v.Lesson, row).Trimmed(),
	}
}

func checkRow(g Grid, layout Layout, day, row int, odd, even models.LessonSlot) []Warning {
	var warnings []Warning
	if odd.Lesson == "" && !odd.IsEmpty() {
		warnings = append(warnings, missingField(layout.Odd, variantOdd, day, row))
	}
	evenMarker := !g.Cell(layout.Even.LessonNumber, row).Blank()
	switch {
	case !evenMarker && !even.IsEmpty():
		warnings = append(warnings, Warning{
			Kind:    MisalignedVariantWarning,
			Day:     day,
			Row:     row,
			Variant: variantEven,
			Detail:  fmt.Sprintf("%s is blank but the row has even-week data", CellName(layout.Even.LessonNumber, row)),
		})
	case even.Lesson == "" && !even.IsEmpty():
		warnings = append(warnings, missingField(layout.Even, variantEven, day, row))
	}
	return warnings
}

func missingField(v Variant, variant string, day, row int) Warning {
	return Warning{
		Kind:    MissingFieldWarning,
		Day:     day,
		Row:     row,
		Variant: variant,
		Detail:  fmt.Sprintf("%s is empty", CellName(v.Lesson, row)),
	}
}
