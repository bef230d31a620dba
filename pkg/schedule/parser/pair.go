package parser

import "github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"

// coupleSize is the number of sheet rows making up one lesson period.
const coupleSize = 2

// MakeCouples groups slots into couples of two, in order.
// The last couple holds a single slot when len(slots) is odd.
func MakeCouples(slots []models.LessonSlot) []models.LessonCouple {
	couples := make([]models.LessonCouple, 0, (len(slots)+coupleSize-1)/coupleSize)
	for i := 0; i < len(slots); i += coupleSize {
		end := min(i+coupleSize, len(slots))
		couple := make(models.LessonCouple, end-i)
		copy(couple, slots[i:end])
		couples = append(couples, couple)
	}
	return couples
}

// Flatten undoes MakeCouples.
func Flatten(couples []models.LessonCouple) []models.LessonSlot {
	slots := make([]models.LessonSlot, 0, len(couples)*coupleSize)
	for _, c := range couples {
		slots = append(slots, c...)
	}
	return slots
}
