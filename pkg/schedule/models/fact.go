package models

// LessonFact is a flat, storage-oriented record of one scheduled lesson.
type LessonFact struct {
	Group string `json:"group" csv:"group"`
	// DayOfWeek is the day offset within the WeeklySchedule.
	DayOfWeek    int    `json:"dayOfWeek" csv:"day_of_week"`
	IsEven       bool   `json:"isEven" csv:"is_even"`
	LessonNumber int    `json:"lessonNumber" csv:"lesson_number"`
	Time         string `json:"time,omitempty" csv:"time"`
	Classroom    string `json:"classroom,omitempty" csv:"classroom"`
	LessonType   string `json:"lessonType,omitempty" csv:"lesson_type"`
	Teacher      string `json:"teacher,omitempty" csv:"teacher"`
	Lesson       string `json:"lesson" csv:"lesson"`
}

// NewLessonFact flattens a slot into a fact for the given group and day.
func NewLessonFact(group string, day int, isEven bool, slot LessonSlot) LessonFact {
	return LessonFact{
		Group:        group,
		DayOfWeek:    day,
		IsEven:       isEven,
		LessonNumber: slot.LessonNumber,
		Time:         slot.Time,
		Classroom:    slot.Classroom,
		LessonType:   slot.LessonType,
		Teacher:      slot.Teacher,
		Lesson:       slot.Lesson,
	}
}
