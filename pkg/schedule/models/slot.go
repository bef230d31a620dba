package models

// LessonSlot is one row's decoded data for one week variant.
type LessonSlot struct {
	// LessonNumber is 1-based and sequential within a day.
	LessonNumber int    `json:"lessonNumber"`
	Time         string `json:"time,omitempty"`
	Classroom    string `json:"classroom,omitempty"`
	LessonType   string `json:"lessonType,omitempty"`
	Teacher      string `json:"teacher,omitempty"`
	Lesson       string `json:"lesson,omitempty"`
}

// IsEmpty reports whether the slot carries no lesson data at all.
func (s LessonSlot) IsEmpty() bool {
	return s.Time == "" && s.Classroom == "" && s.LessonType == "" && s.Teacher == "" && s.Lesson == ""
}

// LessonCouple groups one or two consecutive slots into a lesson period.
type LessonCouple []LessonSlot
