package models

// DaySchedule holds one weekday's lessons for both week variants.
// Odd and Even always have the same length.
type DaySchedule struct {
	// Location is the header text found one row above the day block.
	Location string `json:"location,omitempty"`
	// DayOfWeek is the canonical Russian weekday name.
	DayOfWeek string         `json:"dayOfWeek"`
	Odd       []LessonCouple `json:"odd"`
	Even      []LessonCouple `json:"even"`
}

// WeeklySchedule is indexed by day offset (0 = first day found).
type WeeklySchedule []DaySchedule
