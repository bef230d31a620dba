package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
)

func TestToJSON(t *testing.T) {
	day := models.DaySchedule{
		DayOfWeek: "Понедельник",
		Odd:       []models.LessonCouple{{{LessonNumber: 1, Lesson: "Math & Physics"}}},
		Even:      []models.LessonCouple{{{LessonNumber: 1}}},
	}

	data, err := ToJSON(day, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	expected := `{"dayOfWeek":"Понедельник","odd":[[{"lessonNumber":1,"lesson":"Math & Physics"}]],"even":[[{"lessonNumber":1}]]}`
	if string(data) != expected {
		t.Errorf("ToJSON = %s, expected %s", data, expected)
	}

	pretty, err := ToJSON(day, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"dayOfWeek\"") {
		t.Errorf("Expected indented output, got %s", pretty)
	}
}

func TestWriteFactsCSV(t *testing.T) {
	facts := []models.LessonFact{
		{Group: "ИТ-101", DayOfWeek: 1, IsEven: true, LessonNumber: 2, Teacher: "Иванов И.И.", Lesson: "Математика"},
	}

	var buf bytes.Buffer
	if err := WriteFactsCSV(&buf, facts); err != nil {
		t.Fatalf("WriteFactsCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header and one row, got %q", buf.String())
	}
	if lines[0] != "group,day_of_week,is_even,lesson_number,time,classroom,lesson_type,teacher,lesson" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if lines[1] != "ИТ-101,1,true,2,,,,Иванов И.И.,Математика" {
		t.Errorf("Unexpected row: %q", lines[1])
	}
}
