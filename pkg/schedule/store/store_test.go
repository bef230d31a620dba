package store

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
)

func sampleSchedule(lesson string) models.WeeklySchedule {
	return models.WeeklySchedule{{
		Location:  "Корпус А",
		DayOfWeek: "Понедельник",
		Odd:       []models.LessonCouple{{{LessonNumber: 1, Lesson: lesson}, {LessonNumber: 2}}},
		Even:      []models.LessonCouple{{{LessonNumber: 1}, {LessonNumber: 2}}},
	}}
}

func sampleFacts() []models.LessonFact {
	return []models.LessonFact{
		{Group: "ИТ-101", DayOfWeek: 0, IsEven: true, LessonNumber: 1, Teacher: "Петров П.П.", Lesson: "Физика"},
		{Group: "ИТ-101", DayOfWeek: 0, IsEven: false, LessonNumber: 1, Teacher: "Иванов И.И.", Lesson: "Математика", Classroom: "1203"},
		{Group: "ИТ-102", DayOfWeek: 3, IsEven: false, LessonNumber: 2, Teacher: "Иванов И.И.", Lesson: "Математика"},
		{Group: "ИТ-102", DayOfWeek: 4, IsEven: false, LessonNumber: 1, Lesson: "Самоподготовка"},
	}
}

// testStore runs the same checks against any Store implementation.
func testStore(t *testing.T, s Store) {
	ctx := context.Background()

	if err := s.UpsertGroupMeta(ctx, "ИТ-101", models.GroupMeta{InstituteID: "17", Course: "1 курс"}); err != nil {
		t.Fatalf("UpsertGroupMeta failed: %v", err)
	}
	if err := s.UpsertGroupMeta(ctx, "ИТ-101", models.GroupMeta{InstituteID: "17", InstituteName: "ИИТ", Course: "2 курс"}); err != nil {
		t.Fatalf("UpsertGroupMeta failed: %v", err)
	}
	if err := s.UpsertGroupMeta(ctx, "ИТ-102", models.GroupMeta{InstituteID: "17"}); err != nil {
		t.Fatalf("UpsertGroupMeta failed: %v", err)
	}

	groups, err := s.Groups(ctx)
	if err != nil {
		t.Fatalf("Groups failed: %v", err)
	}
	if len(groups) != 2 || groups[0].Name != "ИТ-101" || groups[0].Course != "2 курс" || groups[0].InstituteName != "ИИТ" {
		t.Errorf("Unexpected groups: %+v", groups)
	}

	if err := s.ReplaceSchedule(ctx, "ИТ-101", sampleSchedule("Старый")); err != nil {
		t.Fatalf("ReplaceSchedule failed: %v", err)
	}
	if err := s.ReplaceSchedule(ctx, "ИТ-101", sampleSchedule("Новый")); err != nil {
		t.Fatalf("ReplaceSchedule failed: %v", err)
	}
	got, err := s.Schedule(ctx, "ИТ-101")
	if err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}
	if !reflect.DeepEqual(got, sampleSchedule("Новый")) {
		t.Errorf("Schedule = %+v, expected the replaced document", got)
	}
	if _, err := s.Schedule(ctx, "нет такой"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	if err := s.InsertLessonFacts(ctx, sampleFacts()); err != nil {
		t.Fatalf("InsertLessonFacts failed: %v", err)
	}
	if err := s.InsertLessonFacts(ctx, nil); err != nil {
		t.Fatalf("InsertLessonFacts(nil) failed: %v", err)
	}

	all, err := s.LessonFacts(ctx, LessonFilter{})
	if err != nil {
		t.Fatalf("LessonFacts failed: %v", err)
	}
	if !reflect.DeepEqual(all, sampleFacts()) {
		t.Errorf("LessonFacts = %+v, expected insertion order", all)
	}

	byTeacher, err := s.LessonFacts(ctx, LessonFilter{Teacher: "Иванов И.И."})
	if err != nil {
		t.Fatalf("LessonFacts failed: %v", err)
	}
	if len(byTeacher) != 2 {
		t.Errorf("Expected 2 lessons for Иванов, got %d", len(byTeacher))
	}
	byBoth, err := s.LessonFacts(ctx, LessonFilter{Group: "ИТ-102", Teacher: "Иванов И.И."})
	if err != nil {
		t.Fatalf("LessonFacts failed: %v", err)
	}
	if len(byBoth) != 1 || byBoth[0].DayOfWeek != 3 {
		t.Errorf("Unexpected filtered lessons: %+v", byBoth)
	}

	teachers, err := s.Teachers(ctx)
	if err != nil {
		t.Fatalf("Teachers failed: %v", err)
	}
	if !reflect.DeepEqual(teachers, []string{"Иванов И.И.", "Петров П.П."}) {
		t.Errorf("Unexpected teachers: %v", teachers)
	}

	if err := s.ResetAll(ctx); err != nil {
		t.Fatalf("ResetAll failed: %v", err)
	}
	groups, _ = s.Groups(ctx)
	lessons, _ := s.LessonFacts(ctx, LessonFilter{})
	teachers, _ = s.Teachers(ctx)
	if len(groups) != 0 || len(lessons) != 0 || len(teachers) != 0 {
		t.Errorf("Expected empty store after reset, got %d groups, %d lessons, %d teachers",
			len(groups), len(lessons), len(teachers))
	}
	if _, err := s.Schedule(ctx, "ИТ-101"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected schedule cleared by reset, got %v", err)
	}
}

func TestMemory(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	testStore(t, s)
}

func TestSQLite(t *testing.T) {
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "schedule.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()
	testStore(t, s)
}

func TestSQLiteReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "schedule.db")

	s, err := OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := s.ReplaceSchedule(ctx, "ИТ-101", sampleSchedule("Математика")); err != nil {
		t.Fatalf("ReplaceSchedule failed: %v", err)
	}
	s.Close()

	s, err = OpenSQLite(ctx, path)
	if err != nil {
		t.Fatalf("OpenSQLite (reopen) failed: %v", err)
	}
	defer s.Close()
	if _, err := s.Schedule(ctx, "ИТ-101"); err != nil {
		t.Errorf("Expected schedule to survive reopen, got %v", err)
	}
}
