// Package store persists extracted schedules and lesson facts.
package store

import (
	"context"
	"errors"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
)

// ErrNotFound is returned when a group has no stored schedule.
var ErrNotFound = errors.New("not found")

// Writer is the persistence side used by an ingestion run.
// Writes for different groups may arrive in any order, and a group's
// schedule and facts are not written atomically together.
type Writer interface {
	// ResetAll clears lessons, schedules, groups and teachers.
	ResetAll(ctx context.Context) error
	UpsertGroupMeta(ctx context.Context, group string, meta models.GroupMeta) error
	ReplaceSchedule(ctx context.Context, group string, schedule models.WeeklySchedule) error
	InsertLessonFacts(ctx context.Context, facts []models.LessonFact) error
}

// LessonFilter narrows LessonFacts. Empty fields match everything.
type LessonFilter struct {
	Group   string
	Teacher string
}

func (f LessonFilter) match(l models.LessonFact) bool {
	return (f.Group == "" || l.Group == f.Group) && (f.Teacher == "" || l.Teacher == f.Teacher)
}

// Reader queries stored data.
type Reader interface {
	Groups(ctx context.Context) ([]models.Group, error)
	Schedule(ctx context.Context, group string) (models.WeeklySchedule, error)
	LessonFacts(ctx context.Context, filter LessonFilter) ([]models.LessonFact, error)
	Teachers(ctx context.Context) ([]string, error)
}

// Store is a complete persistence backend.
type Store interface {
	Writer
	Reader
	Close() error
}
