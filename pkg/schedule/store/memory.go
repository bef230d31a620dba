package store

import (
	"context"
	"sort"
	"sync"

	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
)

// Memory is an in-process Store used for dry runs and tests.
type Memory struct {
	mu        sync.RWMutex
	groups    map[string]models.GroupMeta
	schedules map[string]models.WeeklySchedule
	lessons   []models.LessonFact
	teachers  map[string]struct{}
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	m := &Memory{}
	m.reset()
	return m
}

func (m *Memory) reset() {
	m.groups = make(map[string]models.GroupMeta)
	m.schedules = make(map[string]models.WeeklySchedule)
	m.lessons = nil
	m.teachers = make(map[string]struct{})
}

// ResetAll implements Writer.
func (m *Memory) ResetAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
	return nil
}

// UpsertGroupMeta implements Writer.
func (m *Memory) UpsertGroupMeta(ctx context.Context, group string, meta models.GroupMeta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.groups[group] = meta
	return nil
}

// ReplaceSchedule implements Writer.
func (m *Memory) ReplaceSchedule(ctx context.Context, group string, schedule models.WeeklySchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedules[group] = schedule
	return nil
}

// InsertLessonFacts implements Writer.
func (m *Memory) InsertLessonFacts(ctx context.Context, facts []models.LessonFact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lessons = append(m.lessons, facts...)
	for _, f := range facts {
		if f.Teacher != "" {
			m.teachers[f.Teacher] = struct{}{}
		}
	}
	return nil
}

// Groups implements Reader.
func (m *Memory) Groups(ctx context.Context) ([]models.Group, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	groups := make([]models.Group, 0, len(m.groups))
	for name, meta := range m.groups {
		groups = append(groups, models.Group{Name: name, GroupMeta: meta})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups, nil
}

// Schedule implements Reader.
func (m *Memory) Schedule(ctx context.Context, group string) (models.WeeklySchedule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.schedules[group]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// LessonFacts implements Reader.
func (m *Memory) LessonFacts(ctx context.Context, filter LessonFilter) ([]models.LessonFact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.LessonFact
	for _, l := range m.lessons {
		if filter.match(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

// Teachers implements Reader.
func (m *Memory) Teachers(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.teachers))
	for t := range m.teachers {
		out = append(out, t)
	}
	sort.Strings(out)
	return out, nil
}

// Close implements Store.
func (m *Memory) Close() error { return nil }
