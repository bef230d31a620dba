package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/samofrom/kosygin-schedule-parser/pkg/schedule/models"
)

// SQLite stores groups, schedules, lessons and teachers in one SQLite file.
// Schedules are kept as JSON documents, lessons as flat rows.
type SQLite struct {
	db *sql.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS student_groups (
		name TEXT PRIMARY KEY,
		institute_id TEXT,
		institute_name TEXT,
		course TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS schedules (
		group_name TEXT PRIMARY KEY,
		document TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS lessons (
		id TEXT PRIMARY KEY,
		group_name TEXT NOT NULL,
		day_of_week INTEGER NOT NULL,
		is_even INTEGER NOT NULL,
		lesson_number INTEGER NOT NULL,
		time TEXT,
		classroom TEXT,
		lesson_type TEXT,
		teacher TEXT,
		lesson TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS lessons_group ON lessons(group_name);`,
	`CREATE INDEX IF NOT EXISTS lessons_teacher ON lessons(teacher);`,
	`CREATE TABLE IF NOT EXISTS teachers (
		name TEXT PRIMARY KEY
	);`,
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// one writer at a time
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) createTables(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// ResetAll implements Writer. Either every table is cleared or none is.
func (s *SQLite) ResetAll(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"lessons", "schedules", "teachers", "student_groups"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// UpsertGroupMeta implements Writer.
func (s *SQLite) UpsertGroupMeta(ctx context.Context, group string, meta models.GroupMeta) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO student_groups (name, institute_id, institute_name, course)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			institute_id = excluded.institute_id,
			institute_name = excluded.institute_name,
			course = excluded.course`,
		group, meta.InstituteID, meta.InstituteName, meta.Course)
	if err != nil {
		return fmt.Errorf("upsert group %q: %w", group, err)
	}
	return nil
}

// ReplaceSchedule implements Writer.
func (s *SQLite) ReplaceSchedule(ctx context.Context, group string, schedule models.WeeklySchedule) error {
	doc, err := json.Marshal(schedule)
	if err != nil {
		return fmt.Errorf("encode schedule %q: %w", group, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO schedules (group_name, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(group_name) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at`,
		group, string(doc), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("replace schedule %q: %w", group, err)
	}
	return nil
}

// InsertLessonFacts implements Writer. Teachers named by the facts are recorded too.
func (s *SQLite) InsertLessonFacts(ctx context.Context, facts []models.LessonFact) error {
	if len(facts) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	lessonStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO lessons (id, group_name, day_of_week, is_even, lesson_number,
			time, classroom, lesson_type, teacher, lesson)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer lessonStmt.Close()

	teacherStmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO teachers (name) VALUES (?)`)
	if err != nil {
		return err
	}
	defer teacherStmt.Close()

	for _, f := range facts {
		_, err := lessonStmt.ExecContext(ctx, uuid.NewString(), f.Group, f.DayOfWeek, f.IsEven,
			f.LessonNumber, f.Time, f.Classroom, f.LessonType, f.Teacher, f.Lesson)
		if err != nil {
			return fmt.Errorf("insert lesson for %q: %w", f.Group, err)
		}
		if f.Teacher == "" {
			continue
		}
		if _, err := teacherStmt.ExecContext(ctx, f.Teacher); err != nil {
			return fmt.Errorf("insert teacher %q: %w", f.Teacher, err)
		}
	}
	return tx.Commit()
}

// Groups implements Reader.
func (s *SQLite) Groups(ctx context.Context) ([]models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, institute_id, institute_name, course FROM student_groups ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.Name, &g.InstituteID, &g.InstituteName, &g.Course); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// Schedule implements Reader.
func (s *SQLite) Schedule(ctx context.Context, group string) (models.WeeklySchedule, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM schedules WHERE group_name = ?`, group).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var schedule models.WeeklySchedule
	if err := json.Unmarshal([]byte(doc), &schedule); err != nil {
		return nil, fmt.Errorf("decode schedule %q: %w", group, err)
	}
	return schedule, nil
}

// LessonFacts implements Reader. Results keep insertion order.
func (s *SQLite) LessonFacts(ctx context.Context, filter LessonFilter) ([]models.LessonFact, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT group_name, day_of_week, is_even, lesson_number,
			time, classroom, lesson_type, teacher, lesson
		FROM lessons
		WHERE (? = '' OR group_name = ?) AND (? = '' OR teacher = ?)
		ORDER BY rowid`,
		filter.Group, filter.Group, filter.Teacher, filter.Teacher)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facts []models.LessonFact
	for rows.Next() {
		var f models.LessonFact
		err := rows.Scan(&f.Group, &f.DayOfWeek, &f.IsEven, &f.LessonNumber,
			&f.Time, &f.Classroom, &f.LessonType, &f.Teacher, &f.Lesson)
		if err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}
	return facts, rows.Err()
}

// Teachers implements Reader.
func (s *SQLite) Teachers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM teachers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
