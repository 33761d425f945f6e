package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

type seedCourse struct {
	ID             int64
	Title          string
	SeatsAvailable int
}

type seedStudent struct {
	ID   int64
	Name string
}

type seedTake struct {
	CourseID   int64
	StudentID  int64
	EnrollDate string
}

// Sample dataset: three courses, ten students, five enrollments.
var (
	seedCourses = []seedCourse{
		{1, "CMPUT291", 200},
		{2, "CMPUT274", 70},
		{3, "CMPUT301", 80},
	}
	seedStudents = []seedStudent{
		{11, "John"}, {12, "Mary"}, {13, "Steve"}, {14, "Bob"}, {15, "Seth"},
		{16, "Samantha"}, {17, "Emily"}, {18, "Paul"}, {19, "Emma"}, {20, "Ross"},
	}
	seedTakes = []seedTake{
		{1, 11, "2017-08-01"},
		{2, 13, "2017-09-01"}, {2, 14, "2017-08-15"},
		{3, 11, "2017-09-01"}, {3, 12, "2017-08-15"},
	}
)

// Seed loads the sample dataset. A run against an already-seeded store
// is a no-op. Each batch is inserted independently: a failed batch is
// logged and the remaining batches still run, with no rollback.
func (db *DB) Seed() error {
	seeded, err := db.IsSeeded()
	if err != nil {
		return err
	}
	if seeded {
		log.Debug().Msg("Sample data already present, skipping seed")
		return nil
	}

	if err := db.seedCourses(); err != nil {
		log.Error().Err(err).Msg("Failed to seed courses")
	}
	if err := db.seedStudents(); err != nil {
		log.Error().Err(err).Msg("Failed to seed students")
	}
	if err := db.seedTakes(); err != nil {
		log.Error().Err(err).Msg("Failed to seed enrollments")
	}

	return nil
}

func (db *DB) seedCourses() error {
	for _, c := range seedCourses {
		_, err := db.Exec(`
			INSERT INTO course (course_id, title, seats_available)
			VALUES (?, ?, ?)
		`, c.ID, c.Title, c.SeatsAvailable)
		if err != nil {
			return fmt.Errorf("failed to insert course %d: %w", c.ID, err)
		}
	}
	return nil
}

func (db *DB) seedStudents() error {
	for _, s := range seedStudents {
		_, err := db.Exec(`
			INSERT INTO student (student_id, name)
			VALUES (?, ?)
		`, s.ID, s.Name)
		if err != nil {
			return fmt.Errorf("failed to insert student %d: %w", s.ID, err)
		}
	}
	return nil
}

func (db *DB) seedTakes() error {
	for _, t := range seedTakes {
		_, err := db.Exec(`
			INSERT INTO take (course_id, student_id, enroll_date)
			VALUES (?, ?, ?)
		`, t.CourseID, t.StudentID, t.EnrollDate)
		if err != nil {
			return fmt.Errorf("failed to insert enrollment (%d, %d): %w", t.StudentID, t.CourseID, err)
		}
	}
	return nil
}
