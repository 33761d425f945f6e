package database

import (
	"database/sql"
	"fmt"
	"time"
)

// EnrollDateFormat is the timestamp layout stored in take.enroll_date
const EnrollDateFormat = "2006-01-02 15:04:05"

// Enrollment represents a row in the take table
type Enrollment struct {
	CourseID   int64  `json:"course_id"`
	StudentID  int64  `json:"student_id"`
	EnrollDate string `json:"enroll_date"`
}

// IsEnrolled checks whether a take row exists for the given pair
func (db *DB) IsEnrolled(studentID, courseID int64) (bool, error) {
	var id int64
	err := db.QueryRow(`
		SELECT student_id FROM take
		WHERE student_id = ? AND course_id = ?
	`, studentID, courseID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment (%d, %d): %w", studentID, courseID, err)
	}
	return true, nil
}

// GetEnrollment retrieves a take row by its composite key, nil if absent
func (db *DB) GetEnrollment(studentID, courseID int64) (*Enrollment, error) {
	e := &Enrollment{}
	err := db.QueryRow(`
		SELECT course_id, student_id, enroll_date FROM take
		WHERE student_id = ? AND course_id = ?
	`, studentID, courseID).Scan(&e.CourseID, &e.StudentID, &e.EnrollDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment (%d, %d): %w", studentID, courseID, err)
	}
	return e, nil
}

// CountEnrollments returns the number of rows in the take table
func (db *DB) CountEnrollments() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM take").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}

// CreateEnrollment inserts a take row and decrements the course's
// available seats as one transaction. The insert runs first; a failure
// of either statement rolls back both.
func (db *DB) CreateEnrollment(studentID, courseID int64, at time.Time) error {
	return db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO take (course_id, student_id, enroll_date)
			VALUES (?, ?, ?)
		`, courseID, studentID, at.Format(EnrollDateFormat))
		if err != nil {
			return fmt.Errorf("failed to insert enrollment (%d, %d): %w", studentID, courseID, err)
		}

		_, err = tx.Exec(`
			UPDATE course SET seats_available = seats_available - 1
			WHERE course_id = ?
		`, courseID)
		if err != nil {
			return fmt.Errorf("failed to decrement seats for course %d: %w", courseID, err)
		}

		return nil
	})
}
