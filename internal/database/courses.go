package database

import (
	"database/sql"
	"fmt"
)

// Course represents a row in the course table
type Course struct {
	ID             int64  `json:"course_id"`
	Title          string `json:"title"`
	SeatsAvailable int    `json:"seats_available"`
}

// GetCourse retrieves a course by id, returning nil if not found
func (db *DB) GetCourse(courseID int64) (*Course, error) {
	course := &Course{}
	err := db.QueryRow(`
		SELECT course_id, title, seats_available
		FROM course WHERE course_id = ?
	`, courseID).Scan(&course.ID, &course.Title, &course.SeatsAvailable)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course %d: %w", courseID, err)
	}
	return course, nil
}

// CourseExists checks whether a course with the given id is present
func (db *DB) CourseExists(courseID int64) (bool, error) {
	var id int64
	err := db.QueryRow(`
		SELECT course_id FROM course WHERE course_id = ?
	`, courseID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check course %d: %w", courseID, err)
	}
	return true, nil
}

// CourseHasOpenSeats checks whether the course still has seats available
func (db *DB) CourseHasOpenSeats(courseID int64) (bool, error) {
	var id int64
	err := db.QueryRow(`
		SELECT course_id FROM course
		WHERE course_id = ? AND seats_available > 0
	`, courseID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check seats for course %d: %w", courseID, err)
	}
	return true, nil
}
