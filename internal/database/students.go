package database

import (
	"database/sql"
	"fmt"
)

// Student represents a row in the student table
type Student struct {
	ID   int64  `json:"student_id"`
	Name string `json:"name"`
}

// StudentExists checks whether a student with the given id is present
func (db *DB) StudentExists(studentID int64) (bool, error) {
	var id int64
	err := db.QueryRow(`
		SELECT student_id FROM student WHERE student_id = ?
	`, studentID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check student %d: %w", studentID, err)
	}
	return true, nil
}

// ListStudentsAfter returns up to limit students with an id strictly
// greater than lastID, in ascending id order. This is the keyset query
// behind pagination: the cursor column is the primary key, so it is
// unique, indexed, and strictly increasing across pages.
func (db *DB) ListStudentsAfter(lastID int64, limit int) ([]Student, error) {
	rows, err := db.Query(`
		SELECT student_id, name FROM student
		WHERE student_id > ?
		ORDER BY student_id ASC
		LIMIT ?
	`, lastID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list students after %d: %w", lastID, err)
	}
	defer rows.Close()

	var students []Student
	for rows.Next() {
		var s Student
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

// CountStudents returns the number of rows in the student table
func (db *DB) CountStudents() (int, error) {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM student").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}
