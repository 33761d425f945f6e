package database

import (
	"testing"
	"time"
)

func seedRows(t *testing.T, db *DB, queries ...string) {
	t.Helper()
	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			t.Fatalf("failed to seed row: %v", err)
		}
	}
}

func TestCreateEnrollment_InsertsRowAndDecrementsSeats(t *testing.T) {
	db := newTestDB(t)
	seedRows(t, db,
		`INSERT INTO course (course_id, title, seats_available) VALUES (1, 'CMPUT291', 200)`,
		`INSERT INTO student (student_id, name) VALUES (11, 'John')`,
	)

	at := time.Date(2017, 9, 27, 0, 50, 0, 0, time.UTC)
	if err := db.CreateEnrollment(11, 1, at); err != nil {
		t.Fatalf("CreateEnrollment returned error: %v", err)
	}

	e, err := db.GetEnrollment(11, 1)
	if err != nil {
		t.Fatalf("GetEnrollment returned error: %v", err)
	}
	if e == nil {
		t.Fatal("expected enrollment to be saved")
	}
	if e.EnrollDate != "2017-09-27 00:50:00" {
		t.Fatalf("expected enroll_date 2017-09-27 00:50:00, got %q", e.EnrollDate)
	}

	course, err := db.GetCourse(1)
	if err != nil {
		t.Fatalf("GetCourse returned error: %v", err)
	}
	if course.SeatsAvailable != 199 {
		t.Fatalf("expected 199 seats after enrollment, got %d", course.SeatsAvailable)
	}

	count, err := db.CountEnrollments()
	if err != nil {
		t.Fatalf("CountEnrollments returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one take row, got %d", count)
	}
}

func TestCreateEnrollment_RollsBackOnDuplicate(t *testing.T) {
	db := newTestDB(t)
	seedRows(t, db,
		`INSERT INTO course (course_id, title, seats_available) VALUES (1, 'CMPUT291', 200)`,
		`INSERT INTO student (student_id, name) VALUES (11, 'John')`,
	)

	if err := db.CreateEnrollment(11, 1, time.Now()); err != nil {
		t.Fatalf("first CreateEnrollment returned error: %v", err)
	}

	// Composite primary key rejects the insert; the transaction must
	// roll back so seats are not decremented a second time
	if err := db.CreateEnrollment(11, 1, time.Now()); err == nil {
		t.Fatal("expected duplicate enrollment to fail")
	}

	course, err := db.GetCourse(1)
	if err != nil {
		t.Fatalf("GetCourse returned error: %v", err)
	}
	if course.SeatsAvailable != 199 {
		t.Fatalf("expected seats to remain 199 after failed enrollment, got %d", course.SeatsAvailable)
	}
}

func TestIsEnrolled(t *testing.T) {
	db := newTestDB(t)
	seedRows(t, db,
		`INSERT INTO course (course_id, title, seats_available) VALUES (1, 'CMPUT291', 200)`,
		`INSERT INTO student (student_id, name) VALUES (11, 'John')`,
		`INSERT INTO take (course_id, student_id, enroll_date) VALUES (1, 11, '2017-08-01')`,
	)

	enrolled, err := db.IsEnrolled(11, 1)
	if err != nil {
		t.Fatalf("IsEnrolled returned error: %v", err)
	}
	if !enrolled {
		t.Fatal("expected (11, 1) to be enrolled")
	}

	enrolled, err = db.IsEnrolled(12, 1)
	if err != nil {
		t.Fatalf("IsEnrolled returned error: %v", err)
	}
	if enrolled {
		t.Fatal("expected (12, 1) to not be enrolled")
	}
}

func TestCourseHasOpenSeats(t *testing.T) {
	db := newTestDB(t)
	seedRows(t, db,
		`INSERT INTO course (course_id, title, seats_available) VALUES (1, 'CMPUT291', 1)`,
		`INSERT INTO course (course_id, title, seats_available) VALUES (2, 'CMPUT274', 0)`,
	)

	open, err := db.CourseHasOpenSeats(1)
	if err != nil {
		t.Fatalf("CourseHasOpenSeats returned error: %v", err)
	}
	if !open {
		t.Fatal("expected course 1 to have open seats")
	}

	open, err = db.CourseHasOpenSeats(2)
	if err != nil {
		t.Fatalf("CourseHasOpenSeats returned error: %v", err)
	}
	if open {
		t.Fatal("expected course 2 to be full")
	}
}
