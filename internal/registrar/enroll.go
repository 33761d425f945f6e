package registrar

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Enroll enrolls a student into a course. Four checks gate the write,
// in this order, each short-circuiting: the student exists, the course
// exists, the course has open seats, and the pair is not already
// enrolled. When all pass, a take row is inserted and the course's
// available seats are decremented, as one transaction.
func (s *Service) Enroll(studentID, courseID int64) error {
	if err := s.validate(studentID, courseID); err != nil {
		return err
	}

	if err := s.db.CreateEnrollment(studentID, courseID, s.now()); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Student %d successfully enrolled in course %d\n", studentID, courseID)
	log.Debug().
		Int64("student_id", studentID).
		Int64("course_id", courseID).
		Msg("Enrollment recorded")

	return nil
}

func (s *Service) validate(studentID, courseID int64) error {
	exists, err := s.db.StudentExists(studentID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("student %d: %w", studentID, ErrStudentNotFound)
	}

	exists, err = s.db.CourseExists(courseID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("course %d: %w", courseID, ErrCourseNotFound)
	}

	open, err := s.db.CourseHasOpenSeats(courseID)
	if err != nil {
		return err
	}
	if !open {
		return fmt.Errorf("course %d: %w", courseID, ErrCourseFull)
	}

	enrolled, err := s.db.IsEnrolled(studentID, courseID)
	if err != nil {
		return err
	}
	if enrolled {
		return fmt.Errorf("student %d, course %d: %w", studentID, courseID, ErrAlreadyEnrolled)
	}

	return nil
}
