package registrar

import "errors"

// Validation outcomes. These abort the current operation but are not
// store failures; the CLI maps each to a single diagnostic line.
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrCourseFull         = errors.New("course is full")
	ErrAlreadyEnrolled    = errors.New("student already enrolled in course")
	ErrPageSizeOutOfRange = errors.New("page size out of range")
)
