// Package student contains the domain model of a student record.
// This is the core of the business logic - no external dependencies here.
package student

import (
	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrEmptyCourseInput is returned when the course name or score is missing.
	ErrEmptyCourseInput = shared.NewDomainError("student", "AddCourse", shared.ErrValidation, "course name or score cannot be empty")

	// ErrStudentNotFound is the kind carried by every failed lookup.
	// It matches shared.ErrNotFound as well.
	ErrStudentNotFound = shared.NewDomainError("student", "Find", shared.ErrNotFound, "student not found")
)

// ══════════════════════════════════════════════════════════════════════════════
// COURSE
// ══════════════════════════════════════════════════════════════════════════════

// Course is one completed course with its score. Entries are immutable once
// appended to a record.
type Course struct {
	// Name is the course name, never empty.
	Name string `json:"name" yaml:"name"`

	// Score has no enforced range.
	Score float64 `json:"score" yaml:"score"`
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: RECORD
// ══════════════════════════════════════════════════════════════════════════════

// Record is one student's identifier plus their courses in the order they
// were added. Duplicate course names are allowed.
type Record struct {
	// StudentID is the unique key within a collection.
	StudentID string `json:"student_id" yaml:"student_id"`

	// Courses holds entries in chronological order of addition.
	Courses []Course `json:"courses" yaml:"courses"`
}

// AverageScore returns the mean score across all courses.
// A record without courses averages exactly 0.0.
func (r *Record) AverageScore() float64 {
	if len(r.Courses) == 0 {
		return 0.0
	}

	var total float64
	for _, c := range r.Courses {
		total += c.Score
	}
	return total / float64(len(r.Courses))
}

// Clone returns a deep copy so callers can render a record without
// holding on to the shared collection.
func (r *Record) Clone() *Record {
	courses := make([]Course, len(r.Courses))
	copy(courses, r.Courses)
	return &Record{
		StudentID: r.StudentID,
		Courses:   courses,
	}
}

// appendCourse adds an entry at the end of the course sequence.
func (r *Record) appendCourse(c Course) {
	r.Courses = append(r.Courses, c)
}
