// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET STUDENT QUERY
// Returns a student's full record: identifier and every course with score.
// ══════════════════════════════════════════════════════════════════════════════

// GetStudentQuery contains the lookup parameters.
type GetStudentQuery struct {
	// StudentID is matched exactly.
	StudentID string
}

// CourseDTO is one course in a student view.
type CourseDTO struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// StudentDTO is the rendered form of a record.
type StudentDTO struct {
	StudentID string      `json:"student_id"`
	Courses   []CourseDTO `json:"courses"`
}

// GetStudentHandler handles GetStudentQuery.
type GetStudentHandler struct {
	records student.Collection
}

// NewGetStudentHandler creates a new GetStudentHandler.
func NewGetStudentHandler(records student.Collection) *GetStudentHandler {
	return &GetStudentHandler{records: records}
}

// Handle executes the query.
func (h *GetStudentHandler) Handle(_ context.Context, q GetStudentQuery) (*StudentDTO, error) {
	rec, err := h.records.Find(q.StudentID)
	if err != nil {
		return nil, fmt.Errorf("get_student: %w", err)
	}
	return toStudentDTO(rec), nil
}

func toStudentDTO(r *student.Record) *StudentDTO {
	dto := &StudentDTO{
		StudentID: r.StudentID,
		Courses:   make([]CourseDTO, 0, len(r.Courses)),
	}
	for _, c := range r.Courses {
		dto.Courses = append(dto.Courses, CourseDTO{Name: c.Name, Score: c.Score})
	}
	return dto
}
