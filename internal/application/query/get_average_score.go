package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET AVERAGE SCORE QUERY
// ══════════════════════════════════════════════════════════════════════════════

// GetAverageScoreQuery contains the lookup parameters.
type GetAverageScoreQuery struct {
	StudentID string
}

// AverageScoreDTO carries the unrounded mean across a student's courses.
type AverageScoreDTO struct {
	StudentID   string  `json:"student_id"`
	Average     float64 `json:"average"`
	CourseCount int     `json:"course_count"`
}

// GetAverageScoreHandler handles GetAverageScoreQuery.
type GetAverageScoreHandler struct {
	records student.Collection
}

// NewGetAverageScoreHandler creates a new GetAverageScoreHandler.
func NewGetAverageScoreHandler(records student.Collection) *GetAverageScoreHandler {
	return &GetAverageScoreHandler{records: records}
}

// Handle executes the query.
func (h *GetAverageScoreHandler) Handle(_ context.Context, q GetAverageScoreQuery) (*AverageScoreDTO, error) {
	rec, err := h.records.Find(q.StudentID)
	if err != nil {
		return nil, fmt.Errorf("get_average_score: %w", err)
	}
	return &AverageScoreDTO{
		StudentID:   rec.StudentID,
		Average:     rec.AverageScore(),
		CourseCount: len(rec.Courses),
	}, nil
}
