package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/internal/domain/student"
)

func records() student.Collection {
	return student.Collection{
		{StudentID: "A01", Courses: []student.Course{{Name: "Math", Score: 80}, {Name: "Art", Score: 90}, {Name: "PE", Score: 70}}},
		{StudentID: "B02", Courses: []student.Course{}},
	}
}

func TestGetStudentHandler(t *testing.T) {
	h := NewGetStudentHandler(records())

	dto, err := h.Handle(context.Background(), GetStudentQuery{StudentID: "A01"})
	require.NoError(t, err)
	assert.Equal(t, "A01", dto.StudentID)
	assert.Equal(t, []CourseDTO{{"Math", 80}, {"Art", 90}, {"PE", 70}}, dto.Courses)

	empty, err := h.Handle(context.Background(), GetStudentQuery{StudentID: "B02"})
	require.NoError(t, err)
	assert.NotNil(t, empty.Courses)
	assert.Empty(t, empty.Courses)
}

func TestGetStudentHandler_NotFound(t *testing.T) {
	dto, err := NewGetStudentHandler(records()).Handle(context.Background(), GetStudentQuery{StudentID: "Z99"})
	assert.Nil(t, dto)
	assert.True(t, shared.IsNotFound(err))
}

func TestGetAverageScoreHandler(t *testing.T) {
	h := NewGetAverageScoreHandler(records())

	dto, err := h.Handle(context.Background(), GetAverageScoreQuery{StudentID: "A01"})
	require.NoError(t, err)
	assert.Equal(t, 80.0, dto.Average)
	assert.Equal(t, 3, dto.CourseCount)

	dto, err = h.Handle(context.Background(), GetAverageScoreQuery{StudentID: "B02"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, dto.Average)
	assert.Zero(t, dto.CourseCount)

	_, err = h.Handle(context.Background(), GetAverageScoreQuery{StudentID: "Z99"})
	assert.True(t, shared.IsNotFound(err))
}
