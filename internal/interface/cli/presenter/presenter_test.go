package presenter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alem-hub/gradebook/internal/application/query"
	"github.com/alem-hub/gradebook/internal/domain/shared"
)

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "80.0", FormatScore(80))
	assert.Equal(t, "82.5", FormatScore(82.5))
	assert.Equal(t, "0.0", FormatScore(0))
	assert.Equal(t, "-3.0", FormatScore(-3))
	assert.Equal(t, "1.3333333333333333", FormatScore(4.0/3.0))
}

func TestStudent(t *testing.T) {
	got := Student(&query.StudentDTO{
		StudentID: "A01",
		Courses:   []query.CourseDTO{{Name: "數學", Score: 90}},
	})

	want := "=> Student record:\n" +
		"{\n" +
		"  \"student_id\": \"A01\",\n" +
		"  \"courses\": [\n" +
		"    {\n" +
		"      \"name\": \"數學\",\n" +
		"      \"score\": 90\n" +
		"    }\n" +
		"  ]\n" +
		"}\n"
	assert.Equal(t, want, got)
}

func TestError(t *testing.T) {
	notFound := fmt.Errorf("get_student: %w", shared.NewDomainError("student", "Find", shared.ErrNotFound, "student Z99 not found"))
	assert.Equal(t, "=> Not found: student Z99 not found\n", Error(notFound))

	invalid := shared.NewDomainError("student", "AddCourse", shared.ErrValidation, "course name or score cannot be empty")
	assert.Equal(t, "=> Invalid input: course name or score cannot be empty\n", Error(invalid))

	assert.Equal(t, "=> Error: boom\n", Error(errors.New("boom")))
}

func TestMenu(t *testing.T) {
	m := Menu()
	for _, item := range []string{"1. ", "2. ", "3. ", "4. Exit"} {
		assert.Contains(t, m, item)
	}
}
