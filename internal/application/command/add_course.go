// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/internal/domain/student"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD COURSE COMMAND
// Appends a course and score to a student and persists the collection.
// The score arrives as raw text and is checked before numeric conversion.
// ══════════════════════════════════════════════════════════════════════════════

// ErrInvalidScore is returned when the score text is not a finite number.
var ErrInvalidScore = shared.NewDomainError("student", "ParseScore", shared.ErrValidation, "score must be a valid number")

// AddCourseCommand contains the data to add a course.
type AddCourseCommand struct {
	// StudentID is matched exactly, without trimming.
	StudentID string

	// CourseName is the name of the new course.
	CourseName string

	// RawScore is the score as typed by the user.
	RawScore string
}

// Validate checks the raw input before any conversion.
func (c AddCourseCommand) Validate() error {
	if c.CourseName == "" || strings.TrimSpace(c.RawScore) == "" {
		return student.ErrEmptyCourseInput
	}
	return nil
}

// Score converts RawScore to a number. NaN and infinities are rejected since
// they cannot be persisted.
func (c AddCourseCommand) Score() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.RawScore), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, shared.WrapError("student", "ParseScore", shared.ErrValidation,
			fmt.Sprintf("score %q is not a valid number", c.RawScore), ErrInvalidScore)
	}
	return v, nil
}

// AddCourseResult contains the result of adding a course.
type AddCourseResult struct {
	// StudentID is the ID of the student.
	StudentID string

	// Course is the appended entry.
	Course student.Course

	// CourseCount is the number of courses after the append.
	CourseCount int
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// AddCourseHandler handles the AddCourseCommand.
type AddCourseHandler struct {
	records student.Collection
	store   student.Store
}

// NewAddCourseHandler creates a new AddCourseHandler.
func NewAddCourseHandler(records student.Collection, store student.Store) *AddCourseHandler {
	return &AddCourseHandler{
		records: records,
		store:   store,
	}
}

// Handle executes the add course command. On a save failure the entry stays
// in memory and the error is returned. Events go to the logger carried by ctx.
func (h *AddCourseHandler) Handle(ctx context.Context, cmd AddCourseCommand) (*AddCourseResult, error) {
	log := logger.FromContext(ctx).With(logger.Component("add_course"))

	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("add_course: %w", err)
	}

	score, err := cmd.Score()
	if err != nil {
		return nil, fmt.Errorf("add_course: %w", err)
	}

	if err := h.records.AddCourse(cmd.StudentID, cmd.CourseName, &score); err != nil {
		return nil, fmt.Errorf("add_course: %w", err)
	}

	if err := h.store.Save(ctx, h.records); err != nil {
		log.Error("course added but not persisted",
			logger.StudentID(cmd.StudentID),
			logger.CourseName(cmd.CourseName),
			logger.Err(err),
		)
		return nil, fmt.Errorf("add_course: failed to save records: %w", err)
	}

	rec, err := h.records.Find(cmd.StudentID)
	if err != nil {
		return nil, fmt.Errorf("add_course: %w", err)
	}

	log.Info("course added",
		logger.StudentID(cmd.StudentID),
		logger.CourseName(cmd.CourseName),
		logger.Float64("score", score),
	)

	return &AddCourseResult{
		StudentID:   cmd.StudentID,
		Course:      rec.Courses[len(rec.Courses)-1],
		CourseCount: len(rec.Courses),
	}, nil
}
