// Package presenter formats gradebook data for terminal display.
package presenter

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/alem-hub/gradebook/internal/application/command"
	"github.com/alem-hub/gradebook/internal/application/query"
	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// MENU
// ══════════════════════════════════════════════════════════════════════════════

// Menu choices.
const (
	ChoiceLookup    = "1"
	ChoiceAddCourse = "2"
	ChoiceAverage   = "3"
	ChoiceExit      = "4"
)

// Prompts shown before each input line.
const (
	PromptChoice     = "Select an option: "
	PromptStudentID  = "Enter student ID: "
	PromptCourseName = "Enter course name: "
	PromptScore      = "Enter course score: "
)

// Menu returns the numbered menu block.
func Menu() string {
	var sb strings.Builder
	sb.WriteString("*************** Menu ***************\n")
	sb.WriteString("1. Look up a student's scores\n")
	sb.WriteString("2. Add a course and score for a student\n")
	sb.WriteString("3. Show a student's average score\n")
	sb.WriteString("4. Exit\n")
	sb.WriteString("************************************\n")
	return sb.String()
}

// ══════════════════════════════════════════════════════════════════════════════
// RESULTS
// ══════════════════════════════════════════════════════════════════════════════

// Student renders a record as indented JSON.
func Student(dto *query.StudentDTO) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto); err != nil {
		return "=> Error: " + err.Error() + "\n"
	}
	return "=> Student record:\n" + buf.String()
}

// CourseAdded confirms a successful add.
func CourseAdded(res *command.AddCourseResult) string {
	return "=> Course added. " + res.StudentID + " now has " + strconv.Itoa(res.CourseCount) + " course(s).\n"
}

// Average renders the mean score without rounding.
func Average(dto *query.AverageScoreDTO) string {
	return "=> Average score: " + FormatScore(dto.Average) + "\n"
}

// Goodbye is printed on exit.
func Goodbye() string {
	return "=> Goodbye.\n"
}

// InvalidChoice is printed for unrecognized menu input.
func InvalidChoice() string {
	return "=> Please enter a valid option.\n"
}

// Error renders a failure. Domain errors show their message only; other
// errors are shown in full.
func Error(err error) string {
	var prefix string
	switch shared.Kind(err) {
	case shared.ErrNotFound:
		prefix = "Not found"
	case shared.ErrValidation:
		prefix = "Invalid input"
	case shared.ErrInvalidFormat:
		prefix = "Invalid data"
	default:
		prefix = "Error"
	}
	return "=> " + prefix + ": " + message(err) + "\n"
}

func message(err error) string {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// FormatScore prints the shortest exact representation, keeping a trailing
// ".0" for whole numbers so averages read as numbers with a fraction.
func FormatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
