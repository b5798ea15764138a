// Package cli implements the interactive menu over the gradebook.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/alem-hub/gradebook/internal/application/command"
	"github.com/alem-hub/gradebook/internal/application/query"
	"github.com/alem-hub/gradebook/internal/domain/shared"
	"github.com/alem-hub/gradebook/internal/domain/student"
	"github.com/alem-hub/gradebook/internal/interface/cli/presenter"
	"github.com/alem-hub/gradebook/pkg/logger"
)

// MaxLineLength caps a single input line. Longer lines are rejected as
// invalid input and the session continues.
const MaxLineLength = 64 * 1024

// ErrLineTooLong is reported when an input line exceeds MaxLineLength.
var ErrLineTooLong = shared.NewDomainError("cli", "ReadLine", shared.ErrValidation,
	fmt.Sprintf("input line exceeds %d bytes", MaxLineLength))

// ══════════════════════════════════════════════════════════════════════════════
// SESSION CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// Options configures a Session.
type Options struct {
	// Records is the collection loaded at startup.
	Records student.Collection

	// Store persists the collection after mutations.
	Store student.Store

	// In supplies menu choices and field values, one per line.
	In io.Reader

	// Out receives menus, prompts and results.
	Out io.Writer

	// Logger for structured logging (optional).
	Logger *logger.Logger

	// SessionID tags log lines; generated when empty.
	SessionID string
}

// ══════════════════════════════════════════════════════════════════════════════
// SESSION
// ══════════════════════════════════════════════════════════════════════════════

// Session owns the in-memory collection for one interactive run.
// It is strictly sequential and not safe for concurrent use.
type Session struct {
	records student.Collection
	in      *bufio.Reader
	out     io.Writer

	// base carries the session id and is handed to handlers through the
	// context; log adds the cli component on top.
	base *logger.Logger
	log  *logger.Logger

	getStudent *query.GetStudentHandler
	getAverage *query.GetAverageScoreHandler
	addCourse  *command.AddCourseHandler
}

// NewSession wires the query and command handlers over opts.Records.
func NewSession(opts Options) *Session {
	id := opts.SessionID
	if id == "" {
		id = uuid.NewString()
	}

	base := opts.Logger
	if base == nil {
		base = logger.Nop()
	}
	base = base.WithSessionID(id)

	records := opts.Records
	if records == nil {
		records = student.Collection{}
	}

	return &Session{
		records:    records,
		in:         bufio.NewReader(opts.In),
		out:        opts.Out,
		base:       base,
		log:        base.With(logger.Component("cli")),
		getStudent: query.NewGetStudentHandler(records),
		getAverage: query.NewGetAverageScoreHandler(records),
		addCourse:  command.NewAddCourseHandler(records, opts.Store),
	}
}

// Run shows the menu and dispatches choices until the user exits, the input
// ends, or ctx is canceled. Exiting does not persist anything.
func (s *Session) Run(ctx context.Context) error {
	ctx = logger.WithContext(ctx, s.base)

	s.log.Info("session started", logger.RecordCount(len(s.records)))
	defer s.log.Info("session ended")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.print(presenter.Menu())
		choice, err := s.prompt(presenter.PromptChoice)
		if err != nil {
			if done, err := s.inputErr(err); done {
				return err
			}
			continue
		}

		switch strings.TrimSpace(choice) {
		case presenter.ChoiceLookup:
			err = s.lookup(ctx)
		case presenter.ChoiceAddCourse:
			err = s.addCourseFlow(ctx)
		case presenter.ChoiceAverage:
			err = s.average(ctx)
		case presenter.ChoiceExit:
			s.print(presenter.Goodbye())
			return nil
		default:
			s.print(presenter.InvalidChoice())
		}

		if err != nil {
			if done, err := s.inputErr(err); done {
				return err
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Menu actions. Each returns the read error that cut the flow short; handler
// failures are reported inline and do not end the session.
// ─────────────────────────────────────────────────────────────────────────────

func (s *Session) lookup(ctx context.Context) error {
	id, err := s.prompt(presenter.PromptStudentID)
	if err != nil {
		return err
	}

	dto, err := s.getStudent.Handle(ctx, query.GetStudentQuery{StudentID: id})
	if err != nil {
		s.fail("lookup", id, err)
		return nil
	}
	s.print(presenter.Student(dto))
	return nil
}

func (s *Session) addCourseFlow(ctx context.Context) error {
	id, err := s.prompt(presenter.PromptStudentID)
	if err != nil {
		return err
	}
	name, err := s.prompt(presenter.PromptCourseName)
	if err != nil {
		return err
	}
	rawScore, err := s.prompt(presenter.PromptScore)
	if err != nil {
		return err
	}

	res, err := s.addCourse.Handle(ctx, command.AddCourseCommand{
		StudentID:  id,
		CourseName: name,
		RawScore:   rawScore,
	})
	if err != nil {
		s.fail("add_course", id, err)
		return nil
	}
	s.print(presenter.CourseAdded(res))
	return nil
}

func (s *Session) average(ctx context.Context) error {
	id, err := s.prompt(presenter.PromptStudentID)
	if err != nil {
		return err
	}

	dto, err := s.getAverage.Handle(ctx, query.GetAverageScoreQuery{StudentID: id})
	if err != nil {
		s.fail("average", id, err)
		return nil
	}
	s.print(presenter.Average(dto))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// I/O helpers
// ─────────────────────────────────────────────────────────────────────────────

// prompt writes label and reads one line without the line terminator.
// A final line without a newline still counts; io.EOF is returned only
// once nothing is left.
func (s *Session) prompt(label string) (string, error) {
	s.print(label)

	line, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	if len(line) > MaxLineLength {
		return "", ErrLineTooLong
	}
	return line, nil
}

// inputErr decides what a read error means for the session. An oversized
// line is reported and the menu shown again. A clean EOF ends the session
// normally; any other error ends it with that error.
func (s *Session) inputErr(err error) (bool, error) {
	switch {
	case errors.Is(err, ErrLineTooLong):
		s.fail("read_input", "", err)
		return false, nil
	case errors.Is(err, io.EOF):
		s.log.Debug("input closed")
		return true, nil
	default:
		return true, fmt.Errorf("cli: read input: %w", err)
	}
}

func (s *Session) fail(op, studentID string, err error) {
	s.log.Warn("operation failed",
		logger.Operation(op),
		logger.StudentID(studentID),
		logger.Err(err),
	)
	s.print(presenter.Error(err))
}

func (s *Session) print(text string) {
	_, _ = io.WriteString(s.out, text)
}
