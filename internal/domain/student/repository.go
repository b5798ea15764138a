package student

import (
	"context"
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLLECTION
// Operations over the in-memory collection. Nothing here touches storage:
// callers persist mutations through a Store.
// ══════════════════════════════════════════════════════════════════════════════

// Collection is the ordered set of records loaded for one session.
type Collection []*Record

// Find returns the first record whose identifier equals studentID exactly.
// No trimming or case folding is applied.
func (c Collection) Find(studentID string) (*Record, error) {
	for _, r := range c {
		if r.StudentID == studentID {
			return r, nil
		}
	}
	return nil, shared.NewDomainError("student", "Find", ErrStudentNotFound,
		fmt.Sprintf("student %s not found", studentID))
}

// AddCourse appends a course to the record identified by studentID.
// A nil score means the score was not supplied. Input is validated before
// the lookup, so a failed call never mutates the collection.
func (c Collection) AddCourse(studentID, courseName string, score *float64) error {
	if courseName == "" || score == nil {
		return ErrEmptyCourseInput
	}

	r, err := c.Find(studentID)
	if err != nil {
		return err
	}

	r.appendCourse(Course{Name: courseName, Score: *score})
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// STORE INTERFACE
// Implementations live in infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Store loads and saves the whole collection.
type Store interface {
	// Load reads the full collection. On failure it returns an empty,
	// non-nil collection together with an error matching shared.ErrNotFound
	// or shared.ErrInvalidFormat.
	Load(ctx context.Context) (Collection, error)

	// Save replaces the persisted collection in full.
	Save(ctx context.Context, records Collection) error
}
