package filestore

import (
	"fmt"

	"github.com/alem-hub/gradebook/internal/domain/student"
)

// recordDoc mirrors student.Record on disk. Scores are pointers so a missing
// or null score can be told apart from a real zero.
type recordDoc struct {
	StudentID string      `json:"student_id" yaml:"student_id"`
	Courses   []courseDoc `json:"courses" yaml:"courses"`
}

type courseDoc struct {
	Name  string   `json:"name" yaml:"name"`
	Score *float64 `json:"score" yaml:"score"`
}

// toCollection validates decoded documents and converts them. It rejects
// null records, missing identifiers, duplicate identifiers, unnamed courses
// and courses without a score.
func toCollection(docs []*recordDoc) (student.Collection, error) {
	seen := make(map[string]int, len(docs))
	records := make(student.Collection, 0, len(docs))

	for i, d := range docs {
		if d == nil {
			return nil, fmt.Errorf("record %d is null", i)
		}
		if d.StudentID == "" {
			return nil, fmt.Errorf("record %d has no student_id", i)
		}
		if prev, ok := seen[d.StudentID]; ok {
			return nil, fmt.Errorf("duplicate student_id %q in records %d and %d", d.StudentID, prev, i)
		}
		seen[d.StudentID] = i

		courses := make([]student.Course, 0, len(d.Courses))
		for j, c := range d.Courses {
			if c.Name == "" {
				return nil, fmt.Errorf("record %q course %d has no name", d.StudentID, j)
			}
			if c.Score == nil {
				return nil, fmt.Errorf("record %q course %q has no score", d.StudentID, c.Name)
			}
			courses = append(courses, student.Course{Name: c.Name, Score: *c.Score})
		}

		records = append(records, &student.Record{StudentID: d.StudentID, Courses: courses})
	}
	return records, nil
}
