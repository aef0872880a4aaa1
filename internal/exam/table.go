// Package exam holds the in-memory table of practice-exam records the
// analytics engines operate on.
package exam

import (
	"sort"
	"strings"

	"github.com/AhmetBilalOzgun/nettrack/internal/models"
)

// Table is an ordered collection of exam records for a single student.
// Columns preserves the source column order when known; it is used to keep
// subject listings stable across runs. A Table never mutates its records.
type Table struct {
	Records []models.ExamRecord
	Columns []string
}

// New creates a Table over the given records. columns may be nil.
func New(records []models.ExamRecord, columns []string) *Table {
	return &Table{Records: records, Columns: columns}
}

// Len returns the number of exam records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// SortedByDate returns a copy of the table with records sorted by date
// ascending. The sort is stable so same-day exams keep their source order.
func (t *Table) SortedByDate() *Table {
	records := make([]models.ExamRecord, len(t.Records))
	copy(records, t.Records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return &Table{Records: records, Columns: t.Columns}
}

// Series returns the subject's net scores in date order, skipping records
// where the subject is missing.
func (t *Table) Series(subject string) []float64 {
	sorted := t.SortedByDate()
	values := make([]float64, 0, len(sorted.Records))
	for _, r := range sorted.Records {
		if v, ok := r.Net(subject); ok {
			values = append(values, v)
		}
	}
	return values
}

// HasSubject reports whether any record carries the subject column.
func (t *Table) HasSubject(subject string) bool {
	for _, r := range t.Records {
		if _, ok := r.Net(subject); ok {
			return true
		}
	}
	return false
}

// NetSubjects lists the net-score columns, in source column order when
// available, otherwise as a sorted union over all records.
func (t *Table) NetSubjects(marker string) []string {
	if len(t.Columns) > 0 {
		subjects := make([]string, 0, len(t.Columns))
		for _, col := range t.Columns {
			if strings.Contains(col, marker) && t.HasSubject(col) {
				subjects = append(subjects, col)
			}
		}
		return subjects
	}

	seen := map[string]struct{}{}
	for _, r := range t.Records {
		for name := range r.NetScores {
			if strings.Contains(name, marker) {
				seen[name] = struct{}{}
			}
		}
	}
	subjects := make([]string, 0, len(seen))
	for name := range seen {
		subjects = append(subjects, name)
	}
	sort.Strings(subjects)
	return subjects
}

// TopicSubjects lists the subjects that have wrong-topic lists, sorted.
func (t *Table) TopicSubjects() []string {
	seen := map[string]struct{}{}
	for _, r := range t.Records {
		for name := range r.WrongTopics {
			seen[name] = struct{}{}
		}
	}
	subjects := make([]string, 0, len(seen))
	for name := range seen {
		subjects = append(subjects, name)
	}
	sort.Strings(subjects)
	return subjects
}
