package analysis

import (
	"sort"
	"time"

	"github.com/AhmetBilalOzgun/nettrack/internal/exam"
)

// TopicKey identifies one (subject, topic) pair. Matching is case-sensitive
// and exact; the upstream cleaner owns normalization.
type TopicKey struct {
	Subject string
	Topic   string
}

// TopicEntry is the presence vector of one (subject, topic) pair: one
// 0/1 flag per exam in chronological order, plus the aligned exam names and
// dates (shared across all entries of the same index).
type TopicEntry struct {
	Presence  []int
	ExamNames []string
	Dates     []time.Time
}

// Frequency counts the exams where the topic occurred.
func (e *TopicEntry) Frequency() int {
	total := 0
	for _, p := range e.Presence {
		total += p
	}
	return total
}

// Occurrences returns the indices of the exams where the topic occurred,
// ascending.
func (e *TopicEntry) Occurrences() []int {
	var idx []int
	for i, p := range e.Presence {
		if p == 1 {
			idx = append(idx, i)
		}
	}
	return idx
}

// TopicIndex is the precomputed (subject, topic) -> presence-vector mapping
// built from a single scan of the table. It is immutable after Build; when
// the table changes the caller rebuilds it (ExamService does this on
// refresh).
type TopicIndex struct {
	entries   map[TopicKey]*TopicEntry
	examNames []string
	dates     []time.Time
}

// BuildTopicIndex scans the table once and records, for every
// (subject, topic) occurrence in row i, a 1 at position i of that pair's
// presence vector. Per-topic queries then become O(1) lookups instead of
// table rescans.
func BuildTopicIndex(t *exam.Table) *TopicIndex {
	sorted := t.SortedByDate()
	n := len(sorted.Records)

	names := make([]string, n)
	dates := make([]time.Time, n)
	for i, r := range sorted.Records {
		names[i] = r.Name
		dates[i] = r.Date
	}

	idx := &TopicIndex{
		entries:   map[TopicKey]*TopicEntry{},
		examNames: names,
		dates:     dates,
	}

	for i, r := range sorted.Records {
		for subject, topics := range r.WrongTopics {
			for _, topic := range topics {
				key := TopicKey{Subject: subject, Topic: topic}
				entry := idx.entries[key]
				if entry == nil {
					entry = &TopicEntry{
						Presence:  make([]int, n),
						ExamNames: names,
						Dates:     dates,
					}
					idx.entries[key] = entry
				}
				entry.Presence[i] = 1
			}
		}
	}

	return idx
}

// Lookup returns the entry for a (subject, topic) pair.
func (idx *TopicIndex) Lookup(subject, topic string) (*TopicEntry, bool) {
	entry, ok := idx.entries[TopicKey{Subject: subject, Topic: topic}]
	return entry, ok
}

// Keys returns all (subject, topic) keys sorted by subject, then topic.
func (idx *TopicIndex) Keys() []TopicKey {
	keys := make([]TopicKey, 0, len(idx.entries))
	for k := range idx.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Subject == keys[j].Subject {
			return keys[i].Topic < keys[j].Topic
		}
		return keys[i].Subject < keys[j].Subject
	})
	return keys
}

// TotalExams returns the number of exams the index covers.
func (idx *TopicIndex) TotalExams() int {
	return len(idx.examNames)
}

// Size returns the number of distinct (subject, topic) pairs.
func (idx *TopicIndex) Size() int {
	return len(idx.entries)
}
