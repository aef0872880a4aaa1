package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmetBilalOzgun/nettrack/internal/analysis"
)

func TestBuildTopicIndex(t *testing.T) {
	table := topicTable("Matematik", [][]string{
		{"Türev", "Limit"},
		{"Türev"},
		{},
		{"Limit"},
	})

	idx := analysis.BuildTopicIndex(table)

	assert.Equal(t, 4, idx.TotalExams())
	assert.Equal(t, 2, idx.Size())

	entry, ok := idx.Lookup("Matematik", "Türev")
	require.True(t, ok)
	assert.Equal(t, []int{1, 1, 0, 0}, entry.Presence)
	assert.Equal(t, 2, entry.Frequency())
	assert.Equal(t, []int{0, 1}, entry.Occurrences())

	entry, ok = idx.Lookup("Matematik", "Limit")
	require.True(t, ok)
	assert.Equal(t, []int{1, 0, 0, 1}, entry.Presence)
}

func TestBuildTopicIndex_FrequencyEqualsPresenceSum(t *testing.T) {
	table := topicTable("Fizik", [][]string{
		{"Optik"},
		{"Optik", "Elektrik"},
		{"Optik"},
	})

	idx := analysis.BuildTopicIndex(table)
	for _, key := range idx.Keys() {
		entry, ok := idx.Lookup(key.Subject, key.Topic)
		require.True(t, ok)

		sum := 0
		for _, p := range entry.Presence {
			sum += p
		}
		assert.Equal(t, sum, entry.Frequency())
		assert.Len(t, entry.Occurrences(), entry.Frequency())
	}
}

func TestBuildTopicIndex_Idempotent(t *testing.T) {
	table := topicTable("Matematik", [][]string{
		{"Türev"},
		{"Limit", "Türev"},
	})

	first := analysis.BuildTopicIndex(table)
	second := analysis.BuildTopicIndex(table)

	assert.Equal(t, first.Keys(), second.Keys())
	for _, key := range first.Keys() {
		a, _ := first.Lookup(key.Subject, key.Topic)
		b, _ := second.Lookup(key.Subject, key.Topic)
		assert.Equal(t, a.Presence, b.Presence)
	}
}

func TestBuildTopicIndex_MissingPair(t *testing.T) {
	table := topicTable("Matematik", [][]string{{"Türev"}})
	idx := analysis.BuildTopicIndex(table)

	_, ok := idx.Lookup("Matematik", "Limit")
	assert.False(t, ok)
	_, ok = idx.Lookup("Fizik", "Türev")
	assert.False(t, ok)
}

func TestBuildTopicIndex_KeysSorted(t *testing.T) {
	table := topicTable("Matematik", [][]string{
		{"Türev", "Limit", "Integral"},
	})

	keys := analysis.BuildTopicIndex(table).Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, "Integral", keys[0].Topic)
	assert.Equal(t, "Limit", keys[1].Topic)
	assert.Equal(t, "Türev", keys[2].Topic)
}
