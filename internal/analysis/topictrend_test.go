package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmetBilalOzgun/nettrack/internal/analysis"
	"github.com/AhmetBilalOzgun/nettrack/internal/config"
	"github.com/AhmetBilalOzgun/nettrack/internal/models"
)

func newTopicEngine() *analysis.TopicEngine {
	return analysis.NewTopicEngine(testCfg(), config.TYTProfile())
}

// rows builds a wrong-topic grid with `total` exams where `topic` occurs at
// the given indices.
func rows(total int, topic string, at ...int) [][]string {
	grid := make([][]string, total)
	for _, i := range at {
		grid[i] = []string{topic}
	}
	return grid
}

func TestTopicTrend_Improving(t *testing.T) {
	engine := newTopicEngine()

	// missed early, clean in the recent quarter
	table := topicTable("Matematik", rows(10, "Türev", 0, 1, 2))
	idx := analysis.BuildTopicIndex(table)

	res := engine.TopicTrend(idx, "Matematik", "Türev")
	assert.Equal(t, models.TopicImproving, res.Trend)
	assert.Equal(t, 3, res.Frequency)
	assert.Equal(t, 10, res.TotalExams)
	assert.Equal(t, 2, res.LastSeenIndex)
	assert.Len(t, res.ExamNames, 3)
	assert.Len(t, res.Dates, 3)
}

func TestTopicTrend_Worsening(t *testing.T) {
	engine := newTopicEngine()

	// concentrated in the recent quarter
	table := topicTable("Matematik", rows(8, "Limit", 6, 7))
	idx := analysis.BuildTopicIndex(table)

	res := engine.TopicTrend(idx, "Matematik", "Limit")
	assert.Equal(t, models.TopicWorsening, res.Trend)
}

func TestTopicTrend_Repeating(t *testing.T) {
	engine := newTopicEngine()

	// dense throughout, still present late, but not recently concentrated
	table := topicTable("Matematik", rows(16, "Üslü Sayılar", 2, 3, 5, 7, 9, 11, 13, 15))
	idx := analysis.BuildTopicIndex(table)

	res := engine.TopicTrend(idx, "Matematik", "Üslü Sayılar")
	assert.Equal(t, models.TopicRepeating, res.Trend)
}

func TestTopicTrend_Stable(t *testing.T) {
	engine := newTopicEngine()

	// single recent occurrence, nothing to extrapolate from
	table := topicTable("Matematik", rows(8, "Problemler", 7))
	idx := analysis.BuildTopicIndex(table)

	res := engine.TopicTrend(idx, "Matematik", "Problemler")
	assert.Equal(t, models.TopicStable, res.Trend)
	assert.Equal(t, 1, res.Frequency)
}

func TestTopicTrend_NoData(t *testing.T) {
	engine := newTopicEngine()
	table := topicTable("Matematik", rows(4, "Türev", 0))
	idx := analysis.BuildTopicIndex(table)

	res := engine.TopicTrend(idx, "Matematik", "Limit")
	assert.Equal(t, models.TopicNoData, res.Trend)
	assert.Equal(t, -1, res.LastSeenIndex)
}

func TestGenerateStudyPlan(t *testing.T) {
	engine := newTopicEngine()

	table := topicTable("Matematik", [][]string{
		{"Türev", "Limit"},
		{"Türev", "Problemler"},
		{"Türev", "Limit"},
		{"Türev"},
		{"Türev", "Limit", "Köklü Sayılar", "Çarpanlara Ayırma"},
	})
	idx := analysis.BuildTopicIndex(table)

	plan := engine.GenerateStudyPlan(idx, []string{"Matematik"}, 3)
	require.Contains(t, plan, "Matematik")
	items := plan["Matematik"]

	// capped at three topics, ordered by priority then frequency
	require.Len(t, items, 3)
	assert.Equal(t, "Türev", items[0].Topic)
	assert.Equal(t, models.PriorityHigh, items[0].Priority)
	assert.Equal(t, 5, items[0].Frequency)
	assert.Equal(t, "Limit", items[1].Topic)
	assert.Equal(t, models.PriorityHigh, items[1].Priority)
	assert.Equal(t, models.PriorityLow, items[2].Priority)
	assert.Equal(t, 1, items[2].Frequency)

	for i, item := range items {
		assert.Equal(t, i+1, item.Order)
	}
}

func TestGenerateStudyPlan_EmptyIndex(t *testing.T) {
	engine := newTopicEngine()
	idx := analysis.BuildTopicIndex(topicTable("Matematik", [][]string{{}, {}}))

	plan := engine.GenerateStudyPlan(idx, nil, 0)
	require.Contains(t, plan, "General")
	require.Len(t, plan["General"], 1)
	assert.Equal(t, models.PriorityLow, plan["General"][0].Priority)
	assert.Zero(t, plan["General"][0].Frequency)
}

func TestMostProblematicTopics(t *testing.T) {
	engine := newTopicEngine()
	table := topicTable("Matematik", [][]string{
		{"Türev", "Limit"},
		{"Türev"},
		{"Türev", "Limit"},
		{"Problemler"},
	})

	top := engine.MostProblematicTopics(table, 2)
	require.Len(t, top, 2)
	assert.Equal(t, models.TopicCount{Topic: "Türev", Count: 3}, top[0])
	assert.Equal(t, models.TopicCount{Topic: "Limit", Count: 2}, top[1])
}

func TestIdentifyWeakAreas(t *testing.T) {
	engine := newTopicEngine()
	table := topicTable("Matematik", [][]string{
		{"Türev"},
		{"Türev", "Limit"},
		{"Türev"},
		{"Limit"},
	})

	weak := engine.IdentifyWeakAreas(table, 2)
	require.Contains(t, weak, "Matematik")
	assert.Equal(t, []string{"Türev", "Limit"}, weak["Matematik"])
}

func TestCompareSubjectsByTopics(t *testing.T) {
	engine := newTopicEngine()

	table := topicTable("Matematik", [][]string{
		{"Türev", "Limit"},
		{"Türev"},
	})

	cmp := engine.CompareSubjectsByTopics(table)
	require.Len(t, cmp, 1)
	assert.Equal(t, "Matematik", cmp[0].Subject)
	assert.Equal(t, 3, cmp[0].TotalWrong)
	assert.Equal(t, 2, cmp[0].UniqueTopics)
}

func TestTopicSummaryReport(t *testing.T) {
	engine := newTopicEngine()
	table := topicTable("Matematik", [][]string{
		{"Türev", "Limit"},
		{"Türev"},
	})

	summary := engine.TopicSummaryReport(table)
	assert.Equal(t, 3, summary.TotalWrongTopics)
	assert.NotEmpty(t, summary.MostProblematic)
	assert.NotEmpty(t, summary.SubjectComparison)
}
