package models

import "time"

// Topic trend labels. "worsening" may override "repeating"; the override
// order is part of the contract.
const (
	TopicNoData        = "no data"
	TopicNeverRepeated = "never repeated"
	TopicImproving     = "improving (not repeated recently)"
	TopicRepeating     = "repeating (frequently wrong)"
	TopicWorsening     = "worsening (repeated more often recently)"
	TopicStable        = "stable"
)

// TopicTrendResult classifies the recency/severity trend of one
// (subject, topic) pair. ExamNames and Dates cover only the exams where the
// topic occurred.
type TopicTrendResult struct {
	Topic         string      `json:"topic"`
	Subject       string      `json:"subject"`
	Frequency     int         `json:"frequency"`
	TotalExams    int         `json:"total_exams"`
	LastSeenIndex int         `json:"last_seen_index"`
	Trend         string      `json:"trend"`
	ExamNames     []string    `json:"exam_names,omitempty"`
	Dates         []time.Time `json:"dates,omitempty"`
}

// Study-plan priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// StudyPlanItem is one prioritized topic inside a subject's plan.
type StudyPlanItem struct {
	Order        int    `json:"order"`
	Topic        string `json:"topic"`
	Priority     string `json:"priority"`
	Frequency    int    `json:"frequency"`
	RecentStatus string `json:"recent_status"`
}

// StudyPlan maps subject name to its ordered plan items.
type StudyPlan map[string][]StudyPlanItem

// TopicCount is a topic with its total occurrence count.
type TopicCount struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// SubjectTopicComparison compares subjects by wrong-topic volume.
type SubjectTopicComparison struct {
	Subject      string `json:"subject"`
	TotalWrong   int    `json:"total_wrong_count"`
	UniqueTopics int    `json:"unique_wrong_topic_count"`
}

// TopicSummary is the topic-level half of the summary report.
type TopicSummary struct {
	TotalWrongTopics  int                      `json:"total_wrong_topics"`
	MostProblematic   []TopicCount             `json:"most_problematic_topics"`
	WeakAreas         map[string][]string      `json:"weak_areas_by_subject"`
	SubjectComparison []SubjectTopicComparison `json:"subject_comparison"`
}
