package analysis

import (
	"sort"
	"time"

	"github.com/AhmetBilalOzgun/nettrack/internal/config"
	"github.com/AhmetBilalOzgun/nettrack/internal/exam"
	"github.com/AhmetBilalOzgun/nettrack/internal/logger"
	"github.com/AhmetBilalOzgun/nettrack/internal/models"
)

// placeholder plan entry when no topic has any occurrences
const nothingUrgentTopic = "Great! No urgent topic to study."

// TopicEngine classifies per-topic trends from the precomputed index and
// ranks topics into a study plan.
type TopicEngine struct {
	cfg     config.Analysis
	profile config.ExamProfile
	log     *logger.Logger
}

// NewTopicEngine creates a TopicEngine for the given exam profile.
func NewTopicEngine(cfg config.Analysis, profile config.ExamProfile) *TopicEngine {
	return &TopicEngine{
		cfg:     cfg,
		profile: profile,
		log:     logger.Default().WithPrefix("topics"),
	}
}

// TopicTrend classifies one (subject, topic) pair's recency trend from its
// presence vector. The worsening check deliberately runs after — and may
// override — the repeating check; that override order is part of the
// contract.
func (e *TopicEngine) TopicTrend(idx *TopicIndex, subject, topic string) models.TopicTrendResult {
	res := models.TopicTrendResult{Topic: topic, Subject: subject, LastSeenIndex: -1}

	entry, ok := idx.Lookup(subject, topic)
	if !ok {
		res.Trend = models.TopicNoData
		return res
	}

	total := len(entry.Presence)
	res.TotalExams = total

	occ := entry.Occurrences()
	if len(occ) == 0 {
		res.Trend = models.TopicNeverRepeated
		return res
	}

	freq := len(occ)
	res.Frequency = freq
	res.LastSeenIndex = occ[freq-1]
	res.ExamNames = make([]string, freq)
	res.Dates = make([]time.Time, freq)
	for i, o := range occ {
		res.ExamNames[i] = entry.ExamNames[o]
		res.Dates[i] = entry.Dates[o]
	}

	window := total / 4
	if window < 1 {
		window = 1
	}
	recent := 0
	for i := total - window; i < total; i++ {
		recent += entry.Presence[i]
	}

	trend := models.TopicStable
	if recent == 0 {
		trend = models.TopicImproving
	} else if freq > 1 {
		if float64(occ[freq-1]) > float64(total)*0.75 && meanGap(occ) < float64(total)/float64(freq) {
			trend = models.TopicRepeating
		}
		if float64(recent)/float64(window) > float64(freq)/float64(total) {
			trend = models.TopicWorsening
		}
	}
	res.Trend = trend

	return res
}

// GenerateStudyPlan ranks topics into a per-subject plan: occurrence counts
// aggregated per topic name across the whole index, truncated to
// maxTopicsPerSubject, prioritized by frequency, annotated with each topic's
// trend, and ordered by (priority, descending frequency).
func (e *TopicEngine) GenerateStudyPlan(idx *TopicIndex, focusSubjects []string, maxTopicsPerSubject int) models.StudyPlan {
	if maxTopicsPerSubject <= 0 {
		maxTopicsPerSubject = 3
	}

	counts := map[string]int{}
	owner := map[string]string{}
	for _, key := range idx.Keys() {
		entry, _ := idx.Lookup(key.Subject, key.Topic)
		if c := entry.Frequency(); c > 0 {
			counts[key.Topic] += c
			owner[key.Topic] = key.Subject
		}
	}

	if len(counts) == 0 {
		return models.StudyPlan{
			"General": {{
				Order:        1,
				Topic:        nothingUrgentTopic,
				Priority:     models.PriorityLow,
				Frequency:    0,
				RecentStatus: models.TopicImproving,
			}},
		}
	}

	ranked := rankTopicCounts(counts)

	subjects := focusSubjects
	if len(subjects) == 0 {
		subjects = e.profile.Subjects
	}

	plan := models.StudyPlan{}
	for _, subject := range subjects {
		var items []models.StudyPlanItem
		for _, tc := range ranked {
			if owner[tc.Topic] != subject {
				continue
			}
			if len(items) >= maxTopicsPerSubject {
				break
			}

			priority := models.PriorityHigh
			if tc.Count < 3 {
				priority = models.PriorityMedium
			}
			if tc.Count == 1 {
				priority = models.PriorityLow
			}

			items = append(items, models.StudyPlanItem{
				Order:        len(items) + 1,
				Topic:        tc.Topic,
				Priority:     priority,
				Frequency:    tc.Count,
				RecentStatus: e.TopicTrend(idx, subject, tc.Topic).Trend,
			})
		}
		if len(items) == 0 {
			continue
		}

		sort.SliceStable(items, func(i, j int) bool {
			pi, pj := priorityRank(items[i].Priority), priorityRank(items[j].Priority)
			if pi != pj {
				return pi < pj
			}
			return items[i].Frequency > items[j].Frequency
		})
		for i := range items {
			items[i].Order = i + 1
		}
		plan[subject] = items
	}

	return plan
}

// MostProblematicTopics counts every topic occurrence across all subjects
// and returns the topN most frequent.
func (e *TopicEngine) MostProblematicTopics(t *exam.Table, topN int) []models.TopicCount {
	if topN <= 0 {
		topN = e.cfg.TopNTopics
	}

	counts := map[string]int{}
	for _, r := range t.Records {
		for _, topics := range r.WrongTopics {
			for _, topic := range topics {
				counts[topic]++
			}
		}
	}
	if len(counts) == 0 {
		return nil
	}

	ranked := rankTopicCounts(counts)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// IdentifyWeakAreas lists, per subject, the topics missed at least
// `threshold` times.
func (e *TopicEngine) IdentifyWeakAreas(t *exam.Table, threshold int) map[string][]string {
	if threshold <= 0 {
		threshold = e.cfg.WeakAreaThreshold
	}

	weak := map[string][]string{}
	for _, subject := range e.profile.Subjects {
		counts := map[string]int{}
		for _, r := range t.Records {
			for _, topic := range r.WrongTopics[subject] {
				counts[topic]++
			}
		}

		var problematic []models.TopicCount
		for topic, c := range counts {
			if c >= threshold {
				problematic = append(problematic, models.TopicCount{Topic: topic, Count: c})
			}
		}
		if len(problematic) == 0 {
			continue
		}
		sort.Slice(problematic, func(i, j int) bool {
			if problematic[i].Count == problematic[j].Count {
				return problematic[i].Topic < problematic[j].Topic
			}
			return problematic[i].Count > problematic[j].Count
		})

		topics := make([]string, len(problematic))
		for i, tc := range problematic {
			topics[i] = tc.Topic
		}
		weak[subject] = topics
	}
	return weak
}

// CompareSubjectsByTopics compares subjects by total and unique wrong-topic
// counts.
func (e *TopicEngine) CompareSubjectsByTopics(t *exam.Table) []models.SubjectTopicComparison {
	var out []models.SubjectTopicComparison
	for _, subject := range e.profile.Subjects {
		total := 0
		unique := map[string]struct{}{}
		found := false
		for _, r := range t.Records {
			topics, ok := r.WrongTopics[subject]
			if !ok {
				continue
			}
			found = true
			total += len(topics)
			for _, topic := range topics {
				unique[topic] = struct{}{}
			}
		}
		if !found {
			continue
		}
		out = append(out, models.SubjectTopicComparison{
			Subject:      subject,
			TotalWrong:   total,
			UniqueTopics: len(unique),
		})
	}
	return out
}

// TopicSummaryReport assembles the topic-level summary: total mistakes, the
// worst topics, weak areas and the subject comparison.
func (e *TopicEngine) TopicSummaryReport(t *exam.Table) models.TopicSummary {
	total := 0
	for _, r := range t.Records {
		for _, topics := range r.WrongTopics {
			total += len(topics)
		}
	}
	return models.TopicSummary{
		TotalWrongTopics:  total,
		MostProblematic:   e.MostProblematicTopics(t, 5),
		WeakAreas:         e.IdentifyWeakAreas(t, 2),
		SubjectComparison: e.CompareSubjectsByTopics(t),
	}
}

// meanGap is the average distance between consecutive occurrence indices.
func meanGap(occ []int) float64 {
	if len(occ) < 2 {
		return 0
	}
	return float64(occ[len(occ)-1]-occ[0]) / float64(len(occ)-1)
}

func priorityRank(priority string) int {
	switch priority {
	case models.PriorityHigh:
		return 0
	case models.PriorityMedium:
		return 1
	default:
		return 2
	}
}

func rankTopicCounts(counts map[string]int) []models.TopicCount {
	ranked := make([]models.TopicCount, 0, len(counts))
	for topic, c := range counts {
		ranked = append(ranked, models.TopicCount{Topic: topic, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return ranked[i].Topic < ranked[j].Topic
		}
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}
