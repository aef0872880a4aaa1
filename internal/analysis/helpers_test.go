package analysis_test

import (
	"fmt"
	"time"

	"github.com/AhmetBilalOzgun/nettrack/internal/config"
	"github.com/AhmetBilalOzgun/nettrack/internal/exam"
	"github.com/AhmetBilalOzgun/nettrack/internal/models"
)

// netTable builds a table with one exam per week and the given net-score
// series per subject. All series must have the same length.
func netTable(series map[string][]float64) *exam.Table {
	n := 0
	for _, values := range series {
		n = len(values)
		break
	}

	start := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	records := make([]models.ExamRecord, n)
	for i := range records {
		nets := map[string]float64{}
		for subject, values := range series {
			nets[subject] = values[i]
		}
		records[i] = models.ExamRecord{
			Name:      fmt.Sprintf("Deneme %d", i+1),
			Date:      start.AddDate(0, 0, 7*i),
			NetScores: nets,
		}
	}
	return exam.New(records, nil)
}

// topicTable builds a table where wrongTopics[i] holds exam i's wrong topics
// for the given subject.
func topicTable(subject string, wrongTopics [][]string) *exam.Table {
	start := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	records := make([]models.ExamRecord, len(wrongTopics))
	for i, topics := range wrongTopics {
		wt := map[string][]string{}
		if len(topics) > 0 {
			wt[subject] = topics
		}
		records[i] = models.ExamRecord{
			Name:        fmt.Sprintf("Deneme %d", i+1),
			Date:        start.AddDate(0, 0, 7*i),
			NetScores:   map[string]float64{},
			WrongTopics: wt,
		}
	}
	return exam.New(records, nil)
}

func testCfg() config.Analysis {
	return config.DefaultAnalysis()
}
