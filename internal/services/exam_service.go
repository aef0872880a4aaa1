package services

import (
	"context"
	"sync"
	"time"

	"github.com/AhmetBilalOzgun/nettrack/internal/analysis"
	"github.com/AhmetBilalOzgun/nettrack/internal/cleaner"
	"github.com/AhmetBilalOzgun/nettrack/internal/errors"
	"github.com/AhmetBilalOzgun/nettrack/internal/exam"
	"github.com/AhmetBilalOzgun/nettrack/internal/logger"
	"github.com/AhmetBilalOzgun/nettrack/internal/sheets"
)

// ExamService owns the exam-data snapshot: the cleaned table plus its topic
// index, refreshed atomically from the spreadsheet.
type ExamService interface {
	Refresh(ctx context.Context) error
	Table() *exam.Table
	TopicIndex() *analysis.TopicIndex
	CleaningReport() cleaner.Report
	LastRefreshed() time.Time
}

type snapshot struct {
	table       *exam.Table
	topicIndex  *analysis.TopicIndex
	report      cleaner.Report
	refreshedAt time.Time
}

type examService struct {
	loader    sheets.Loader
	cleaner   *cleaner.Cleaner
	sheetID   string
	sheetName string

	mu   sync.RWMutex
	snap snapshot
}

// NewExamService creates an ExamService over the given loader and cleaner.
// The snapshot is empty until the first Refresh.
func NewExamService(loader sheets.Loader, cl *cleaner.Cleaner, sheetID, sheetName string) ExamService {
	return &examService{
		loader:    loader,
		cleaner:   cl,
		sheetID:   sheetID,
		sheetName: sheetName,
	}
}

// Refresh fetches, cleans and re-indexes the sheet, then swaps the snapshot.
// On failure the previous snapshot stays in place.
func (s *examService) Refresh(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("exam-service")
	log.Info("refreshing exam data from sheet %s", s.sheetName)
	start := time.Now()

	raw, err := s.loader.FetchSheet(ctx, s.sheetID, s.sheetName)
	if err != nil {
		log.Error("failed to fetch sheet: %v", err)
		return err
	}

	table, report, err := s.cleaner.Clean(raw)
	if err != nil {
		log.Error("failed to clean sheet: %v", err)
		return errors.NewUpstreamError("sheet could not be cleaned", err)
	}

	idx := analysis.BuildTopicIndex(table)

	s.mu.Lock()
	s.snap = snapshot{
		table:       table,
		topicIndex:  idx,
		report:      report,
		refreshedAt: time.Now(),
	}
	s.mu.Unlock()

	log.Info("refresh complete in %v: %d exams, %d topics indexed",
		time.Since(start), table.Len(), idx.Size())
	return nil
}

// Table returns the current table; empty (never nil) before the first
// successful refresh.
func (s *examService) Table() *exam.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap.table == nil {
		return exam.New(nil, nil)
	}
	return s.snap.table
}

// TopicIndex returns the current topic index; empty before the first
// successful refresh.
func (s *examService) TopicIndex() *analysis.TopicIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap.topicIndex == nil {
		return analysis.BuildTopicIndex(exam.New(nil, nil))
	}
	return s.snap.topicIndex
}

func (s *examService) CleaningReport() cleaner.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.report
}

func (s *examService) LastRefreshed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.refreshedAt
}
