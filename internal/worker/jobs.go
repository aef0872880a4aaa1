package worker

import (
	"context"

	"github.com/AhmetBilalOzgun/nettrack/internal/logger"
	"github.com/AhmetBilalOzgun/nettrack/internal/services"
)

// RefreshJob re-fetches the spreadsheet and rebuilds the exam snapshot.
type RefreshJob struct {
	ExamService services.ExamService
}

func (j *RefreshJob) Name() string { return "refresh_exam_data" }

func (j *RefreshJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("starting background refresh")
	return j.ExamService.Refresh(ctx)
}
