package api

import (
	"net/http"
	"time"

	"github.com/AhmetBilalOzgun/nettrack/internal/analysis"
	"github.com/AhmetBilalOzgun/nettrack/internal/config"
	"github.com/AhmetBilalOzgun/nettrack/internal/errors"
	"github.com/AhmetBilalOzgun/nettrack/internal/logger"
	"github.com/AhmetBilalOzgun/nettrack/internal/services"
	"github.com/AhmetBilalOzgun/nettrack/internal/worker"
)

type Server struct {
	ExamService services.ExamService
	Stats       *analysis.StatisticsEngine
	Trends      *analysis.TrendEngine
	Ranking     *analysis.RankingEngine
	Topics      *analysis.TopicEngine
	Reporter    *analysis.Reporter
	RefreshPool *worker.Pool
	AnalysisCfg config.Analysis
	TargetNet   float64
}

// handleHealth returns a liveness probe - always returns 200 OK.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReady returns a readiness probe - 200 once a snapshot has been
// loaded, 503 before that.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.ExamService.LastRefreshed().IsZero() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("No exam data loaded"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ready"))
}

// handleRefresh queues a background re-fetch of the spreadsheet.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	job := &worker.RefreshJob{ExamService: s.ExamService}
	if !s.RefreshPool.TrySubmit(job) {
		handleError(w, r, errors.NewUpstreamError("refresh queue is full", nil))
		return
	}

	log.Info("refresh job queued")
	respondJSON(w, http.StatusAccepted, map[string]any{
		"status": "queued",
		"queued": s.RefreshPool.QueueSize(),
	})
}

// handleCleaningReport returns the report of the last cleaning run.
func (s *Server) handleCleaningReport(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"report":       s.ExamService.CleaningReport(),
		"refreshed_at": s.ExamService.LastRefreshed().Format(time.RFC3339),
	})
}
