package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Post("/refresh", s.handleRefresh)
		r.Get("/cleaning-report", s.handleCleaningReport)

		r.Get("/report", s.handleSummaryReport)
		r.Get("/report/topics", s.handleTopicReport)
		r.Get("/exams", s.handleExamComparison)

		r.Get("/statistics", s.handleAllStatistics)
		r.Get("/statistics/{subject}", s.handleSubjectStatistics)
		r.Get("/consistency/{subject}", s.handleConsistency)
		r.Get("/improvement/{subject}", s.handleImprovement)
		r.Get("/time-analysis/{subject}", s.handleTimeAnalysis)

		r.Get("/trends", s.handleAllTrends)
		r.Get("/trends/{subject}", s.handleSubjectTrend)
		r.Get("/predictions/{subject}", s.handlePrediction)
		r.Get("/target", s.handleTarget)

		r.Get("/subjects/weak", s.handleWeakSubjects)
		r.Get("/subjects/strong", s.handleStrongSubjects)

		r.Get("/topics/trend", s.handleTopicTrend)
		r.Get("/topics/problematic", s.handleProblematicTopics)
		r.Get("/topics/weak-areas", s.handleWeakAreas)
		r.Get("/topics/comparison", s.handleTopicComparison)
		r.Get("/study-plan", s.handleStudyPlan)
	})

	return r
}
