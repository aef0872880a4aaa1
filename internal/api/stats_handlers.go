package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/AhmetBilalOzgun/nettrack/internal/errors"
)

// subjectParam extracts and unescapes the {subject} path parameter; subject
// names carry spaces and Turkish characters.
func subjectParam(r *http.Request) string {
	raw := chi.URLParam(r, "subject")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (s *Server) handleAllStatistics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Stats.AllSubjectsStatistics(s.ExamService.Table()))
}

func (s *Server) handleSubjectStatistics(w http.ResponseWriter, r *http.Request) {
	subject := subjectParam(r)
	table := s.ExamService.Table()

	if !table.HasSubject(subject) {
		handleError(w, r, errors.NewMissingColumnError(subject))
		return
	}
	stats, ok := s.Stats.Statistics(table, subject)
	if !ok {
		handleError(w, r, errors.NewInsufficientDataError(subject, 1, 0))
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleConsistency(w http.ResponseWriter, r *http.Request) {
	subject := subjectParam(r)
	table := s.ExamService.Table()

	if !table.HasSubject(subject) {
		handleError(w, r, errors.NewMissingColumnError(subject))
		return
	}
	score, ok := s.Ranking.CalculateConsistencyScore(table, subject)
	if !ok {
		handleError(w, r, errors.NewInsufficientDataError(subject, 1, 0))
		return
	}
	respondJSON(w, http.StatusOK, score)
}

func (s *Server) handleImprovement(w http.ResponseWriter, r *http.Request) {
	subject := subjectParam(r)
	table := s.ExamService.Table()
	window := queryInt(r, "window", s.AnalysisCfg.ImprovementWindow)

	if !table.HasSubject(subject) {
		handleError(w, r, errors.NewMissingColumnError(subject))
		return
	}
	rate, ok := s.Ranking.CalculateImprovementRate(table, subject, window)
	if !ok {
		handleError(w, r, errors.NewInsufficientDataError(subject, window, len(table.Series(subject))))
		return
	}
	respondJSON(w, http.StatusOK, rate)
}

func (s *Server) handleTimeAnalysis(w http.ResponseWriter, r *http.Request) {
	subject := subjectParam(r)

	ta, ok := s.Reporter.TimeBasedAnalysis(s.ExamService.Table(), subject)
	if !ok {
		handleError(w, r, errors.NewMissingColumnError(subject))
		return
	}
	respondJSON(w, http.StatusOK, ta)
}
