package api

import (
	"net/http"

	"github.com/AhmetBilalOzgun/nettrack/internal/errors"
)

func (s *Server) handleAllTrends(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Trends.AllSubjectsTrends(s.ExamService.Table()))
}

func (s *Server) handleSubjectTrend(w http.ResponseWriter, r *http.Request) {
	subject := subjectParam(r)
	table := s.ExamService.Table()

	if !table.HasSubject(subject) {
		handleError(w, r, errors.NewMissingColumnError(subject))
		return
	}
	trend, ok := s.Trends.Trend(table, subject)
	if !ok {
		handleError(w, r, errors.NewInsufficientDataError(subject, 2, len(table.Series(subject))))
		return
	}
	respondJSON(w, http.StatusOK, trend)
}

func (s *Server) handlePrediction(w http.ResponseWriter, r *http.Request) {
	subject := subjectParam(r)
	table := s.ExamService.Table()

	if !table.HasSubject(subject) {
		handleError(w, r, errors.NewMissingColumnError(subject))
		return
	}
	pred, ok := s.Trends.PredictNext(table, subject)
	if !ok {
		handleError(w, r, errors.NewInsufficientDataError(subject, 2, len(table.Series(subject))))
		return
	}
	respondJSON(w, http.StatusOK, pred)
}

// handleTarget compares the configured (or query-overridden) goal net against
// the aggregate total by default, or against ?subject=.
func (s *Server) handleTarget(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")
	if subject == "" {
		subject = s.AnalysisCfg.TotalSubject
	}
	target := queryFloat(r, "target", s.TargetNet)
	if target < 0 {
		handleError(w, r, errors.NewValidationError("target", "cannot be negative"))
		return
	}

	table := s.ExamService.Table()
	if !table.HasSubject(subject) {
		handleError(w, r, errors.NewMissingColumnError(subject))
		return
	}
	cmp, ok := s.Trends.CompareToTarget(table, target, subject)
	if !ok {
		handleError(w, r, errors.NewInsufficientDataError(subject, 1, 0))
		return
	}
	respondJSON(w, http.StatusOK, cmp)
}

func (s *Server) handleWeakSubjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Ranking.IdentifyWeakSubjects(s.ExamService.Table()))
}

func (s *Server) handleStrongSubjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Ranking.IdentifyStrongSubjects(s.ExamService.Table()))
}
