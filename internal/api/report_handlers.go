package api

import "net/http"

func (s *Server) handleSummaryReport(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Reporter.SummaryReport(s.ExamService.Table()))
}

func (s *Server) handleTopicReport(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Reporter.TopicReport(s.ExamService.Table()))
}

func (s *Server) handleExamComparison(w http.ResponseWriter, r *http.Request) {
	n := queryInt(r, "n", 0)
	respondJSON(w, http.StatusOK, s.Reporter.ExamComparison(s.ExamService.Table(), n))
}
