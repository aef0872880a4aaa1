package api

import (
	"net/http"
	"strings"

	"github.com/AhmetBilalOzgun/nettrack/internal/errors"
)

// handleTopicTrend classifies one (subject, topic) pair from query params.
func (s *Server) handleTopicTrend(w http.ResponseWriter, r *http.Request) {
	subject := r.URL.Query().Get("subject")
	topic := r.URL.Query().Get("topic")
	if subject == "" || topic == "" {
		handleError(w, r, errors.NewBadRequestError("subject and topic query parameters are required"))
		return
	}
	respondJSON(w, http.StatusOK, s.Topics.TopicTrend(s.ExamService.TopicIndex(), subject, topic))
}

func (s *Server) handleProblematicTopics(w http.ResponseWriter, r *http.Request) {
	n := queryInt(r, "n", 0)
	respondJSON(w, http.StatusOK, s.Topics.MostProblematicTopics(s.ExamService.Table(), n))
}

func (s *Server) handleWeakAreas(w http.ResponseWriter, r *http.Request) {
	threshold := queryInt(r, "threshold", 0)
	respondJSON(w, http.StatusOK, s.Topics.IdentifyWeakAreas(s.ExamService.Table(), threshold))
}

func (s *Server) handleTopicComparison(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.Topics.CompareSubjectsByTopics(s.ExamService.Table()))
}

// handleStudyPlan builds the prioritized plan; ?subjects=A,B narrows the
// focus and ?max= caps topics per subject.
func (s *Server) handleStudyPlan(w http.ResponseWriter, r *http.Request) {
	var focus []string
	if raw := r.URL.Query().Get("subjects"); raw != "" {
		for _, sub := range strings.Split(raw, ",") {
			if sub = strings.TrimSpace(sub); sub != "" {
				focus = append(focus, sub)
			}
		}
	}
	max := queryInt(r, "max", 0)

	respondJSON(w, http.StatusOK, s.Topics.GenerateStudyPlan(s.ExamService.TopicIndex(), focus, max))
}
