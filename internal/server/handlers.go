package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claimsift/claimsift/internal/pipeline"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Claimsift misinformation analysis backend is running"))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze runs the full pipeline over the submitted content.
// Past input validation the response is always 200 with a complete
// report; provider failures are absorbed by fallback upstream.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), req.Content)
	if err != nil {
		if errors.Is(err, pipeline.ErrEmptyContent) {
			respondError(w, http.StatusBadRequest, "No text provided for analysis.")
			return
		}
		respondError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	respondJSON(w, http.StatusOK, report)
}
