package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/november7co/memberqa/internal/core"
	"github.com/november7co/memberqa/pkg/log"
)

type answerResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	question := strings.TrimSpace(r.URL.Query().Get("q"))
	if question == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameter 'q' must not be empty"})
		return
	}

	answer, err := s.pipeline.Answer(r.Context(), question)
	if err != nil {
		logger := log.FromCtx(r.Context())
		if errors.Is(err, core.ErrUpstream) {
			logger.Error().Err(err).Msg("upstream failure")
			writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
			return
		}
		logger.Error().Err(err).Msg("pipeline failure")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{Answer: answer})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
