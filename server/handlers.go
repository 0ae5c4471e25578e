package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/imuzolev/playnashville/errors"
	"github.com/imuzolev/playnashville/theory"
	"github.com/imuzolev/playnashville/version"
)

type processRequest struct {
	Text string `json:"text"`
	Key  string `json:"key,omitempty"`
	Mode string `json:"mode,omitempty"`
}

type processResponse struct {
	AnnotatedText string `json:"annotated_text"`
	Tonality      string `json:"tonality"` // display form: "label (mode)"
	Key           string `json:"key"`
	Mode          string `json:"mode"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON request body")
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	resp, err := s.process(req.Text, req.Key, req.Mode)
	if err != nil {
		if errors.IsUserInputError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Errorw("Annotation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "annotation failed")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTonalities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"major": s.catalog.Labels(theory.ModeMajor),
		"minor": s.catalog.Labels(theory.ModeMinor),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.Get().Version,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
