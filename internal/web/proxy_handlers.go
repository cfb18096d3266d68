package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleProxy forwards the request's raw query to the same path upstream,
// minus the /api prefix, and relays the JSON body as is. Upstream status
// codes are not translated: any JSON body goes back as 200.
func (s *Server) handleProxy(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api")

	resp, err := s.upstream.Get(r.Context(), path, r.URL.RawQuery)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if !json.Valid(resp.Body) {
		s.writeError(w, r, fmt.Errorf("invalid JSON response from %s (status %d)", path, resp.StatusCode))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(resp.Body); err != nil {
		s.logger.Warn("Failed to write proxy response", zap.String("path", path), zap.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("Upstream request failed",
		zap.String("path", r.URL.Path),
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
