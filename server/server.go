package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"essay_coach/coach"
	"essay_coach/exporter"
)

// llmTimeout bounds every completion call made on behalf of a request.
const llmTimeout = 60 * time.Second

type Server struct {
	agent *coach.Agent
}

func New(agent *coach.Agent) (*Server, error) {
	if agent == nil {
		return nil, errors.New("coach agent required")
	}
	return &Server{agent: agent}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/essay", s.handleEssay)
	mux.HandleFunc("/essay/export", s.handleExport)
	return logMiddleware(mux)
}

// --- Handlers ---

func (s *Server) handleEssay(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		// Health check in a browser; never touches the model.
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":    true,
			"route": "essay",
			"hint":  "POST with { stage: 'start' | 'followup' | 'draft' }",
		})
	case http.MethodPost:
		s.handleStage(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
	}
}

func (s *Server) handleStage(w http.ResponseWriter, r *http.Request) {
	var req coach.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), llmTimeout)
	defer cancel()

	res, err := s.agent.Run(ctx, req)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultPayload(res))
}

type exportReq struct {
	Title string `json:"title"`
	Essay string `json:"essay"`
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}
	var req exportReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body.", err.Error())
		return
	}
	if strings.TrimSpace(req.Essay) == "" {
		writeError(w, http.StatusBadRequest, "Provide an essay to export.", "")
		return
	}
	page, err := exporter.Render(req.Title, req.Essay)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Server error", err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(page))
}

// --- Helpers ---

// resultPayload flattens a stage result into the wire shape. Fields the stage
// did not produce are left out entirely.
func resultPayload(res coach.Result) map[string]any {
	payload := map[string]any{"ok": true}
	if res.Stage != "" {
		payload["stage"] = res.Stage
	}
	if res.Questions != nil {
		payload["questions"] = res.Questions
	}
	if res.Question != "" {
		payload["question"] = res.Question
	}
	if res.Stage == coach.StageDone {
		payload["essay"] = res.Essay
	}
	return payload
}

// writeFailure maps the error taxonomy onto HTTP statuses. Nothing beyond a
// short message and the wrapped detail crosses the boundary.
func writeFailure(w http.ResponseWriter, err error) {
	var ve *coach.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Msg, "")
	case errors.Is(err, coach.ErrMissingCredential):
		writeError(w, http.StatusInternalServerError, "Missing credential", err.Error())
	case errors.Is(err, coach.ErrTimeout):
		writeError(w, http.StatusGatewayTimeout, "Upstream timeout", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "Server error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg, detail string) {
	body := map[string]any{"error": msg}
	if detail != "" {
		body["detail"] = detail
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("[http] id=%s %s %s status=%d dur=%s",
			uuid.NewString(), r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
