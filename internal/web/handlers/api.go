package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/profile-normalizer/internal/transform"
)

// maxBodyBytes bounds a preview request body
const maxBodyBytes = 64 << 10

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// APIHandler serves the read-only normalization preview endpoints
type APIHandler struct {
	Jobs *transform.Registry
	DB   Pinger // optional

	// OnPreview is called after every successful preview
	OnPreview func(job string, warnings int)
}

// JobInfo describes one job for GET /api/jobs
type JobInfo struct {
	Name   string   `json:"name"`
	Reads  []string `json:"reads"`
	Writes []string `json:"writes"`
}

// PreviewRequest carries raw values keyed by raw column, or a single text
// applied to every raw column of the job
type PreviewRequest struct {
	Values map[string]string `json:"values"`
	Text   *string           `json:"text"`
}

// PreviewResponse holds the canonical values keyed by write column; undetermined values are null
type PreviewResponse struct {
	Job      string              `json:"job"`
	Values   map[string]any      `json:"values"`
	Warnings []transform.Warning `json:"warnings"`
}

// Health reports liveness and, when a database is configured, its reachability
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	code := http.StatusOK

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Health check database ping failed")
			status["status"] = "degraded"
			status["database"] = "unreachable"
			code = http.StatusServiceUnavailable
		} else {
			status["database"] = "ok"
		}
	}

	writeJSON(w, code, status)
}

// ListJobs returns every job with its columns
func (h *APIHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs := h.Jobs.All()
	out := make([]JobInfo, 0, len(jobs))
	for _, j := range jobs {
		info := JobInfo{Name: j.Name, Reads: j.Reads}
		for _, c := range j.Writes {
			info.Writes = append(info.Writes, c.Name)
		}
		out = append(out, info)
	}
	writeJSON(w, http.StatusOK, out)
}

// Normalize runs one job's transform over the posted raw values without touching the database
func (h *APIHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	job, err := h.Jobs.Get(mux.Vars(r)["job"])
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var req PreviewRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == nil && len(req.Values) == 0 {
		writeError(w, http.StatusBadRequest, `either "values" or "text" is required`)
		return
	}

	raw := make(map[string]string, len(job.Reads))
	for _, c := range job.Reads {
		switch {
		case req.Values != nil:
			raw[c] = req.Values[c]
		case req.Text != nil:
			raw[c] = *req.Text
		}
	}

	values, warnings := job.Transform(raw)
	resp := PreviewResponse{
		Job:      job.Name,
		Values:   make(map[string]any, len(job.Writes)),
		Warnings: warnings,
	}
	if resp.Warnings == nil {
		resp.Warnings = []transform.Warning{}
	}
	for i, c := range job.Writes {
		v := values[i]
		if s, ok := v.(string); ok && s == "" {
			v = nil
		}
		resp.Values[c.Name] = v
	}

	if h.OnPreview != nil {
		h.OnPreview(job.Name, len(warnings))
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
