package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profile-normalizer/internal/config"
	"github.com/profile-normalizer/internal/transform"
	"github.com/profile-normalizer/internal/vocab"
	"github.com/profile-normalizer/internal/web/handlers"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newTestServer(db handlers.Pinger) *Server {
	return NewServer(config.WebConfig{Host: "localhost", Port: 8080}, transform.Jobs(vocab.Default()), db)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = do(t, newTestServer(pinger{}), http.MethodGet, "/api/health", "")
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, rec.Body.String())

	rec = do(t, newTestServer(pinger{err: errors.New("connection refused")}), http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListJobs(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodGet, "/api/jobs", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var jobs []handlers.JobInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	require.Len(t, jobs, 8)
	assert.Equal(t, "address", jobs[0].Name)
	assert.Contains(t, jobs[0].Writes, "address_pin")
}

func TestNormalizeText(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodPost, "/api/normalize/siblings", `{"text":"2 brothers, one married"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.PreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "siblings", resp.Job)
	assert.Equal(t, "No Sisters", resp.Values["sisters"])
	assert.Equal(t, "2 Brothers - Married", resp.Values["brothers"])
	assert.Empty(t, resp.Warnings)
}

func TestNormalizeValues(t *testing.T) {
	body := `{"values":{"father_occupation_raw":"Retired","mother_occupation_raw":"NA"}}`
	rec := do(t, newTestServer(nil), http.MethodPost, "/api/normalize/parent-occupation", body)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t,
		`{"job":"parent-occupation","values":{"father_occupation":"Retired","mother_occupation":null},"warnings":[]}`,
		rec.Body.String())
}

func TestNormalizeReportsWarnings(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodPost, "/api/normalize/phone", `{"text":"ask my father"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.PreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Values["phone_primary"])
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "phone_raw", resp.Warnings[0].Column)
}

func TestNormalizeErrors(t *testing.T) {
	s := newTestServer(nil)

	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{"unknown job", "/api/normalize/horoscope", `{"text":"x"}`, http.StatusNotFound},
		{"bad json", "/api/normalize/income", `{"text":`, http.StatusBadRequest},
		{"unknown field", "/api/normalize/income", `{"txt":"12 LPA"}`, http.StatusBadRequest},
		{"empty request", "/api/normalize/income", `{}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	rec := do(t, newTestServer(nil), http.MethodOptions, "/api/normalize/income", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(nil)
	do(t, s, http.MethodPost, "/api/normalize/income", `{"text":"12 LPA"}`)

	rec := do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `normalizer_previews_total{job="income"}`)
	assert.Contains(t, rec.Body.String(), "normalizer_http_requests_total")
}
