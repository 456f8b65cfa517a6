package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/nilesh-iiita/hiveplot/pkg/pipeline"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, logger)
	return New(runner, logger, DefaultConfig())
}

const validGraphJSON = `{
  "graph": {
    "groups": [
      {"name": "a", "color": "#1f77b4", "nodes": ["n1", "n2"]},
      {"name": "b", "color": "#ff7f0e", "nodes": ["n3"]}
    ],
    "edges": [{"source": "n1", "target": "n3"}]
  },
  "options": %s
}`

func postJSON(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want ok", body["status"])
	}
}

func TestLayoutEndpoint(t *testing.T) {
	s := newTestServer(t)

	body := strings.Replace(validGraphJSON, "%s", "{}", 1)
	rec := postJSON(t, s, "/api/v1/layout", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		GraphHash string `json:"graph_hash"`
		Layout    struct {
			VizType string `json:"viz_type"`
			Axes    []any  `json:"axes"`
			Nodes   []any  `json:"nodes"`
		} `json:"layout"`
		Cached bool `json:"cached"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if resp.GraphHash == "" {
		t.Error("graph_hash missing")
	}
	if resp.Layout.VizType != "hive" {
		t.Errorf("viz_type = %q, want hive", resp.Layout.VizType)
	}
	if len(resp.Layout.Axes) != 2 || len(resp.Layout.Nodes) != 3 {
		t.Errorf("axes = %d, nodes = %d", len(resp.Layout.Axes), len(resp.Layout.Nodes))
	}
	if resp.Cached {
		t.Error("uncached runner reported a cache hit")
	}
}

func TestLayoutEndpointBadJSON(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/v1/layout", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Code != "INVALID_INPUT" {
		t.Errorf("code = %q, want INVALID_INPUT", resp.Code)
	}
}

func TestLayoutEndpointRejectsUnknownFields(t *testing.T) {
	s := newTestServer(t)

	rec := postJSON(t, s, "/api/v1/layout", `{"graph": {"groups": []}, "bogus": 1}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLayoutEndpointUnknownEdgeEndpoint(t *testing.T) {
	s := newTestServer(t)

	body := `{
	  "graph": {
	    "groups": [{"name": "a", "nodes": ["n1"]}],
	    "edges": [{"source": "n1", "target": "ghost"}]
	  }
	}`
	rec := postJSON(t, s, "/api/v1/layout", body)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Code != "NODE_NOT_FOUND" {
		t.Errorf("code = %q, want NODE_NOT_FOUND", resp.Code)
	}
}

func TestRenderEndpointSingleFormat(t *testing.T) {
	s := newTestServer(t)

	body := strings.Replace(validGraphJSON, "%s", `{"formats": ["svg"]}`, 1)
	rec := postJSON(t, s, "/api/v1/render", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("<svg")) {
		t.Error("body is not SVG")
	}
}

func TestRenderEndpointMultiFormat(t *testing.T) {
	s := newTestServer(t)

	body := strings.Replace(validGraphJSON, "%s", `{"formats": ["svg", "json"]}`, 1)
	rec := postJSON(t, s, "/api/v1/render", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var resp struct {
		Artifacts map[string][]byte `json:"artifacts"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if _, ok := resp.Artifacts["svg"]; !ok {
		t.Error("svg artifact missing")
	}
	if _, ok := resp.Artifacts["json"]; !ok {
		t.Error("json artifact missing")
	}
}

func TestRenderEndpointInvalidFormat(t *testing.T) {
	s := newTestServer(t)

	body := strings.Replace(validGraphJSON, "%s", `{"formats": ["bmp"]}`, 1)
	rec := postJSON(t, s, "/api/v1/render", body)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID not set")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "test-id-123" {
		t.Errorf("X-Request-ID = %q, want test-id-123", got)
	}
}
