package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nilesh-iiita/hiveplot/pkg/cache"
	"github.com/nilesh-iiita/hiveplot/pkg/errors"
	"github.com/nilesh-iiita/hiveplot/pkg/graph"
	"github.com/nilesh-iiita/hiveplot/pkg/pipeline"
)

// visualizeRequest is the request body for layout and render endpoints.
type visualizeRequest struct {
	Graph   graph.Graph      `json:"graph"`
	Options pipeline.Options `json:"options"`
}

// layoutResponse is the response body for the layout endpoint.
type layoutResponse struct {
	GraphHash string       `json:"graph_hash"`
	Layout    graph.Layout `json:"layout"`
	Cached    bool         `json:"cached"`
	Duration  string       `json:"duration"`
}

// renderResponse is the response body for multi-format render requests.
// Artifact bytes are base64-encoded by encoding/json.
type renderResponse struct {
	GraphHash string            `json:"graph_hash"`
	Artifacts map[string][]byte `json:"artifacts"`
	Cached    bool              `json:"cached"`
	Duration  string            `json:"duration"`
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// contentTypes maps output formats to MIME types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleLayout computes a layout from the posted graph.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	start := time.Now()
	l, hit, err := s.runner.GenerateLayoutWithCacheInfo(r.Context(), req.Graph, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	hash := ""
	if data, err := graph.MarshalGraph(req.Graph); err == nil {
		hash = cache.HashBytes(data)
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		GraphHash: hash,
		Layout:    l,
		Cached:    hit,
		Duration:  time.Since(start).String(),
	})
}

// handleRender runs the full pipeline. A single requested format returns
// the raw artifact with its content type; multiple formats return JSON.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	result, err := s.runner.Execute(r.Context(), req.Graph, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if len(req.Options.Formats) == 1 {
		format := req.Options.Formats[0]
		w.Header().Set("Content-Type", contentTypes[format])
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(result.Artifacts[format])
		return
	}

	writeJSON(w, http.StatusOK, renderResponse{
		GraphHash: result.GraphHash,
		Artifacts: result.Artifacts,
		Cached:    result.CacheInfo.RenderHit,
		Duration:  (result.Stats.LayoutTime + result.Stats.RenderTime).String(),
	})
}

// decodeRequest parses and validates the request body.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (visualizeRequest, bool) {
	var req visualizeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return req, false
	}
	return req, true
}

// writeError maps structured error codes to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidGraph,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle, errors.ErrCodeDuplicateNode:
		status = http.StatusBadRequest
	case errors.ErrCodeNodeNotFound, errors.ErrCodeGroupNotFound, errors.ErrCodeNotFound,
		errors.ErrCodeFileNotFound:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}

	s.logger.Error("request failed",
		"id", RequestIDFromContext(r.Context()),
		"status", status,
		"error", err)

	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

// writeJSON serializes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
