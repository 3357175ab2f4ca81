// Package httpadapter exposes the quotation pipeline over HTTP. The error
// contract is deliberately uniform: any pipeline failure, including a missing
// file field, answers 500 with a single-key {"error": message} body so
// browser clients have one failure shape to handle.
package httpadapter

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/axrail/quotation-processor/internal/core/domain"
	"github.com/axrail/quotation-processor/internal/core/ports"
	"github.com/axrail/quotation-processor/internal/observability/metrics"
)

const serviceName = "quotation-processor"

type Router struct {
	processor ports.QuotationProcessor
	metrics   *metrics.HTTPServerMetrics
	logger    *slog.Logger
}

func NewRouter(processor ports.QuotationProcessor, m *metrics.HTTPServerMetrics, logger *slog.Logger) *Router {
	return &Router{
		processor: processor,
		metrics:   m,
		logger:    logger,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/quotations/process", rt.processQuotation)
	return mux
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type processRequest struct {
	File     string `json:"file"`
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
}

func (rt *Router) processQuotation(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rt.writeError(w, r, "invalid json body")
		return
	}
	if req.File == "" {
		rt.writeError(w, r, "no file in request body")
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.File)
	if err != nil {
		rt.writeError(w, r, "file is not valid base64")
		return
	}
	if req.FileName == "" {
		req.FileName = "unknown.pdf"
	}
	if req.FileType == "" {
		req.FileType = "application/pdf"
	}

	start := time.Now()
	result, err := rt.processor.Process(r.Context(), domain.RawDocument{
		Data:      data,
		MediaType: req.FileType,
		FileName:  req.FileName,
	})
	rt.metrics.RecordStageDuration(serviceName, "process", time.Since(start))
	if err != nil {
		if domain.IsKind(err, domain.ErrRender) {
			rt.metrics.RecordRenderFailure(serviceName)
		}
		rt.logger.Error("process_quotation_failed",
			"request_id", requestIDFromContext(r.Context()),
			"file_name", req.FileName,
			"error", err,
		)
		rt.writeError(w, r, err.Error())
		return
	}

	rt.metrics.RecordDocument(serviceName, string(result.Summary.ExtractionOutcome))
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) writeError(w http.ResponseWriter, _ *http.Request, msg string) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msg})
}

func setCORSHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	h.Set("Access-Control-Allow-Methods", "POST,OPTIONS")
	h.Set("Access-Control-Max-Age", "86400")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
