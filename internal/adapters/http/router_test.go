package httpadapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/axrail/quotation-processor/internal/core/domain"
	"github.com/axrail/quotation-processor/internal/observability/metrics"
)

type fakeProcessor struct {
	result *domain.ProcessResult
	err    error
	calls  int
	gotDoc domain.RawDocument
}

func (f *fakeProcessor) Process(_ context.Context, doc domain.RawDocument) (*domain.ProcessResult, error) {
	f.calls++
	f.gotDoc = doc
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestHandler(p *fakeProcessor) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(p, metrics.NewHTTPServerMetrics("test"), logger).Handler()
}

func postProcess(t *testing.T, handler http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/quotations/process", bytes.NewReader(payload))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	return res
}

func TestProcessSuccessEnvelope(t *testing.T) {
	processor := &fakeProcessor{result: &domain.ProcessResult{
		QuotationID: "q-1",
		Summary: domain.ProcessingSummary{
			ProcessingStatus:  "completed",
			ExtractionOutcome: domain.OutcomeFull,
		},
	}}
	handler := newTestHandler(processor)

	res := postProcess(t, handler, map[string]string{
		"file":     base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
		"fileName": "quote.pdf",
		"fileType": "application/pdf",
	})

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.Code)
	}
	if got := res.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("cors origin = %q", got)
	}
	var envelope struct {
		QuotationID string `json:"quotationId"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.QuotationID != "q-1" {
		t.Fatalf("quotationId = %q", envelope.QuotationID)
	}
	if processor.gotDoc.FileName != "quote.pdf" || processor.gotDoc.MediaType != "application/pdf" {
		t.Fatalf("document passed to processor = %+v", processor.gotDoc)
	}
}

func TestProcessAppliesRequestDefaults(t *testing.T) {
	processor := &fakeProcessor{result: &domain.ProcessResult{}}
	handler := newTestHandler(processor)

	res := postProcess(t, handler, map[string]string{
		"file": base64.StdEncoding.EncodeToString([]byte("data")),
	})
	if res.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.Code)
	}
	if processor.gotDoc.FileName != "unknown.pdf" {
		t.Fatalf("default fileName = %q", processor.gotDoc.FileName)
	}
	if processor.gotDoc.MediaType != "application/pdf" {
		t.Fatalf("default fileType = %q", processor.gotDoc.MediaType)
	}
}

func TestProcessMissingFileReturns500Envelope(t *testing.T) {
	processor := &fakeProcessor{result: &domain.ProcessResult{}}
	handler := newTestHandler(processor)

	res := postProcess(t, handler, map[string]string{"fileName": "quote.pdf"})
	if res.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", res.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("error envelope missing message: %v", body)
	}
	if processor.calls != 0 {
		t.Fatalf("processor must not run without file data")
	}
}

func TestProcessPipelineErrorReturns500Envelope(t *testing.T) {
	processor := &fakeProcessor{err: errors.New("store quotation: storage failure: connection refused")}
	handler := newTestHandler(processor)

	res := postProcess(t, handler, map[string]string{
		"file": base64.StdEncoding.EncodeToString([]byte("data")),
	})
	if res.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", res.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] != processor.err.Error() {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestProcessOptionsPreflight(t *testing.T) {
	processor := &fakeProcessor{}
	handler := newTestHandler(processor)

	req := httptest.NewRequest(http.MethodOptions, "/v1/quotations/process", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.Code)
	}
	if res.Body.Len() != 0 {
		t.Fatalf("preflight body = %q, want empty", res.Body.String())
	}
	if got := res.Header().Get("Access-Control-Allow-Methods"); got != "POST,OPTIONS" {
		t.Fatalf("allow methods = %q", got)
	}
	if got := res.Header().Get("Access-Control-Max-Age"); got != "86400" {
		t.Fatalf("max age = %q", got)
	}
	if processor.calls != 0 {
		t.Fatalf("preflight must not invoke the pipeline")
	}
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler(&fakeProcessor{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	if res.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.Code)
	}
}
