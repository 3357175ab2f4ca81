package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/axrail/quotation-processor/internal/core/domain"
)

type fakeTextExtractor struct {
	text string
}

func (f *fakeTextExtractor) Extract(_ context.Context, _ []byte, _ string) string {
	return f.text
}

type fakeFieldExtractor struct {
	fields  domain.QuotationFields
	outcome domain.ExtractionOutcome
}

func (f *fakeFieldExtractor) Extract(_ context.Context, _ string) (domain.QuotationFields, domain.ExtractionOutcome) {
	return f.fields, f.outcome
}

type fakeStore struct {
	saved []domain.NormalizedQuotation
	err   error
}

func (f *fakeStore) PutItem(_ context.Context, q domain.NormalizedQuotation) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, q)
	return nil
}

type fakeRenderer struct {
	links domain.ReportLinks
	err   error
	calls int
}

func (f *fakeRenderer) Render(_ context.Context, _ string, _ domain.QuotationFields, _ domain.PurchaseOrder) (domain.ReportLinks, error) {
	f.calls++
	if f.err != nil {
		return domain.ReportLinks{}, f.err
	}
	return f.links, nil
}

func newTestUseCase(text *fakeTextExtractor, fields *fakeFieldExtractor, store *fakeStore, renderer *fakeRenderer) *ProcessQuotationUseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := NewProcessQuotationUseCase(text, fields, store, renderer, logger)
	uc.now = func() time.Time { return testTime }
	ids := []string{"quotation-id-1234", "po-seed-5678abcd"}
	uc.newID = func() string {
		id := ids[0]
		if len(ids) > 1 {
			ids = ids[1:]
		}
		return id
	}
	return uc
}

func TestProcessBuildsFullEnvelope(t *testing.T) {
	store := &fakeStore{}
	renderer := &fakeRenderer{links: domain.ReportLinks{
		PDFURL: "http://reports/q_purchase_order.pdf",
		CSVURL: "http://reports/q_data.csv",
	}}
	uc := newTestUseCase(
		&fakeTextExtractor{text: "quotation text"},
		&fakeFieldExtractor{fields: sampleFields(), outcome: domain.OutcomeFull},
		store,
		renderer,
	)

	result, err := uc.Process(context.Background(), domain.RawDocument{
		Data:      []byte("%PDF-1.4"),
		MediaType: "application/pdf",
		FileName:  "quote.pdf",
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if result.QuotationID != "quotation-id-1234" {
		t.Fatalf("quotation id = %q", result.QuotationID)
	}
	if len(store.saved) != 1 {
		t.Fatalf("store writes = %d, want 1", len(store.saved))
	}
	if store.saved[0].QuotationID != result.QuotationID {
		t.Fatalf("stored id %q != envelope id %q", store.saved[0].QuotationID, result.QuotationID)
	}
	if result.PurchaseOrder.QuotationID != result.QuotationID {
		t.Fatalf("purchase order join key %q != quotation id %q", result.PurchaseOrder.QuotationID, result.QuotationID)
	}
	if result.Reports.PDFURL == "" || result.Reports.CSVURL == "" {
		t.Fatalf("report links missing: %+v", result.Reports)
	}
	if result.Summary.ProcessingStatus != "completed" {
		t.Fatalf("processing_status = %q", result.Summary.ProcessingStatus)
	}
	if result.Summary.ExtractionOutcome != domain.OutcomeFull {
		t.Fatalf("extraction_outcome = %q", result.Summary.ExtractionOutcome)
	}
	if result.Summary.TotalValue.String() != "27.25" {
		t.Fatalf("total_value = %s", result.Summary.TotalValue.String())
	}
}

func TestProcessRejectsEmptyUpload(t *testing.T) {
	store := &fakeStore{}
	renderer := &fakeRenderer{}
	uc := newTestUseCase(&fakeTextExtractor{}, &fakeFieldExtractor{}, store, renderer)

	_, err := uc.Process(context.Background(), domain.RawDocument{FileName: "empty.pdf"})
	if err == nil {
		t.Fatalf("expected error for empty upload")
	}
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatalf("empty upload must not reach the store")
	}
	if renderer.calls != 0 {
		t.Fatalf("empty upload must not reach the renderer")
	}
}

func TestProcessStoreFailureStopsPipeline(t *testing.T) {
	renderer := &fakeRenderer{}
	uc := newTestUseCase(
		&fakeTextExtractor{text: "text"},
		&fakeFieldExtractor{fields: sampleFields(), outcome: domain.OutcomeFull},
		&fakeStore{err: errors.New("connection refused")},
		renderer,
	)

	_, err := uc.Process(context.Background(), domain.RawDocument{Data: []byte("x"), FileName: "q.pdf"})
	if err == nil {
		t.Fatalf("expected storage error")
	}
	if !domain.IsKind(err, domain.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if renderer.calls != 0 {
		t.Fatalf("renderer must not run after a failed store write")
	}
}

func TestProcessRenderFailure(t *testing.T) {
	store := &fakeStore{}
	uc := newTestUseCase(
		&fakeTextExtractor{text: "text"},
		&fakeFieldExtractor{fields: sampleFields(), outcome: domain.OutcomeFull},
		store,
		&fakeRenderer{err: errors.New("disk full")},
	)

	_, err := uc.Process(context.Background(), domain.RawDocument{Data: []byte("x"), FileName: "q.pdf"})
	if err == nil {
		t.Fatalf("expected render error")
	}
	if !domain.IsKind(err, domain.ErrRender) {
		t.Fatalf("expected ErrRender, got %v", err)
	}
	// The record was already persisted before rendering failed.
	if len(store.saved) != 1 {
		t.Fatalf("store writes = %d, want 1", len(store.saved))
	}
}

func TestProcessSurfacesDegradedOutcome(t *testing.T) {
	uc := newTestUseCase(
		&fakeTextExtractor{text: "tiny"},
		&fakeFieldExtractor{fields: sampleFields(), outcome: domain.OutcomeDegradedInput},
		&fakeStore{},
		&fakeRenderer{},
	)

	result, err := uc.Process(context.Background(), domain.RawDocument{Data: []byte("x"), FileName: "q.pdf"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if result.Summary.ExtractionOutcome != domain.OutcomeDegradedInput {
		t.Fatalf("extraction_outcome = %q, want degraded_input", result.Summary.ExtractionOutcome)
	}
}
