package ports

import (
	"context"

	"github.com/axrail/quotation-processor/internal/core/domain"
)

// TextExtractor converts raw document bytes into plain text. Extraction is
// total: failures degrade to descriptive placeholder text, never an error.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, mediaType string) string
}

// FieldExtractor turns document text into a complete structured record.
// It never fails outward; the outcome reports which path produced the record.
type FieldExtractor interface {
	Extract(ctx context.Context, text string) (domain.QuotationFields, domain.ExtractionOutcome)
}

// QuotationStore persists normalized quotations. Create-only: records are
// keyed by a freshly generated identifier and never updated or deleted.
type QuotationStore interface {
	PutItem(ctx context.Context, q domain.NormalizedQuotation) error
}

// BlobStore is the write-only report artifact store.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (url string, err error)
}

// ReportRenderer lays out the extraction and purchase order as downloadable
// artifacts and returns their public URLs.
type ReportRenderer interface {
	Render(ctx context.Context, quotationID string, fields domain.QuotationFields, po domain.PurchaseOrder) (domain.ReportLinks, error)
}
