package ports

import (
	"context"

	"github.com/axrail/quotation-processor/internal/core/domain"
)

// QuotationProcessor runs the full intake pipeline for one uploaded document.
type QuotationProcessor interface {
	Process(ctx context.Context, doc domain.RawDocument) (*domain.ProcessResult, error)
}
