package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/axrail/quotation-processor/internal/core/domain"
	"github.com/axrail/quotation-processor/internal/core/ports"
)

// ProcessQuotationUseCase sequences the intake pipeline for one document:
// bytes -> text -> structured record -> normalized record (persisted) ->
// purchase order -> rendered reports -> response envelope. It owns no
// business logic beyond ordering and the single failure boundary.
type ProcessQuotationUseCase struct {
	text     ports.TextExtractor
	fields   ports.FieldExtractor
	store    ports.QuotationStore
	renderer ports.ReportRenderer
	logger   *slog.Logger

	now   func() time.Time
	newID func() string
}

func NewProcessQuotationUseCase(
	text ports.TextExtractor,
	fields ports.FieldExtractor,
	store ports.QuotationStore,
	renderer ports.ReportRenderer,
	logger *slog.Logger,
) *ProcessQuotationUseCase {
	return &ProcessQuotationUseCase{
		text:     text,
		fields:   fields,
		store:    store,
		renderer: renderer,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (uc *ProcessQuotationUseCase) Process(ctx context.Context, doc domain.RawDocument) (*domain.ProcessResult, error) {
	if len(doc.Data) == 0 {
		return nil, domain.WrapError(domain.ErrInvalidInput, "read upload", errors.New("no file in request body"))
	}

	text := uc.text.Extract(ctx, doc.Data, doc.MediaType)
	uc.logger.Info("text_extracted",
		"file", doc.FileName,
		"media_type", doc.MediaType,
		"size_bytes", len(doc.Data),
		"text_length", len(text),
	)

	fields, outcome := uc.fields.Extract(ctx, text)
	if outcome != domain.OutcomeFull {
		uc.logger.Warn("degraded_extraction", "file", doc.FileName, "outcome", string(outcome))
	}

	quotationID := uc.newID()
	processedAt := uc.now()
	normalized := NormalizeQuotation(fields, doc.FileName, text, processedAt, quotationID)
	if err := uc.store.PutItem(ctx, normalized); err != nil {
		return nil, domain.WrapError(domain.ErrStorage, "store quotation", err)
	}
	uc.logger.Info("quotation_stored", "quotation_id", quotationID, "items", normalized.ExtractionMetadata.ItemsCount)

	po := DerivePurchaseOrder(normalized.QuotationFields, quotationID, processedAt, uc.newID())

	links, err := uc.renderer.Render(ctx, quotationID, normalized.QuotationFields, po)
	if err != nil {
		return nil, domain.WrapError(domain.ErrRender, "render reports", err)
	}

	return &domain.ProcessResult{
		QuotationID:   quotationID,
		ExtractedData: normalized.QuotationFields,
		PurchaseOrder: po,
		Reports:       links,
		Summary:       buildSummary(normalized.QuotationFields, po, processedAt, outcome),
	}, nil
}

func buildSummary(fields domain.QuotationFields, po domain.PurchaseOrder, at time.Time, outcome domain.ExtractionOutcome) domain.ProcessingSummary {
	totalValue := fields.Total
	if totalValue.IsZero() {
		totalValue = fields.Subtotal
	}
	return domain.ProcessingSummary{
		ProcessingStatus:  "completed",
		ItemsProcessed:    len(fields.Items),
		TotalValue:        totalValue,
		Vendor:            fields.CompanyName,
		POGenerated:       po.PONumber,
		ProcessingTime:    at,
		ExtractionOutcome: outcome,
	}
}
