// Package report renders purchase order and data exports for a processed
// quotation and publishes them through a blob store.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/axrail/quotation-processor/internal/core/domain"
	"github.com/axrail/quotation-processor/internal/core/ports"
)

type Renderer struct {
	blobs  ports.BlobStore
	logger *slog.Logger
	now    func() time.Time
}

func NewRenderer(blobs ports.BlobStore, logger *slog.Logger) *Renderer {
	return &Renderer{
		blobs:  blobs,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Render produces all three report artifacts. The report set is all or
// nothing: the first failed render or upload fails the whole call.
func (r *Renderer) Render(ctx context.Context, quotationID string, fields domain.QuotationFields, po domain.PurchaseOrder) (domain.ReportLinks, error) {
	generatedAt := r.now()

	pdfData, err := renderPurchaseOrderPDF(fields, po)
	if err != nil {
		return domain.ReportLinks{}, fmt.Errorf("render purchase order pdf: %w", err)
	}
	csvData, err := renderDataCSV(fields, po, generatedAt)
	if err != nil {
		return domain.ReportLinks{}, fmt.Errorf("render data csv: %w", err)
	}
	xlsxData, err := renderDataXLSX(fields, po, generatedAt)
	if err != nil {
		return domain.ReportLinks{}, fmt.Errorf("render data xlsx: %w", err)
	}

	var links domain.ReportLinks
	if links.PDFURL, err = r.blobs.Put(ctx, "reports/"+quotationID+"_purchase_order.pdf", pdfData, "application/pdf"); err != nil {
		return domain.ReportLinks{}, fmt.Errorf("store pdf report: %w", err)
	}
	if links.CSVURL, err = r.blobs.Put(ctx, "reports/"+quotationID+"_data.csv", csvData, "text/csv"); err != nil {
		return domain.ReportLinks{}, fmt.Errorf("store csv report: %w", err)
	}
	if links.XLSXURL, err = r.blobs.Put(ctx, "reports/"+quotationID+"_data.xlsx", xlsxData, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"); err != nil {
		return domain.ReportLinks{}, fmt.Errorf("store xlsx report: %w", err)
	}

	r.logger.Info("reports_rendered",
		"quotation_id", quotationID,
		"pdf_bytes", len(pdfData),
		"csv_bytes", len(csvData),
		"xlsx_bytes", len(xlsxData),
	)
	return links, nil
}
