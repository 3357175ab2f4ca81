package usecase

import (
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/axrail/quotation-processor/internal/core/domain"
)

// rawTextLimit bounds the stored raw text prefix so storage cost stays flat
// regardless of source document size.
const rawTextLimit = 1000

const defaultVendorName = "Unknown"

// NormalizeQuotation coerces an extracted record into the canonical durable
// shape. Pure: the identifier and timestamp are supplied by the caller, so
// two calls differ only in quotation_id and processed_at.
func NormalizeQuotation(fields domain.QuotationFields, fileName, rawText string, processedAt time.Time, quotationID string) domain.NormalizedQuotation {
	items := make([]domain.LineItem, 0, len(fields.Items))
	for _, item := range fields.Items {
		items = append(items, domain.LineItem{
			Description: item.Description,
			Quantity:    domain.CoerceAmount(item.Quantity),
			UnitPrice:   domain.CoerceAmount(item.UnitPrice),
			TotalAmount: domain.CoerceAmount(item.TotalAmount),
		})
	}

	subtotal := domain.CoerceAmount(fields.Subtotal)
	tax := domain.CoerceAmount(fields.Tax)
	total := domain.CoerceAmount(fields.Total)
	if total.IsZero() && subtotal.IsPositive() {
		total = subtotal.Plus(tax)
	}

	company := strings.TrimSpace(fields.CompanyName)
	if company == "" {
		company = defaultVendorName
	}

	return domain.NormalizedQuotation{
		QuotationID: quotationID,
		QuotationFields: domain.QuotationFields{
			CompanyName:  company,
			Email:        fields.Email,
			Phone:        fields.Phone,
			Address:      fields.Address,
			BuyerName:    fields.BuyerName,
			BuyerAddress: fields.BuyerAddress,
			QuoteNumber:  fields.QuoteNumber,
			Date:         fields.Date,
			Items:        items,
			Subtotal:     subtotal,
			Tax:          tax,
			Total:        total,
		},
		OriginalFile: fileName,
		ProcessedAt:  processedAt,
		Status:       domain.StatusProcessed,
		RawText:      truncate(rawText, rawTextLimit),
		ExtractionMetadata: domain.ExtractionMetadata{
			ItemsCount:       len(items),
			HasTax:           tax.IsPositive(),
			CurrencyDetected: detectCurrency(fields),
			TextLength:       len(rawText),
		},
	}
}

// detectCurrency is a substring heuristic over the serialized fields, not a
// currency parser: any literal "SGD" wins, everything else is assumed USD.
func detectCurrency(fields domain.QuotationFields) string {
	serialized, err := json.Marshal(fields)
	if err == nil && strings.Contains(string(serialized), "SGD") {
		return "SGD"
	}
	return "USD"
}

// truncate cuts on a rune boundary so the stored prefix stays valid UTF-8
// even when a multi-byte rune straddles the limit.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
