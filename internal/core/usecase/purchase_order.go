package usecase

import (
	"fmt"
	"time"

	"github.com/axrail/quotation-processor/internal/core/domain"
)

const poNumberSuffixLen = 8

// DerivePurchaseOrder builds a purchase order from extracted quotation
// fields. Pure: the PO identifier seed and clock are supplied by the caller.
// Unlike the normalizer it trusts an explicit non-zero total even when it
// disagrees with subtotal+tax.
func DerivePurchaseOrder(fields domain.QuotationFields, quotationID string, now time.Time, idSeed string) domain.PurchaseOrder {
	suffix := idSeed
	if len(suffix) > poNumberSuffixLen {
		suffix = suffix[:poNumberSuffixLen]
	}

	subtotal := domain.CoerceAmount(fields.Subtotal)
	tax := domain.CoerceAmount(fields.Tax)
	total := domain.CoerceAmount(fields.Total)
	if total.IsZero() {
		total = subtotal.Plus(tax)
	}

	return domain.PurchaseOrder{
		PONumber:       fmt.Sprintf("PO-%s-%s", now.Format("20060102"), suffix),
		QuotationID:    quotationID,
		Vendor:         fields.CompanyName,
		VendorEmail:    fields.Email,
		VendorPhone:    fields.Phone,
		VendorAddress:  fields.Address,
		QuoteReference: fields.QuoteNumber,
		PODate:         now.Format("2006-01-02"),
		Items:          fields.Items,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          total,
		Status:         domain.POStatusPendingApproval,
	}
}
