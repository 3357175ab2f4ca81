package usecase

import (
	"strings"
	"testing"

	"github.com/axrail/quotation-processor/internal/core/domain"
)

func TestDerivePurchaseOrderNumberFormat(t *testing.T) {
	po := DerivePurchaseOrder(sampleFields(), "q-1", testTime, "a1b2c3d4e5f6")

	if po.PONumber != "PO-20250818-a1b2c3d4" {
		t.Fatalf("po_number = %q, want PO-20250818-a1b2c3d4", po.PONumber)
	}
	if po.PODate != "2025-08-18" {
		t.Fatalf("po_date = %q", po.PODate)
	}
}

func TestDerivePurchaseOrderShortSeed(t *testing.T) {
	po := DerivePurchaseOrder(sampleFields(), "q-1", testTime, "abc")
	if !strings.HasSuffix(po.PONumber, "-abc") {
		t.Fatalf("po_number = %q, want short seed kept whole", po.PONumber)
	}
}

func TestDerivePurchaseOrderCarriesQuotationID(t *testing.T) {
	po := DerivePurchaseOrder(sampleFields(), "q-join-key", testTime, "a1b2c3d4")
	if po.QuotationID != "q-join-key" {
		t.Fatalf("quotation_id = %q, want join key preserved", po.QuotationID)
	}
}

func TestDerivePurchaseOrderTotalComputedWhenMissing(t *testing.T) {
	po := DerivePurchaseOrder(sampleFields(), "q-1", testTime, "a1b2c3d4")
	if po.Total.String() != "27.25" {
		t.Fatalf("total = %s, want subtotal+tax = 27.25", po.Total.String())
	}
}

func TestDerivePurchaseOrderTrustsExplicitTotal(t *testing.T) {
	fields := sampleFields()
	fields.Total = domain.AmountFromString("99.99")

	po := DerivePurchaseOrder(fields, "q-1", testTime, "a1b2c3d4")
	if po.Total.String() != "99.99" {
		t.Fatalf("total = %s, want explicit 99.99 even though it disagrees with subtotal+tax", po.Total.String())
	}
}

func TestDerivePurchaseOrderStatusAndVendor(t *testing.T) {
	po := DerivePurchaseOrder(sampleFields(), "q-1", testTime, "a1b2c3d4")
	if po.Status != domain.POStatusPendingApproval {
		t.Fatalf("status = %q, want %q", po.Status, domain.POStatusPendingApproval)
	}
	if po.Vendor != "ABC Stationery Supplies Pte Ltd." {
		t.Fatalf("vendor = %q", po.Vendor)
	}
	if po.QuoteReference != "QTN-2025-001" {
		t.Fatalf("quote_reference = %q", po.QuoteReference)
	}
}
