package domain

import "time"

// ExtractionOutcome records which path produced the structured fields, so
// degraded runs are observable instead of only being inferable from output
// content.
type ExtractionOutcome string

const (
	// OutcomeFull means the model reply was parsed and validated as-is.
	OutcomeFull ExtractionOutcome = "full"
	// OutcomeDegradedInput means upstream text was too short to be real
	// document content and the fixed sample text was substituted before
	// invoking the model.
	OutcomeDegradedInput ExtractionOutcome = "degraded_input"
	// OutcomeFallbackRecord means the model call failed or its reply had no
	// usable JSON object, and the canned record was returned instead.
	OutcomeFallbackRecord ExtractionOutcome = "fallback_record"
)

const (
	StatusProcessed         = "processed"
	POStatusPendingApproval = "pending_approval"
)

// RawDocument is the transient request-scoped input. It has no identity
// beyond the request that carried it.
type RawDocument struct {
	Data      []byte
	MediaType string
	FileName  string
}

type LineItem struct {
	Description string `json:"description"`
	Quantity    Amount `json:"quantity"`
	UnitPrice   Amount `json:"unit_price"`
	TotalAmount Amount `json:"total_amount"`
}

// QuotationFields is the structured record extracted from document text.
// After normalization every field holds a defined value; absence never
// propagates downstream.
type QuotationFields struct {
	CompanyName  string     `json:"company_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	BuyerName    string     `json:"buyer_name"`
	BuyerAddress string     `json:"buyer_address"`
	QuoteNumber  string     `json:"quote_number"`
	Date         string     `json:"date"`
	Items        []LineItem `json:"items"`
	Subtotal     Amount     `json:"subtotal"`
	Tax          Amount     `json:"tax"`
	Total        Amount     `json:"total"`
}

type ExtractionMetadata struct {
	ItemsCount       int    `json:"items_count"`
	HasTax           bool   `json:"has_tax"`
	CurrencyDetected string `json:"currency_detected"`
	TextLength       int    `json:"text_length"`
}

// NormalizedQuotation is the durable record. It is write-once: after the
// store accepts it, nothing in this pipeline updates or deletes it.
type NormalizedQuotation struct {
	QuotationID string `json:"quotation_id"`
	QuotationFields
	OriginalFile       string             `json:"original_file"`
	ProcessedAt        time.Time          `json:"processed_at"`
	Status             string             `json:"status"`
	RawText            string             `json:"raw_text"`
	ExtractionMetadata ExtractionMetadata `json:"extraction_metadata"`
}

// PurchaseOrder is derived from an extracted quotation. QuotationID is the
// join key back to the stored quotation record.
type PurchaseOrder struct {
	PONumber       string     `json:"po_number"`
	QuotationID    string     `json:"quotation_id"`
	Vendor         string     `json:"vendor"`
	VendorEmail    string     `json:"vendor_email"`
	VendorPhone    string     `json:"vendor_phone"`
	VendorAddress  string     `json:"vendor_address"`
	QuoteReference string     `json:"quote_reference"`
	PODate         string     `json:"po_date"`
	Items          []LineItem `json:"items"`
	Subtotal       Amount     `json:"subtotal"`
	Tax            Amount     `json:"tax"`
	Total          Amount     `json:"total"`
	Status         string     `json:"status"`
}

// ProcessingSummary is a read-only view built for the response envelope.
// It is never persisted.
type ProcessingSummary struct {
	ProcessingStatus  string            `json:"processing_status"`
	ItemsProcessed    int               `json:"items_processed"`
	TotalValue        Amount            `json:"total_value"`
	Vendor            string            `json:"vendor"`
	POGenerated       string            `json:"po_generated"`
	ProcessingTime    time.Time         `json:"processing_time"`
	ExtractionOutcome ExtractionOutcome `json:"extraction_outcome"`
}

type ReportLinks struct {
	PDFURL  string `json:"pdfUrl"`
	CSVURL  string `json:"csvUrl"`
	XLSXURL string `json:"xlsxUrl"`
}

// ProcessResult is the success response envelope for one pipeline run.
type ProcessResult struct {
	QuotationID   string            `json:"quotationId"`
	ExtractedData QuotationFields   `json:"extractedData"`
	PurchaseOrder PurchaseOrder     `json:"purchaseOrder"`
	Reports       ReportLinks       `json:"reports"`
	Summary       ProcessingSummary `json:"summary"`
}
