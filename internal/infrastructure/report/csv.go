package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/axrail/quotation-processor/internal/core/domain"
)

func renderDataCSV(fields domain.QuotationFields, po domain.PurchaseOrder, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Report Type", "Quotation Processing Data"},
		{"Generated", generatedAt.Format("2006-01-02 15:04:05")},
		{},
		{"Section", "Extracted Information"},
		{"Company", orNA(fields.CompanyName)},
		{"Email", orNA(fields.Email)},
		{"Phone", orNA(fields.Phone)},
		{"Address", orNA(fields.Address)},
		{"Quote Number", orNA(fields.QuoteNumber)},
		{"Date", orNA(fields.Date)},
		{"Subtotal", fields.Subtotal.String()},
		{"Tax", fields.Tax.String()},
		{"Total", totalOrSubtotal(fields).String()},
		{},
		{"Items"},
		{"Description", "Quantity", "Unit Price", "Total Amount"},
	}
	for _, item := range fields.Items {
		rows = append(rows, []string{
			orNA(item.Description),
			item.Quantity.String(),
			item.UnitPrice.String(),
			item.TotalAmount.String(),
		})
	}
	rows = append(rows,
		[]string{},
		[]string{"Section", "Purchase Order"},
		[]string{"PO Number", orNA(po.PONumber)},
		[]string{"Quotation ID", orNA(po.QuotationID)},
		[]string{"Vendor", orNA(po.Vendor)},
		[]string{"Vendor Email", orNA(po.VendorEmail)},
		[]string{"Vendor Phone", orNA(po.VendorPhone)},
		[]string{"Vendor Address", orNA(po.VendorAddress)},
		[]string{"Status", orNA(po.Status)},
		[]string{"Total Amount", po.Total.String()},
	)

	for _, row := range rows {
		if len(row) == 0 {
			row = []string{""}
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func totalOrSubtotal(fields domain.QuotationFields) domain.Amount {
	if fields.Total.IsZero() {
		return fields.Subtotal
	}
	return fields.Total
}
