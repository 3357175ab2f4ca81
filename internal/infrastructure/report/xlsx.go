package report

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/axrail/quotation-processor/internal/core/domain"
)

const sheetName = "Quotation"

// renderDataXLSX produces a spreadsheet view of the same data as the CSV
// report, with items on one sheet block and the purchase order below it.
func renderDataXLSX(fields domain.QuotationFields, po domain.PurchaseOrder, generatedAt time.Time) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	row := 1
	writeRow := func(values ...any) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		row++
		return nil
	}

	header := [][]any{
		{"Report Type", "Quotation Processing Data"},
		{"Generated", generatedAt.Format("2006-01-02 15:04:05")},
		{},
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
		{"Description", "Quantity", "Unit Price", "Total Amount"},
	}
	for _, values := range header {
		if err := writeRow(values...); err != nil {
			return nil, err
		}
	}
	for _, item := range fields.Items {
		err := writeRow(orNA(item.Description), item.Quantity.String(), item.UnitPrice.String(), item.TotalAmount.String())
		if err != nil {
			return nil, err
		}
	}

	footer := [][]any{
		{},
		{"PO Number", orNA(po.PONumber)},
		{"Quotation ID", orNA(po.QuotationID)},
		{"Vendor", orNA(po.Vendor)},
		{"Status", orNA(po.Status)},
		{"Total Amount", po.Total.String()},
	}
	for _, values := range footer {
		if err := writeRow(values...); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
