package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/axrail/quotation-processor/internal/core/domain"
)

// Fixed buyer identity printed on every purchase order.
const (
	buyerCompany = "Axrail Demo Pte Ltd"
	buyerAddress = "Changi Tower, 78909 Singapore"
	buyerPhone   = "+65 56998 3421"
	buyerEmail   = "contactus@axrail.com"
)

func renderPurchaseOrderPDF(fields domain.QuotationFields, po domain.PurchaseOrder) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "PURCHASE ORDER", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(95, 8, "PO Number: "+orNA(po.PONumber), "", 0, "", false, 0, "")
	pdf.CellFormat(95, 8, "Date: "+orNA(po.PODate), "", 1, "", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(95, 8, "SUPPLIER", "", 0, "", false, 0, "")
	pdf.CellFormat(95, 8, "BUYER", "", 1, "", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, orNA(fields.CompanyName), "", 0, "", false, 0, "")
	pdf.CellFormat(95, 6, buyerCompany, "", 1, "", false, 0, "")
	pdf.CellFormat(95, 6, orNA(fields.Address), "", 0, "", false, 0, "")
	pdf.CellFormat(95, 6, buyerAddress, "", 1, "", false, 0, "")
	pdf.CellFormat(95, 6, "Phone: "+orNA(fields.Phone), "", 0, "", false, 0, "")
	pdf.CellFormat(95, 6, "Phone: "+buyerPhone, "", 1, "", false, 0, "")
	pdf.CellFormat(95, 6, "Email: "+orNA(fields.Email), "", 0, "", false, 0, "")
	pdf.CellFormat(95, 6, "Email: "+buyerEmail, "", 1, "", false, 0, "")
	pdf.Ln(15)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 10, "DESCRIPTION", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 10, "QUANTITY", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 10, "UNIT PRICE", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 10, "TOTAL", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, item := range fields.Items {
		pdf.CellFormat(80, 8, orNA(item.Description), "1", 0, "", false, 0, "")
		pdf.CellFormat(30, 8, item.Quantity.String(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 8, "$"+item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, "$"+item.TotalAmount.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(150, 8, "Subtotal:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "$"+fields.Subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.CellFormat(150, 8, "Tax:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "$"+fields.Tax.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(150, 10, "GRAND TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, "$"+po.Total.StringFixed(2), "1", 1, "R", false, 0, "")

	pdf.Ln(15)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 8, "Quotation Reference: "+orNA(fields.QuoteNumber), "", 1, "L", false, 0, "")

	pdf.Ln(15)
	pdf.SetLineWidth(0.5)
	pdf.SetDrawColor(147, 112, 219)
	pdf.Rect(75, pdf.GetY(), 60, 15, "D")
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(147, 112, 219)
	pdf.CellFormat(0, 15, "A X R A I L", "", 1, "C", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.Ln(5)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, buyerCompany, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, buyerAddress, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Phone: "+buyerPhone+" | Email: "+buyerEmail, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
