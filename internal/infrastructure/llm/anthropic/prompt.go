package anthropic

import "fmt"

func buildExtractionPrompt(text string) string {
	return fmt.Sprintf(`Extract quotation data from this text and return ONLY a valid JSON object.

Extract these fields:
- company_name: supplier company name
- email: email address
- phone: phone number
- address: full company address
- buyer_name: buyer company name (To: section)
- buyer_address: buyer full address (To: section)
- quote_number: quote/quotation number
- date: date in YYYY-MM-DD format
- items: array of line items, each with description, quantity, unit_price, total_amount
- subtotal: subtotal amount
- tax: tax amount (0 if none)
- total: total amount

Return JSON format only, no markdown and no commentary.

Document text:
%s`, text)
}
