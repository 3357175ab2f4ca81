package anthropic

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// quotationReplySchema is deliberately lenient about numeric shapes (models
// mix numbers and quoted numbers) but strict about structure: items must be
// an array of objects and top-level fields must not change type. Any
// mismatch sends the reply to the fallback record instead of downstream.
const quotationReplySchema = `{
  "type": "object",
  "properties": {
    "company_name":  {"type": ["string", "null"]},
    "email":         {"type": ["string", "null"]},
    "phone":         {"type": ["string", "null"]},
    "address":       {"type": ["string", "null"]},
    "buyer_name":    {"type": ["string", "null"]},
    "buyer_address": {"type": ["string", "null"]},
    "quote_number":  {"type": ["string", "null"]},
    "date":          {"type": ["string", "null"]},
    "items": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "properties": {
          "description":  {"type": ["string", "null"]},
          "quantity":     {"type": ["number", "string", "null"]},
          "unit_price":   {"type": ["number", "string", "null"]},
          "total_amount": {"type": ["number", "string", "null"]}
        }
      }
    },
    "subtotal": {"type": ["number", "string", "null"]},
    "tax":      {"type": ["number", "string", "null"]},
    "total":    {"type": ["number", "string", "null"]}
  }
}`

func compileReplySchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("quotation-reply.json", strings.NewReader(quotationReplySchema)); err != nil {
		return nil, err
	}
	return compiler.Compile("quotation-reply.json")
}
