package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is an exact decimal monetary value. Model output is loose about
// numeric shapes, so decoding accepts JSON numbers, quoted numbers and null;
// anything unparsable coerces to zero instead of failing. This is the single
// coercion policy shared by the normalizer and the purchase order deriver.
type Amount struct {
	decimal.Decimal
}

func AmountFromString(s string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}
	}
	return Amount{d}
}

func AmountFromFloat(f float64) Amount {
	return Amount{decimal.NewFromFloat(f)}
}

func AmountFromInt(n int64) Amount {
	return Amount{decimal.NewFromInt(n)}
}

// CoerceAmount converts a loosely typed value into an Amount. Coercion
// failure yields zero, never an error.
func CoerceAmount(v any) Amount {
	switch t := v.(type) {
	case nil:
		return Amount{}
	case float64:
		return AmountFromFloat(t)
	case int:
		return AmountFromInt(int64(t))
	case int64:
		return AmountFromInt(t)
	case json.Number:
		return AmountFromString(t.String())
	case string:
		return AmountFromString(t)
	case decimal.Decimal:
		return Amount{t}
	case Amount:
		return t
	default:
		return Amount{}
	}
}

func (a Amount) Plus(b Amount) Amount {
	return Amount{a.Decimal.Add(b.Decimal)}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		a.Decimal = decimal.Decimal{}
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		a.Decimal = decimal.Decimal{}
		return nil
	}
	a.Decimal = d
	return nil
}

// MarshalJSON emits a plain JSON number so response envelopes carry numerics
// unquoted regardless of the decimal library's default.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
