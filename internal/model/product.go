package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Product is the record exchanged with the product API. The JSON keys match
// what the records and uploads endpoints use.
type Product struct {
	ID       float64 `json:"ID"`
	Name     string  `json:"Name"`
	Category string  `json:"Category"`
	Price    float64 `json:"Price"`
	Stock    float64 `json:"Stock"`
}

// UnmarshalJSON decodes a record without enforcing a schema. Numbers may
// arrive as JSON numbers or numeric strings; anything that cannot be coerced
// is left at its zero value, as is every field of a non-object element.
func (p *Product) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		*p = Product{}
		return nil
	}

	*p = Product{
		ID:       looseNumber(fields["ID"]),
		Name:     looseString(fields["Name"]),
		Category: looseString(fields["Category"]),
		Price:    looseNumber(fields["Price"]),
		Stock:    looseNumber(fields["Stock"]),
	}
	return nil
}

func looseNumber(raw json.RawMessage) float64 {
	var v interface{}
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return 0
	}

	switch x := v.(type) {
	case float64:
		return x
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	}
	return 0
}

func looseString(raw json.RawMessage) string {
	var v interface{}
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return ""
	}

	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	}
	return ""
}
