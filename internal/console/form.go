package console

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"product-console/internal/model"
)

// ErrInvalidID is returned when the ID field is not a finite, non-zero number
var ErrInvalidID = errors.New("product ID must be a valid number")

// Form holds the raw text of the five product fields
type Form struct {
	ID       string
	Name     string
	Category string
	Price    string
	Stock    string
}

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// Product converts the form into a record. Only the ID is checked. Price and
// Stock use their leading numeric text ("12 units" is 12, "5.0" stock is 5)
// and become 0 when there is none.
func (f Form) Product() (model.Product, error) {
	p := model.Product{
		Name:     strings.TrimSpace(f.Name),
		Category: strings.TrimSpace(f.Category),
		Price:    parseFloatPrefix(f.Price),
		Stock:    parseIntPrefix(f.Stock),
	}

	id, ok := parseNumber(f.ID)
	if !ok || id == 0 {
		return p, ErrInvalidID
	}
	p.ID = id
	return p, nil
}

// parseNumber reads the whole field as a number: decimal or exponent form,
// or an unsigned 0x, 0o or 0b integer. Blank text is 0.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.Contains(s, "_") {
				return 0, false
			}
			v, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(v), true
		}
	}

	if !floatPrefix.MatchString(s) || floatPrefix.FindString(s) != s {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseFloatPrefix(s string) float64 {
	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func parseIntPrefix(s string) float64 {
	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0
	}
	return v
}
