package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NormalizeName converts a name cell to text and trims surrounding whitespace.
// A nil value yields the empty string.
func NormalizeName(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// ParseNumber coerces a cell value to a finite number.
// The second result is false for blank, NaN, infinite or non-numeric input.
// Decimal commas are accepted in text ("12,5" is 12.5).
func ParseNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		if v == "" {
			return 0, false
		}
		return parseText(v)
	default:
		return parseText(fmt.Sprint(v))
	}
}

// Number is ParseNumber returning nil for an absent value.
func Number(value interface{}) *float64 {
	n, ok := ParseNumber(value)
	if !ok {
		return nil
	}
	return &n
}

func parseText(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return finite(n)
}

func finite(n float64) (float64, bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
