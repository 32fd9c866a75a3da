package works

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ValidID reports whether id is a well-formed artwork identifier.
// Example: "3f0c1a9e-6a57-4f6f-9f0e-2b7d1c1f8a10" -> true, "not-an-id" -> false
func ValidID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// ParsePrice coerces a decoded JSON value into a price.
// Numbers and numeric strings are accepted; anything else, including
// negative or non-finite values, becomes 0.
// Example: "12.50" -> 12.5, nil -> 0, "abc" -> 0
func ParsePrice(raw interface{}) float64 {
	var v float64
	switch p := raw.(type) {
	case float64:
		v = p
	case json.Number:
		f, err := p.Float64()
		if err != nil {
			return 0
		}
		v = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0
		}
		v = f
	default:
		return 0
	}

	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
