package deck

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// NUMERIC SANITIZATION
// ============================================================================
// Raw tool output arrives as decoded JSON, so numbers may be float64,
// json.Number, or strings depending on the extraction path. Downstream
// renderers and JSON encoders cannot represent NaN/Inf, so those
// sanitize to nil (absent) here and never travel further.
// ============================================================================

// SanitizeNumber converts a raw scalar into a nullable float64.
// NaN, ±Inf and anything non-numeric become nil. A genuine zero stays
// a pointer to 0 — absence and zero are never conflated.
func SanitizeNumber(raw any) *float64 {
	switch v := raw.(type) {
	case nil:
		return nil
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return finite(float64(v))
	case int32:
		return finite(float64(v))
	case int64:
		return finite(float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}
		return finite(f)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
		if err != nil {
			return nil
		}
		return finite(f)
	}
	return nil
}

func finite(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// CompactText renders a scalar as a short label: integral floats drop
// the decimals, fractional values keep two.
func CompactText(raw any) string {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ""
		}
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', 2, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprintf("%v", raw)
}
