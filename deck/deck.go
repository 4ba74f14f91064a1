package deck

// ============================================================================
// DECK — Immutable view of one dataset snapshot's tool result
// ============================================================================
// A deck is one planning-dataset snapshot (e.g. DC202501-rv2). The object
// of comparison: the same tool runs against several decks and the
// comparison pipeline aligns the per-deck results.
//
// Decks are constructed once per comparison request and discarded after.
// ============================================================================

// Deck wraps one snapshot's raw tool result plus identity metadata.
//
// Name encodes the actual period (year, month, operational week) — callers
// pass decks in chronological order, but formatters re-derive temporal
// order from Name rather than trusting array position.
type Deck struct {
	Name        string
	DisplayName string
	Result      map[string]any
}

// New builds a Deck, defaulting DisplayName to Name.
func New(name, displayName string, result map[string]any) Deck {
	if displayName == "" {
		displayName = name
	}
	return Deck{Name: name, DisplayName: displayName, Result: result}
}

// HasData reports whether the deck carries a usable result: non-empty,
// not an error envelope, and if a "data" sequence is present it must be
// non-empty.
func (d Deck) HasData() bool {
	if len(d.Result) == 0 {
		return false
	}
	if _, failed := d.Result["error"]; failed {
		return false
	}
	if raw, ok := d.Result["data"]; ok {
		return len(asList(raw)) > 0
	}
	return true
}

// Records returns the ordered "data" sequence of the result, or nil.
func (d Deck) Records() []Record {
	raw, ok := d.Result["data"]
	if !ok {
		return nil
	}
	items := asList(raw)
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			records = append(records, Record(m))
		}
	}
	return records
}

func asList(raw any) []any {
	switch v := raw.(type) {
	case []any:
		return v
	case []map[string]any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = v[i]
		}
		return out
	case []Record:
		out := make([]any, len(v))
		for i := range v {
			out[i] = map[string]any(v[i])
		}
		return out
	}
	return nil
}

// ============================================================================
// RECORD — One observation row for a deck
// ============================================================================

// Record is a generic field-name → scalar mapping: one observation for a
// sub-entity (thermal plant, constraint, flow type) at a period/stage.
//
// Absent ("not applicable") and numeric 0 ("attested zero") are distinct
// throughout the pipeline: Number returns nil for the former and a
// pointer to 0 for the latter, never the reverse.
type Record map[string]any

// Number extracts a sanitized numeric field. Missing, non-numeric,
// NaN and infinite values all yield nil.
func (r Record) Number(key string) *float64 {
	raw, ok := r[key]
	if !ok {
		return nil
	}
	return SanitizeNumber(raw)
}

// Text extracts a string field, rendering numeric values compactly.
// Missing or nil fields yield "".
func (r Record) Text(key string) string {
	raw, ok := r[key]
	if !ok || raw == nil {
		return ""
	}
	return CompactText(raw)
}

// Int extracts an integer-valued field. The boolean reports presence of
// a usable numeric value.
func (r Record) Int(key string) (int, bool) {
	v := r.Number(key)
	if v == nil {
		return 0, false
	}
	return int(*v), true
}
