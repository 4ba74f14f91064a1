package compare

import (
	"strings"

	"github.com/deckscope/deckscope/deck"
)

// ============================================================================
// FORMATTER — Capability interface, one variant per tool family
// ============================================================================
// Each variant declares applicability (CanFormat) and a tie-break weight
// (Priority), and transforms a list of decks into a visualization payload.
// The registry always resolves to some formatter — the generic catch-all
// accepts everything at the lowest priority.
// ============================================================================

// Formatter builds a multi-deck comparison payload for one tool family.
type Formatter interface {
	// CanFormat is a pure predicate over the tool name and a structural
	// sample of one result. It returns false on ambiguous or negative
	// evidence rather than erroring.
	CanFormat(toolName string, sample map[string]any) bool

	// Priority is the static tie-break weight; higher wins when several
	// variants accept the same input.
	Priority() int

	// FormatComparison is the core transformation. Well-formed but empty
	// input yields a valid empty payload, never an error.
	FormatComparison(decks []deck.Deck, toolName, query string, opts Options) (*Payload, error)
}

// ============================================================================
// SHARED PREDICATE HELPERS
// ============================================================================

// nameContains reports whether the lowercased tool name carries any of
// the given keywords.
func nameContains(toolName string, keywords ...string) bool {
	lower := strings.ToLower(toolName)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// sampleRecord pulls the first record out of a raw result, for
// structural fingerprinting in CanFormat.
func sampleRecord(result map[string]any) deck.Record {
	if result == nil {
		return nil
	}
	records := deck.Deck{Result: result}.Records()
	if len(records) == 0 {
		return nil
	}
	return records[0]
}

// hasField reports whether the sample's first record carries a field.
func hasField(result map[string]any, field string) bool {
	rec := sampleRecord(result)
	if rec == nil {
		return false
	}
	_, ok := rec[field]
	return ok
}

// ============================================================================
// SHARED EXTRACTION HELPERS
// ============================================================================

// validDecks filters the input to decks that carry usable data,
// preserving input order.
func validDecks(decks []deck.Deck) []deck.Deck {
	out := make([]deck.Deck, 0, len(decks))
	for _, d := range decks {
		if d.HasData() {
			out = append(out, d)
		}
	}
	return out
}

// displayNames lists every deck's display name in input order —
// data-less decks included.
func displayNames(decks []deck.Deck) []string {
	names := make([]string, 0, len(decks))
	for _, d := range decks {
		names = append(names, d.DisplayName)
	}
	return names
}

// firstNonEmpty keeps the first non-empty value it sees — the "first
// deck wins" rule for entity-descriptive header fields.
func firstNonEmpty(current, candidate string) string {
	if current != "" {
		return current
	}
	return candidate
}
