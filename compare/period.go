package compare

import (
	"fmt"
	"sort"
	"time"

	"github.com/deckscope/deckscope/deck"
)

// ============================================================================
// PERIOD KEYS — Temporal alignment across decks
// ============================================================================
// Two key variants coexist across formatters:
//
//   Calendar period     "YYYY-MM", from explicit year/month fields, an
//                       ISO date string, or a deck-name parse. Sorts
//                       lexicographically.
//   Sequential week     integer counted relative to a reference deck,
//                       (Δmonths × 5) + Δweek + 1, assuming a fixed
//                       5-weeks-per-month convention.
//
// The 5-weeks-per-month convention is a known approximation: calendar
// months can have fewer or more operative weeks, which may misalign the
// sequence. Preserved as-is.
//
// The reference deck is per-call scratch state: the chronologically
// first parseable deck of the batch, re-derived fresh on every
// comparison. Keys computed against different references do not compose.
// ============================================================================

const weeksPerMonth = 5

// CalendarKey formats a year/month pair as a sortable "YYYY-MM" key.
func CalendarKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// SequentialWeek numbers a parsed deck period relative to a reference,
// 1-based: the reference deck itself is week 1.
func SequentialWeek(ref, ni deck.NameInfo) int {
	months := (ni.Year-ref.Year)*12 + (ni.Month - ref.Month)
	return months*weeksPerMonth + (ni.Week - ref.Week) + 1
}

// referenceInfo finds the chronologically first deck with a parseable
// name. The boolean is false when no deck name parses.
func referenceInfo(decks []deck.Deck) (deck.NameInfo, bool) {
	var ref deck.NameInfo
	found := false
	for _, d := range decks {
		ni, ok := deck.ParseName(d.Name)
		if !ok {
			continue
		}
		if !found || ni.Before(ref) {
			ref = ni
			found = true
		}
	}
	return ref, found
}

// WeekLabel renders a compact sequential-week axis label.
func WeekLabel(week int) string {
	return fmt.Sprintf("S%d", week)
}

// calendarFromRecord derives a "YYYY-MM" key from a record's explicit
// ano/mes fields, falling back to an ISO "data" date string.
func calendarFromRecord(r deck.Record) (string, bool) {
	year, okY := r.Int("ano")
	month, okM := r.Int("mes")
	if okY && okM && month >= 1 && month <= 12 {
		return CalendarKey(year, month), true
	}
	if raw := r.Text("data"); raw != "" {
		for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return CalendarKey(t.Year(), int(t.Month())), true
			}
		}
	}
	return "", false
}

// calendarFromDeck derives a "YYYY-MM" key from the deck name itself.
func calendarFromDeck(d deck.Deck) (string, bool) {
	ni, ok := deck.ParseName(d.Name)
	if !ok {
		return "", false
	}
	return CalendarKey(ni.Year, ni.Month), true
}

// sortedStringKeys returns the map's keys in ascending lexicographic
// order — chronological for "YYYY-MM" keys.
func sortedStringKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedIntKeys returns the map's keys in ascending numeric order.
func sortedIntKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
