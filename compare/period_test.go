package compare

import (
	"testing"

	"github.com/deckscope/deckscope/deck"
)

// ============================================================================
// PERIOD TESTS — Calendar and sequential-week keys
// ============================================================================

// Sequential-week monotonicity: week-1 decks of three consecutive months,
// reference = first, yield keys 1, 6, 11 under the 5-weeks-per-month
// convention.
func TestSequentialWeekMonotonicity(t *testing.T) {
	ref := deck.NameInfo{Year: 2025, Month: 1, Week: 1}

	cases := []struct {
		ni   deck.NameInfo
		want int
	}{
		{deck.NameInfo{Year: 2025, Month: 1, Week: 1}, 1},
		{deck.NameInfo{Year: 2025, Month: 2, Week: 1}, 6},
		{deck.NameInfo{Year: 2025, Month: 3, Week: 1}, 11},
		{deck.NameInfo{Year: 2025, Month: 1, Week: 3}, 3},
		{deck.NameInfo{Year: 2026, Month: 1, Week: 1}, 61},
	}

	for _, tc := range cases {
		if got := SequentialWeek(ref, tc.ni); got != tc.want {
			t.Errorf("SequentialWeek(%+v) = %d, want %d", tc.ni, got, tc.want)
		}
	}
}

func TestCalendarKey(t *testing.T) {
	if got := CalendarKey(2025, 3); got != "2025-03" {
		t.Errorf("CalendarKey = %q, want 2025-03", got)
	}
	if got := CalendarKey(2025, 11); got != "2025-11" {
		t.Errorf("CalendarKey = %q, want 2025-11", got)
	}
}

func TestCalendarFromRecord(t *testing.T) {
	cases := []struct {
		name string
		rec  deck.Record
		want string
		ok   bool
	}{
		{"explicit fields", deck.Record{"ano": 2025.0, "mes": 2.0}, "2025-02", true},
		{"iso date", deck.Record{"data": "2025-04-15"}, "2025-04", true},
		{"fields beat date", deck.Record{"ano": 2025.0, "mes": 1.0, "data": "2030-12-01"}, "2025-01", true},
		{"invalid month", deck.Record{"ano": 2025.0, "mes": 13.0}, "", false},
		{"nothing", deck.Record{"valor": 1.0}, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := calendarFromRecord(tc.rec)
			if got != tc.want || ok != tc.ok {
				t.Errorf("calendarFromRecord = (%q, %v), want (%q, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

// The reference is the chronologically first parseable deck, regardless
// of input order.
func TestReferenceInfo(t *testing.T) {
	decks := []deck.Deck{
		deck.New("DC202503-rv0", "", nil),
		deck.New("DC202501-rv2", "", nil),
		deck.New("sem-periodo", "", nil),
		deck.New("DC202502-rv1", "", nil),
	}

	ref, ok := referenceInfo(decks)
	if !ok {
		t.Fatal("expected a reference deck")
	}
	want := deck.NameInfo{Year: 2025, Month: 1, Week: 3}
	if ref != want {
		t.Errorf("reference = %+v, want %+v", ref, want)
	}

	if _, ok := referenceInfo([]deck.Deck{deck.New("abc", "", nil)}); ok {
		t.Error("expected no reference when nothing parses")
	}
}
