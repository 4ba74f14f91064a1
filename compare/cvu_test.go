package compare

import (
	"reflect"
	"testing"

	"github.com/deckscope/deckscope/deck"
)

// ============================================================================
// CVU FORMATTER TESTS
// ============================================================================

func cvuDeck(name string, plant string, cvu any) deck.Deck {
	return mkDeck(name, map[string]any{
		"codigo_usina": 13.0,
		"nome_usina":   plant,
		"cvu":          cvu,
	})
}

// The deck's own position is the period: labels follow input order, one
// value per deck.
func TestCVUDeckIndexAsPeriod(t *testing.T) {
	var f CVUFormatter
	decks := []deck.Deck{
		cvuDeck("DC202503-rv0", "ANGRA 1", 31.2),
		cvuDeck("DC202501-rv0", "ANGRA 1", 30.8),
	}

	p, err := f.FormatComparison(decks, "comparar_cvu", "", Options{})
	if err != nil {
		t.Fatal(err)
	}

	// input order preserved, no re-sorting by deck name
	want := []string{"DC202503-rv0", "DC202501-rv0"}
	if !reflect.DeepEqual(p.ChartData.Labels, want) {
		t.Errorf("labels = %v, want input order %v", p.ChartData.Labels, want)
	}
	assertAligned(t, p.ChartData)

	if got := *p.ChartData.Datasets[0].Data[0]; got != 31.2 {
		t.Errorf("first value = %v, want 31.2", got)
	}
}

// Entity header fields resolve first-wins and never get overwritten by
// later decks.
func TestCVUEntityFirstWins(t *testing.T) {
	var f CVUFormatter
	decks := []deck.Deck{
		cvuDeck("DC202501-rv0", "", 30.0),
		cvuDeck("DC202502-rv0", "ANGRA 1", 31.0),
		cvuDeck("DC202503-rv0", "OUTRA USINA", 32.0),
	}

	p, _ := f.FormatComparison(decks, "comparar_cvu", "", Options{})
	if p.ChartData.Datasets[0].Label != "CVU — ANGRA 1" {
		t.Errorf("dataset label = %q, want the first non-empty plant name", p.ChartData.Datasets[0].Label)
	}
}

// Nothing resolves a plant name → fixed placeholder, never absent.
func TestCVUPlaceholderEntity(t *testing.T) {
	var f CVUFormatter
	decks := []deck.Deck{
		mkDeck("DC202501-rv0", map[string]any{"cvu": 30.0}),
	}

	p, _ := f.FormatComparison(decks, "comparar_cvu", "", Options{})
	if p.ChartData.Datasets[0].Label != "CVU — ?" {
		t.Errorf("dataset label = %q, want placeholder entity", p.ChartData.Datasets[0].Label)
	}
}

func TestCVUNullPreserved(t *testing.T) {
	var f CVUFormatter
	decks := []deck.Deck{
		cvuDeck("DC202501-rv0", "ANGRA 1", nil),
		cvuDeck("DC202502-rv0", "ANGRA 1", 0.0),
	}

	p, _ := f.FormatComparison(decks, "comparar_cvu", "", Options{})
	if p.ComparisonTable[0]["cvu"] != nil {
		t.Errorf("absent cvu = %v, want nil", p.ComparisonTable[0]["cvu"])
	}
	if got := cellFloat(t, p.ComparisonTable[1], "cvu"); got != 0.0 {
		t.Errorf("attested zero cvu = %v, want 0", got)
	}
	if p.ChartData.Datasets[0].Data[0] != nil {
		t.Error("absent cvu should be a null chart placeholder")
	}
}

func TestCVUEmptyInput(t *testing.T) {
	var f CVUFormatter
	p, err := f.FormatComparison([]deck.Deck{emptyDeck("DC202501-rv0")}, "comparar_cvu", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	assertEmptyPayload(t, p, "comparar_cvu")
}
