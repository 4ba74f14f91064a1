package compare

import (
	"strings"
	"testing"

	"github.com/deckscope/deckscope/deck"
)

// ============================================================================
// FLOW CONSTRAINT FORMATTER TESTS
// ============================================================================

func flowRecordFixture(tipo string, gmin1 float64) map[string]any {
	return map[string]any{
		"tipo":    tipo,
		"GMIN P1": gmin1,
		"GMIN P2": gmin1 + 1,
		"GMIN P3": gmin1 + 2,
		"GMAX P1": gmin1 * 10,
		"GMAX P2": gmin1*10 + 1,
		"GMAX P3": gmin1*10 + 2,
	}
}

// Two categories across the same decks: each chart carries
// 3 load levels × 2 categories = 6 series.
func TestFlowCategorySeries(t *testing.T) {
	var f FlowFormatter
	decks := []deck.Deck{
		mkDeck("DC202501-rv0", flowRecordFixture("QTUR", 10), flowRecordFixture("QDEF", 20)),
		mkDeck("DC202502-rv0", flowRecordFixture("QTUR", 11), flowRecordFixture("QDEF", 21)),
		mkDeck("DC202503-rv0", flowRecordFixture("QTUR", 12), flowRecordFixture("QDEF", 22)),
	}

	p, err := f.FormatComparison(decks, "comparar_restricoes_fluxo", "", Options{})
	if err != nil {
		t.Fatal(err)
	}

	if got := len(p.ChartDataGmin.Datasets); got != 6 {
		t.Fatalf("expected 6 gmin series, got %d", got)
	}
	if got := len(p.ChartDataGmax.Datasets); got != 6 {
		t.Fatalf("expected 6 gmax series, got %d", got)
	}
	assertAligned(t, p.ChartDataGmin)
	assertAligned(t, p.ChartDataGmax)

	// labels disambiguated by category
	foundQTUR, foundQDEF := false, false
	for _, ds := range p.ChartDataGmin.Datasets {
		if strings.Contains(ds.Label, "(QTUR)") {
			foundQTUR = true
		}
		if strings.Contains(ds.Label, "(QDEF)") {
			foundQDEF = true
		}
	}
	if !foundQTUR || !foundQDEF {
		t.Error("series labels must carry their category")
	}

	// one row per (period, category)
	if len(p.ComparisonTable) != 6 {
		t.Errorf("expected 6 rows, got %d", len(p.ComparisonTable))
	}
}

// A category missing at one period renders as zero in the chart (line
// continuity) while the table simply has no row for that pair.
func TestFlowMissingCategoryZeroFill(t *testing.T) {
	var f FlowFormatter
	decks := []deck.Deck{
		mkDeck("DC202501-rv0", flowRecordFixture("QTUR", 10), flowRecordFixture("QDEF", 20)),
		mkDeck("DC202502-rv0", flowRecordFixture("QTUR", 11)),
	}

	p, _ := f.FormatComparison(decks, "comparar_restricoes_fluxo", "", Options{})

	var qdefMin *Dataset
	for i := range p.ChartDataGmin.Datasets {
		if p.ChartDataGmin.Datasets[i].Label == "GMIN P1 (QDEF)" {
			qdefMin = &p.ChartDataGmin.Datasets[i]
		}
	}
	if qdefMin == nil {
		t.Fatal("missing GMIN P1 (QDEF) series")
	}
	if len(qdefMin.Data) != 2 {
		t.Fatalf("expected 2 points, got %d", len(qdefMin.Data))
	}
	if qdefMin.Data[0] == nil || *qdefMin.Data[0] != 20 {
		t.Errorf("first point = %v, want 20", qdefMin.Data[0])
	}
	if qdefMin.Data[1] == nil || *qdefMin.Data[1] != 0 {
		t.Errorf("second point = %v, want zero fill", qdefMin.Data[1])
	}

	if len(p.ComparisonTable) != 3 {
		t.Errorf("expected 3 rows, got %d", len(p.ComparisonTable))
	}
}

// Same period and category from two decks: first deck in input order wins.
func TestFlowDuplicateCellFirstWins(t *testing.T) {
	var f FlowFormatter
	decks := []deck.Deck{
		mkDeck("DC202501-rv0", flowRecordFixture("QTUR", 10)),
		mkDeck("DC202501-rv0-rerun", flowRecordFixture("QTUR", 99)),
	}

	p, _ := f.FormatComparison(decks, "comparar_restricoes_fluxo", "", Options{})
	if len(p.ComparisonTable) != 1 {
		t.Fatalf("expected 1 row, got %d", len(p.ComparisonTable))
	}
	if got := cellFloat(t, p.ComparisonTable[0], "GMIN P1"); got != 10 {
		t.Errorf("GMIN P1 = %v, want first deck's 10", got)
	}
}

func TestFlowRegionPairInTitle(t *testing.T) {
	var f FlowFormatter
	decks := []deck.Deck{
		mkDeck("DC202501-rv0", flowRecordFixture("QTUR", 10)),
	}

	p, _ := f.FormatComparison(decks, "comparar_restricoes_fluxo",
		"limites de fluxo entre Sudeste e Nordeste", Options{})
	if !strings.Contains(p.ChartConfigGmin.Title, "SE → NE") {
		t.Errorf("title = %q, want the SE → NE pair", p.ChartConfigGmin.Title)
	}
}

func TestFlowEmptyInput(t *testing.T) {
	var f FlowFormatter
	p, err := f.FormatComparison(nil, "comparar_restricoes_fluxo", "", Options{})
	if err != nil {
		t.Fatal(err)
	}
	assertEmptyPayload(t, p, "comparar_restricoes_fluxo")
}
