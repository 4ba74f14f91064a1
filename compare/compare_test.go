package compare

import (
	"testing"

	"github.com/deckscope/deckscope/deck"
)

// ============================================================================
// SHARED TEST FIXTURES
// ============================================================================

// mkDeck builds a deck whose result carries a "data" record sequence.
func mkDeck(name string, records ...map[string]any) deck.Deck {
	data := make([]any, 0, len(records))
	for _, r := range records {
		data = append(data, r)
	}
	return deck.New(name, "", map[string]any{"data": data})
}

// emptyDeck builds a deck with no usable result.
func emptyDeck(name string) deck.Deck {
	return deck.New(name, "", map[string]any{"data": []any{}})
}

// assertAligned checks the chart alignment invariant:
// len(dataset.Data) == len(Labels) for every dataset.
func assertAligned(t *testing.T, chart *ChartData) {
	t.Helper()
	if chart == nil {
		t.Fatalf("expected chart data, got nil")
	}
	for _, ds := range chart.Datasets {
		if len(ds.Data) != len(chart.Labels) {
			t.Errorf("dataset %q: %d points for %d labels", ds.Label, len(ds.Data), len(chart.Labels))
		}
	}
}

// assertEmptyPayload checks the uniform empty-input contract.
func assertEmptyPayload(t *testing.T, p *Payload, toolName string) {
	t.Helper()
	if p == nil {
		t.Fatal("expected a payload, got nil")
	}
	if len(p.ComparisonTable) != 0 {
		t.Errorf("expected empty comparison_table, got %d rows", len(p.ComparisonTable))
	}
	if p.ChartData != nil || p.ChartDataGmin != nil || p.ChartDataGmax != nil {
		t.Error("expected nil chart payloads")
	}
	if p.FinalResponse == "" {
		t.Error("expected a non-empty final_response")
	}
	if p.ToolName != toolName {
		t.Errorf("tool_name = %q, want %q", p.ToolName, toolName)
	}
}

// value reads a nullable table cell as a float, failing on nil.
func cellFloat(t *testing.T, row Row, key string) float64 {
	t.Helper()
	raw, ok := row[key]
	if !ok || raw == nil {
		t.Fatalf("cell %q absent or nil", key)
	}
	f, ok := raw.(float64)
	if !ok {
		t.Fatalf("cell %q is %T, want float64", key, raw)
	}
	return f
}
