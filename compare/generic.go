package compare

import (
	"fmt"

	"github.com/deckscope/deckscope/deck"
)

// ============================================================================
// GENERIC FORMATTER — Lowest-priority catch-all
// ============================================================================
// Accepts any tool name and result shape, guaranteeing the registry
// always resolves a formatter. Emits one table row per deck with a
// record count; no chart.
// ============================================================================

// GenericFormatter is the unconditional fallback variant.
type GenericFormatter struct{}

// CanFormat always accepts.
func (f *GenericFormatter) CanFormat(toolName string, sample map[string]any) bool {
	return true
}

// Priority is the lowest possible tie-break weight.
func (f *GenericFormatter) Priority() int { return 0 }

// FormatComparison lists every deck with its record count.
func (f *GenericFormatter) FormatComparison(decks []deck.Deck, toolName, query string, opts Options) (*Payload, error) {
	names := displayNames(decks)
	multi := len(decks) >= 2

	valid := validDecks(decks)
	if len(valid) == 0 {
		return emptyPayload(toolName, "generic_comparison",
			"Nenhum dos decks informados retornou dados para esta ferramenta.",
			names, multi), nil
	}

	rows := make([]Row, 0, len(valid))
	for _, d := range valid {
		count := len(d.Records())
		if count == 0 && len(d.Result) > 0 {
			// scalar-style result without a "data" sequence
			count = 1
		}
		rows = append(rows, Row{
			"deck":      d.DisplayName,
			"registros": count,
		})
	}

	return &Payload{
		ComparisonTable:   rows,
		ChartData:         nil,
		VisualizationType: "generic_comparison",
		DeckNames:         names,
		IsMultiDeck:       multi,
		FinalResponse: fmt.Sprintf("Comparação entre %d decks (%d com dados) para a ferramenta %s.",
			len(decks), len(valid), toolName),
		ToolName: toolName,
	}, nil
}
