package compare

import (
	"fmt"

	"github.com/deckscope/deckscope/deck"
)

// ============================================================================
// CVU FORMATTER — Thermal unit variable cost across decks
// ============================================================================
// Pure cross-deck single-value series: the deck's own position in the
// batch is the period, not any field value. No sub-entity grouping —
// one CVU per deck for the plant under comparison.
//
// The plant's name and code are header information resolved first-wins
// from whichever deck supplies them non-empty.
// ============================================================================

// CVUFormatter compares a thermal plant's variable unit cost across decks.
type CVUFormatter struct{}

// CanFormat accepts cost tool names or results whose records carry a
// cvu field.
func (f *CVUFormatter) CanFormat(toolName string, sample map[string]any) bool {
	if nameContains(toolName, "cvu", "custo") {
		return true
	}
	return hasField(sample, "cvu")
}

func (f *CVUFormatter) Priority() int { return 10 }

// FormatComparison emits one CVU value per deck, indexed by deck position.
func (f *CVUFormatter) FormatComparison(decks []deck.Deck, toolName, query string, opts Options) (*Payload, error) {
	names := displayNames(decks)
	multi := len(decks) >= 2

	valid := validDecks(decks)
	if len(valid) == 0 {
		return emptyPayload(toolName, "cvu_comparison",
			"Nenhum dos decks informados possui dados de CVU.",
			names, multi), nil
	}

	var plantName, plantCode string
	labels := make([]string, 0, len(valid))
	rows := make([]Row, 0, len(valid))
	values := make([]*float64, 0, len(valid))

	for _, d := range valid {
		records := d.Records()
		if len(records) == 0 {
			continue
		}
		rec := records[0]
		plantName = firstNonEmpty(plantName, rec.Text("nome_usina"))
		plantCode = firstNonEmpty(plantCode, rec.Text("codigo_usina"))

		cvu := rec.Number("cvu")
		labels = append(labels, d.DisplayName)
		values = append(values, cvu)
		rows = append(rows, Row{
			"deck":   d.DisplayName,
			"usina":  rec.Text("nome_usina"),
			"codigo": rec.Text("codigo_usina"),
			"cvu":    nullable(cvu),
		})
	}

	if len(rows) == 0 {
		return emptyPayload(toolName, "cvu_comparison",
			"Nenhum registro de CVU extraível nos decks informados.",
			names, multi), nil
	}

	if plantName == "" {
		plantName = "?"
	}

	dataset := newDataset(fmt.Sprintf("CVU — %s", plantName), len(labels), opts.palette()[0])
	copy(dataset.Data, values)

	return &Payload{
		ComparisonTable: rows,
		ChartData:       &ChartData{Labels: labels, Datasets: []Dataset{dataset}},
		ChartConfig: &ChartConfig{
			Title:      fmt.Sprintf("CVU de %s por deck", plantName),
			XAxisLabel: "Deck",
			YAxisLabel: "R$/MWh",
		},
		VisualizationType: "cvu_comparison",
		DeckNames:         names,
		IsMultiDeck:       multi,
		FinalResponse: fmt.Sprintf("CVU da usina %s comparado entre %d decks.",
			plantName, len(rows)),
		ToolName: toolName,
	}, nil
}
