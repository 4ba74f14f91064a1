package compare

import (
	"fmt"

	"github.com/deckscope/deckscope/deck"
)

// ============================================================================
// LOAD FORMATTER — System load (carga) across decks
// ============================================================================
// Simple timeseries shape: one value per deck, aligned on calendar
// "YYYY-MM" keys taken from the records' explicit ano/mes fields, with
// the deck name as fallback.
//
// Only stage 1 is compared — decomposition decks carry several stages
// per study and later stages overlap the next deck's horizon. Records
// for other stages are dropped silently.
// ============================================================================

const loadStage = 1

// LoadFormatter compares the load tool's output across decks.
type LoadFormatter struct{}

// CanFormat accepts load tool names or results whose records carry a
// load field.
func (f *LoadFormatter) CanFormat(toolName string, sample map[string]any) bool {
	if nameContains(toolName, "carga", "load") {
		return true
	}
	return hasField(sample, "carga_mwmed")
}

func (f *LoadFormatter) Priority() int { return 10 }

// FormatComparison aligns one stage-1 load value per deck onto a
// calendar index.
func (f *LoadFormatter) FormatComparison(decks []deck.Deck, toolName, query string, opts Options) (*Payload, error) {
	names := displayNames(decks)
	multi := len(decks) >= 2

	valid := validDecks(decks)
	if len(valid) == 0 {
		return emptyPayload(toolName, "load_comparison",
			"Nenhum dos decks informados possui dados de carga.",
			names, multi), nil
	}

	type contribution struct {
		deckName string
		value    *float64
	}

	log := opts.logger()
	index := make(map[string]contribution)
	for _, d := range valid {
		rec, ok := stageOneRecord(d)
		if !ok {
			continue
		}
		key, ok := calendarFromRecord(rec)
		if !ok {
			key, ok = calendarFromDeck(d)
		}
		if !ok {
			// the deck stays listed in deck_names but contributes
			// nothing to the temporal series
			log.Debugf("deck %s: no derivable period, dropped from load series", d.Name)
			continue
		}
		if _, taken := index[key]; taken {
			// duplicate period: first deck in input order wins
			continue
		}
		index[key] = contribution{deckName: d.DisplayName, value: rec.Number("carga_mwmed")}
	}

	if len(index) == 0 {
		return emptyPayload(toolName, "load_comparison",
			"Não foi possível derivar períodos para os decks informados.",
			names, multi), nil
	}

	keys := sortedStringKeys(index)

	rows := make([]Row, 0, len(keys))
	dataset := newDataset("Carga (MWmed)", len(keys), opts.palette()[0])
	for i, key := range keys {
		c := index[key]
		rows = append(rows, Row{
			"periodo":     key,
			"deck":        c.deckName,
			"carga_mwmed": nullable(c.value),
		})
		dataset.Data[i] = c.value
	}

	return &Payload{
		ComparisonTable: rows,
		ChartData:       &ChartData{Labels: keys, Datasets: []Dataset{dataset}},
		ChartConfig: &ChartConfig{
			Title:      "Comparação de Carga",
			XAxisLabel: "Período",
			YAxisLabel: "MWmed",
		},
		VisualizationType: "load_comparison",
		DeckNames:         names,
		IsMultiDeck:       multi,
		FinalResponse: fmt.Sprintf("Comparação de carga (estágio %d) em %d períodos entre %d decks.",
			loadStage, len(keys), len(decks)),
		ToolName: toolName,
	}, nil
}

// stageOneRecord returns the deck's first record at the fixed comparison
// stage. Records without an estagio field are treated as stage 1.
func stageOneRecord(d deck.Deck) (deck.Record, bool) {
	for _, rec := range d.Records() {
		stage, ok := rec.Int("estagio")
		if ok && stage != loadStage {
			continue
		}
		return rec, true
	}
	return nil, false
}

// nullable converts a *float64 into the JSON-safe scalar for a table
// row: the value itself, or nil.
func nullable(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
