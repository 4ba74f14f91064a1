package compare

import (
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/deckscope/deckscope/deck"
)

// ============================================================================
// ELECTRICAL CONSTRAINT FORMATTER — GMIN/GMAX limits per load level
// ============================================================================
// Aligns one electrical constraint's generation limits across decks on a
// sequential operational-week index and emits TWO chart payloads: a
// minimum-limits view and a maximum-limits view, three series each (one
// per load level P1..P3).
//
// Each record's embedded constraint code is validated against the
// constraint resolved for the whole comparison; records coming from a
// different constraint (upstream join errors) are discarded silently.
// Records with a missing or unparseable code are processed anyway.
// ============================================================================

// loadLevels are the discretized demand buckets carrying limit values.
var loadLevels = []int{1, 2, 3}

func gminField(level int) string { return fmt.Sprintf("GMIN P%d", level) }
func gmaxField(level int) string { return fmt.Sprintf("GMAX P%d", level) }

// ElectricalFormatter compares electrical constraint limits across decks.
type ElectricalFormatter struct{}

// CanFormat accepts electrical-constraint names or GMIN/GMAX records
// carrying a constraint code. Records with a flow-type field belong to
// the flow tool family and are rejected regardless of other matches.
func (f *ElectricalFormatter) CanFormat(toolName string, sample map[string]any) bool {
	if hasField(sample, "tipo") {
		return false
	}
	if nameContains(toolName, "restricao_eletrica", "restricoes_eletricas", "eletrica", "electrical") {
		return true
	}
	return hasField(sample, gminField(1)) && hasField(sample, "codigo_restricao")
}

func (f *ElectricalFormatter) Priority() int { return 20 }

// FormatComparison builds the per-week limit table and the paired
// GMIN/GMAX charts.
func (f *ElectricalFormatter) FormatComparison(decks []deck.Deck, toolName, query string, opts Options) (*Payload, error) {
	names := displayNames(decks)
	multi := len(decks) >= 2

	valid := validDecks(decks)
	if len(valid) == 0 {
		return emptyPayload(toolName, "constraint_comparison",
			"Nenhum dos decks informados possui dados de restrições elétricas.",
			names, multi), nil
	}

	log := opts.logger()
	targetCode := queryCode(query)
	var constraintName string

	type contribution struct {
		deckName string
		rec      deck.Record
	}

	ref, hasRef := referenceInfo(valid)
	index := make(map[int]contribution)

	for _, d := range valid {
		rec, ok := constraintRecord(d, &targetCode, log)
		if !ok {
			continue
		}
		constraintName = firstNonEmpty(constraintName, rec.Text("nome_restricao"))

		if !hasRef {
			continue
		}
		ni, ok := deck.ParseName(d.Name)
		if !ok {
			// unparseable deck name: contributes header fields only
			continue
		}
		week := SequentialWeek(ref, ni)
		if _, taken := index[week]; taken {
			continue
		}
		index[week] = contribution{deckName: d.DisplayName, rec: rec}
	}

	if len(index) == 0 {
		return emptyPayload(toolName, "constraint_comparison",
			fmt.Sprintf("Nenhum registro da restrição %s pôde ser alinhado no tempo.", orPlaceholder(targetCode)),
			names, multi), nil
	}

	weeks := sortedIntKeys(index)
	labels := make([]string, len(weeks))
	for i, w := range weeks {
		labels[i] = WeekLabel(w)
	}

	palette := opts.palette()
	gmin := make([]Dataset, len(loadLevels))
	gmax := make([]Dataset, len(loadLevels))
	for i, level := range loadLevels {
		color := palette[i%len(palette)]
		gmin[i] = newDataset(gminField(level), len(weeks), color)
		gmax[i] = newDataset(gmaxField(level), len(weeks), color)
	}

	rows := make([]Row, 0, len(weeks))
	for i, w := range weeks {
		c := index[w]
		row := Row{
			"semana": w,
			"deck":   c.deckName,
		}
		for j, level := range loadLevels {
			minV := c.rec.Number(gminField(level))
			maxV := c.rec.Number(gmaxField(level))
			row[gminField(level)] = nullable(minV)
			row[gmaxField(level)] = nullable(maxV)
			gmin[j].Data[i] = minV
			gmax[j].Data[i] = maxV
		}
		rows = append(rows, row)
	}

	entity := orPlaceholder(targetCode)
	if constraintName != "" {
		entity = fmt.Sprintf("%s (%s)", constraintName, orPlaceholder(targetCode))
	}

	return &Payload{
		ComparisonTable: rows,
		ChartData:       nil,
		ChartDataGmin:   &ChartData{Labels: labels, Datasets: gmin},
		ChartDataGmax:   &ChartData{Labels: labels, Datasets: gmax},
		ChartConfigGmin: &ChartConfig{
			Title:      fmt.Sprintf("Limites mínimos — restrição %s", entity),
			XAxisLabel: "Semana operativa",
			YAxisLabel: "MW",
		},
		ChartConfigGmax: &ChartConfig{
			Title:      fmt.Sprintf("Limites máximos — restrição %s", entity),
			XAxisLabel: "Semana operativa",
			YAxisLabel: "MW",
		},
		VisualizationType: "constraint_comparison",
		DeckNames:         names,
		IsMultiDeck:       multi,
		FinalResponse: fmt.Sprintf("Restrição %s: limites comparados em %d semanas operativas entre %d decks.",
			entity, len(weeks), len(decks)),
		ToolName: toolName,
	}, nil
}

// constraintRecord picks the deck's first record belonging to the target
// constraint. When no target is resolved yet, the first record's code
// becomes the target for the rest of the comparison. Records whose code
// parses and differs are contamination and are skipped; records without
// a usable code are tolerated.
func constraintRecord(d deck.Deck, targetCode *string, log *logrus.Logger) (deck.Record, bool) {
	for _, rec := range d.Records() {
		code := rec.Text("codigo_restricao")
		if *targetCode == "" && code != "" {
			*targetCode = code
		}
		if code != "" && *targetCode != "" && code != *targetCode {
			log.Debugf("deck %s: skipping record of constraint %s while comparing %s",
				d.Name, code, *targetCode)
			continue
		}
		return rec, true
	}
	return nil, false
}

var digitsRe = regexp.MustCompile(`\b\d+\b`)

// queryCode pulls a constraint code out of the free-text query, if any.
// Superficial pattern matching, not semantic parsing.
func queryCode(query string) string {
	return digitsRe.FindString(query)
}

func orPlaceholder(s string) string {
	if s == "" {
		return "?"
	}
	return s
}
