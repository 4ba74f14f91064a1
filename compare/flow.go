package compare

import (
	"fmt"

	"github.com/deckscope/deckscope/deck"
)

// ============================================================================
// FLOW CONSTRAINT FORMATTER — Limits per load level and flow type
// ============================================================================
// Flow-constraint records carry a secondary categorical field ("tipo",
// e.g. QTUR / QDEF). Records are grouped by that category before series
// are built, so each limit class yields as many chart series as there
// are categories observed, labels disambiguated by category.
//
// Chart continuity: a period where a category contributed no record at
// all renders as 0 in the chart datasets — a deliberate display-boundary
// choice local to this formatter. Table rows and attested field values
// keep the null/zero distinction intact.
// ============================================================================

// FlowFormatter compares flow constraint limits across decks.
type FlowFormatter struct{}

// CanFormat accepts flow tool names or GMIN/GMAX records carrying a flow
// type. A record shaped like a generation-level record from the
// electrical family — constraint code but no flow type — is rejected
// even when the tool name or limit fields would otherwise match.
func (f *FlowFormatter) CanFormat(toolName string, sample map[string]any) bool {
	rec := sampleRecord(sample)
	if rec != nil {
		_, hasCode := rec["codigo_restricao"]
		_, hasType := rec["tipo"]
		if hasCode && !hasType {
			return false
		}
	}
	if nameContains(toolName, "fluxo", "vazao", "flow") {
		return true
	}
	return hasField(sample, "tipo") && hasField(sample, gminField(1))
}

func (f *FlowFormatter) Priority() int { return 20 }

// FormatComparison builds a per-(week, flow-type) table and paired
// GMIN/GMAX charts with one series per (load level, category).
func (f *FlowFormatter) FormatComparison(decks []deck.Deck, toolName, query string, opts Options) (*Payload, error) {
	names := displayNames(decks)
	multi := len(decks) >= 2

	valid := validDecks(decks)
	if len(valid) == 0 {
		return emptyPayload(toolName, "flow_comparison",
			"Nenhum dos decks informados possui dados de restrições de fluxo.",
			names, multi), nil
	}

	type cellKey struct {
		week     int
		category string
	}
	type contribution struct {
		deckName string
		rec      deck.Record
	}

	ref, hasRef := referenceInfo(valid)
	if !hasRef {
		return emptyPayload(toolName, "flow_comparison",
			"Não foi possível derivar semanas operativas dos nomes dos decks.",
			names, multi), nil
	}

	index := make(map[cellKey]contribution)
	weekSet := make(map[int]bool)
	var categories []string
	seenCategory := make(map[string]bool)

	log := opts.logger()
	for _, d := range valid {
		ni, ok := deck.ParseName(d.Name)
		if !ok {
			log.Debugf("deck %s: unparseable name, dropped from week index", d.Name)
			continue
		}
		week := SequentialWeek(ref, ni)
		for _, rec := range d.Records() {
			category := rec.Text("tipo")
			if category == "" {
				continue
			}
			if !seenCategory[category] {
				seenCategory[category] = true
				categories = append(categories, category)
			}
			key := cellKey{week: week, category: category}
			if _, taken := index[key]; taken {
				// same period and category from a later deck: first wins
				continue
			}
			index[key] = contribution{deckName: d.DisplayName, rec: rec}
			weekSet[week] = true
		}
	}

	if len(index) == 0 {
		return emptyPayload(toolName, "flow_comparison",
			"Nenhum registro de restrição de fluxo extraível nos decks informados.",
			names, multi), nil
	}

	weeks := sortedIntKeys(weekSet)
	labels := make([]string, len(weeks))
	for i, w := range weeks {
		labels[i] = WeekLabel(w)
	}

	palette := opts.palette()
	gmin := make([]Dataset, 0, len(loadLevels)*len(categories))
	gmax := make([]Dataset, 0, len(loadLevels)*len(categories))
	color := 0
	for _, category := range categories {
		for _, level := range loadLevels {
			c := palette[color%len(palette)]
			color++
			dsMin := newDataset(fmt.Sprintf("%s (%s)", gminField(level), category), len(weeks), c)
			dsMax := newDataset(fmt.Sprintf("%s (%s)", gmaxField(level), category), len(weeks), c)
			for i, w := range weeks {
				entry, ok := index[cellKey{week: w, category: category}]
				if !ok {
					// no record for this category at this period: render
					// as zero to keep the line continuous
					dsMin.Data[i] = zero()
					dsMax.Data[i] = zero()
					continue
				}
				dsMin.Data[i] = entry.rec.Number(gminField(level))
				dsMax.Data[i] = entry.rec.Number(gmaxField(level))
			}
			gmin = append(gmin, dsMin)
			gmax = append(gmax, dsMax)
		}
	}

	rows := make([]Row, 0, len(index))
	for _, w := range weeks {
		for _, category := range categories {
			entry, ok := index[cellKey{week: w, category: category}]
			if !ok {
				continue
			}
			row := Row{
				"semana": w,
				"deck":   entry.deckName,
				"tipo":   category,
			}
			for _, level := range loadLevels {
				row[gminField(level)] = nullable(entry.rec.Number(gminField(level)))
				row[gmaxField(level)] = nullable(entry.rec.Number(gmaxField(level)))
			}
			rows = append(rows, row)
		}
	}

	title := "Restrições de fluxo"
	if from, to, ok := ExtractRegionPair(query); ok {
		title = fmt.Sprintf("Restrições de fluxo %s → %s", from, to)
	}

	return &Payload{
		ComparisonTable: rows,
		ChartData:       nil,
		ChartDataGmin:   &ChartData{Labels: labels, Datasets: gmin},
		ChartDataGmax:   &ChartData{Labels: labels, Datasets: gmax},
		ChartConfigGmin: &ChartConfig{
			Title:      title + " — limites mínimos",
			XAxisLabel: "Semana operativa",
			YAxisLabel: "m³/s",
		},
		ChartConfigGmax: &ChartConfig{
			Title:      title + " — limites máximos",
			XAxisLabel: "Semana operativa",
			YAxisLabel: "m³/s",
		},
		VisualizationType: "flow_comparison",
		DeckNames:         names,
		IsMultiDeck:       multi,
		FinalResponse: fmt.Sprintf("%s: %d tipos de fluxo comparados em %d semanas operativas entre %d decks.",
			title, len(categories), len(weeks), len(decks)),
		ToolName: toolName,
	}, nil
}

func zero() *float64 {
	z := 0.0
	return &z
}
