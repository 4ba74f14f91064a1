package compare

import (
	"github.com/sirupsen/logrus"

	"github.com/deckscope/deckscope/logger"
)

// ============================================================================
// COMPARISON TYPES — Render-ready output of the multi-deck pipeline
// ============================================================================
// The UI layer consumes these as-is: a flat comparison table plus one or
// more chart payloads whose datasets are aligned index-for-index with the
// label axis. Chart values are nullable — an absent value is an explicit
// null placeholder, never an omitted position.
// ============================================================================

// Row is one output table row: flat, JSON-serializable scalars and nils only.
type Row = map[string]any

// ChartData is a declarative chart payload.
// Invariant: len(Data) == len(Labels) for every dataset.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is one semantic series of a chart.
type Dataset struct {
	Label           string     `json:"label"`
	Data            []*float64 `json:"data"`
	BorderColor     string     `json:"borderColor,omitempty"`
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	Fill            bool       `json:"fill"`
}

// ChartConfig carries title/axis metadata for a chart. No rendering logic.
type ChartConfig struct {
	Title      string `json:"title"`
	XAxisLabel string `json:"x_axis_label,omitempty"`
	YAxisLabel string `json:"y_axis_label,omitempty"`
}

// Payload is the full comparison result handed to the UI layer.
//
// ToolName is echoed back even in all-empty branches so downstream
// routing keeps working. DeckNames lists every input deck's display name,
// data-less decks included, so the UI can show "no data" instead of
// silently dropping a deck.
type Payload struct {
	ComparisonTable []Row        `json:"comparison_table"`
	ChartData       *ChartData   `json:"chart_data"`
	ChartConfig     *ChartConfig `json:"chart_config,omitempty"`

	// Multi-chart tools (electrical and flow constraints) emit paired
	// minimum/maximum views instead of a single chart.
	ChartDataGmin   *ChartData   `json:"chart_data_gmin,omitempty"`
	ChartDataGmax   *ChartData   `json:"chart_data_gmax,omitempty"`
	ChartConfigGmin *ChartConfig `json:"chart_config_gmin,omitempty"`
	ChartConfigGmax *ChartConfig `json:"chart_config_gmax,omitempty"`

	VisualizationType string   `json:"visualization_type"`
	DeckNames         []string `json:"deck_names"`
	IsMultiDeck       bool     `json:"is_multi_deck"`
	FinalResponse     string   `json:"final_response"`
	ToolName          string   `json:"tool_name"`
}

// Options is per-call formatter configuration. Formatter instances hold no
// per-call state — anything scratch (reference deck, palette) lives here
// or inside the call frame, keeping formatters safe for concurrent callers.
type Options struct {
	Palette []string
	Log     *logrus.Logger
}

func (o Options) palette() []string {
	if len(o.Palette) > 0 {
		return o.Palette
	}
	return defaultPalette
}

func (o Options) logger() *logrus.Logger {
	if o.Log != nil {
		return o.Log
	}
	return logger.Get()
}

// Default color palette for chart series.
var defaultPalette = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// newDataset allocates a series pre-filled with null placeholders so
// positions stay aligned with the label axis by construction.
func newDataset(label string, size int, color string) Dataset {
	return Dataset{
		Label:           label,
		Data:            make([]*float64, size),
		BorderColor:     color,
		BackgroundColor: color,
	}
}

// emptyPayload is the uniform well-formed-but-empty result: empty table,
// nil charts, an explanatory message, tool name echoed back.
func emptyPayload(toolName, vizType, message string, deckNames []string, multiDeck bool) *Payload {
	return &Payload{
		ComparisonTable:   []Row{},
		ChartData:         nil,
		VisualizationType: vizType,
		DeckNames:         deckNames,
		IsMultiDeck:       multiDeck,
		FinalResponse:     message,
		ToolName:          toolName,
	}
}
