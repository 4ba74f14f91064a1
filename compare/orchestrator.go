package compare

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/deckscope/deckscope/deck"
	"github.com/deckscope/deckscope/logger"
)

// ============================================================================
// ORCHESTRATOR — Top-level comparison entry point
// ============================================================================
// Invoked by the external agent graph after tool execution. Wraps the
// raw per-deck results, dispatches through the registry and packages the
// final textual + structured response.
//
// A formatting failure must never surface to the caller: errors and
// panics are caught here, logged, and degraded to a minimal fixed-text
// response plus whatever the raw input already carried.
// ============================================================================

// DeckResult is one deck's raw tool output plus its identity.
type DeckResult struct {
	Name   string
	Result map[string]any
}

// Request carries everything one comparison needs. The query is used
// only for superficial entity extraction (codes, region pairs), never
// semantic parsing.
type Request struct {
	ToolName     string
	Query        string
	Decks        []DeckResult
	DisplayNames map[string]string
}

// Response is handed back to the agent graph.
type Response struct {
	FinalResponse  string   `json:"final_response"`
	ComparisonData *Payload `json:"comparison_data"`
}

// Orchestrator dispatches comparison requests through a registry.
// Stateless across calls — safe for concurrent use.
type Orchestrator struct {
	registry *Registry
	log      *logrus.Logger
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithRegistry injects a custom formatter registry.
func WithRegistry(r *Registry) OrchestratorOption {
	return func(o *Orchestrator) { o.registry = r }
}

// WithLogger injects a logger.
func WithLogger(l *logrus.Logger) OrchestratorOption {
	return func(o *Orchestrator) { o.log = l }
}

// NewOrchestrator builds an orchestrator over the default registry.
func NewOrchestrator(opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		registry: DefaultRegistry,
		log:      logger.Get(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

const noMatchResponse = "Não encontrei uma ferramenta correspondente à sua pergunta. " +
	"Tente reformular indicando o dado desejado (carga, CVU, restrições elétricas ou de fluxo)."

const degradedResponse = "Os dados foram extraídos, mas houve um problema ao montar a comparação. " +
	"Os resultados brutos por deck estão disponíveis abaixo."

// Run executes one comparison request end to end.
func (o *Orchestrator) Run(req Request) Response {
	requestID := uuid.NewString()

	// No tool result at all: terminal, no retry.
	if req.ToolName == "" || len(req.Decks) == 0 {
		o.log.Debugf("comparison %s: no tool result, returning no-match response", requestID)
		return Response{FinalResponse: noMatchResponse, ComparisonData: nil}
	}

	decks := make([]deck.Deck, 0, len(req.Decks))
	for _, dr := range req.Decks {
		decks = append(decks, deck.New(dr.Name, req.DisplayNames[dr.Name], dr.Result))
	}

	sample := sampleResult(req.Decks)
	formatter := o.registry.Select(req.ToolName, sample)
	o.log.Infof("comparison %s: tool=%s decks=%d formatter=%T",
		requestID, req.ToolName, len(decks), formatter)

	payload := o.safeFormat(requestID, formatter, decks, req)
	payload.FinalResponse = CleanText(payload.FinalResponse)

	return Response{
		FinalResponse:  payload.FinalResponse,
		ComparisonData: payload,
	}
}

// safeFormat runs the formatter behind a recover guard and degrades to a
// minimal payload on error or panic.
func (o *Orchestrator) safeFormat(requestID string, f Formatter, decks []deck.Deck, req Request) (payload *Payload) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Errorf("comparison %s: formatter panic: %v", requestID, r)
			payload = o.degraded(decks, req.ToolName)
		}
	}()

	payload, err := f.FormatComparison(decks, req.ToolName, req.Query, Options{Log: o.log})
	if err != nil {
		o.log.Errorf("comparison %s: formatter error: %v", requestID, err)
		return o.degraded(decks, req.ToolName)
	}
	if payload == nil {
		o.log.Warnf("comparison %s: formatter returned no payload", requestID)
		return o.degraded(decks, req.ToolName)
	}
	return payload
}

// degraded is the minimal payload still carrying what the raw input had:
// deck names and the tool identity for downstream routing.
func (o *Orchestrator) degraded(decks []deck.Deck, toolName string) *Payload {
	p := emptyPayload(toolName, "generic_comparison", degradedResponse,
		displayNames(decks), len(decks) >= 2)
	for _, d := range decks {
		if !d.HasData() {
			continue
		}
		p.ComparisonTable = append(p.ComparisonTable, Row{
			"deck":      d.DisplayName,
			"registros": len(d.Records()),
		})
	}
	return p
}

func sampleResult(decks []DeckResult) map[string]any {
	for _, d := range decks {
		if len(d.Result) > 0 {
			return d.Result
		}
	}
	return nil
}

// ============================================================================
// TEXT POST-PROCESSING
// ============================================================================

// decorLimits caps consecutive repeats of decorative symbols. Markdown
// bold ("**") needs pairs, so asterisks keep two.
var decorLimits = map[rune]int{
	'*': 2, '#': 1, '!': 1, '~': 2,
	'✅': 1, '⚠': 1, '📊': 1, '🔴': 1, '🟢': 1, '🚀': 1, '🔥': 1,
}

// CleanText collapses runs of decorative symbols in a response, applied
// uniformly before any text is returned to the caller.
func CleanText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var prev rune
	run := 0
	for _, r := range s {
		limit, decorative := decorLimits[r]
		if decorative && r == prev {
			run++
			if run >= limit {
				continue
			}
		} else {
			run = 0
		}
		prev = r
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// ============================================================================
// QUERY ENTITY EXTRACTION
// ============================================================================

var (
	subsystemFullRe  = regexp.MustCompile(`(?i)\b(sudeste|nordeste|norte|sul)\b`)
	subsystemShortRe = regexp.MustCompile(`\b(SE|NE|N|S)\b`)

	subsystemCodes = map[string]string{
		"sudeste": "SE", "sul": "S", "nordeste": "NE", "norte": "N",
		"SE": "SE", "S": "S", "NE": "NE", "N": "N",
	}
)

// ExtractRegionPair pulls a named pair of subsystems out of free text,
// e.g. "fluxo entre Sudeste e Nordeste" → ("SE", "NE"). Pure pattern
// matching over the known subsystem names; full names are matched
// case-insensitively, two-letter codes only in upper case.
func ExtractRegionPair(query string) (from, to string, ok bool) {
	type hit struct {
		pos  int
		code string
	}
	var hits []hit

	for _, m := range subsystemFullRe.FindAllStringSubmatchIndex(query, -1) {
		name := strings.ToLower(query[m[2]:m[3]])
		hits = append(hits, hit{pos: m[0], code: subsystemCodes[name]})
	}
	for _, m := range subsystemShortRe.FindAllStringSubmatchIndex(query, -1) {
		hits = append(hits, hit{pos: m[0], code: subsystemCodes[query[m[2]:m[3]]]})
	}

	// order of appearance, first two distinct codes
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if hits[j].pos < hits[i].pos {
				hits[i], hits[j] = hits[j], hits[i]
			}
		}
	}
	for _, h := range hits {
		if from == "" {
			from = h.code
			continue
		}
		if h.code != from {
			return from, h.code, true
		}
	}
	return "", "", false
}
