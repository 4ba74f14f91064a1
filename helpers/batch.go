package helpers

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/deckscope/deckscope/compare"
)

// ============================================================================
// BATCH LOADING — Raw tool output JSON → comparison Request
// ============================================================================
// Consumers normally hand the orchestrator in-memory structures straight
// from the tool-execution layer. The CLI (and tests) instead load a
// batch file shaped like:
//
//	{
//	  "tool_name": "comparar_carga",
//	  "query": "compare a carga entre os decks",
//	  "decks": [
//	    {"name": "DC202501-rv0", "display_name": "Janeiro rev 0", "result": {...}},
//	    ...
//	  ]
//	}
// ============================================================================

// ParseBatch decodes a raw batch JSON document into a comparison Request.
func ParseBatch(data []byte) (compare.Request, error) {
	if !gjson.ValidBytes(data) {
		return compare.Request{}, fmt.Errorf("batch file is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	req := compare.Request{
		ToolName:     root.Get("tool_name").String(),
		Query:        root.Get("query").String(),
		DisplayNames: map[string]string{},
	}

	for _, d := range root.Get("decks").Array() {
		name := d.Get("name").String()
		if name == "" {
			return compare.Request{}, fmt.Errorf("deck at position %d has no name", len(req.Decks))
		}

		var result map[string]any
		if raw, ok := d.Get("result").Value().(map[string]any); ok {
			result = raw
		}
		req.Decks = append(req.Decks, compare.DeckResult{Name: name, Result: result})

		if display := d.Get("display_name").String(); display != "" {
			req.DisplayNames[name] = display
		}
	}

	if len(req.Decks) == 0 {
		return compare.Request{}, fmt.Errorf("batch file has no decks")
	}
	return req, nil
}
