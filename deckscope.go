// Package deckscope turns raw power-planning tool output into
// render-ready comparison payloads.
//
// Usage:
//
//	import "github.com/deckscope/deckscope/compare"
//
//	orch := compare.NewOrchestrator()
//	resp := orch.Run(compare.Request{
//	    ToolName: "comparar_carga",
//	    Query:    "compare a carga entre os decks",
//	    Decks:    deckResults,
//	})
//
// The orchestrator dispatches to a per-tool comparison formatter, which
// aligns the per-deck records onto a common temporal index and emits a
// table plus chart payload consumed by the UI layer.
//
// Dataset-file parsing and LLM summarization are handled by external
// collaborators — the comparison pipeline never performs I/O and is a
// pure, synchronous transformation of in-memory structures.
package deckscope
