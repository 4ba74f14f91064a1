package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/deckscope/deckscope/compare"
	"github.com/deckscope/deckscope/config"
	"github.com/deckscope/deckscope/helpers"
	"github.com/deckscope/deckscope/logger"
)

// ============================================================================
// DECKSCOPE CLI — Run one multi-deck comparison from a batch file
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	inputPath := flag.String("input", "", "Path to batch JSON file (required)")
	configPath := flag.String("config", "", "Path to YAML config file")
	format := flag.String("format", "json", "Output format: json, pretty, table, text")
	outFile := flag.String("out", "", "Write output to file instead of stdout")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Deckscope — multi-deck comparison for power-planning tool output

Usage:
  deckscope --input batch.json --format table
  deckscope --input batch.json --config config.yaml --format pretty --out result.json

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  json      Full JSON payload (default)
  pretty    Pretty-printed JSON payload
  table     comparison_table rendered as an ASCII table
  text      final_response only
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("deckscope %s\n", version)
		os.Exit(0)
	}

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --input is required")
		flag.Usage()
		os.Exit(1)
	}

	// ── Config and logging ────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		fatalf("Failed to initialize logger: %v", err)
	}

	// ── Load batch ────────────────────────────────────────────────────────
	data, err := os.ReadFile(*inputPath)
	if err != nil {
		fatalf("Failed to read batch file: %v", err)
	}
	req, err := helpers.ParseBatch(data)
	if err != nil {
		fatalf("Failed to parse batch file: %v", err)
	}
	for name, display := range cfg.DisplayNames {
		req.DisplayNames[name] = display
	}
	logger.Log.Infof("loaded batch: tool=%s decks=%d", req.ToolName, len(req.Decks))

	// ── Run comparison ────────────────────────────────────────────────────
	orch := compare.NewOrchestrator(compare.WithLogger(logger.Log))
	resp := orch.Run(req)

	// ── Output writer ─────────────────────────────────────────────────────
	writer := os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fatalf("Failed to create output file: %v", err)
		}
		defer f.Close()
		writer = f
	}

	// ── Render ────────────────────────────────────────────────────────────
	switch *format {
	case "table":
		fmt.Fprintln(writer, resp.FinalResponse)
		if resp.ComparisonData != nil {
			renderTable(writer, resp.ComparisonData.ComparisonTable)
		}
	case "text":
		fmt.Fprintln(writer, resp.FinalResponse)
	case "pretty":
		writeJSON(writer, resp, true)
	default:
		writeJSON(writer, resp, false)
	}
}

// renderTable draws comparison_table rows as an ASCII table.
func renderTable(w *os.File, rows []compare.Row) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "(empty table)")
		return
	}

	headers := columnOrder(rows)
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)

	for _, row := range rows {
		line := make([]string, len(headers))
		for i, h := range headers {
			line[i] = cellText(row[h])
		}
		table.Append(line)
	}
	table.Render()
}

// columnOrder puts identity columns first, then the rest alphabetically.
func columnOrder(rows []compare.Row) []string {
	leading := []string{"periodo", "semana", "deck", "tipo", "usina", "codigo"}
	seen := make(map[string]bool)
	var headers []string

	for _, h := range leading {
		if _, ok := rows[0][h]; ok {
			headers = append(headers, h)
			seen[h] = true
		}
	}

	var rest []string
	for k := range rows[0] {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(headers, rest...)
}

func cellText(v any) string {
	if v == nil {
		return "-"
	}
	switch t := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", t)
	case string:
		return t
	}
	return fmt.Sprintf("%v", v)
}

func writeJSON(w *os.File, v any, pretty bool) {
	var out []byte
	var err error
	if pretty {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		fatalf("Failed to marshal output: %v", err)
	}
	fmt.Fprintln(w, string(out))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
