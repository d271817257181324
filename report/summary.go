// report/summary.go
// Package: report
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BuildSummary renders the full markdown report for a run: a
// comparison table per model, per-model cost totals, and every answer
// transcript wrapped in a collapsible block. Output depends only on
// the run directory contents, so rebuilding an unchanged run yields
// identical bytes.
func BuildSummary(run *Run) string {
	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("# MCP Benchmark Results")
	add("")
	add("**Date:** %s", filepath.Base(run.Dir))
	add("**Target:** %s", run.Meta.Target)
	add("")

	for _, model := range run.Meta.Models {
		add("## %s", Title(model))
		add("")
		add("| # | Prompt | MCP Tokens | No-MCP Tokens | MCP Cost | No-MCP Cost | MCP Time | No-MCP Time | MCP Turns | No-MCP Turns |")
		add("|---|--------|-----------|--------------|----------|------------|----------|------------|-----------|-------------|")

		var totalMCP, totalNoMCP float64
		for i, p := range run.Meta.Prompts {
			recMCP := run.Record(TrialKey(i+1, p.Label, model, WithMCP))
			recNoMCP := run.Record(TrialKey(i+1, p.Label, model, WithoutMCP))

			// Parse failures contribute nothing to the totals.
			if f, ok := costValue(recMCP); ok {
				totalMCP += f
			}
			if f, ok := costValue(recNoMCP); ok {
				totalNoMCP += f
			}

			add("| %d | %s | %s | %s | %s | %s | %s | %s | %s | %s |",
				i+1, p.Label,
				FormatTokens(recMCP), FormatTokens(recNoMCP),
				FormatCost(Lookup(recMCP, "total_cost_usd")), FormatCost(Lookup(recNoMCP, "total_cost_usd")),
				FormatDuration(Lookup(recMCP, "duration_ms")), FormatDuration(Lookup(recNoMCP, "duration_ms")),
				FormatTurns(Lookup(recMCP, "num_turns")), FormatTurns(Lookup(recNoMCP, "num_turns")),
			)
		}

		add("")
		add("**Total cost:** MCP = $%.4f, No-MCP = $%.4f", totalMCP, totalNoMCP)
		add("")
	}

	add("---")
	add("")
	add("## Answer Comparison")
	add("")

	for _, model := range run.Meta.Models {
		for i, p := range run.Meta.Prompts {
			add("### %s - %s", Title(model), p.Label)
			add("")
			for _, mode := range Modes {
				key := TrialKey(i+1, p.Label, model, mode)
				add("<details><summary>%s</summary>", mode.Tag())
				add("")
				lines = append(lines, run.Answer(key))
				add("")
				add("</details>")
				add("")
			}
		}
	}

	return strings.Join(lines, "\n")
}

// WriteSummary renders the report and writes it as summary.md in the
// run directory, returning the written path.
func WriteSummary(run *Run) (string, error) {
	path := filepath.Join(run.Dir, SummaryFileName)
	if err := os.WriteFile(path, []byte(BuildSummary(run)), 0o644); err != nil {
		return "", fmt.Errorf("could not write summary: %w", err)
	}
	return path, nil
}
