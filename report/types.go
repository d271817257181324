// report/types.go
// Package: report
package report

import "fmt"

// Mode distinguishes trials that ran with the MCP server attached from
// the plain baseline runs.
type Mode string

const (
	WithMCP    Mode = "with-mcp"
	WithoutMCP Mode = "without-mcp"
)

// Modes lists both trial modes in display order.
var Modes = []Mode{WithMCP, WithoutMCP}

// Tag returns the label used for a mode in transcript blocks.
func (m Mode) Tag() string {
	if m == WithMCP {
		return "WITH MCP"
	}
	return "WITHOUT MCP"
}

// Fixed file names inside a run directory.
const (
	MetaFileName    = "prompts.json"
	SummaryFileName = "summary.md"
	ChartFileName   = "chart.png"
)

// PromptSpec is one benchmark prompt with a human label.
type PromptSpec struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt,omitempty"`
}

// RunMeta is the metadata descriptor stored as prompts.json in a run
// directory. The order of Models and Prompts drives report ordering.
type RunMeta struct {
	Models  []string     `json:"models"`
	Prompts []PromptSpec `json:"prompts"`
	Target  string       `json:"target"`
}

// Record is one trial result as decoded JSON. Every field is optional
// and may have an unexpected shape; go through Lookup and the
// formatters rather than asserting types directly.
type Record map[string]any

// Run bundles everything loaded from a run directory.
type Run struct {
	Dir     string
	Meta    RunMeta
	Results map[string]Record
}

// TrialKey builds the composite key for one (prompt, model, mode)
// trial. Prompt indexes are 1-based and zero-padded to two digits.
func TrialKey(idx int, label, model string, mode Mode) string {
	return fmt.Sprintf("%02d-%s-%s-%s", idx, label, model, mode)
}

// Record returns the result record for a trial key, or an empty record
// when the trial never produced one.
func (r *Run) Record(key string) Record {
	if rec, ok := r.Results[key]; ok {
		return rec
	}
	return Record{}
}
