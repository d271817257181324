// cmd/mcpreport/summarize_test.go
package mcpreport

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func writeTestRun(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"prompts.json": `{
			"models": ["sonnet"],
			"prompts": [{"label": "search"}],
			"target": "example/repo"
		}`,
		"01-search-sonnet-with-mcp.json": `{"total_cost_usd": 0.5, "duration_ms": 2500}`,
		"01-search-sonnet-with-mcp.txt":  "Answer text.",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestSummarizeCmd(t *testing.T) {
	dir := writeTestRun(t)

	b := new(bytes.Buffer)
	summarizeCmd.SetOut(b)
	summarizeCmd.SetErr(b)

	viper.Set("chart", false)
	viper.Set("debug", false)
	defer viper.Set("chart", nil)
	defer viper.Set("debug", nil)

	if err := summarizeCmd.RunE(summarizeCmd, []string{dir}); err != nil {
		t.Fatalf("summarize failed: %v", err)
	}

	out := b.String()
	if !strings.Contains(out, "Summary written to") {
		t.Errorf("missing summary path in output: %q", out)
	}
	if !strings.Contains(out, "skipping chart generation") {
		t.Errorf("missing chart skip notice in output: %q", out)
	}

	md, err := os.ReadFile(filepath.Join(dir, "summary.md"))
	if err != nil {
		t.Fatalf("summary.md not written: %v", err)
	}
	if !strings.Contains(string(md), "$0.5000") {
		t.Errorf("summary missing formatted cost\n%s", md)
	}
	if _, err := os.Stat(filepath.Join(dir, "chart.png")); !os.IsNotExist(err) {
		t.Error("chart.png must not be written when charting is disabled")
	}
}

func TestSummarizeCmd_MissingMetadataFails(t *testing.T) {
	viper.Set("chart", false)
	defer viper.Set("chart", nil)

	if err := summarizeCmd.RunE(summarizeCmd, []string{t.TempDir()}); err == nil {
		t.Fatal("summarize without prompts.json should have failed")
	}
}
