// report/format_test.go
package report

import "testing"

func TestFormatCost(t *testing.T) {
	cases := []struct {
		rec  Record
		want string
	}{
		{Record{"total_cost_usd": 1.5}, "$1.5000"},
		{Record{"total_cost_usd": "bad"}, "N/A"},
		{Record{"total_cost_usd": "0.25"}, "$0.2500"},
		{Record{}, "N/A"},
	}
	for _, c := range cases {
		got := FormatCost(Lookup(c.rec, "total_cost_usd"))
		if got != c.want {
			t.Errorf("FormatCost(%v) = %q, want %q", c.rec, got, c.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		rec  Record
		want string
	}{
		{Record{"duration_ms": float64(2500)}, "2.5s"},
		{Record{"duration_ms": float64(100)}, "0.1s"},
		{Record{"duration_ms": "oops"}, "N/A"},
		{Record{}, "N/A"},
	}
	for _, c := range cases {
		got := FormatDuration(Lookup(c.rec, "duration_ms"))
		if got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.rec, got, c.want)
		}
	}
}

func TestFormatTokens_SumsUsageCounts(t *testing.T) {
	rec := Record{
		"usage": map[string]any{
			"input_tokens":                float64(100),
			"cache_read_input_tokens":     float64(50),
			"cache_creation_input_tokens": float64(0),
			"output_tokens":               float64(25),
		},
	}
	if got := FormatTokens(rec); got != "175" {
		t.Errorf("expected 175, got %q", got)
	}
}

func TestFormatTokens_ThousandsSeparators(t *testing.T) {
	rec := Record{
		"usage": map[string]any{
			"input_tokens":  float64(1200000),
			"output_tokens": float64(34567),
		},
	}
	if got := FormatTokens(rec); got != "1,234,567" {
		t.Errorf("expected 1,234,567, got %q", got)
	}
}

func TestFormatTokens_MissingUsage(t *testing.T) {
	if got := FormatTokens(Record{}); got != "N/A" {
		t.Errorf("expected N/A for a record with no usage, got %q", got)
	}
	if got := FormatTokens(Record{"usage": "bad"}); got != "N/A" {
		t.Errorf("expected N/A for a malformed usage field, got %q", got)
	}
}

func TestFormatTurns(t *testing.T) {
	cases := []struct {
		rec  Record
		want string
	}{
		{Record{"num_turns": float64(5)}, "5"},
		{Record{"num_turns": float64(3.5)}, "3.5"},
		{Record{}, "N/A"},
	}
	for _, c := range cases {
		got := FormatTurns(Lookup(c.rec, "num_turns"))
		if got != c.want {
			t.Errorf("FormatTurns(%v) = %q, want %q", c.rec, got, c.want)
		}
	}
}

func TestTrialKey(t *testing.T) {
	got := TrialKey(3, "search", "sonnet", WithMCP)
	if got != "03-search-sonnet-with-mcp" {
		t.Errorf("unexpected key %q", got)
	}
	got = TrialKey(10, "search", "sonnet", WithoutMCP)
	if got != "10-search-sonnet-without-mcp" {
		t.Errorf("unexpected key %q", got)
	}
}
