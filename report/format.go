// report/format.go
// Package: report
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable is the sentinel rendered for any missing or malformed
// value.
const NotAvailable = "N/A"

// english formats token totals with thousands separators.
var english = message.NewPrinter(language.English)

// titler capitalizes model names for headings and axis labels.
var titler = cases.Title(language.English)

// usageKeys are the token sub-counts summed into a trial's token total.
var usageKeys = []string{
	"input_tokens",
	"cache_read_input_tokens",
	"cache_creation_input_tokens",
	"output_tokens",
}

// Title renders a model identifier as a heading, e.g. "sonnet" ->
// "Sonnet".
func Title(model string) string {
	return titler.String(model)
}

// Thousands renders an integer with comma separators.
func Thousands(n int64) string {
	return english.Sprintf("%d", n)
}

// toFloat coerces the numeric shapes a decoded record can hold.
// Numeric strings count as numbers, matching the loose inputs these
// result files have shown in practice.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// FormatCost renders a cost in USD with four decimal digits, or the
// sentinel for a missing or non-numeric value.
func FormatCost(v any, ok bool) string {
	if !ok {
		return NotAvailable
	}
	f, numeric := toFloat(v)
	if !numeric {
		return NotAvailable
	}
	return fmt.Sprintf("$%.4f", f)
}

// FormatDuration renders a millisecond duration as seconds with one
// decimal digit, or the sentinel for a missing or non-numeric value.
func FormatDuration(v any, ok bool) string {
	if !ok {
		return NotAvailable
	}
	f, numeric := toFloat(v)
	if !numeric {
		return NotAvailable
	}
	return fmt.Sprintf("%.1fs", f/1000)
}

// FormatTurns renders a turn count. Whole numbers print without a
// decimal part even though JSON decodes them as floats; anything
// non-numeric prints as-is.
func FormatTurns(v any, ok bool) string {
	if !ok {
		return NotAvailable
	}
	f, numeric := toFloat(v)
	if !numeric {
		return fmt.Sprintf("%v", v)
	}
	if f == math.Trunc(f) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FormatTokens sums the four usage token sub-counts and renders the
// total with thousands separators. Absent sub-counts count as zero; an
// absent or malformed usage object renders the sentinel.
func FormatTokens(rec Record) string {
	usage, ok := rec["usage"].(map[string]any)
	if !ok {
		return NotAvailable
	}
	var total float64
	for _, k := range usageKeys {
		if f, numeric := toFloat(usage[k]); numeric {
			total += f
		}
	}
	return Thousands(int64(total))
}

// costValue extracts a numeric total_cost_usd if the record has one.
func costValue(rec Record) (float64, bool) {
	v, ok := Lookup(rec, "total_cost_usd")
	if !ok {
		return 0, false
	}
	return toFloat(v)
}
