// report/metrics.go
// Package: report
package report

// Metric identifies one of the aggregated comparison metrics.
type Metric string

const (
	MetricCost   Metric = "cost"
	MetricTime   Metric = "time"
	MetricTurns  Metric = "turns"
	MetricTokens Metric = "tokens"
)

// Metrics lists the chart metrics in display order.
var Metrics = []Metric{MetricCost, MetricTime, MetricTurns, MetricTokens}

// ModeAverages holds the per-metric means for one (model, mode) pair.
type ModeAverages map[Metric]float64

// ModelAverages holds averaged metrics for every model and mode, ready
// for chart rendering.
type ModelAverages map[string]map[Mode]ModeAverages

// Averages computes the arithmetic mean of each metric across all
// prompts, per model and mode. A value that fails to parse for a
// metric is excluded from that metric's mean rather than counted as
// zero; a metric with no parsable values at all averages to 0.
func Averages(run *Run) ModelAverages {
	out := make(ModelAverages, len(run.Meta.Models))
	for _, model := range run.Meta.Models {
		out[model] = make(map[Mode]ModeAverages, len(Modes))
		for _, mode := range Modes {
			samples := make(map[Metric][]float64, len(Metrics))
			for i, p := range run.Meta.Prompts {
				rec := run.Record(TrialKey(i+1, p.Label, model, mode))

				if f, ok := costValue(rec); ok {
					samples[MetricCost] = append(samples[MetricCost], f)
				}
				if v, ok := Lookup(rec, "duration_ms"); ok {
					if f, numeric := toFloat(v); numeric {
						samples[MetricTime] = append(samples[MetricTime], f/1000)
					}
				}
				if v, ok := Lookup(rec, "num_turns"); ok {
					if f, numeric := toFloat(v); numeric {
						samples[MetricTurns] = append(samples[MetricTurns], f)
					}
				}
				if usage, ok := rec["usage"].(map[string]any); ok {
					var total float64
					for _, k := range usageKeys {
						if f, numeric := toFloat(usage[k]); numeric {
							total += f
						}
					}
					samples[MetricTokens] = append(samples[MetricTokens], total)
				}
			}

			avgs := make(ModeAverages, len(Metrics))
			for _, m := range Metrics {
				avgs[m] = mean(samples[m])
			}
			out[model][mode] = avgs
		}
	}
	return out
}

// mean returns the arithmetic mean of values, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
