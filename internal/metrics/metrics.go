// Package metrics registers the Prometheus collectors a battery run
// updates, and gathers them to text for a caller to print or write —
// there is no HTTP exporter, since this binary never listens on a
// socket.
package metrics

import (
	"bytes"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var (
	// RunsTotal counts battery runs by outcome ("success"/"error").
	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sp80022_runs_total",
			Help: "Total number of battery runs, by outcome.",
		},
		[]string{"outcome"},
	)

	// TestsTotal counts individual test executions by name and
	// pass/fail outcome.
	TestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sp80022_tests_total",
			Help: "Total number of individual test executions, by test name and outcome.",
		},
		[]string{"test", "outcome"},
	)

	// PValue records the most recent P-value observed per test.
	PValue = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sp80022_test_p_value",
			Help: "Most recent P-value for each test.",
		},
		[]string{"test"},
	)

	// LastOverallPassRate records the most recent battery-wide pass
	// rate across eligible tests.
	LastOverallPassRate = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sp80022_overall_pass_rate",
			Help: "Most recent overall pass rate across eligible tests.",
		},
	)

	// OverallDuration observes wall-clock seconds spent executing a
	// full battery run.
	OverallDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sp80022_run_duration_seconds",
			Help:    "Wall-clock duration of a full battery run.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
		},
	)
)

// Registry is the collector registry every metric above is registered
// against. A caller with a custom registry can re-register into it
// instead of using the package-level default.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(RunsTotal, TestsTotal, PValue, LastOverallPassRate, OverallDuration)
}

// GatherText renders every registered metric in Registry as
// Prometheus text exposition format, for a caller to print or write
// to a file rather than serve over HTTP.
func GatherText() (string, error) {
	families, err := Registry.Gather()
	if err != nil {
		return "", fmt.Errorf("gather metrics: %w", err)
	}

	var buf bytes.Buffer
	encoder := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := encoder.Encode(mf); err != nil {
			return "", fmt.Errorf("encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return buf.String(), nil
}
