// Package service builds structured battery-run reports on top of
// internal/nist, the way the original server layer built Sp80022TestResponse
// values on top of the test suite.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gonum.org/v1/gonum/mathext"

	"github.com/kestrelstat/sp80022/internal/metrics"
	"github.com/kestrelstat/sp80022/internal/middleware"
	"github.com/kestrelstat/sp80022/internal/nist"
)

const (
	// Version of the service.
	Version = "2.0.0"

	// Alpha is the significance level from NIST (p-value threshold).
	Alpha = nist.Alpha
)

// TestResult is one battery entry's outcome, with the ineligible case
// made explicit rather than folded into a negative sentinel score.
type TestResult struct {
	Name      string
	Eligible  bool
	Passed    bool
	Score     float64
	SubScores []float64
	ElapsedMs float64
}

// Report is the structured output of a full battery run.
type Report struct {
	Timestamp            string
	SampleSizeBits       int
	Results              []TestResult
	ExecutionTimeMs      int64
	TestsRun             int
	TestsSkipped         int
	TestsTotal           int
	NistCompliant        bool
	OverallPassRate      float64
	PValueUniformityChi2 float64
}

// Runner runs a battery against a sequence and builds its Report. The
// battery is a field rather than package-level state so a caller can
// substitute a smaller battery in tests.
type Runner struct {
	Battery *nist.Battery
}

// NewRunner returns a Runner over the canonical SP800-22R1A battery.
func NewRunner() *Runner {
	return &Runner{Battery: nist.NewSP800_22R1ABattery()}
}

// Run executes every test in r.Battery against bits and assembles a
// Report, logging request-scoped progress under requestID (spec
// ambient stack: run correlation via middleware.WithRequestID).
func (r *Runner) Run(ctx context.Context, bits nist.BitSequence) (*Report, error) {
	startTime := time.Now()
	requestID := middleware.RequestIDFromContext(ctx)

	log.Info().
		Str("request_id", requestID).
		Int("bits", bits.Len()).
		Msg("battery run started")

	if err := r.validate(bits); err != nil {
		log.Error().Str("request_id", requestID).Err(err).Msg("invalid input sequence")
		metrics.RunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.RunsTotal.WithLabelValues("success").Inc()

	results, err := nist.RunAllBattery(bits, r.Battery, true)
	if err != nil {
		log.Error().Str("request_id", requestID).Err(err).Msg("battery execution failed")
		return nil, fmt.Errorf("battery execution failed: %w", err)
	}

	names := r.Battery.Names()
	report := &Report{
		Timestamp:      time.Now().Format(time.RFC3339),
		SampleSizeBits: bits.Len(),
		Results:        make([]TestResult, len(results)),
		TestsTotal:     len(results),
	}

	pValues := make([]float64, 0, len(results))
	passed := 0
	for i, res := range results {
		if res == nil {
			report.Results[i] = TestResult{Name: names[i], Eligible: false}
			continue
		}
		report.TestsRun++
		if res.Passed {
			passed++
		}

		score := res.Score()
		metrics.TestsTotal.WithLabelValues(res.Name, passLabel(res.Passed)).Inc()
		metrics.PValue.WithLabelValues(res.Name).Set(score)

		report.Results[i] = TestResult{
			Name:      res.Name,
			Eligible:  true,
			Passed:    res.Passed,
			Score:     score,
			SubScores: res.Scores,
			ElapsedMs: float64(res.Elapsed.Microseconds()) / 1000.0,
		}
		pValues = append(pValues, score)
	}

	report.TestsSkipped = report.TestsTotal - report.TestsRun
	report.NistCompliant = report.TestsRun == report.TestsTotal
	if report.TestsRun > 0 {
		report.OverallPassRate = float64(passed) / float64(report.TestsRun)
		metrics.LastOverallPassRate.Set(report.OverallPassRate)
	}

	if len(pValues) >= 5 {
		report.PValueUniformityChi2 = PValueUniformity(pValues)
	} else {
		report.PValueUniformityChi2 = -1.0
	}

	report.ExecutionTimeMs = time.Since(startTime).Milliseconds()
	metrics.OverallDuration.Observe(time.Since(startTime).Seconds())

	log.Info().
		Str("request_id", requestID).
		Float64("overall_pass_rate", report.OverallPassRate).
		Float64("p_value_uniformity", report.PValueUniformityChi2).
		Int64("execution_time_ms", report.ExecutionTimeMs).
		Msg("battery run completed")

	return report, nil
}

// validate rejects sequences too small for any test in the battery to
// be meaningful, mirroring the original request-validation step.
func (r *Runner) validate(bits nist.BitSequence) error {
	if bits.Len() == 0 {
		return fmt.Errorf("bit sequence cannot be empty")
	}
	return nil
}

func passLabel(passed bool) string {
	if passed {
		return "pass"
	}
	return "fail"
}

// PValueUniformity performs a chi-squared test on the distribution of
// a battery run's p-values across 10 equal-width bins, the way NIST
// SP 800-22 recommends checking that p-values trend uniform in [0,1].
func PValueUniformity(pValues []float64) float64 {
	if len(pValues) == 0 {
		return 0.0
	}

	const numBins = 10
	bins := make([]int, numBins)

	for _, pval := range pValues {
		if pval < 0 || pval > 1 {
			continue
		}
		binIndex := int(pval * float64(numBins))
		if binIndex == numBins {
			binIndex = numBins - 1
		}
		bins[binIndex]++
	}

	expectedCount := float64(len(pValues)) / float64(numBins)
	chi2 := 0.0
	for _, observed := range bins {
		diff := float64(observed) - expectedCount
		chi2 += (diff * diff) / expectedCount
	}

	df := float64(numBins - 1)
	return mathext.GammaIncRegComp(df/2.0, chi2/2.0)
}
