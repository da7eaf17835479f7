package nist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultScoreAveragesFiniteEntries(t *testing.T) {
	r := Result{Scores: []float64{0.5, 0.7}}
	require.InDelta(t, 0.6, r.Score(), 1e-12)
}

func TestResultScoreSkipsNaN(t *testing.T) {
	r := Result{Scores: []float64{math.NaN(), 0.8}}
	require.InDelta(t, 0.8, r.Score(), 1e-12)
}

func TestResultScoreAllNaNYieldsNaN(t *testing.T) {
	r := Result{Scores: []float64{math.NaN(), math.NaN()}}
	require.True(t, math.IsNaN(r.Score()))
}

func TestResultScoreEmptyYieldsNaN(t *testing.T) {
	r := Result{}
	require.True(t, math.IsNaN(r.Score()))
}
