package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kestrelstat/sp80022/internal/nist"
)

func randomBitSequence(t *testing.T, n int, seed uint64) nist.BitSequence {
	t.Helper()
	bits := make([]int8, n)
	state := seed
	for i := range bits {
		state = state*6364136223846793005 + 1442695040888963407
		bits[i] = int8((state >> 63) & 1)
	}
	s, err := nist.NewBitSequence(bits)
	require.NoError(t, err)
	return s
}

func TestRunnerValidateRejectsEmpty(t *testing.T) {
	r := NewRunner()
	empty, err := nist.NewBitSequence(nil)
	require.NoError(t, err)
	require.Error(t, r.validate(empty))
}

func TestRunnerRunCoversFullBattery(t *testing.T) {
	r := NewRunner()
	bits := randomBitSequence(t, 1000, 12345)

	report, err := r.Run(context.Background(), bits)
	require.NoError(t, err)
	require.Equal(t, 15, report.TestsTotal)
	require.Equal(t, bits.Len(), report.SampleSizeBits)
	require.GreaterOrEqual(t, report.ExecutionTimeMs, int64(0))
}

func TestRunnerRunAllZerosFailsMostTests(t *testing.T) {
	r := NewRunner()
	bits, err := nist.NewBitSequence(make([]int8, 1000))
	require.NoError(t, err)

	report, err := r.Run(context.Background(), bits)
	require.NoError(t, err)
	require.Less(t, report.OverallPassRate, 0.5)
}

func TestRunnerRunSkipsIneligibleTests(t *testing.T) {
	r := NewRunner()
	bits := randomBitSequence(t, 50, 99)

	report, err := r.Run(context.Background(), bits)
	require.NoError(t, err)
	require.Greater(t, report.TestsSkipped, 0)
	require.False(t, report.NistCompliant)
}

func TestPValueUniformity(t *testing.T) {
	values := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	chi2 := PValueUniformity(values)
	require.Greater(t, chi2, 0.0)
	require.Equal(t, 0.0, PValueUniformity(nil))
}

func TestPValueUniformityIgnoresOutOfRangeValues(t *testing.T) {
	pValues := []float64{-0.1, 1.1, 1.0, 0.0, 0.5}
	chi2 := PValueUniformity(pValues)
	require.Greater(t, chi2, 0.0)
}
