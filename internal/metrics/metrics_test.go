package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGatherTextIncludesRegisteredMetrics(t *testing.T) {
	RunsTotal.WithLabelValues("success").Inc()
	TestsTotal.WithLabelValues("monobit", "pass").Inc()
	PValue.WithLabelValues("monobit").Set(0.75)

	text, err := GatherText()
	require.NoError(t, err)
	require.Contains(t, text, "sp80022_runs_total")
	require.Contains(t, text, "sp80022_tests_total")
	require.Contains(t, text, "sp80022_test_p_value")
	require.True(t, strings.Contains(text, "monobit"))
}
