package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

// TestMetrics_Counters checks that counter increments are observable.
func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New()

	m.TokensConstructed.WithLabelValues("ULPAlarm").Inc()
	m.TokensConstructed.WithLabelValues("ULPAlarm").Inc()
	m.WakesReported.WithLabelValues("ULPAlarm").Inc()
	m.CycleResets.Inc()

	require.InDelta(t, 2, testutil.ToFloat64(m.TokensConstructed.WithLabelValues("ULPAlarm")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.WakesReported.WithLabelValues("ULPAlarm")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(m.CycleResets), 0)
}

// TestMetrics_Handler checks that the HTTP handler exposes the registered counters.
func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.CycleResets.Inc()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/metrics", nil)

	m.Handler().ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), "ulpwake_cycle_resets_total 1")
}
