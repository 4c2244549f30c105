package observability

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRecordSignupIncrementsCounter(t *testing.T) {
	RecordSignup("Basketball", OutcomeAccepted)
	RecordSignup("Basketball", OutcomeAccepted)

	counter, err := signupCounter.GetMetricWithLabelValues("Basketball", OutcomeAccepted)
	require.NoError(t, err)

	metric := &dto.Metric{}
	require.NoError(t, counter.Write(metric))
	require.GreaterOrEqual(t, metric.GetCounter().GetValue(), 2.0)
}

func TestRecordUnregisterByOutcome(t *testing.T) {
	RecordUnregister("Drama Club", OutcomeNotRegistered)

	counter, err := unregisterCounter.GetMetricWithLabelValues("Drama Club", OutcomeNotRegistered)
	require.NoError(t, err)

	metric := &dto.Metric{}
	require.NoError(t, counter.Write(metric))
	require.GreaterOrEqual(t, metric.GetCounter().GetValue(), 1.0)
}

func TestSetRosterSize(t *testing.T) {
	SetRosterSize("Art Studio", 7)

	gauge, err := rosterSizeGauge.GetMetricWithLabelValues("Art Studio")
	require.NoError(t, err)

	metric := &dto.Metric{}
	require.NoError(t, gauge.Write(metric))
	require.Equal(t, 7.0, metric.GetGauge().GetValue())
}
