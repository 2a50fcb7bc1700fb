package registry

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"example.com/activities/internal/domain"
)

func counterValue(t *testing.T, family, outcome string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != family {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "outcome" && label.GetValue() == outcome {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func gaugeValue(t *testing.T, family, activity string) (float64, bool) {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != family || mf.GetType() != dto.MetricType_GAUGE {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "activity" && label.GetValue() == activity {
					return metric.GetGauge().GetValue(), true
				}
			}
		}
	}
	return 0, false
}

func TestSignupOutcomesAreCounted(t *testing.T) {
	reg := New([]domain.Activity{{
		Name:            "Robotics Lab",
		MaxParticipants: 5,
	}})
	ctx := context.Background()

	successBefore := counterValue(t, "activities_directory_registry_signups_total", outcomeSuccess)
	conflictBefore := counterValue(t, "activities_directory_registry_signups_total", outcomeAlreadySignedUp)

	_, err := reg.Enroll(ctx, "Robotics Lab", "metrics@mergington.edu")
	require.NoError(t, err)
	_, err = reg.Enroll(ctx, "Robotics Lab", "metrics@mergington.edu")
	require.ErrorIs(t, err, domain.ErrAlreadySignedUp)

	require.Equal(t, successBefore+1, counterValue(t, "activities_directory_registry_signups_total", outcomeSuccess))
	require.Equal(t, conflictBefore+1, counterValue(t, "activities_directory_registry_signups_total", outcomeAlreadySignedUp))
}

func TestRosterGaugeTracksSize(t *testing.T) {
	reg := New([]domain.Activity{{
		Name:            "Astronomy Night",
		MaxParticipants: 5,
		Participants:    []string{"stella@mergington.edu"},
	}})
	ctx := context.Background()

	size, ok := gaugeValue(t, "activities_directory_registry_roster_size", "Astronomy Night")
	require.True(t, ok, "gauge should exist after construction")
	require.Equal(t, 1.0, size)

	_, err := reg.Enroll(ctx, "Astronomy Night", "nova@mergington.edu")
	require.NoError(t, err)

	size, _ = gaugeValue(t, "activities_directory_registry_roster_size", "Astronomy Night")
	require.Equal(t, 2.0, size)

	_, err = reg.Withdraw(ctx, "Astronomy Night", "stella@mergington.edu")
	require.NoError(t, err)

	size, _ = gaugeValue(t, "activities_directory_registry_roster_size", "Astronomy Night")
	require.Equal(t, 1.0, size)
}
