package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterCollectors(reg)

	Submissions.WithLabelValues("appointment", "stored").Inc()
	n, err := testutil.GatherAndCount(reg, "doctor_profile_submissions_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.Panics(t, func() { RegisterCollectors(reg) })
}
