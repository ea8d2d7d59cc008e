package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { Register(reg) })
	assert.Panics(t, func() { Register(reg) })
}

func TestObserveUpstream(t *testing.T) {
	before := testutil.ToFloat64(upstreamRequests.WithLabelValues("users.get", "200"))
	ObserveUpstream("users.get", 200)
	assert.Equal(t, before+1, testutil.ToFloat64(upstreamRequests.WithLabelValues("users.get", "200")))

	before = testutil.ToFloat64(upstreamRequests.WithLabelValues("users.get", "error"))
	ObserveUpstream("users.get", 0)
	assert.Equal(t, before+1, testutil.ToFloat64(upstreamRequests.WithLabelValues("users.get", "error")))
}

func TestObserveDecision(t *testing.T) {
	before := testutil.ToFloat64(authorizationDecisions.WithLabelValues("sessions.read", "denied"))
	ObserveDecision("sessions.read", false)
	assert.Equal(t, before+1, testutil.ToFloat64(authorizationDecisions.WithLabelValues("sessions.read", "denied")))
}

func TestObserveTokenRefresh(t *testing.T) {
	before := testutil.ToFloat64(tokenRefreshes)
	ObserveTokenRefresh()
	assert.Equal(t, before+1, testutil.ToFloat64(tokenRefreshes))
}
