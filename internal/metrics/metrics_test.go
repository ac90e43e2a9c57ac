package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Record(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementClusterOutcome("ok")
	m.IncrementClusterOutcome("ok")
	m.IncrementClusterOutcome("not_found")
	m.ObserveRequest("GET", "/api/crime-clusters", "200", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ClusterOutcome.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClusterOutcome.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/crime-clusters", "200")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementClusterOutcome("ok")
		m.ObserveClusterBuckets(3)
		m.ObserveStoreLatency("find_for_clustering", time.Millisecond)
		m.ObserveRequest("GET", "/", "200", time.Millisecond)
	})
}
