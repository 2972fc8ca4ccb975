package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	m := NewCRMMetricsWithRegisterer(prometheus.NewRegistry())

	m.ObserveRequest("GET", "/customers", 200, 30*time.Millisecond)
	m.ObserveRequest("GET", "/customers", 200, 10*time.Millisecond)
	m.ObserveRequest("POST", "/orders/create", 400, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/customers", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("POST", "/orders/create", "400")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestObserveTransportError(t *testing.T) {
	m := NewCRMMetricsWithRegisterer(prometheus.NewRegistry())

	m.ObserveTransportError("POST", "/customers/create")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.transportErrors.WithLabelValues("POST", "/customers/create")))
}

func TestRegistroDobleReutilizaColectores(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewCRMMetricsWithRegisterer(reg)
	second := NewCRMMetricsWithRegisterer(reg)

	first.ObserveTransportError("GET", "/orders")
	assert.Equal(t, 1.0, testutil.ToFloat64(second.transportErrors.WithLabelValues("GET", "/orders")))
}

func TestMetricasNilNoFallan(t *testing.T) {
	var m *CRMMetrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/x", 200, time.Second)
		m.ObserveTransportError("GET", "/x")
	})
}
