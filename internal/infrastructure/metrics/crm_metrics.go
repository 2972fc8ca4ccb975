// Package metrics expone las métricas Prometheus de las llamadas al CRM.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CRMMetrics métricas de las llamadas salientes al CRM.
type CRMMetrics struct {
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	transportErrors *prometheus.CounterVec
}

// NewCRMMetrics registra las métricas en prometheus.DefaultRegisterer.
func NewCRMMetrics() *CRMMetrics {
	return NewCRMMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewCRMMetricsWithRegisterer registra las métricas en registerer (útil en tests con un registry aislado).
// Si ya estaban registradas se reutilizan las existentes.
func NewCRMMetricsWithRegisterer(registerer prometheus.Registerer) *CRMMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CRMMetrics{
		requests: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "crm_requests_total",
			Help: "Total de llamadas al CRM por método, ruta y status HTTP",
		}, []string{"method", "path", "status"}),
		duration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "crm_request_duration_seconds",
			Help:    "Duración de las llamadas al CRM en segundos",
			Buckets: []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "path"}),
		transportErrors: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "crm_transport_errors_total",
			Help: "Llamadas al CRM fallidas por red o respuesta no JSON",
		}, []string{"method", "path"}),
	}
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// ObserveRequest registra una llamada que obtuvo respuesta HTTP (cualquier status).
func (m *CRMMetrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveTransportError registra una llamada fallida por red o cuerpo no decodificable.
func (m *CRMMetrics) ObserveTransportError(method, path string) {
	if m == nil {
		return
	}
	m.transportErrors.WithLabelValues(method, path).Inc()
}
