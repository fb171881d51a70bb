// Package metrics expone contadores Prometheus del dashboard de riesgo.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "heart_risk"

// Profile load outcomes.
const (
	LoadOK             = "ok"
	LoadNotFound       = "not_found"
	LoadStorageFailure = "storage_failure"
)

// Recorder agrupa las metricas del servicio. Un *Recorder nil no registra nada.
type Recorder struct {
	profileLoads        *prometheus.CounterVec
	analyses            *prometheus.CounterVec
	predictorErrors     prometheus.Counter
	predictorLatency    prometheus.Histogram
	riskPersistFailures prometheus.Counter
	advisories          *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewRecorder crea y registra las metricas en reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		profileLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profile_loads_total",
			Help:      "Profile loads by outcome.",
		}, []string{"outcome"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Completed analyses by gauge color band.",
		}, []string{"band"}),
		predictorErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictor_errors_total",
			Help:      "Failed calls to the prediction service.",
		}),
		predictorLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "predictor_latency_seconds",
			Help:      "Latency of prediction service calls.",
			Buckets:   prometheus.DefBuckets,
		}),
		riskPersistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_persist_failures_total",
			Help:      "Failed writes of risk_percentage after a prediction.",
		}),
		advisories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advisories_total",
			Help:      "Advisories fired by key.",
		}, []string{"key"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, c := range []prometheus.Collector{
		r.profileLoads,
		r.analyses,
		r.predictorErrors,
		r.predictorLatency,
		r.riskPersistFailures,
		r.advisories,
		r.httpRequests,
		r.httpRequestDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) ProfileLoad(outcome string) {
	if r == nil {
		return
	}
	r.profileLoads.WithLabelValues(outcome).Inc()
}

func (r *Recorder) Analysis(band string) {
	if r == nil {
		return
	}
	r.analyses.WithLabelValues(band).Inc()
}

func (r *Recorder) PredictorCall(d time.Duration, err error) {
	if r == nil {
		return
	}
	r.predictorLatency.Observe(d.Seconds())
	if err != nil {
		r.predictorErrors.Inc()
	}
}

func (r *Recorder) RiskPersistFailure() {
	if r == nil {
		return
	}
	r.riskPersistFailures.Inc()
}

func (r *Recorder) Advisory(key string) {
	if r == nil {
		return
	}
	r.advisories.WithLabelValues(key).Inc()
}

func (r *Recorder) HTTPRequest(method, route string, status int, d time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
