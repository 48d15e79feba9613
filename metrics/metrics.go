// Package metrics exposes Prometheus counters for the phone normalizer and the
// response classifier.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/go-textkit/phone"
	"github.com/vortex-fintech/go-textkit/respond"
)

// PromMetrics implements phone.Recorder and respond.Recorder.
type PromMetrics struct {
	normalized *prometheus.CounterVec
	responses  *prometheus.CounterVec
}

var (
	_ phone.Recorder   = (*PromMetrics)(nil)
	_ respond.Recorder = (*PromMetrics)(nil)
)

// registerCounterVec returns the already registered vector when an identical
// one exists, so two PromMetrics on one registry share series.
func registerCounterVec(reg prometheus.Registerer, cv *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register collector: %w", err)
	}
	return cv, nil
}

// New creates the collectors and registers them with reg.
//
// Metrics registered:
//   - {namespace}_{subsystem}_phone_normalized_total{result} - valid/invalid normalizations
//   - {namespace}_{subsystem}_responses_total{category} - replies by category
//
// Label values are pre-initialised so every series is exported at zero.
func New(reg prometheus.Registerer, namespace, subsystem string) (*PromMetrics, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}

	pm := &PromMetrics{
		normalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "phone_normalized_total", Help: "Phone normalizations by result",
		}, []string{"result"}),

		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: subsystem,
			Name: "responses_total", Help: "Canned replies by message category",
		}, []string{"category"}),
	}

	var err error
	if pm.normalized, err = registerCounterVec(reg, pm.normalized); err != nil {
		return nil, err
	}
	if pm.responses, err = registerCounterVec(reg, pm.responses); err != nil {
		return nil, err
	}

	for _, r := range []string{phone.ResultValid, phone.ResultInvalid} {
		pm.normalized.WithLabelValues(r)
	}
	for _, c := range respond.Categories {
		pm.responses.WithLabelValues(c.String())
	}

	return pm, nil
}

func (m *PromMetrics) ObserveNormalize(result string) {
	m.normalized.WithLabelValues(result).Inc()
}

func (m *PromMetrics) ObserveResponse(category string) {
	m.responses.WithLabelValues(category).Inc()
}
