// Package kit assembles the instrumented phone normalizer and responder from
// a single Config.
package kit

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vortex-fintech/go-textkit/logger"
	"github.com/vortex-fintech/go-textkit/metrics"
	"github.com/vortex-fintech/go-textkit/phone"
	"github.com/vortex-fintech/go-textkit/respond"
)

// Kit holds the components built from one Config.
type Kit struct {
	Config     Config
	Logger     *logger.Logger
	Metrics    *metrics.PromMetrics // nil when New got a nil registerer
	Normalizer *phone.Normalizer
	Responder  *respond.Responder
}

// New validates cfg and wires the components. Metrics are skipped when reg is nil.
func New(cfg Config, reg prometheus.Registerer) (*Kit, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		return nil, err
	}

	k := &Kit{Config: cfg, Logger: log}

	phoneOpts := []phone.Option{
		phone.WithLogger(log.With("component", "phone")),
		phone.WithWorkers(cfg.BatchWorkers),
	}
	respondOpts := []respond.Option{
		respond.WithLogger(log.With("component", "respond")),
	}

	if reg != nil {
		m, err := metrics.New(reg, cfg.MetricsNamespace, cfg.MetricsSubsystem)
		if err != nil {
			log.SafeSync()
			return nil, err
		}
		k.Metrics = m
		phoneOpts = append(phoneOpts, phone.WithRecorder(m))
		respondOpts = append(respondOpts, respond.WithRecorder(m))
	}

	k.Normalizer = phone.NewNormalizer(phoneOpts...)
	k.Responder = respond.NewResponder(respondOpts...)

	log.Infow("textkit initialised",
		"env", cfg.Env,
		"metrics", reg != nil,
		"batch_workers", cfg.BatchWorkers,
	)
	return k, nil
}

// Close flushes buffered log entries.
func (k *Kit) Close() {
	if k == nil {
		return
	}
	k.Logger.SafeSync()
}
