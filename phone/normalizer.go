package phone

import (
	"context"

	"github.com/vortex-fintech/go-textkit/logger"
)

// Outcomes passed to Recorder.ObserveNormalize.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// resultOf maps a normalized value to its outcome. Every Normalizer method
// records through it.
func resultOf(num string) string {
	if num == Invalid {
		return ResultInvalid
	}
	return ResultValid
}

// Recorder receives one observation per normalized input.
type Recorder interface {
	ObserveNormalize(result string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveNormalize(string) {}

// Normalizer wraps the package functions with logging and metrics. It is
// immutable after construction and safe for concurrent use.
type Normalizer struct {
	log      logger.Interface
	recorder Recorder
	workers  int
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l logger.Interface) Option {
	return func(n *Normalizer) {
		if l != nil {
			n.log = l
		}
	}
}

// WithRecorder sets the metrics sink; nil keeps the no-op default.
func WithRecorder(r Recorder) Option {
	return func(n *Normalizer) {
		if r != nil {
			n.recorder = r
		}
	}
}

// WithWorkers bounds NormalizeAll concurrency; <= 0 means one goroutine per input.
func WithWorkers(workers int) Option {
	return func(n *Normalizer) { n.workers = workers }
}

// NewNormalizer returns a Normalizer with a no-op logger and recorder unless
// overridden by opts.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		log:      logger.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize returns exactly what the package-level Normalize returns.
func (n *Normalizer) Normalize(ctx context.Context, raw string) string {
	num, c := normalize(raw)
	n.observe(ctx, raw, num, c)
	return num
}

// Parse returns exactly what the package-level Parse returns.
func (n *Normalizer) Parse(ctx context.Context, raw string) (Number, error) {
	num, c := normalize(raw)
	n.observe(ctx, raw, num, c)
	if c != causeNone {
		return "", parseError(c)
	}
	return Number(num), nil
}

// NormalizeAll is the batch form of Normalize using the configured workers.
func (n *Normalizer) NormalizeAll(ctx context.Context, raws []string) ([]string, error) {
	out, err := NormalizeAll(ctx, raws, n.workers)
	if err != nil {
		n.log.WarnwCtx(ctx, "phone batch aborted", "size", len(raws), "error", err)
		return nil, err
	}

	invalid := 0
	for _, num := range out {
		result := resultOf(num)
		if result == ResultInvalid {
			invalid++
		}
		n.recorder.ObserveNormalize(result)
	}
	n.log.DebugwCtx(ctx, "phone batch normalized", "size", len(out), "invalid", invalid)
	return out, nil
}

func (n *Normalizer) observe(ctx context.Context, raw, num string, c cause) {
	result := resultOf(num)
	n.recorder.ObserveNormalize(result)
	if result == ResultValid {
		return
	}
	n.log.DebugwCtx(ctx, "phone rejected", "input", Mask(raw), "cause", string(c))
}
