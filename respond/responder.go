package respond

import (
	"context"
	"unicode/utf8"

	"github.com/vortex-fintech/go-textkit/logger"
)

// Recorder receives one observation per answered message.
type Recorder interface {
	ObserveResponse(category string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveResponse(string) {}

// Responder is Respond with logging and metrics. Message text is never logged.
type Responder struct {
	log      logger.Interface
	recorder Recorder
}

// Option configures a Responder.
type Option func(*Responder)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l logger.Interface) Option {
	return func(r *Responder) {
		if l != nil {
			r.log = l
		}
	}
}

// WithRecorder sets the metrics sink; nil keeps the no-op default.
func WithRecorder(rec Recorder) Option {
	return func(r *Responder) {
		if rec != nil {
			r.recorder = rec
		}
	}
}

// NewResponder returns a Responder with a no-op logger and recorder unless
// overridden by opts.
func NewResponder(opts ...Option) *Responder {
	r := &Responder{
		log:      logger.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Respond returns exactly what the package-level Respond returns and records
// the category.
func (r *Responder) Respond(ctx context.Context, input string) string {
	c := Classify(input)
	r.recorder.ObserveResponse(c.String())
	r.log.DebugwCtx(ctx, "message classified",
		"category", c.String(),
		"runes", utf8.RuneCountInString(input),
	)
	return c.Reply()
}
