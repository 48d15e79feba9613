package logger

import "context"

// Interface is the logging surface the instrumented components depend on.
type Interface interface {
	Infow(string, ...any)
	Warnw(string, ...any)
	Errorw(string, ...any)
	Debugw(string, ...any)

	InfowCtx(context.Context, string, ...any)
	WarnwCtx(context.Context, string, ...any)
	ErrorwCtx(context.Context, string, ...any)
	DebugwCtx(context.Context, string, ...any)

	With(...any) Interface
	SafeSync()
}
