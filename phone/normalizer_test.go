package phone

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vortex-fintech/go-textkit/logger"
)

type countingRecorder struct {
	mu     sync.Mutex
	counts map[string]int
}

func (r *countingRecorder) ObserveNormalize(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts == nil {
		r.counts = map[string]int{}
	}
	r.counts[result]++
}

func newObserved(t *testing.T) (*Normalizer, *countingRecorder, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	rec := &countingRecorder{}
	n := NewNormalizer(
		WithLogger(logger.FromZap(zap.New(core))),
		WithRecorder(rec),
		WithWorkers(2),
	)
	return n, rec, logs
}

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	n, rec, logs := newObserved(t)
	ctx := logger.ContextWithTraceID(context.Background(), "trace-7")

	assert.Equal(t, "3035551212", n.Normalize(ctx, "+1 (303) 555-1212"))
	assert.Equal(t, Invalid, n.Normalize(ctx, "+1 (303) 555-12"))

	assert.Equal(t, map[string]int{ResultValid: 1, ResultInvalid: 1}, rec.counts)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "phone rejected", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "too_short", fields["cause"])
	assert.Equal(t, "trace-7", fields["trace_id"])
	assert.Equal(t, "+* (***) *55-12", fields["input"])
	assert.False(t, strings.Contains(fields["input"].(string), "303"), "raw digits leaked into logs")
}

func TestNormalizer_Parse(t *testing.T) {
	t.Parallel()

	n, rec, _ := newObserved(t)

	num, err := n.Parse(context.Background(), "223.456.7890")
	require.NoError(t, err)
	assert.Equal(t, Number("2234567890"), num)

	_, err = n.Parse(context.Background(), "223.456.789O")
	require.ErrorIs(t, err, ErrInvalid)

	assert.Equal(t, map[string]int{ResultValid: 1, ResultInvalid: 1}, rec.counts)
}

func TestNormalizer_NormalizeAll(t *testing.T) {
	t.Parallel()

	n, rec, logs := newObserved(t)

	out, err := n.NormalizeAll(context.Background(), []string{"123-456-7890", "867.5309", "12234567890"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1234567890", Invalid, "2234567890"}, out)
	assert.Equal(t, map[string]int{ResultValid: 2, ResultInvalid: 1}, rec.counts)
	assert.Equal(t, 1, logs.FilterMessage("phone batch normalized").Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = n.NormalizeAll(ctx, []string{"123-456-7890"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, logs.FilterMessage("phone batch aborted").Len())
}

func TestNormalizer_Defaults(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(WithLogger(nil), WithRecorder(nil))
	assert.Equal(t, "2234567890", n.Normalize(context.Background(), "2234567890"))
	assert.Equal(t, Invalid, n.Normalize(context.Background(), "nope"))
}

func TestNormalizer_AllPathsAgreeOnOutcome(t *testing.T) {
	t.Parallel()

	inputs := []string{"0000000000", "1 000 000 0000", "123-456-7890", "867.5309"}
	ctx := context.Background()

	single := &countingRecorder{}
	sn := NewNormalizer(WithRecorder(single))
	for _, raw := range inputs {
		sn.Normalize(ctx, raw)
	}

	parsed := &countingRecorder{}
	pn := NewNormalizer(WithRecorder(parsed))
	for _, raw := range inputs {
		_, err := pn.Parse(ctx, raw)
		assert.Equal(t, IsValid(raw), err == nil, "Parse(%q) err=%v", raw, err)
	}

	batch := &countingRecorder{}
	_, err := NewNormalizer(WithRecorder(batch)).NormalizeAll(ctx, inputs)
	require.NoError(t, err)

	want := map[string]int{ResultValid: 1, ResultInvalid: 3}
	assert.Equal(t, want, single.counts)
	assert.Equal(t, want, parsed.counts)
	assert.Equal(t, want, batch.counts)
}
