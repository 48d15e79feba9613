package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/go-textkit/phone"
	"github.com/vortex-fintech/go-textkit/respond"
)

func TestNew_NilRegisterer(t *testing.T) {
	t.Parallel()

	m, err := New(nil, "textkit", "")
	require.Error(t, err)
	require.Nil(t, m)
}

func TestNew_ExportsZeroSeries(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := New(reg, "textkit", "core")
	require.NoError(t, err)

	// 2 phone results + 4 categories
	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	require.Equal(t, 6, count)
}

func TestRecordersThroughComponents(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := New(reg, "textkit", "")
	require.NoError(t, err)

	n := phone.NewNormalizer(phone.WithRecorder(m))
	r := respond.NewResponder(respond.WithRecorder(m))
	ctx := context.Background()

	n.Normalize(ctx, "123-456-7890")
	n.Normalize(ctx, "867.5309")
	n.Normalize(ctx, "1 800 FLOWERS")
	r.Respond(ctx, "WATCH OUT!")
	r.Respond(ctx, "Does this work?")
	r.Respond(ctx, "ALL CAPS")

	require.Equal(t, 1.0, testutil.ToFloat64(m.normalized.WithLabelValues(phone.ResultValid)))
	require.Equal(t, 2.0, testutil.ToFloat64(m.normalized.WithLabelValues(phone.ResultInvalid)))

	expected := `
# HELP textkit_responses_total Canned replies by message category
# TYPE textkit_responses_total counter
textkit_responses_total{category="default"} 0
textkit_responses_total{category="question"} 1
textkit_responses_total{category="shout"} 2
textkit_responses_total{category="silence"} 0
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "textkit_responses_total"))
}

func TestNew_SharesSeriesOnSameRegistry(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	a, err := New(reg, "textkit", "")
	require.NoError(t, err)
	b, err := New(reg, "textkit", "")
	require.NoError(t, err)

	a.ObserveResponse("shout")
	b.ObserveResponse("shout")

	require.Equal(t, 2.0, testutil.ToFloat64(a.responses.WithLabelValues("shout")))
}
