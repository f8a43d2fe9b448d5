package quicklog

import (
	"context"

	"github.com/zoobzio/pipz"
)

// WithFilter only invokes the wrapped print callable for calls whose
// arguments satisfy predicate; other calls are silently dropped. The
// predicate receives the same argument slice Record captured, so it can
// inspect, for instance, a severity tag conventionally passed as the
// first argument.
func (s *PrintSink) WithFilter(predicate func(args []any) bool) *PrintSink {
	condition := func(_ context.Context, c printCall) bool {
		return predicate(c.args)
	}
	return &PrintSink{processor: pipz.NewFilter[printCall]("filter", condition, s.processor)}
}
