package quicklog

import (
	"context"

	"github.com/zoobzio/pipz"
)

// WithAsync processes print calls in a background goroutine, fire-and-
// forget, so a slow host print callable never blocks the consumer
// thread's drain loop.
//
// This is unrelated to how records get off a producer's fast path — that
// handoff is the arena ring's job and happens regardless. WithAsync
// exists for when the print callable itself (not the core) is the slow
// part: an HTTP call, a database write, anything that shouldn't hold up
// draining the next arena.
//
// There is no backpressure: under sustained load this can accumulate
// goroutines. It uses a fresh context.Background() rather than
// propagating any caller context, since none is available on the
// consumer's drain path.
func (s *PrintSink) WithAsync() *PrintSink {
	inner := s.processor
	return &PrintSink{
		processor: pipz.Effect("async", func(_ context.Context, c printCall) error {
			go func() {
				_, _ = inner.Process(context.Background(), c) //nolint:errcheck
			}()
			return nil
		}),
	}
}
