package quicklog

import "sync/atomic"

// WithSampling only invokes the wrapped print callable for a
// deterministic fraction of calls, using a counter rather than
// randomness: every k-th call is kept, where k is 1/rate truncated to a
// whole number, so the kept fraction equals rate exactly only when 1/rate
// is a whole number (rate 0.3 keeps one call in three).
// rate is clamped to [0, 1]; 0 drops every call, 1 is a no-op.
//
// This is independent of the core's own batching: a record is already
// captured and drained regardless, so sampling here only thins out how
// often the (possibly expensive) print callable itself actually runs —
// useful when print forwards to a metered backend.
func (s *PrintSink) WithSampling(rate float64) *PrintSink {
	if rate <= 0 {
		return NewPrintSink("sampling-drop-all", func(_ ...any) {})
	}
	if rate >= 1 {
		return s
	}

	var counter uint64
	interval := uint64(1.0 / rate)

	return s.WithFilter(func(_ []any) bool {
		count := atomic.AddUint64(&counter, 1)
		return count%interval == 0
	})
}
