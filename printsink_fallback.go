package quicklog

import "github.com/zoobzio/pipz"

// WithFallback tries fallback if the sink's own processing fails — for
// example, falling back from a colorized terminal print to a plain one
// when the primary panics or errors. Both sinks see identical arguments;
// the fallback is never invoked if the primary succeeds.
func (s *PrintSink) WithFallback(fallback *PrintSink) *PrintSink {
	return &PrintSink{processor: pipz.NewFallback("fallback", s.processor, fallback.processor)}
}
