package quicklog

import "github.com/zoobzio/pipz"

// WithRetry adds retry capability to the print sink: it retries the
// wrapped print callable immediately, without delay, up to attempts
// total tries. See WithBackoff for retries with delay between attempts.
func (s *PrintSink) WithRetry(attempts int) *PrintSink {
	if attempts < 1 {
		attempts = 1
	}
	return &PrintSink{processor: pipz.NewRetry("retry", s.processor, attempts)}
}
