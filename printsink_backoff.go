package quicklog

import (
	"time"

	"github.com/zoobzio/pipz"
)

// WithBackoff adds retry with exponential backoff: attempts double the
// delay after every failure, starting at baseDelay. Prefer this over
// WithRetry when the print callable talks to something that can be
// temporarily overloaded (a remote collector, a rate-limited API).
func (s *PrintSink) WithBackoff(maxAttempts int, baseDelay time.Duration) *PrintSink {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}
	return &PrintSink{processor: pipz.NewBackoff("backoff", s.processor, maxAttempts, baseDelay)}
}
