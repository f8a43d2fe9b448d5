package quicklog

import (
	"time"

	"github.com/zoobzio/pipz"
)

// WithTimeout bounds how long the wrapped print callable is allowed to
// run before the sink gives up and reports a timeout error. Useful for
// keeping a slow host print callable from stalling the consumer
// indefinitely.
func (s *PrintSink) WithTimeout(d time.Duration) *PrintSink {
	if d <= 0 {
		d = 30 * time.Second
	}
	return &PrintSink{processor: pipz.NewTimeout("timeout", s.processor, d)}
}
