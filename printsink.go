package quicklog

import (
	"context"

	"github.com/zoobzio/pipz"
)

// printCall carries one PrintFunc invocation's arguments through a pipz
// pipeline. It implements pipz.Cloner so a PrintSink can be safely used
// from multiple concurrently-draining Servers.
type printCall struct {
	args []any
}

// Clone returns a copy of c with its own backing slice, so concurrent
// pipeline stages never share a mutable arg slice.
func (c printCall) Clone() printCall {
	args := make([]any, len(c.args))
	copy(args, c.args)
	return printCall{args: args}
}

// PrintSink wraps a PrintFunc as a composable pipz pipeline. The print
// callable is the one collaborator in this package that is allowed to
// block or fail; PrintSink lets a host wrap it with composable
// resilience adapters — retry, timeout, backoff, fallback, async,
// filter, sampling — without adding any of that machinery to the
// producer-side fast path. Through AsPrintFunc it runs on the consumer
// thread, inside a Record's reprint call; with WithAsync the wrapped
// stages run in a goroutine started from there.
//
// Example:
//
//	sink := quicklog.NewPrintSink("stderr", func(args ...any) {
//	    fmt.Fprintln(os.Stderr, args...)
//	}).WithRetry(3).WithTimeout(time.Second)
//
//	server.RunConsumer(sink.AsPrintFunc())
type PrintSink struct {
	processor pipz.Chainable[printCall]
}

// NewPrintSink wraps fn as a named PrintSink. The name identifies the
// sink in pipz error messages.
func NewPrintSink(name string, fn PrintFunc) *PrintSink {
	return &PrintSink{
		processor: pipz.Effect(name, func(_ context.Context, c printCall) error {
			fn(c.args...)
			return nil
		}),
	}
}

// AsPrintFunc adapts the sink back into a plain PrintFunc, suitable for
// passing to Server.RunConsumer. Each call runs the full pipeline (retry,
// timeout, backoff, etc.) synchronously unless WithAsync was used.
func (s *PrintSink) AsPrintFunc() PrintFunc {
	return func(args ...any) {
		_, _ = s.processor.Process(context.Background(), printCall{args: args}) //nolint:errcheck // fire-and-forget by design, matching the host print callable's contract
	}
}

// Process implements pipz.Chainable[printCall], letting a PrintSink be
// composed directly into a larger pipz pipeline if a host already has
// one.
func (s *PrintSink) Process(ctx context.Context, c printCall) (printCall, error) {
	return s.processor.Process(ctx, c)
}

// Name returns the name of the underlying pipz processor.
func (s *PrintSink) Name() pipz.Name {
	return s.processor.Name()
}
