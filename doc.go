// Package quicklog is a low-latency, in-process logging core for
// timing-critical producer code.
//
// The value proposition is that the producer path — the call a
// latency-sensitive goroutine makes to record a log event — does no
// formatting, no synchronization with other producers' loggers, and no
// system call. All formatting and output work is deferred to a
// dedicated consumer goroutine.
//
// # Core Concepts
//
// A LocalLogger is a per-producer object owning a small ring of fixed
// capacity arenas. Record copies its arguments into the current arena
// without interpreting them in any way:
//
//	logger := quicklog.NewLocalLogger(8, 16*1024)
//	server.Register(logger)
//
//	logger.Record("request handled", reqID, elapsed)
//
// When an arena fills, the ring advances and the Server that owns the
// logger's registration is notified. A dedicated consumer goroutine
// drains every registered logger's filled arenas, replaying each
// record's originally captured values against a host-supplied print
// callable:
//
//	server := quicklog.NewServer(64, quicklog.NewChannelPlatform())
//	go server.RunConsumer(func(args ...any) {
//	    fmt.Println(args...)
//	})
//
// # Shutdown
//
// Server.Shutdown stops the consumer after one final drain pass. A
// LocalLogger's last partial arena is only printed if Flush is called
// before shutdown — an idle logger is never forced to print early.
//
//	logger.Flush()
//	server.Shutdown()
//
// # Composing the print callable
//
// The print callable is this package's one external collaborator that
// is allowed to block or fail. PrintSink wraps it as a composable
// pipeline built on github.com/zoobzio/pipz, offering resilience
// adapters: WithRetry, WithTimeout, WithBackoff, WithFallback,
// WithAsync, WithFilter, WithSampling.
//
//	sink := quicklog.NewPrintSink("stderr", func(args ...any) {
//	    fmt.Fprintln(os.Stderr, args...)
//	}).WithRetry(3).WithTimeout(time.Second)
//
//	go server.RunConsumer(sink.AsPrintFunc())
//
// # Non-goals
//
// quicklog is not a general-purpose structured logger: it does not
// persist anything, does not reorder or timestamp events on its own,
// and offers no backpressure beyond failing loudly through the
// configurable ErrorHook when a logger or registry is full.
package quicklog
