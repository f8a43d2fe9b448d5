package quicklog

import (
	"fmt"
	"os"
)

// ErrorKind identifies the category of an invariant violation reported
// through the package's ErrorHook. Every kind listed here is fatal by
// policy: none of them indicate a transient fault, so there is no retry,
// no queue-to-disk, and no circuit-breaker around them.
type ErrorKind string

const (
	// LoggerFull fires when a producer calls Record while all of a
	// LocalLogger's arenas are already handed off to the consumer.
	LoggerFull ErrorKind = "LOGGER_FULL"

	// EntryTooLarge fires when a single record does not fit in an empty
	// arena, i.e. the record is larger than the logger's buffer size.
	EntryTooLarge ErrorKind = "ENTRY_TOO_LARGE"

	// UnregisteredLogger fires when advance() is reached without the
	// logger having been registered with a Server first.
	UnregisteredLogger ErrorKind = "UNREGISTERED_LOGGER"

	// RegistryFull fires when Server.Register is called after maxLoggers
	// loggers have already been registered.
	RegistryFull ErrorKind = "REGISTRY_FULL"

	// SemaphoreUnderflow fires when the consumer calls take() on a
	// miniSemaphore whose count is already zero. This indicates a bug in
	// the core itself rather than caller misuse.
	SemaphoreUnderflow ErrorKind = "SEMAPHORE_UNDERFLOW"
)

// ErrorHook is invoked on any invariant violation listed above with the
// offending ErrorKind and a diagnostic message. The default hook writes
// to stderr and terminates the process. A host may install its own hook
// with SetErrorHook; if a custom hook returns instead of terminating, the
// operation that triggered it becomes a no-op.
type ErrorHook func(kind ErrorKind, message string)

// hook is deliberately a plain package variable, not behind a mutex or
// atomic.Value: the documented pattern is to call SetErrorHook once at
// program start, before any producer or consumer thread is running,
// mirroring how the rest of this package treats setup-time calls as
// exempt from the no-locks-on-the-fast-path rule.
var hook ErrorHook = defaultErrorHook

// SetErrorHook installs a custom error hook, replacing the default
// stderr-and-exit behavior. Passing nil is a no-op.
func SetErrorHook(h ErrorHook) {
	if h != nil {
		hook = h
	}
}

func defaultErrorHook(kind ErrorKind, message string) {
	fmt.Fprintf(os.Stderr, "quicklog: %s: %s\n", kind, message)
	os.Exit(1)
}

func handleError(kind ErrorKind, message string) {
	hook(kind, message)
}
