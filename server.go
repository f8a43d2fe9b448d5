package quicklog

import "sync/atomic"

// Server is a registry of LocalLoggers plus the consumer loop that drains
// them. On wake it drains every registered logger until none has any
// more filled arenas, then sleeps on its Platform's wait primitive.
//
// The registry is mutated only under the Platform's lock, by Register
// (producer-side, at setup), and read by the consumer under the same
// lock during a drain pass. It is never locked on a LocalLogger's
// Record/Flush fast path.
type Server struct {
	loggers    []*LocalLogger
	maxLoggers int
	run        atomic.Bool
	platform   Platform
}

// NewServer creates a Server that can register up to maxLoggers
// LocalLoggers, using platform for its wait/notify/lock/unlock
// operations.
func NewServer(maxLoggers int, platform Platform) *Server {
	s := &Server{
		maxLoggers: maxLoggers,
		platform:   platform,
	}
	s.run.Store(true)
	return s
}

// Register adds logger to the registry and points its back-reference at
// this Server. It must be called from logger's own producer goroutine,
// so that the back-reference write happens-before that goroutine's first
// Record call.
//
// If the registry is already at capacity, the RegistryFull error hook
// fires and the logger is not registered.
func (s *Server) Register(logger *LocalLogger) {
	s.platform.Lock()
	defer s.platform.Unlock()

	if len(s.loggers) >= s.maxLoggers {
		handleError(RegistryFull, "server registry full, can't register logger")
		return
	}

	s.loggers = append(s.loggers, logger)
	logger.server = s
}

// notifyDumpAvailable is called by a producer after advance() hands off
// a filled arena. It forwards to the Platform's notify, waking the
// consumer if it is asleep.
func (s *Server) notifyDumpAvailable() {
	s.platform.Notify()
}

// RunConsumer is the consumer thread's entry point. It loops waiting on
// the Platform, draining all registered loggers after every wake, until
// Shutdown clears the run flag — at which point it performs one final
// drain pass and returns.
//
// print is invoked once per drained record, in that record's originally
// submitted argument order. Across loggers no ordering is promised; the
// drain loop visits loggers in registration order but interleaves them
// at arena granularity.
func (s *Server) RunConsumer(print PrintFunc) {
	for s.run.Load() {
		s.platform.Wait()
		s.drainAll(print)
	}
	s.drainAll(print)
}

// drainAll repeatedly sweeps every registered logger until a full sweep
// drains nothing, so that an arena filled by a producer mid-sweep is not
// missed. The sweep is bounded: every drainOne that returns true reduces
// the registry's total outstanding count by exactly one, and producers
// can only add finitely many per unit time, bounded by their own ring
// capacity.
func (s *Server) drainAll(print PrintFunc) {
	s.platform.Lock()
	defer s.platform.Unlock()

	didWork := true
	for didWork {
		didWork = false
		for _, logger := range s.loggers {
			if logger.drainOne(print) {
				didWork = true
			}
		}
	}
}

// Shutdown clears the run flag and wakes the consumer so it notices the
// change even if it's currently idle. After Shutdown returns, the
// consumer is guaranteed one more full drain pass before RunConsumer
// returns. Calling Shutdown more than once is safe — the run flag is
// idempotent.
//
// Producers must stop calling Record before the consumer's exit becomes
// observable; shutting down while producers are still live is undefined.
func (s *Server) Shutdown() {
	s.run.Store(false)
	if fn, ok := s.platform.(forceNotifier); ok {
		fn.ForceNotify()
	} else {
		s.platform.Notify()
	}
}

// forceNotifier is implemented by Platforms that throttle Notify and
// need a way to bypass that throttling for a guaranteed wake, such as
// RateLimitedPlatform.
type forceNotifier interface {
	ForceNotify()
}
