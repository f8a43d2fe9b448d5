package quicklog

// LocalLogger is the per-producer component of quicklog. It owns N
// fixed-size arenas used as a ring buffer; Record copies arguments into
// the current arena without formatting, synchronizing with any other
// producer, allocating from a shared pool, or making a system call. When
// an arena fills, the ring advances and the owning Server is notified so
// its consumer thread can drain the filled arena on its own schedule.
//
// A LocalLogger is strictly single-producer: no two goroutines may call
// Record or Flush on the same LocalLogger concurrently. The consumer
// thread driving the owning Server's RunConsumer is the only reader.
//
// A LocalLogger must be registered with a Server (via Server.Register,
// called from the producer goroutine) before its first Record call. The
// documented pattern is to give it the lifetime of the goroutine or
// program that owns it — there is no deregistration.
type LocalLogger struct {
	arenas      []*arena
	writeIndex  uint8
	readIndex   uint8
	buffersFull miniSemaphore
	server      *Server
	n           uint8
}

// NewLocalLogger creates a LocalLogger with n arenas of bufferSize bytes
// each. n must be between 1 and 255 inclusive; bufferSize should be large
// enough to hold the largest record this logger will ever submit.
func NewLocalLogger(n int, bufferSize int) *LocalLogger {
	if n < 1 || n > 255 {
		panic("quicklog: NewLocalLogger: n must be between 1 and 255")
	}

	arenas := make([]*arena, n)
	for i := range arenas {
		arenas[i] = newArena(bufferSize)
	}

	return &LocalLogger{
		arenas: arenas,
		n:      uint8(n),
	}
}

// Record captures values without formatting them and appends them to
// the current arena. If the current arena is full (all N arenas are
// already handed off to the consumer), the LoggerFull error hook fires
// and the event is dropped. If the current arena lacks room, the ring
// advances once and the push is retried; if that advance handed off the
// last writable arena, LoggerFull fires and the event is dropped. If the
// record still doesn't
// fit — meaning it is larger than a single empty arena — the
// EntryTooLarge error hook fires and the event is dropped.
//
// Record must only ever be called by this LocalLogger's single producer
// goroutine.
func (l *LocalLogger) Record(values ...any) {
	if l.buffersFull.peek() == l.n {
		handleError(LoggerFull, "logger full, dropping record")
		return
	}

	rec := newRecord(values)

	if l.arenas[l.writeIndex].tryPush(rec) {
		return
	}

	l.advance()
	if l.buffersFull.peek() == l.n {
		handleError(LoggerFull, "logger full, dropping record")
		return
	}
	if !l.arenas[l.writeIndex].tryPush(rec) {
		handleError(EntryTooLarge, "record larger than a single arena, dropping record")
	}
}

// Flush hands off the current arena to the consumer if it holds any
// records. Flushing an empty arena is a no-op: it does not advance the
// ring and does not wake the consumer, so an idle producer never churns
// it. Without a final Flush, the most recently written arena is never
// printed unless it later fills on its own.
//
// Flush must only ever be called by this LocalLogger's single producer
// goroutine.
func (l *LocalLogger) Flush() {
	if !l.arenas[l.writeIndex].empty() {
		l.advance()
	}
}

// advance hands the current write arena to the consumer and moves to
// the next slot in the ring. Callers must have already confirmed
// buffersFull.peek() < l.n.
func (l *LocalLogger) advance() {
	if l.buffersFull.peek() >= l.n {
		handleError(LoggerFull, "advance called with no writable arena left")
		return
	}

	if l.server == nil {
		handleError(UnregisteredLogger, "advance reached before logger was registered with a Server")
		return
	}

	l.writeIndex = (l.writeIndex + 1) % l.n
	l.buffersFull.put()
	l.server.notifyDumpAvailable()
}

// drainOne drains the oldest filled arena, if any, and reports whether
// it did so. It must only ever be called by the owning Server's
// consumer thread.
//
// Go's sync/atomic operations are sequentially consistent as of the
// language's memory model (1.19+): the atomic load inside peek() and the
// atomic store inside buffersFull.take() already establish the
// happens-before relationship the original enforces with explicit
// compiler memory-fence intrinsics around advance() and drainOne(), so
// no separate fence call is needed here.
func (l *LocalLogger) drainOne(print PrintFunc) bool {
	if l.buffersFull.peek() == 0 {
		return false
	}

	l.arenas[l.readIndex].drain(print)
	l.readIndex = (l.readIndex + 1) % l.n
	l.buffersFull.take()
	return true
}
