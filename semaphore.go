package quicklog

import "sync/atomic"

// miniSemaphore is a two-counter single-producer/single-consumer count
// primitive. Exactly one goroutine may call put, and exactly one (a
// different) goroutine may call take alongside it; peek may be called
// from either. Each counter has a single writer, so correctness relies
// only on atomic loads and single-writer atomic increments, never on a
// compare-and-swap or an OS-level primitive.
//
// sync/atomic has no dedicated Uint8 type, so the counters are stored as
// Uint32, but peek truncates their difference to a byte before returning
// it. Since 256 divides 2^32, that truncation reproduces the same
// modulo-256 wraparound the original's two volatile uint8_t counters
// have, as long as the logger using this semaphore never asks for a
// count above 255 arenas.
type miniSemaphore struct {
	puts atomic.Uint32
	gets atomic.Uint32
}

// put increments the producer-owned counter. Only the producer thread
// for the enclosing LocalLogger may call this.
func (s *miniSemaphore) put() {
	s.puts.Add(1)
}

// take decrements the outstanding count by incrementing gets. The caller
// must have already observed peek() > 0; calling take on an empty
// semaphore is a bug in the core, reported as SemaphoreUnderflow.
func (s *miniSemaphore) take() {
	if s.puts.Load() == s.gets.Load() {
		handleError(SemaphoreUnderflow, "take called on a semaphore with no outstanding puts")
		return
	}
	s.gets.Add(1)
}

// peek returns the current outstanding count, wrapped to a byte to match
// the modular arithmetic of the original two-byte-counter design.
func (s *miniSemaphore) peek() uint8 {
	return uint8(s.puts.Load() - s.gets.Load())
}
