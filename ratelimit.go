package quicklog

import (
	"golang.org/x/time/rate"
)

// RateLimitedPlatform wraps a Platform and throttles its Notify calls
// through a token-bucket limiter. advance() only notifies on arena
// rollover, not per event, but a pathological producer rolling arenas
// over every few records can still wake the consumer far faster than it
// can usefully drain, burning CPU on wakeups that find little new work.
// Capping the notify rate trades a small amount of added latency for
// fewer wakeups under sustained overload.
//
// Wait, Lock, and Unlock pass straight through to the wrapped Platform;
// only Notify is rate-limited.
type RateLimitedPlatform struct {
	inner   Platform
	limiter *rate.Limiter
}

// NewRateLimitedPlatform wraps inner, allowing at most one Notify every
// 1/eventsPerSecond seconds on average, with burst as the initial
// allowance. A Notify call that exceeds the current rate is dropped —
// never queued or blocked — since a dropped notify only delays the next
// drain pass. Shutdown's own wake always gets through because Shutdown
// calls ForceNotify, which bypasses the limiter.
func NewRateLimitedPlatform(inner Platform, eventsPerSecond float64, burst int) *RateLimitedPlatform {
	return &RateLimitedPlatform{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(eventsPerSecond), burst),
	}
}

// Wait delegates to the wrapped Platform.
func (p *RateLimitedPlatform) Wait() { p.inner.Wait() }

// Notify delegates to the wrapped Platform's Notify only if the limiter
// currently has a token available.
func (p *RateLimitedPlatform) Notify() {
	if p.limiter.Allow() {
		p.inner.Notify()
	}
}

// Lock delegates to the wrapped Platform.
func (p *RateLimitedPlatform) Lock() { p.inner.Lock() }

// Unlock delegates to the wrapped Platform.
func (p *RateLimitedPlatform) Unlock() { p.inner.Unlock() }

// ForceNotify bypasses the limiter and notifies the wrapped Platform
// unconditionally. Server.Shutdown uses this (via the forceNotifier
// interface) so the consumer's final wake is never dropped by
// throttling.
func (p *RateLimitedPlatform) ForceNotify() {
	p.inner.Notify()
}
