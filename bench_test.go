package quicklog

import "testing"

// noOpPlatform is a Platform stand-in that never actually blocks, used to
// keep benchmarks measuring the core hot paths rather than scheduling.
type noOpPlatform struct{}

func (noOpPlatform) Wait()   {}
func (noOpPlatform) Notify() {}
func (noOpPlatform) Lock()   {}
func (noOpPlatform) Unlock() {}

// BenchmarkRecord measures the producer-side fast path in isolation: no
// contention, arena big enough that advance() never triggers.
func BenchmarkRecord(b *testing.B) {
	b.Run("SingleInt", func(b *testing.B) {
		server := NewServer(1, noOpPlatform{})
		logger := NewLocalLogger(8, 64*1024*1024)
		server.Register(logger)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			logger.Record(i)
		}
	})

	b.Run("FourMixedArgs", func(b *testing.B) {
		server := NewServer(1, noOpPlatform{})
		logger := NewLocalLogger(8, 64*1024*1024)
		server.Register(logger)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			logger.Record("tag", i, true, 3.14)
		}
	})
}

// BenchmarkRecordWithRollover measures Record when every call forces an
// arena rollover, exercising advance() and notifyDumpAvailable(). The
// handed-off arena is drained outside the timer so the ring never fills.
func BenchmarkRecordWithRollover(b *testing.B) {
	server := NewServer(1, noOpPlatform{})
	logger := NewLocalLogger(64, 64)
	server.Register(logger)

	print := func(_ ...any) {}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Record(i)
		logger.Flush()

		b.StopTimer()
		for logger.drainOne(print) {
		}
		b.StartTimer()
	}
}

// BenchmarkDrainOne measures the consumer-side drain path for a fully
// populated arena, excluding capture cost.
func BenchmarkDrainOne(b *testing.B) {
	server := NewServer(1, noOpPlatform{})
	logger := NewLocalLogger(8, 1024*1024)
	server.Register(logger)

	print := func(_ ...any) {}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		for j := 0; j < 100; j++ {
			logger.Record(j)
		}
		logger.Flush()
		b.StartTimer()

		for logger.drainOne(print) {
		}
	}
}

// BenchmarkPrintSinkAsPrintFunc measures the pipz pipeline overhead a
// PrintSink adds over calling the wrapped PrintFunc directly.
func BenchmarkPrintSinkAsPrintFunc(b *testing.B) {
	sink := NewPrintSink("bench", func(_ ...any) {})
	print := sink.AsPrintFunc()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		print("tag", i)
	}
}
