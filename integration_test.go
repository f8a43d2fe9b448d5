package quicklog

import (
	"sync"
	"testing"
	"time"
)

// TestSingleProducerSequentialOrder drives a single producer submitting
// 1024 sequential integers through a real consumer goroutine and a real
// ChannelPlatform, and checks that every value comes back in submitted
// order with none lost or duplicated.
func TestSingleProducerSequentialOrder(t *testing.T) {
	restore := captureErrorHook(t)
	defer restore()

	platform := NewChannelPlatform()
	server := NewServer(1, platform)
	logger := NewLocalLogger(8, 16*1024)
	server.Register(logger)

	const total = 1024
	var got []int
	var mu sync.Mutex
	consumerDone := make(chan int)

	go func() {
		count := 0
		server.RunConsumer(func(args ...any) {
			mu.Lock()
			got = append(got, args[0].(int))
			mu.Unlock()
			count++
		})
		consumerDone <- count
	}()

	for i := 0; i < total; i++ {
		logger.Record(i)
	}
	logger.Flush()

	// Give the consumer a chance to fully drain before shutting down.
	deadline := time.After(5 * time.Second)
	for {
		mu.Lock()
		n := len(got)
		mu.Unlock()
		if n >= total {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for all %d records to drain, got %d", total, n)
		case <-time.After(time.Millisecond):
		}
	}

	server.Shutdown()
	count := <-consumerDone

	if len(testErrors) != 0 {
		t.Fatalf("unexpected errors: %+v", testErrors)
	}
	if count != total {
		t.Fatalf("consumer printed %d records, want %d", count, total)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("order[%d] = %d, want %d", i, v, i)
		}
	}
}

// TestMultipleProducersPerTagOrder drives four producers each submitting
// 1024 tagged records concurrently through a shared Server and a real
// ChannelPlatform. Cross-producer interleaving is unconstrained, but
// each producer's own subsequence must come back in submitted order with
// no loss.
func TestMultipleProducersPerTagOrder(t *testing.T) {
	restore := captureErrorHook(t)
	defer restore()

	const (
		numProducers      = 4
		recordsPerProducer = 1024
	)

	platform := NewChannelPlatform()
	server := NewServer(numProducers, platform)

	loggers := make([]*LocalLogger, numProducers)
	for i := range loggers {
		loggers[i] = NewLocalLogger(8, 16*1024)
		server.Register(loggers[i])
	}

	perTag := make(map[int][]int)
	var mu sync.Mutex
	consumerDone := make(chan int)

	go func() {
		count := 0
		server.RunConsumer(func(args ...any) {
			tag := args[0].(int)
			seq := args[1].(int)
			mu.Lock()
			perTag[tag] = append(perTag[tag], seq)
			mu.Unlock()
			count++
		})
		consumerDone <- count
	}()

	var wg sync.WaitGroup
	for tag := 0; tag < numProducers; tag++ {
		tag := tag
		logger := loggers[tag]
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seq := 0; seq < recordsPerProducer; seq++ {
				logger.Record(tag, seq)
			}
			logger.Flush()
		}()
	}
	wg.Wait()

	const total = numProducers * recordsPerProducer
	deadline := time.After(5 * time.Second)
	for {
		mu.Lock()
		n := 0
		for _, seqs := range perTag {
			n += len(seqs)
		}
		mu.Unlock()
		if n >= total {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for all %d records to drain, got %d", total, n)
		case <-time.After(time.Millisecond):
		}
	}

	server.Shutdown()
	count := <-consumerDone

	if len(testErrors) != 0 {
		t.Fatalf("unexpected errors: %+v", testErrors)
	}
	if count != total {
		t.Fatalf("consumer printed %d records, want %d", count, total)
	}

	for tag := 0; tag < numProducers; tag++ {
		seqs, ok := perTag[tag]
		if !ok || len(seqs) != recordsPerProducer {
			t.Fatalf("tag %d: got %d records, want %d", tag, len(seqs), recordsPerProducer)
		}
		for i, v := range seqs {
			if v != i {
				t.Fatalf("tag %d order[%d] = %d, want %d", tag, i, v, i)
			}
		}
	}
}
