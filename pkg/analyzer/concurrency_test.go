package analyzer

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var concurrentTexts = []string{
	sampleText,
	"PYthon&Java!kotlin+java8Angular3kotlin angular",
	"Test test TEST",
	"the quick brown fox jumps over the lazy dog, the end",
	"",
	"123 !!! 456",
}

func TestAnalyzer_ConcurrentCallsAgree(t *testing.T) {
	a := New()

	type result struct {
		highest int
		top     []WordFrequency
		the     int
	}
	expected := make([]result, len(concurrentTexts))
	for i, s := range concurrentTexts {
		highest, err := a.HighestFrequency(text(s))
		require.NoError(t, err)
		top, err := a.MostFrequentNWords(text(s), 3)
		require.NoError(t, err)
		the, err := a.FrequencyForWord(text(s), "the")
		require.NoError(t, err)
		expected[i] = result{highest, top, the}
	}

	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 200},
		{workers: 4, iterationsPerWorker: 50},
		{workers: 16, iterationsPerWorker: 25},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			var wg sync.WaitGroup
			mismatches := make(chan string, config.workers)

			for worker := 0; worker < config.workers; worker++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for iter := 0; iter < config.iterationsPerWorker; iter++ {
						i := iter % len(concurrentTexts)
						s := concurrentTexts[i]

						highest, _ := a.HighestFrequency(text(s))
						top, _ := a.MostFrequentNWords(text(s), 3)
						the, _ := a.FrequencyForWord(text(s), "the")

						got := result{highest, top, the}
						if !assert.ObjectsAreEqual(expected[i], got) {
							mismatches <- fmt.Sprintf("text %q: got %+v, want %+v", s, got, expected[i])
							return
						}
					}
				}()
			}

			wg.Wait()
			close(mismatches)
			for msg := range mismatches {
				t.Error(msg)
			}
		})
	}
}

func TestAnalyzer_RetainsNoState(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping memory retention test in short mode")
	}

	a := New()

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	totalOps := 0
	for i := 0; i < 500; i++ {
		for _, s := range concurrentTexts {
			_, _ = a.MostFrequentNWords(text(s), 5)
			_, _ = a.FrequencyForWord(text(s), "kotlin")
			totalOps += 2
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	memDelta := int64(final.Alloc) - int64(baseline.Alloc)
	goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
	memPerOp := float64(memDelta) / float64(totalOps)

	t.Logf("ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		totalOps, memDelta, memPerOp, goroutineDelta)

	if memPerOp > 1000 {
		t.Errorf("excessive retained memory per operation: %.2f bytes", memPerOp)
	}
	if goroutineDelta > 0 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}
