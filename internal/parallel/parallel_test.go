package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

// cover runs Range and returns how many times each index was visited and how
// many chunks were used.
func cover(n, cost int, cfg Config) ([]int32, int) {
	seen := make([]int32, n)
	var mu sync.Mutex
	chunks := 0
	Range(n, cost, func(lo, hi int) {
		mu.Lock()
		chunks++
		mu.Unlock()
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	}, cfg)
	return seen, chunks
}

func TestRange_CoversEveryIndexOnce(t *testing.T) {
	cfg := Config{Workers: 4, MinWork: 1}
	for _, n := range []int{1, 3, 4, 7, 100, 1001} {
		seen, _ := cover(n, 1, cfg)
		for i, v := range seen {
			if v != 1 {
				t.Errorf("n=%d: index %d visited %d times", n, i, v)
			}
		}
	}
}

func TestRange_Splits(t *testing.T) {
	_, chunks := cover(100, 1000, Config{Workers: 4, MinWork: 1})
	if chunks != 4 {
		t.Errorf("Expected 4 chunks, got %d", chunks)
	}
}

func TestRange_SmallWorkRunsInline(t *testing.T) {
	_, chunks := cover(10, 10, Config{Workers: 8, MinWork: 1 << 14})
	if chunks != 1 {
		t.Errorf("Expected 1 chunk, got %d", chunks)
	}

	_, chunks = cover(1000, 1000, Config{Workers: 1})
	if chunks != 1 {
		t.Errorf("Expected 1 chunk with a single worker, got %d", chunks)
	}
}

func TestRange_Empty(t *testing.T) {
	called := false
	Range(0, 1, func(_, _ int) { called = true }, DefaultConfig())
	if called {
		t.Error("Expected no call for n=0")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Workers < 1 {
		t.Errorf("Expected at least one worker, got %d", cfg.Workers)
	}
	if cfg.MinWork <= 0 {
		t.Errorf("Expected positive MinWork, got %d", cfg.MinWork)
	}
}

func BenchmarkRange(b *testing.B) {
	n := 10000
	data := make([]float32, n)

	b.Run("parallel", func(b *testing.B) {
		cfg := DefaultConfig()
		for i := 0; i < b.N; i++ {
			Range(n, 64, func(lo, hi int) {
				for j := lo; j < hi; j++ {
					data[j] += 1
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfg := Config{Workers: 1}
		for i := 0; i < b.N; i++ {
			Range(n, 64, func(lo, hi int) {
				for j := lo; j < hi; j++ {
					data[j] += 1
				}
			}, cfg)
		}
	})
}
