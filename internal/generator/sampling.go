package generator

import (
	"math/rand"
	"time"
)

// idAllocator hands out dense, contiguous positive ids, incremented exactly
// once per successful row insertion. Single-threaded use only; a concurrent
// generator would need to guard or shard it.
type idAllocator struct {
	last int
}

func (a *idAllocator) next() int {
	a.last++
	return a.last
}

// keySet is a composite-key dedup registry. add reports whether the key was
// newly inserted; callers treat a false return as "skip the row".
type keySet[K comparable] struct {
	seen map[K]struct{}
}

func newKeySet[K comparable]() *keySet[K] {
	return &keySet[K]{seen: make(map[K]struct{})}
}

func (s *keySet[K]) add(k K) bool {
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	return true
}

// pickOne samples uniformly from pool, reporting false on an empty pool so
// the caller's skip-or-fallback branch is explicit.
func pickOne[T any](rng *rand.Rand, pool []T) (T, bool) {
	if len(pool) == 0 {
		var zero T
		return zero, false
	}
	return pool[rng.Intn(len(pool))], true
}

// timeBetween samples uniformly in [start, end). Returns start when the
// interval is empty or inverted.
func timeBetween(rng *rand.Rand, start, end time.Time) time.Time {
	delta := end.Sub(start)
	if delta <= 0 {
		return start
	}
	return start.Add(time.Duration(rng.Int63n(int64(delta))))
}

// timeStrictlyBetween samples uniformly in (start, end), exclusive of both
// endpoints at nanosecond resolution.
func timeStrictlyBetween(rng *rand.Rand, start, end time.Time) time.Time {
	delta := end.Sub(start)
	if delta <= 1 {
		return start
	}
	return start.Add(time.Duration(rng.Int63n(int64(delta)-1) + 1))
}
