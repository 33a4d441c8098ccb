package search

import (
	"runtime"
	"sync"
)

// defaultMaxShards caps the shard count selected automatically, mirroring
// the cap the duynguyendang-gca sharded dictionary applies to its own
// auto-sized shard count.
const defaultMaxShards = 256

type mapShard struct {
	mu sync.RWMutex
	m  map[int64]*float64
}

// ShardedMap is a fixed-shard associative structure keyed by integer
// document id, each shard independently locked. It is scoped to a single
// parallel ranking call and discarded once BuildOrdinary has been taken.
// It provides no cross-shard atomicity.
type ShardedMap struct {
	shards []*mapShard
}

// NewShardedMap creates a sharded map with shardCount shards, rounded up
// to the next power of two. A non-positive shardCount selects
// runtime.NumCPU(), capped at defaultMaxShards.
func NewShardedMap(shardCount int) *ShardedMap {
	if shardCount <= 0 {
		shardCount = runtime.NumCPU()
		if shardCount > defaultMaxShards {
			shardCount = defaultMaxShards
		}
	}
	n := nextPowerOfTwo(shardCount)

	shards := make([]*mapShard, n)
	for i := range shards {
		shards[i] = &mapShard{m: make(map[int64]*float64)}
	}
	return &ShardedMap{shards: shards}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func (sm *ShardedMap) shardFor(id int64) *mapShard {
	idx := id % int64(len(sm.shards))
	if idx < 0 {
		idx += int64(len(sm.shards))
	}
	return sm.shards[idx]
}

// AtMut acquires the lock of the shard owning id, inserting a
// zero-valued entry if absent, and returns a pointer to that entry along
// with an unlock function the caller must invoke when done mutating.
// Different shards progress concurrently; contention on the same shard
// serializes.
func (sm *ShardedMap) AtMut(id int64) (entry *float64, unlock func()) {
	shard := sm.shardFor(id)
	shard.mu.Lock()

	v, ok := shard.m[id]
	if !ok {
		zero := 0.0
		v = &zero
		shard.m[id] = v
	}
	return v, shard.mu.Unlock
}

// Add accumulates delta into the entry for id, acquiring and releasing
// the owning shard's lock for the duration of the update.
func (sm *ShardedMap) Add(id int64, delta float64) {
	v, unlock := sm.AtMut(id)
	*v += delta
	unlock()
}

// BuildOrdinary acquires every shard in order and merges them into one
// ordinary map. Callers use this once relevance accumulation is
// finished; the ShardedMap is not intended for further use afterward.
func (sm *ShardedMap) BuildOrdinary() map[int64]float64 {
	result := make(map[int64]float64)
	for _, shard := range sm.shards {
		shard.mu.RLock()
		for k, v := range shard.m {
			result[k] = *v
		}
		shard.mu.RUnlock()
	}
	return result
}
