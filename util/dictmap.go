package util

import (
	"fmt"
	"sync"

	"github.com/zeebo/xxh3"
)

const dictMapShardCount = 16

// DictMap is a sharded concurrent map from dictionary value to packed index,
// the reverse-lookup side of a categorical buffer's dictionary (spec §3.2
// invariant 5, §4.2: "a concurrent mapping"). Sharding by xxh3 hash lets
// concurrent set() calls on distinct values proceed without contending on a
// single lock, the same shape caches like ristretto/bigcache use xxh3 for,
// applied here to dictionary growth instead of eviction bookkeeping.
//
// DictMap only ever grows: entries are never removed or overwritten, so a
// shard's RWMutex only needs to guard the underlying Go map against
// concurrent writes, not against read/write races on the values it stores.
type DictMap[T comparable] struct {
	shards [dictMapShardCount]dictShard[T]
}

type dictShard[T comparable] struct {
	mu sync.RWMutex
	m  map[T]int
}

// NewDictMap creates an empty sharded reverse-lookup map.
func NewDictMap[T comparable]() *DictMap[T] {
	d := &DictMap[T]{}
	for i := range d.shards {
		d.shards[i].m = make(map[T]int)
	}
	return d
}

func shardHash[T comparable](v T) uint64 {
	if s, ok := any(v).(string); ok {
		return xxh3.HashString(s)
	}
	return xxh3.HashString(fmt.Sprint(v))
}

func (d *DictMap[T]) shardFor(v T) *dictShard[T] {
	h := shardHash(v)
	return &d.shards[h%dictMapShardCount]
}

// Get returns the index for v and whether it was present.
func (d *DictMap[T]) Get(v T) (int, bool) {
	s := d.shardFor(v)
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.m[v]
	return idx, ok
}

// SetIfAbsent records index for v unless already present, returning the
// index that ends up associated with v (either the one just set, or the
// pre-existing one from a concurrent winner) and whether this call won the
// race.
func (d *DictMap[T]) SetIfAbsent(v T, index int) (int, bool) {
	s := d.shardFor(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.m[v]; ok {
		return existing, false
	}
	s.m[v] = index
	return index, true
}
