package SharedMap

import (
	"github.com/inferrna/intmap/Maps"
	"github.com/inferrna/intmap/Maps/StrideMap"
	"golang.org/x/exp/constraints"
	"sync"
)

var _ Maps.IntMap[uint64, int] = SharedMap[uint64, int]{}

type shared[K constraints.Unsigned, V any] struct {
	sync.RWMutex
	m *StrideMap.StrideMap[K, V]
}

// SharedMap is a handle to a StrideMap guarded by a read-write lock. Copying a SharedMap, or
// calling Clone, gives another handle to the same table; the table lives as long as any handle
// does. Readers (Get, HasKey, HasVal, Size, Range, Stats) run concurrently with each other,
// writers (Put, Remove, Update) run alone. The zero SharedMap is unusable, create one with New
// or From.
type SharedMap[K constraints.Unsigned, V any] struct {
	s *shared[K, V]
}

func New[K constraints.Unsigned, V any](stride int, opts ...StrideMap.Option) SharedMap[K, V] {
	return From(StrideMap.New[K, V](stride, opts...))
}

// From wraps m. m must not be used directly afterwards.
func From[K constraints.Unsigned, V any](m *StrideMap.StrideMap[K, V]) SharedMap[K, V] {
	return SharedMap[K, V]{&shared[K, V]{m: m}}
}

func (u SharedMap[K, V]) Clone() SharedMap[K, V] {
	return u
}

func (u SharedMap[K, V]) Put(key K, val V) {
	u.s.Lock()
	defer u.s.Unlock()
	u.s.m.Put(key, val)
}

func (u SharedMap[K, V]) Get(key K) (V, bool) {
	u.s.RLock()
	defer u.s.RUnlock()
	return u.s.m.Get(key)
}

func (u SharedMap[K, V]) HasKey(key K) bool {
	u.s.RLock()
	defer u.s.RUnlock()
	return u.s.m.HasKey(key)
}

func (u SharedMap[K, V]) Remove(key K) (V, bool) {
	u.s.Lock()
	defer u.s.Unlock()
	return u.s.m.Remove(key)
}

// Update replaces the value under key with f(old, present) in one critical section.
func (u SharedMap[K, V]) Update(key K, f func(V, bool) V) V {
	u.s.Lock()
	defer u.s.Unlock()
	v := f(u.s.m.Get(key))
	u.s.m.Put(key, v)
	return v
}

func (u SharedMap[K, V]) Size() uint {
	u.s.RLock()
	defer u.s.RUnlock()
	return u.s.m.Size()
}

// Range holds the read lock while it runs, so f must not call back into any handle of the
// same table.
func (u SharedMap[K, V]) Range(f func(K, V) bool) {
	u.s.RLock()
	defer u.s.RUnlock()
	u.s.m.Range(f)
}

func (u SharedMap[K, V]) Stats() StrideMap.Stats {
	u.s.RLock()
	defer u.s.RUnlock()
	return u.s.m.Stats()
}

func HasVal[K constraints.Unsigned, V comparable](u SharedMap[K, V], val V) bool {
	u.s.RLock()
	defer u.s.RUnlock()
	return StrideMap.HasVal(u.s.m, val)
}
