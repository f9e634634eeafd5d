/*
Package StrideMap implements a flat, array-backed map for unsigned integer keys.

A map with stride s keeps s*s slots and s buckets; key k belongs to bucket k%s. Each bucket
owns a contiguous region of the slot array, and the regions tile the array cyclically in
bucket order 0, 1, ..., s-1, 0, ... . Bucket h's region starts at h*s+offsets[h] and ends where
bucket h+1's region starts, indices taken modulo s*s. Every slot of a region is either empty
or holds a key of that region's bucket, so lookups scan one region and nothing else.

When a bucket's region has no empty slot, the bucket steals the first slot of its successor's
region. If the successor is full too it steals from its own successor first, and so on: the
entry sitting in each stolen slot is swapped one region further, towards the empty slot that
was eventually found. When every bucket is full the whole table is rebuilt with a larger
stride.

A StrideMap isn't safe for concurrent use; see SharedMap for a locked handle.
*/
package StrideMap

import (
	"fmt"
	"github.com/inferrna/intmap/Maps"
	"golang.org/x/exp/constraints"
	"strings"
)

var _ Maps.IntMap[uint64, int] = (*StrideMap[uint64, int])(nil)

type StrideMap[K constraints.Unsigned, V any] struct {
	bkt      []Element[K, V]
	offsets  []int
	stride   int
	size     uint
	rehashes uint
	cfg      config
}

// New creates a map with stride buckets of stride slots each. stride must be at least 1.
func New[K constraints.Unsigned, V any](stride int, opts ...Option) *StrideMap[K, V] {
	if stride < 1 {
		panic(fmt.Sprintf("StrideMap: stride must be at least 1, got %d", stride))
	}
	return newMap[K, V](stride, newConfig(opts))
}

func newMap[K constraints.Unsigned, V any](stride int, cfg config) *StrideMap[K, V] {
	return &StrideMap[K, V]{
		bkt:     make([]Element[K, V], stride*stride),
		offsets: make([]int, stride),
		stride:  stride,
		cfg:     cfg,
	}
}

// bucket is computed in uint64 so that a stride wider than K doesn't truncate.
func (u *StrideMap[K, V]) bucket(key K) int {
	return int(uint64(key) % uint64(u.stride))
}

func (u *StrideMap[K, V]) next(h int) int {
	if h++; h == u.stride {
		return 0
	}
	return h
}

// offset is the unwrapped start of bucket h's region.
func (u *StrideMap[K, V]) offset(h int) int {
	return h*u.stride + u.offsets[h]
}

// region returns the unwrapped start and the length of bucket h's region. Lengths lie in
// [0, len(u.bkt)] and sum to len(u.bkt) over all buckets.
func (u *StrideMap[K, V]) region(h int) (lo, n int) {
	return u.offset(h), u.stride + u.offsets[u.next(h)] - u.offsets[h]
}

func (u *StrideMap[K, V]) wrap(i int) int {
	return i % len(u.bkt)
}

// find returns the slot holding key, or -1.
func (u *StrideMap[K, V]) find(key K) int {
	lo, n := u.region(u.bucket(key))
	for i := lo; i < lo+n; i++ {
		if e := &u.bkt[u.wrap(i)]; e.used && e.key == key {
			return u.wrap(i)
		}
	}
	return -1
}

// findFree returns an empty slot inside bucket h's region, stealing slots from the following
// buckets when h is full. depth counts the buckets already visited on this chain; once all of
// them have been tried the table is rehashed and false is returned. After a false return the
// receiver is a different table, so callers must unwind without touching it.
func (u *StrideMap[K, V]) findFree(h, depth int) (int, bool) {
	lo, n := u.region(h)
	for i := lo; i < lo+n; i++ {
		if u.bkt[u.wrap(i)].isFree() {
			return u.wrap(i), true
		}
	}
	if depth == u.stride {
		u.rehash()
		return -1, false
	}
	nx := u.next(h)
	i_free, ok := u.findFree(nx, depth+1)
	if !ok {
		return -1, false
	}
	//the first slot of nx's region now belongs to h. whatever nx kept there goes to i_free,
	//which is still inside nx's region.
	i_want := u.wrap(u.offset(nx))
	u.offsets[nx]++
	u.bkt[i_want].swap(&u.bkt[i_free])
	return i_want, true
}

// insert places a key that is known to be absent.
func (u *StrideMap[K, V]) insert(key K, val V) {
	for try := 0; try < u.cfg.putRetries; try++ {
		if i, ok := u.findFree(u.bucket(key), 0); ok {
			u.bkt[i].fill(key, val)
			u.size++
			return
		}
	}
	panic(fmt.Sprintf("StrideMap: no slot for key %v after %d attempts (stride %d, size %d)", key, u.cfg.putRetries, u.stride, u.size))
}

// rehash rebuilds the table with a larger stride and takes over the rebuilt table's storage.
// The stride grows by the current load scaled to the stride, and by at least 1.
func (u *StrideMap[K, V]) rehash() {
	grow := max(1, u.stride*int(u.size)/len(u.bkt))
	M := newMap[K, V](u.stride+grow, u.cfg)
	for i := range u.bkt {
		if e := &u.bkt[i]; e.used {
			M.insert(e.key, e.val)
		}
	}
	M.rehashes = u.rehashes + 1
	if u.cfg.logger != nil {
		u.cfg.logger.Debug("rehash", "from", u.stride, "to", M.stride, "size", u.size, "rehashes", M.rehashes)
	}
	*u = *M
}

// Put stores val under key, replacing the previous value if key is present.
func (u *StrideMap[K, V]) Put(key K, val V) {
	if i := u.find(key); i >= 0 {
		u.bkt[i].val = val
		return
	}
	u.insert(key, val)
}

func (u *StrideMap[K, V]) Get(key K) (V, bool) {
	if i := u.find(key); i >= 0 {
		return u.bkt[i].val, true
	}
	return *new(V), false
}

func (u *StrideMap[K, V]) HasKey(key K) bool {
	return u.find(key) >= 0
}

// Remove deletes key and returns the value it held. The emptied slot stays in its bucket's
// region and is reused by later insertions into that bucket or by its predecessors.
func (u *StrideMap[K, V]) Remove(key K) (V, bool) {
	if i := u.find(key); i >= 0 {
		u.size--
		return u.bkt[i].free(), true
	}
	return *new(V), false
}

func (u *StrideMap[K, V]) Size() uint {
	return u.size
}

func (u *StrideMap[K, V]) Stride() int {
	return u.stride
}

// Range calls f on every entry in slot order until f returns false. f must not modify u.
func (u *StrideMap[K, V]) Range(f func(K, V) bool) {
	for i := range u.bkt {
		if e := &u.bkt[i]; e.used && !f(e.key, e.val) {
			return
		}
	}
}

// HasVal reports whether any entry of u holds val. It scans every slot.
func HasVal[K constraints.Unsigned, V comparable](u *StrideMap[K, V], val V) bool {
	for i := range u.bkt {
		if e := &u.bkt[i]; e.used && e.val == val {
			return true
		}
	}
	return false
}

type Stats struct {
	Stride, Slots, LongestRegion int
	Size, Rehashes               uint
}

func (u *StrideMap[K, V]) Stats() Stats {
	s := Stats{Stride: u.stride, Slots: len(u.bkt), Size: u.size, Rehashes: u.rehashes}
	for h := range u.stride {
		_, n := u.region(h)
		s.LongestRegion = max(s.LongestRegion, n)
	}
	return s
}

func (u *StrideMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for h := range u.stride {
		lo, n := u.region(h)
		for i := lo; i < lo+n; i++ {
			e := &u.bkt[u.wrap(i)]
			fmt.Fprintf(&sb, "{k: %v; v: %v; bkt: %d; at: %d; free: %t}", e.key, e.val, h, u.wrap(i), e.isFree())
		}
	}
	return sb.String() + "]"
}
