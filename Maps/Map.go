/*
Package Maps holds the contracts shared by the map flavours in its subpackages.

# Flavours
StrideMap is a flat, array-backed table for unsigned integer keys. It isn't safe for
concurrent use and does no locking at all.
SharedMap is a handle to a StrideMap behind a read-write lock. Handles are cheap to copy and
every copy refers to the same table.

# Absence
Looking up or removing a key that isn't present is never an error: the calls return the zero
value and false. Broken internal state, like a zero stride, panics instead.
*/
package Maps

import "golang.org/x/exp/constraints"

// IntMap is the operation set every flavour provides. Value lookups (HasVal) need a
// comparable V, so they are package-level functions in each flavour instead of methods here.
type IntMap[K constraints.Unsigned, V any] interface {
	Put(K, V)
	Get(K) (V, bool)
	Remove(K) (V, bool)
	HasKey(K) bool
	Size() uint
	Range(func(K, V) bool)
}
