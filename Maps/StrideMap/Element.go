package StrideMap

import (
	"fmt"
	"golang.org/x/exp/constraints"
)

// Element is one slot of the backing array. A slot whose used flag is down is empty
// and its key and val are zero.
type Element[K constraints.Unsigned, V any] struct {
	key  K
	val  V
	used bool
}

func (e *Element[K, V]) isFree() bool {
	return !e.used
}

func (e *Element[K, V]) fill(key K, val V) {
	e.key, e.val, e.used = key, val, true
}

// free empties the slot and hands back the value it held.
func (e *Element[K, V]) free() V {
	v := e.val
	*e = Element[K, V]{}
	return v
}

func (e *Element[K, V]) swap(o *Element[K, V]) {
	*e, *o = *o, *e
}

func (e *Element[K, V]) String() string {
	return fmt.Sprintf("key: %v; val: %v; free: %t", e.key, e.val, e.isFree())
}
