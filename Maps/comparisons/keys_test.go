package comparisons

import (
	"encoding/binary"
	"github.com/cespare/xxhash/v2"
)

// scatter spreads sequence numbers over the whole uint64 range so that tests and benchmarks see
// the same well-mixed keys on every run.
func scatter(i uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], i)
	return xxhash.Sum64(b[:])
}

func scattered(n int) []uint64 {
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = scatter(uint64(i))
	}
	return keys
}
