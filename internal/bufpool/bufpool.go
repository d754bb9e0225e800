// Package bufpool pools variable-size u64 buffers; its one user is
// sketch.Sketch.Decode, which takes a scratch slice of emitted identity
// hashes from it on every decode step
// (spec.md §5: "all variable-size collections of k-mer / u64 items use a
// pooled acquire / release pattern").
//
// Grounded on the sync.Pool idiom in
// github.com/grailbio/bio's cmd/bio-bam-sort/sorter/sort.go
// (sorter.smallPool), generalized from a pool of bytes.Buffer to a pool of
// []uint64 slices.
package bufpool

import "sync"

var pool = sync.Pool{
	New: func() interface{} { return make([]uint64, 0, 64) },
}

// Acquire returns a zero-length []uint64 with capacity at least hint. The
// caller must call Release exactly once, on every exit path including
// errors.
func Acquire(hint int) []uint64 {
	buf := pool.Get().([]uint64)
	if cap(buf) < hint {
		buf = make([]uint64, 0, hint)
	}
	return buf[:0]
}

// Release clears buf and returns it to the pool.
func Release(buf []uint64) {
	pool.Put(buf[:0]) //nolint:staticcheck
}
