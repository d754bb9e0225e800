package kmer

import (
	"math/bits"

	farm "github.com/dgryski/go-farm"
)

// goldenRatio64 is the Fibonacci-hashing constant used to derive
// pairwise-distinct table seeds from a single global seed (spec.md §9, open
// question (a): any pairwise-distinct scheme works).
const goldenRatio64 = 0x9E3779B97F4A7C15

// splitmix64 is a small, fast, deterministic PRNG used to fill the
// tabulation table. Grounded on the same "seed a PRNG, fill a table" idiom
// fusion/kmer_index.go uses farm hashing for (hashKmer), generalized here to
// produce a full table rather than a single value.
type splitmix64 struct{ state uint64 }

func newSplitmix64(seed uint64) *splitmix64 { return &splitmix64{state: seed} }

func (s *splitmix64) next() uint64 {
	s.state += goldenRatio64
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// TabulationHash is a 256-entry table of per-window hash contributions (C2).
// Hash(k) XORs rotate_left(table[window(k)], k) over every byte-aligned
// 8-bit window of the packed k-mer.
type TabulationHash struct {
	table [256]uint64
}

// NewTabulationHash seeds a deterministic PRNG from seed and fills the
// 256-entry table.
func NewTabulationHash(seed uint64) *TabulationHash {
	th := &TabulationHash{}
	rng := newSplitmix64(farm.Hash64WithSeed(nil, seed))
	for i := range th.table {
		th.table[i] = rng.next()
	}
	return th
}

// NewIndexerSeed derives the i'th of n pairwise-distinct table seeds from a
// single global seed, per spec.md §9 open question (a).
func NewIndexerSeed(globalSeed uint64, i int) uint64 {
	return farm.Hash64WithSeed(nil, globalSeed) ^ (uint64(i) * goldenRatio64)
}

// Hash computes the tabulation hash of k. L < 4 yields 0.
func (th *TabulationHash) Hash(k Kmer) uint64 {
	if k.length < 4 {
		return 0
	}
	var h uint64
	for kk := 0; kk <= k.length-4; kk++ {
		w := k.window(2 * kk)
		h ^= bits.RotateLeft64(th.table[w], kk)
	}
	return h
}

// HashU64 is the generic tabulation hash u64 -> u64 used for indexer roles
// (spec.md §4.2's "separate generic tabulation hash"): eight 256-entry
// tables, one per byte of the input, XORed together.
type HashU64 struct {
	tables [8][256]uint64
}

// NewHashU64 seeds the eight byte tables from a single seed.
func NewHashU64(seed uint64) *HashU64 {
	h := &HashU64{}
	rng := newSplitmix64(farm.Hash64WithSeed(nil, seed) ^ 0xD1B54A32D192ED03)
	for t := range h.tables {
		for i := range h.tables[t] {
			h.tables[t][i] = rng.next()
		}
	}
	return h
}

// Hash maps v to a u64 by XORing each byte's table entry.
func (h *HashU64) Hash(v uint64) uint64 {
	var out uint64
	for i := 0; i < 8; i++ {
		b := byte(v >> uint(8*i))
		out ^= h.tables[i][b]
	}
	return out
}
