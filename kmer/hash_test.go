package kmer

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestHashShortKmerIsZero(t *testing.T) {
	th := NewTabulationHash(0)
	for _, s := range []string{"A", "AC", "ACG"} {
		k, _ := FromString(s)
		expect.EQ(t, th.Hash(k), uint64(0))
	}
}

func TestHashDeterministic(t *testing.T) {
	th1 := NewTabulationHash(42)
	th2 := NewTabulationHash(42)
	k, _ := FromString("ACGTACGT")
	expect.EQ(t, th1.Hash(k), th2.Hash(k))
}

func TestHashDiffersAcrossSeeds(t *testing.T) {
	th1 := NewTabulationHash(1)
	th2 := NewTabulationHash(2)
	k, _ := FromString("ACGTACGTACGT")
	expect.True(t, th1.Hash(k) != th2.Hash(k))
}

func TestIndexerSeedsDistinct(t *testing.T) {
	seen := map[uint64]bool{}
	for i := 0; i < 8; i++ {
		s := NewIndexerSeed(7, i)
		expect.False(t, seen[s])
		seen[s] = true
	}
}

func TestHashU64Deterministic(t *testing.T) {
	h1 := NewHashU64(9)
	h2 := NewHashU64(9)
	expect.EQ(t, h1.Hash(123456789), h2.Hash(123456789))
}
