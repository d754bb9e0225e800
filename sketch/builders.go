package sketch

import (
	"github.com/gadurek/halina/herrors"
	"github.com/gadurek/halina/kmer"
)

// KmerSketch carries kmer.KmerData payloads.
type KmerSketch = Sketch[kmer.KmerData]

// HashSketch carries raw 64-bit hash payloads (C6: "hash-only sketch").
type HashSketch = Sketch[HashItem]

// BuildKmerSketch constructs a KmerSketch: nTables tables totaling
// totalCells cells, holding KmerData of kmerLen nucleotides.
func BuildKmerSketch(nTables, kmerLen, totalCells int, seed uint64) (*KmerSketch, error) {
	if kmerLen <= 0 {
		return nil, herrors.E(herrors.InvalidInput, "sketch.BuildKmerSketch", nil)
	}
	neutral, err := kmer.NeutralKmerData(kmerLen)
	if err != nil {
		return nil, err
	}
	return New[kmer.KmerData](nTables, totalCells, neutral, seed)
}

// BuildHashSketch constructs a HashSketch: nTables tables totaling
// totalCells cells, holding raw 64-bit hashes.
func BuildHashSketch(nTables, totalCells int, seed uint64) (*HashSketch, error) {
	return New[HashItem](nTables, totalCells, HashItem(0), seed)
}

// FilterBySampling returns the subset of items whose identity hash is
// divisible by interval (spec.md §4.6's staged-pump sampling: "an item is
// 'sampled' iff hash mod interval == 0"). interval must be > 0.
func FilterBySampling[T Item[T]](items []T, interval uint64) ([]T, error) {
	if interval == 0 {
		return nil, herrors.E(herrors.InvalidInput, "sketch.FilterBySampling", nil)
	}
	var out []T
	for _, item := range items {
		if item.IdentityHash()%interval == 0 {
			out = append(out, item)
		}
	}
	return out, nil
}
