package pump

import (
	"math"

	"github.com/gadurek/halina/kmer"
	"github.com/gadurek/halina/sketch"
)

// StageInterval computes the geometrically growing sampling interval for
// stage i of spec.md §4.6's staged pump: ceil(k * shrink^i), i = 0..stages-1.
func StageInterval(k int, shrink float64, i int) uint64 {
	return uint64(math.Ceil(float64(k) * math.Pow(shrink, float64(i))))
}

// StagedPump is spec.md §4.6's "staged pump", used by the
// "hashset-extended" pipeline. stages holds one pre-built, pre-decoded-order
// k-mer sketch per sampling interval (geometrically growing, so the densest
// sampling comes first); residual is a separate compressed sketch holding
// every input k-mer. Each stage is decoded in turn; before decoding stage
// i+1, the whole reconstruction accumulated so far is re-encoded into it
// (the §4.4 set-difference trick): items stage i+1 sampled cancel out, and
// the other accumulated items are added to its cells, so its decode yields
// the still-missing seeds together with those re-added items, whose hashes
// Pump has already consumed. A final leftover pass through residual
// catches anything the rolling walks could not reach.
func StagedPump(stages []*sketch.KmerSketch, residual *sketch.KmerSketch, hashes HashSet, th *kmer.TabulationHash) ([]kmer.KmerData, error) {
	accumulated := map[uint64]kmer.KmerData{}

	for i, st := range stages {
		if i > 0 {
			toEncode := flatten(accumulated)
			if err := st.Encode(toEncode); err != nil {
				return nil, err
			}
		}
		seeds, err := st.Decode()
		if err != nil {
			return nil, err
		}
		for _, d := range Pump(seeds, hashes, th) {
			accumulated[d.Hash] = d
		}
	}

	if residual != nil {
		toEncode := flatten(accumulated)
		if err := residual.Encode(toEncode); err != nil {
			return nil, err
		}
		leftovers, err := residual.Decode()
		if err != nil {
			return nil, err
		}
		for _, d := range Pump(leftovers, hashes, th) {
			accumulated[d.Hash] = d
		}
	}

	return flatten(accumulated), nil
}

func flatten(m map[uint64]kmer.KmerData) []kmer.KmerData {
	out := make([]kmer.KmerData, 0, len(m))
	for _, d := range m {
		out = append(out, d)
	}
	return out
}
