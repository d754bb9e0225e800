package pump

import "github.com/gadurek/halina/kmer"

// MutationHit is the (position, nucleotide) pair found by Probe: the
// k-mer's nucleotide at Position, in the wild-type (un-mutated) encoding,
// was replaced by Nucleotide in the sequence that produced the sketch being
// probed.
type MutationHit struct {
	Position   int
	Nucleotide kmer.Nucleotide
	HMerHash   uint64
}

// Probe implements spec.md §4.7's mutation detection: for k (a k-mer
// recovered from the "main" sketch), it slides an h-mer (half-length)
// window across k and, for each window position and each of the three
// non-identity nucleotides, substitutes it in and checks hashes for
// membership. It returns the first hit in (window offset, position,
// nucleotide) order, or false if none of the substitutions land in hashes.
func Probe(k kmer.Kmer, hLen int, hashes HashSet, th *kmer.TabulationHash) (MutationHit, bool) {
	kLen := k.Len()
	if hLen <= 0 || hLen > kLen {
		return MutationHit{}, false
	}
	roller := kmer.NewRoller(th, hLen)

	for offset := 0; offset+hLen <= kLen; offset++ {
		hWindowNucs := make([]kmer.Nucleotide, hLen)
		for i := 0; i < hLen; i++ {
			n, _ := k.Get(offset + i)
			hWindowNucs[i] = n
		}
		hWindow, err := kmer.FromNucleotides(hWindowNucs)
		if err != nil {
			continue
		}
		baseHash := th.Hash(hWindow)

		for pos := 0; pos < hLen; pos++ {
			orig := hWindowNucs[pos]
			for d := kmer.Nucleotide(1); d <= 3; d++ {
				candidate := kmer.Nucleotide((uint8(orig) + uint8(d)) % 4)
				h := roller.Substitute(baseHash, hWindow, pos, candidate)
				if hashes[h] {
					return MutationHit{Position: offset + pos, Nucleotide: candidate, HMerHash: h}, true
				}
			}
		}
	}
	return MutationHit{}, false
}
