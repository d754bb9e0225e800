package sequence

import (
	"math/rand"

	"github.com/gadurek/halina/herrors"
	"github.com/gadurek/halina/kmer"
)

// Random returns a uniformly random Sequence of the given length.
func Random(rng *rand.Rand, length, setID int) Sequence {
	nucs := make([]kmer.Nucleotide, length)
	for i := range nucs {
		nucs[i] = kmer.Nucleotide(rng.Intn(4))
	}
	return Sequence{Nucleotides: nucs, SetID: setID}
}

// DoubleSequence generates a random sequence and a mutated clone: the clone
// differs from the original at exactly one position, length/2, where its
// nucleotide is replaced by the cyclic successor (kmer.Nucleotide.Next,
// spec.md §4.7's single-substitution mutation model). It returns both
// sequences plus the ground-truth mutation position and the mutated-in
// value, for the mutation-detection pipeline (spec.md §4.7, component C9).
func DoubleSequence(rng *rand.Rand, length int) (original, mutated Sequence, mutPos int, mutVal kmer.Nucleotide, err error) {
	if length < 1 {
		return Sequence{}, Sequence{}, 0, 0, herrors.E(herrors.InvalidInput, "sequence.DoubleSequence", nil)
	}
	original = Random(rng, length, 0)
	pos := length / 2
	mutatedNucs := make([]kmer.Nucleotide, length)
	copy(mutatedNucs, original.Nucleotides)
	mutatedNucs[pos] = mutatedNucs[pos].Next()
	mutated = Sequence{Nucleotides: mutatedNucs, SetID: 1}
	return original, mutated, pos, mutatedNucs[pos], nil
}
