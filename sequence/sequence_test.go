package sequence

import (
	"math/rand"
	"testing"

	"github.com/gadurek/halina/kmer"
	"github.com/grailbio/testutil/expect"
)

func TestGetKmersMatchesFreshHash(t *testing.T) {
	seq, err := FromString("ACGTACGTAC", 0, 0)
	expect.NoError(t, err)
	th := kmer.NewTabulationHash(7)

	it := GetKmers(seq, 4, th)
	got := it.All()
	expect.EQ(t, len(got), seq.Len()-4+1)

	for i, d := range got {
		want, err := kmer.FromNucleotides(seq.Nucleotides[i : i+4])
		expect.NoError(t, err)
		expect.True(t, d.Packed.Equal(want))
		expect.EQ(t, d.Hash, th.Hash(want))
		expect.EQ(t, d.Meta.Index, i)
	}
}

func TestGetKmersShorterThanLengthYieldsNothing(t *testing.T) {
	seq, err := FromString("ACG", 0, 0)
	expect.NoError(t, err)
	th := kmer.NewTabulationHash(0)
	it := GetKmers(seq, 4, th)
	expect.False(t, it.Scan())
}

func TestGetKmersBaseOffsetCarriesIntoMetadata(t *testing.T) {
	seq, err := FromString("ACGTAC", 100, 5)
	expect.NoError(t, err)
	th := kmer.NewTabulationHash(0)
	got := GetKmers(seq, 4, th).All()
	expect.EQ(t, got[0].Meta.Index, 100)
	expect.EQ(t, got[0].Meta.SetID, 5)
	expect.EQ(t, got[1].Meta.Index, 101)
}

func TestDoubleSequenceSingleMutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	orig, mut, pos, val, err := DoubleSequence(rng, 50)
	expect.NoError(t, err)
	expect.EQ(t, orig.Len(), mut.Len())
	expect.EQ(t, pos, 25)

	diffs := 0
	for i := range orig.Nucleotides {
		if orig.Nucleotides[i] != mut.Nucleotides[i] {
			diffs++
			expect.EQ(t, i, pos)
		}
	}
	expect.EQ(t, diffs, 1)
	expect.EQ(t, mut.Nucleotides[pos], val)
	expect.True(t, val != orig.Nucleotides[pos])
}
