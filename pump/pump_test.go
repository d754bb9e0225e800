package pump

import (
	"testing"

	"github.com/gadurek/halina/kmer"
	"github.com/gadurek/halina/sequence"
	"github.com/gadurek/halina/sketch"
	"github.com/grailbio/testutil/expect"
)

func buildEmptyKmerSketch(t *testing.T, kmerLen int) (*sketch.KmerSketch, error) {
	t.Helper()
	return sketch.BuildKmerSketch(3, kmerLen, 3*sketch.MinCellsPerTable, 0)
}

func TestPumpReconstructsFullWalk(t *testing.T) {
	th := kmer.NewTabulationHash(3)
	seq, err := sequence.FromString("ACGTCAGTGCATGACTG", 0, 0)
	expect.NoError(t, err)

	all := sequence.GetKmers(seq, 4, th).All()
	expect.True(t, len(all) > 1)

	hashes := NewHashSet(nil)
	for _, d := range all {
		hashes[d.Hash] = true
	}

	seeds := []kmer.KmerData{all[0]}
	got := Pump(seeds, hashes, th)

	expect.EQ(t, len(got), len(all))
	gotSet := map[string]bool{}
	for _, d := range got {
		gotSet[d.Packed.String()] = true
	}
	for _, d := range all {
		expect.True(t, gotSet[d.Packed.String()])
	}
	expect.EQ(t, len(hashes), 0)
}

func TestPumpStopsWhenNoNeighborInHashSet(t *testing.T) {
	th := kmer.NewTabulationHash(3)
	seq, err := sequence.FromString("ACGT", 0, 0)
	expect.NoError(t, err)
	all := sequence.GetKmers(seq, 4, th).All()
	expect.EQ(t, len(all), 1)

	hashes := NewHashSet([]uint64{all[0].Hash})
	got := Pump(all, hashes, th)
	expect.EQ(t, len(got), 1)
}

func TestIteratedPumpConvergesOnEmptySketch(t *testing.T) {
	th := kmer.NewTabulationHash(3)
	seq, err := sequence.FromString("ACGTCAGTGCATGACTG", 0, 0)
	expect.NoError(t, err)
	all := sequence.GetKmers(seq, 4, th).All()

	hashes := NewHashSet(nil)
	for _, d := range all {
		hashes[d.Hash] = true
	}

	sk, err := buildEmptyKmerSketch(t, 4)
	expect.NoError(t, err)

	got, rounds, err := IteratedPump(sk, []kmer.KmerData{all[0]}, hashes, th)
	expect.NoError(t, err)
	expect.EQ(t, len(got), len(all))
	expect.True(t, rounds >= 1)
}
