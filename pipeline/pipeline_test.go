package pipeline

import (
	"math/rand"
	"testing"

	"github.com/gadurek/halina/sequence"
	"github.com/stretchr/testify/assert"
)

func randomSeqs(t *testing.T, rng *rand.Rand, n, length int) []sequence.Sequence {
	t.Helper()
	seqs := make([]sequence.Sequence, n)
	for i := range seqs {
		seqs[i] = sequence.Random(rng, length, i)
	}
	return seqs
}

func TestKmerPipelineRecoversAllKmers(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	seqs := randomSeqs(t, rng, 3, 40)

	opts := Opts{NTables: 3, TotalCells: 3 * 200, KmerLength: 16, Seed: 5}
	res, err := KmerPipeline(seqs, opts)
	assert.NoError(t, err)
	assert.Equal(t, res.Stats.InputKmers, res.Stats.ReconstructedKmers)
	assert.Equal(t, res.Stats.InputKmers, len(res.Reconstructed))
}

func TestHashsetExtendedPipelineRecoversAllKmers(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	seqs := randomSeqs(t, rng, 2, 60)

	opts := Opts{
		NTables: 3, TotalCells: 3 * 300, KmerLength: 16, Seed: 9,
		Stages: 3, Shrink: 1.5, HMerLength: 4,
	}
	res, err := HashsetExtendedPipeline(seqs, opts)
	assert.NoError(t, err)
	assert.Equal(t, res.Stats.InputKmers, len(res.Reconstructed))
}

func TestMutationPipelineFindsInducedSubstitution(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	opts := Opts{NTables: 3, TotalCells: 3 * 200, KmerLength: 20, HMerLength: 8, Seed: 1}
	res, err := MutationPipeline(rng, 80, opts)
	assert.NoError(t, err)
	assert.True(t, len(res.Reconstructed) > 0)

	assert.True(t, len(res.Hits) > 0)
	found := false
	for _, h := range res.Hits {
		if h.Nucleotide == res.TrueValue {
			found = true
		}
	}
	assert.True(t, found)
}

func TestStatsMerge(t *testing.T) {
	a := Stats{InputKmers: 10, ReconstructedKmers: 8, PumpRounds: 2}
	b := Stats{InputKmers: 5, ReconstructedKmers: 5, PumpRounds: 1, MutationsFound: 1}
	merged := a.Merge(b)
	assert.Equal(t, 15, merged.InputKmers)
	assert.Equal(t, 13, merged.ReconstructedKmers)
	assert.Equal(t, 3, merged.PumpRounds)
	assert.Equal(t, 1, merged.MutationsFound)
}
