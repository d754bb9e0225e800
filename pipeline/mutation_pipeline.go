package pipeline

import (
	"math/rand"

	"github.com/gadurek/halina/kmer"
	"github.com/gadurek/halina/pump"
	"github.com/gadurek/halina/sequence"
	"github.com/gadurek/halina/sketch"
)

// MutationResult is MutationPipeline's output: the k-mers recovered from
// the "main" sketch, the (position, nucleotide) hits the §4.7 probe found,
// and the ground truth the pipeline itself induced (for test oracles).
type MutationResult struct {
	Reconstructed []kmer.KmerData
	Hits          []pump.MutationHit
	TruePosition  int
	TrueValue     kmer.Nucleotide
	Stats         Stats
}

// MutationPipeline (spec.md §9's "mutation" pipeline / §4.7): generates a
// random sequence and a single-substitution mutated clone via
// sequence.DoubleSequence, builds a "main" k-mer sketch over the original
// sequence and an h-mer (half-length) hash-only sketch over the mutated
// sequence, decodes both, then probes every recovered main k-mer against
// the h-mer hash set via single-nucleotide substitution (pump.Probe) to
// recover the induced (position, nucleotide).
func MutationPipeline(rng *rand.Rand, length int, opts Opts) (MutationResult, error) {
	original, mutated, truePos, trueVal, err := sequence.DoubleSequence(rng, length)
	if err != nil {
		return MutationResult{}, err
	}

	th := kmer.NewTabulationHash(opts.Seed)

	mainKmers := sequence.GetKmers(original, opts.KmerLength, th).All()
	mainSketch, err := sketch.BuildKmerSketch(opts.NTables, opts.KmerLength, opts.TotalCells, opts.Seed)
	if err != nil {
		return MutationResult{}, err
	}
	if err := mainSketch.Encode(mainKmers); err != nil {
		return MutationResult{}, err
	}
	recovered, err := mainSketch.Decode()
	if err != nil {
		return MutationResult{}, err
	}

	hMerItems := sequence.GetKmers(mutated, opts.HMerLength, th).All()
	hashItems := make([]sketch.HashItem, len(hMerItems))
	for i, d := range hMerItems {
		hashItems[i] = sketch.HashItem(d.Hash)
	}
	hSketch, err := sketch.BuildHashSketch(opts.NTables, opts.TotalCells, opts.Seed+1)
	if err != nil {
		return MutationResult{}, err
	}
	if err := hSketch.Encode(hashItems); err != nil {
		return MutationResult{}, err
	}
	decodedHashes, err := hSketch.Decode()
	if err != nil {
		return MutationResult{}, err
	}
	hashU64 := make([]uint64, len(decodedHashes))
	for i, h := range decodedHashes {
		hashU64[i] = uint64(h)
	}
	hashes := pump.NewHashSet(hashU64)

	var hits []pump.MutationHit
	for _, d := range recovered {
		if hit, ok := pump.Probe(d.Packed, opts.HMerLength, hashes, th); ok {
			hits = append(hits, hit)
		}
	}

	return MutationResult{
		Reconstructed: recovered,
		Hits:          hits,
		TruePosition:  truePos,
		TrueValue:     trueVal,
		Stats: Stats{
			InputKmers:         len(mainKmers),
			ReconstructedKmers: len(recovered),
			MutationsFound:     len(hits),
		},
	}, nil
}
