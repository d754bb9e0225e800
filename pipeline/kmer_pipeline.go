package pipeline

import (
	"github.com/gadurek/halina/herrors"
	"github.com/gadurek/halina/kmer"
	"github.com/gadurek/halina/pump"
	"github.com/gadurek/halina/sequence"
	"github.com/gadurek/halina/sketch"
)

// Result is a pipeline's output: the reconstructed k-mer set plus run
// statistics.
type Result struct {
	Reconstructed []kmer.KmerData
	Stats         Stats
}

// collectKmers streams every k-mer window out of every input sequence.
func collectKmers(seqs []sequence.Sequence, kmerLen int, th *kmer.TabulationHash) []kmer.KmerData {
	var all []kmer.KmerData
	for _, seq := range seqs {
		all = append(all, sequence.GetKmers(seq, kmerLen, th).All()...)
	}
	return all
}

// KmerPipeline (spec.md §9's "kmer" pipeline / SPEC_FULL.md C9): builds a
// k-mer sketch (optionally sampled via opts.SampleInterval) and a
// hash-only sketch over the same input, decodes both, Pumps the k-mer
// sketch's seeds against the hash-only sketch's recovered hashes, and runs
// the §4.6 iterated pump loop to fixed point.
func KmerPipeline(seqs []sequence.Sequence, opts Opts) (Result, error) {
	th := kmer.NewTabulationHash(opts.Seed)
	all := collectKmers(seqs, opts.KmerLength, th)

	kmerSketch, err := sketch.BuildKmerSketch(opts.NTables, opts.KmerLength, opts.TotalCells, opts.Seed)
	if err != nil {
		return Result{}, herrors.E(herrors.Other, "pipeline.KmerPipeline", err)
	}
	hashSketch, err := sketch.BuildHashSketch(opts.NTables, opts.TotalCells, opts.Seed+1)
	if err != nil {
		return Result{}, herrors.E(herrors.Other, "pipeline.KmerPipeline", err)
	}

	seedInputs := all
	if opts.SampleInterval > 0 {
		seedInputs, err = sketch.FilterBySampling(all, opts.SampleInterval)
		if err != nil {
			return Result{}, err
		}
	}
	if err := kmerSketch.Encode(seedInputs); err != nil {
		return Result{}, err
	}

	hashItems := make([]sketch.HashItem, len(all))
	for i, d := range all {
		hashItems[i] = sketch.HashItem(d.Hash)
	}
	if err := hashSketch.Encode(hashItems); err != nil {
		return Result{}, err
	}

	seeds, err := kmerSketch.Decode()
	if err != nil {
		return Result{}, err
	}
	decodedHashes, err := hashSketch.Decode()
	if err != nil {
		return Result{}, err
	}
	hashU64 := make([]uint64, len(decodedHashes))
	for i, h := range decodedHashes {
		hashU64[i] = uint64(h)
	}
	hashes := pump.NewHashSet(hashU64)

	reconstructed, rounds, err := pump.IteratedPump(kmerSketch, seeds, hashes, th)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Reconstructed: reconstructed,
		Stats: Stats{
			InputKmers:         len(all),
			ReconstructedKmers: len(reconstructed),
			PumpRounds:         rounds,
		},
	}, nil
}
