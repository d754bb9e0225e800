package pipeline

import (
	"github.com/gadurek/halina/herrors"
	"github.com/gadurek/halina/kmer"
	"github.com/gadurek/halina/pump"
	"github.com/gadurek/halina/sequence"
	"github.com/gadurek/halina/sketch"
)

// HashsetExtendedPipeline (spec.md §9's "hashset-extended" pipeline):
// builds a hash-only sketch over every input k-mer plus a geometric ladder
// of opts.Stages k-mer sketches sampled at ceil(opts.HMerLength *
// opts.Shrink^i), then runs the §4.6 staged pump across the ladder and a
// final leftover pass through a residual sketch.
func HashsetExtendedPipeline(seqs []sequence.Sequence, opts Opts) (Result, error) {
	th := kmer.NewTabulationHash(opts.Seed)
	all := collectKmers(seqs, opts.KmerLength, th)

	hashSketch, err := sketch.BuildHashSketch(opts.NTables, opts.TotalCells, opts.Seed+1)
	if err != nil {
		return Result{}, herrors.E(herrors.Other, "pipeline.HashsetExtendedPipeline", err)
	}
	hashItems := make([]sketch.HashItem, len(all))
	for i, d := range all {
		hashItems[i] = sketch.HashItem(d.Hash)
	}
	if err := hashSketch.Encode(hashItems); err != nil {
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

	stages := make([]*sketch.KmerSketch, opts.Stages)
	for i := 0; i < opts.Stages; i++ {
		interval := pump.StageInterval(opts.HMerLength, opts.Shrink, i)
		st, err := sketch.BuildKmerSketch(opts.NTables, opts.KmerLength, opts.TotalCells, opts.Seed+2+uint64(i))
		if err != nil {
			return Result{}, err
		}
		sampled, err := sketch.FilterBySampling(all, interval)
		if err != nil {
			return Result{}, err
		}
		if err := st.Encode(sampled); err != nil {
			return Result{}, err
		}
		stages[i] = st
	}

	residualCells := opts.ResidualCells
	if residualCells == 0 {
		residualCells = opts.TotalCells
	}
	residual, err := sketch.BuildKmerSketch(opts.NTables, opts.KmerLength, residualCells, opts.Seed+1000)
	if err != nil {
		return Result{}, err
	}
	if err := residual.Encode(all); err != nil {
		return Result{}, err
	}

	reconstructed, err := pump.StagedPump(stages, residual, hashes, th)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Reconstructed: reconstructed,
		Stats: Stats{
			InputKmers:         len(all),
			ReconstructedKmers: len(reconstructed),
			PumpRounds:         opts.Stages + 1,
		},
	}, nil
}
