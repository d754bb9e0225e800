// Command halina runs one of the three k-mer reconstruction pipelines
// (spec.md §9, component C9) over a randomly generated input, for a single
// deterministic seed.
//
// JSON configuration, parameter-grid sweeps, progress reporting, and
// result-file naming are left to the caller (spec.md §1, §6); this command
// is a thin, single-run CLI over one pipeline.Opts value, in the spirit of
// github.com/grailbio/bio's cmd/bio-fusion/main.go flag-driven entry point.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/gadurek/halina/pipeline"
	"github.com/gadurek/halina/sequence"
	"github.com/gadurek/halina/sketch"
	"github.com/grailbio/base/log"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: halina -mode={kmer,hashset-extended,mutation} [flags]

Runs one pipeline over a freshly generated random input and prints Stats.
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage

	mode := flag.String("mode", "kmer", "pipeline to run: kmer, hashset-extended, or mutation")
	seed := flag.Uint64("seed", 0, "deterministic tabulation-hash / indexer seed")
	nTables := flag.Int("n-tables", 3, "number of independent tables per sketch")
	totalCells := flag.Int("total-cells", 3*sketch.MinCellsPerTable, "total cell count summed across a sketch's tables")
	kmerLength := flag.Int("kmer-length", 31, "k-mer length L")
	seqLength := flag.Int("seq-length", 1000, "length of the randomly generated input sequence(s)")
	nSeqs := flag.Int("n-seqs", 1, "number of input sequences to generate (kmer and hashset-extended modes)")
	stages := flag.Int("stages", 3, "number of sampling stages (hashset-extended mode)")
	shrink := flag.Float64("shrink", 1.5, "geometric shrink factor between stages (hashset-extended mode)")
	hMerLength := flag.Int("h-mer-length", 15, "h-mer length (hashset-extended and mutation modes)")
	sampleInterval := flag.Uint64("sample-interval", 0, "k-mer sketch sampling interval, 0 disables sampling (kmer mode)")
	flag.Parse()

	opts := pipeline.Opts{
		NTables:        *nTables,
		TotalCells:     *totalCells,
		KmerLength:     *kmerLength,
		Seed:           *seed,
		SampleInterval: *sampleInterval,
		Stages:         *stages,
		Shrink:         *shrink,
		HMerLength:     *hMerLength,
	}

	rng := rand.New(rand.NewSource(int64(*seed)))

	switch *mode {
	case "kmer":
		seqs := randomSequences(rng, *nSeqs, *seqLength)
		res, err := pipeline.KmerPipeline(seqs, opts)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("kmer pipeline: %+v", res.Stats)
	case "hashset-extended":
		seqs := randomSequences(rng, *nSeqs, *seqLength)
		res, err := pipeline.HashsetExtendedPipeline(seqs, opts)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("hashset-extended pipeline: %+v", res.Stats)
	case "mutation":
		res, err := pipeline.MutationPipeline(rng, *seqLength, opts)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("mutation pipeline: %+v (true mutation: pos=%d val=%s)",
			res.Stats, res.TruePosition, res.TrueValue)
	default:
		log.Fatalf("unknown -mode %q", *mode)
	}
}

func randomSequences(rng *rand.Rand, n, length int) []sequence.Sequence {
	seqs := make([]sequence.Sequence, n)
	for i := range seqs {
		seqs[i] = sequence.Random(rng, length, i)
	}
	return seqs
}
