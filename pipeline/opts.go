// Package pipeline composes the k-mer codec, IBLT sketch, and Pump
// reconstructor (C1-C8) into the three named experiments (C9): the plain
// k-mer pipeline, the hashset-extended staged pipeline, and the mutation
// detection pipeline.
//
// Grounded on github.com/grailbio/bio's cmd/bio-fusion/main.go (flag-driven,
// single-Opts-value orchestration: build indices, process, report stats).
package pipeline

// Opts carries the sizing parameters common to every pipeline, plus the
// fields specific to the hashset-extended and mutation pipelines (left zero
// when not applicable). JSON configuration, parameter sweeps, and
// result-file naming are a caller's concern and are not part of Opts.
type Opts struct {
	// NTables is the number of independent tables per sketch.
	NTables int
	// TotalCells is the total cell count summed across a sketch's tables.
	TotalCells int
	// KmerLength is the k-mer length L.
	KmerLength int
	// Seed is the deterministic tabulation-hash / indexer seed.
	Seed uint64

	// SampleInterval, if non-zero, restricts the k-mer sketch's seeds to
	// k-mers whose hash is divisible by it (sketch.FilterBySampling). Zero
	// disables sampling: every input k-mer seeds the k-mer sketch.
	SampleInterval uint64

	// Stages, Shrink, and HMerLength configure HashsetExtendedPipeline's
	// geometric sampling ladder (spec.md §4.6 staged pump): stage i samples
	// at interval ceil(HMerLength * Shrink^i), i = 0..Stages-1.
	Stages     int
	Shrink     float64
	HMerLength int

	// ResidualCells, if non-zero, overrides TotalCells for the residual
	// sketch used by HashsetExtendedPipeline's final leftover pass.
	ResidualCells int
}
