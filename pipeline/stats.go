package pipeline

// Stats is the field-wise-mergeable run summary every pipeline returns.
//
// Grounded on github.com/grailbio/bio's fusion/stats.go Stats+Merge
// (accumulate counters across parallel workers, return a new value).
type Stats struct {
	// InputKmers is the total number of k-mers fed into the sketches.
	InputKmers int
	// ReconstructedKmers is the number of k-mers the pipeline recovered:
	// by Pump in KmerPipeline and HashsetExtendedPipeline, by decoding the
	// main sketch directly in MutationPipeline.
	ReconstructedKmers int
	// PumpRounds counts iterated/staged pump rounds run.
	PumpRounds int
	// MutationsFound is the number of (position, nucleotide) hits
	// MutationPipeline's probe recovered.
	MutationsFound int
}

// Merge adds the field values of s and o and returns a new Stats.
func (s Stats) Merge(o Stats) Stats {
	s.InputKmers += o.InputKmers
	s.ReconstructedKmers += o.ReconstructedKmers
	s.PumpRounds += o.PumpRounds
	s.MutationsFound += o.MutationsFound
	return s
}
