package pump

import (
	"github.com/gadurek/halina/kmer"
	"github.com/gadurek/halina/sketch"
)

// IteratedPump is spec.md §4.6's "iterated pump", used by the "kmer"
// pipeline. After an initial Pump from seeds, it re-encodes the
// reconstructed items back into sk (the §4.4 set-difference trick removes
// them from sk's aggregate), decodes the resulting "leftovers", Pumps those
// as new seeds against the still-remaining hashes, and unions results. It
// repeats until a Pump round produces zero new items.
// The second return value is the number of Pump rounds run, for Stats.
func IteratedPump(sk *sketch.KmerSketch, seeds []kmer.KmerData, hashes HashSet, th *kmer.TabulationHash) ([]kmer.KmerData, int, error) {
	all := map[uint64]kmer.KmerData{}
	current := seeds
	rounds := 0

	for {
		got := Pump(current, hashes, th)
		rounds++
		if len(got) == 0 {
			break
		}
		for _, d := range got {
			all[d.Hash] = d
		}
		if err := sk.Encode(got); err != nil {
			return nil, rounds, err
		}
		leftovers, err := sk.Decode()
		if err != nil {
			return nil, rounds, err
		}
		if len(leftovers) == 0 {
			break
		}
		current = leftovers
	}

	out := make([]kmer.KmerData, 0, len(all))
	for _, d := range all {
		out = append(out, d)
	}
	return out, rounds, nil
}
