// Package pump implements sketch-driven set reconstruction (spec.md §4.6,
// component C8): a stack-driven DFS that expands decoded seed k-mers into
// the full input set by probing a recovered hash set through rolling
// extensions, plus the mutation-detection probe that rides the same rolling
// substitution machinery (spec.md §4.7).
//
// The DFS shape and its "first matching extension wins, deterministic by
// nucleotide order" tie-break are grounded on the graph-walk style of
// github.com/grailbio/bio's fusion/gene_db.go traversal helpers, adapted
// from a gene-adjacency walk to a rolling-hash walk.
package pump

import "github.com/gadurek/halina/kmer"

// HashSet is a mutable set of recovered u64 hashes. Pump consumes entries
// from it as they are matched, so callers pass a set they own exclusively
// for the duration of the call.
type HashSet map[uint64]bool

// NewHashSet builds a HashSet from a slice of hashes.
func NewHashSet(hashes []uint64) HashSet {
	s := make(HashSet, len(hashes))
	for _, h := range hashes {
		s[h] = true
	}
	return s
}

// nucleotideOrder is the deterministic tie-break order for extension scans
// (spec.md §4.6: "ties are broken by nucleotide order").
var nucleotideOrder = [4]kmer.Nucleotide{kmer.A, kmer.C, kmer.G, kmer.T}

// Pump performs the DFS of spec.md §4.6: starting from seeds whose hash is
// present in hashes, it walks forward and reverse rolling extensions,
// consuming matched hashes from the set, until the stack is exhausted. It
// returns every KmerData it reconstructed, keyed by hash for deduplication.
func Pump(seeds []kmer.KmerData, hashes HashSet, th *kmer.TabulationHash) []kmer.KmerData {
	length := 0
	for _, s := range seeds {
		length = s.Packed.Len()
		break
	}
	roller := kmer.NewRoller(th, length)

	reconstructed := map[uint64]kmer.KmerData{}
	var stack []kmer.KmerData

	for _, s := range seeds {
		if !hashes[s.Hash] {
			continue
		}
		delete(hashes, s.Hash)
		reconstructed[s.Hash] = s
		stack = append(stack, s)
	}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if next, ok := tryForward(c, hashes, roller); ok {
			reconstructed[next.Hash] = next
			stack = append(stack, next)
		}
		if prev, ok := tryReverse(c, hashes, roller); ok {
			reconstructed[prev.Hash] = prev
			stack = append(stack, prev)
		}
	}

	out := make([]kmer.KmerData, 0, len(reconstructed))
	for _, d := range reconstructed {
		out = append(out, d)
	}
	return out
}

func tryForward(c kmer.KmerData, hashes HashSet, roller *kmer.Roller) (kmer.KmerData, bool) {
	for _, n := range nucleotideOrder {
		h := roller.ForwardRoll(c.Hash, c.Packed, n)
		if !hashes[h] {
			continue
		}
		delete(hashes, h)
		packed := c.Packed.Clone()
		packed.ShiftLeft(n)
		return kmer.KmerData{Packed: packed, Hash: h, Meta: c.Meta}, true
	}
	return kmer.KmerData{}, false
}

func tryReverse(c kmer.KmerData, hashes HashSet, roller *kmer.Roller) (kmer.KmerData, bool) {
	for _, n := range nucleotideOrder {
		h := roller.ReverseRoll(c.Hash, c.Packed, n)
		if !hashes[h] {
			continue
		}
		delete(hashes, h)
		packed := c.Packed.Clone()
		packed.ShiftRight(n)
		return kmer.KmerData{Packed: packed, Hash: h, Meta: c.Meta}, true
	}
	return kmer.KmerData{}, false
}
