// Package sequence generates and walks DNA sequences, yielding k-mers with
// a rolling hash already maintained (spec.md §4.5, component C7).
//
// The Scan/Get iterator shape is grounded on
// github.com/grailbio/bio's fusion/kmer.go kmerizer type (Reset/Scan/Get),
// generalized from a single-uint64 Kmer to halina's arbitrary-length
// kmer.Kmer and from "forward+reverse-complement pair" to a single rolling
// hash maintained via kmer.Roller.
package sequence

import (
	"github.com/gadurek/halina/herrors"
	"github.com/gadurek/halina/kmer"
)

// Sequence is an ordered vector of nucleotides plus the base offset and set
// ID recorded into every k-mer's metadata (spec.md §4.5).
type Sequence struct {
	Nucleotides []kmer.Nucleotide
	BaseOffset  int
	SetID       int
}

// FromString parses an ACGT string into a Sequence.
func FromString(s string, baseOffset, setID int) (Sequence, error) {
	nucs := make([]kmer.Nucleotide, len(s))
	for i := 0; i < len(s); i++ {
		n, err := kmer.ParseNucleotide(s[i])
		if err != nil {
			return Sequence{}, herrors.E(herrors.InvalidInput, "sequence.FromString", err)
		}
		nucs[i] = n
	}
	return Sequence{Nucleotides: nucs, BaseOffset: baseOffset, SetID: setID}, nil
}

// Len returns the number of nucleotides in the sequence.
func (s Sequence) Len() int { return len(s.Nucleotides) }

// String renders the sequence as an ACGT string.
func (s Sequence) String() string {
	buf := make([]byte, len(s.Nucleotides))
	for i, n := range s.Nucleotides {
		buf[i] = n.Byte()
	}
	return string(buf)
}

// KmerIterator is a lazy, finite, one-shot iterator over a Sequence's
// k-mer windows, with the rolling hash updated incrementally between
// consecutive windows.
type KmerIterator struct {
	seq    Sequence
	length int
	th     *kmer.TabulationHash
	roller *kmer.Roller
	si     int
	cur    kmer.KmerData
}

// GetKmers returns a KmerIterator over every length-L window of seq,
// hashed with th. If seq.Len() < L, the iterator yields nothing.
func GetKmers(seq Sequence, length int, th *kmer.TabulationHash) *KmerIterator {
	return &KmerIterator{seq: seq, length: length, th: th, roller: kmer.NewRoller(th, length)}
}

// Scan advances to the next window, returning false once exhausted.
func (it *KmerIterator) Scan() bool {
	if it.length <= 0 || it.si+it.length > len(it.seq.Nucleotides) {
		return false
	}
	if it.si == 0 {
		window, err := kmer.FromNucleotides(it.seq.Nucleotides[0:it.length])
		if err != nil {
			return false
		}
		it.cur = kmer.KmerData{
			Packed: window,
			Hash:   it.th.Hash(window),
			Meta:   kmer.Metadata{Index: it.seq.BaseOffset, SetID: it.seq.SetID},
		}
	} else {
		next := it.seq.Nucleotides[it.si+it.length-1]
		newHash := it.roller.ForwardRoll(it.cur.Hash, it.cur.Packed, next)
		newPacked := it.cur.Packed.Clone()
		newPacked.ShiftLeft(next)
		it.cur = kmer.KmerData{
			Packed: newPacked,
			Hash:   newHash,
			Meta:   kmer.Metadata{Index: it.seq.BaseOffset + it.si, SetID: it.seq.SetID},
		}
	}
	it.si++
	return true
}

// Get returns the current KmerData. Only valid after Scan returns true.
func (it *KmerIterator) Get() kmer.KmerData { return it.cur }

// All drains the iterator into a slice, for callers that don't need
// streaming.
func (it *KmerIterator) All() []kmer.KmerData {
	var out []kmer.KmerData
	for it.Scan() {
		out = append(out, it.Get())
	}
	return out
}
