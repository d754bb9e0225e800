// Package kmer implements the packed 2-bit DNA representation, its
// tabulation hash, and the O(1) rolling/substitution hash updates that the
// rest of halina builds on.
//
// Grounded on github.com/grailbio/bio's fusion/kmer.go: the ASCII<->2-bit
// lookup tables and the incremental-shift fast path in kmerizer.Scan are the
// same idea applied here to an arbitrary-length, byte-packed Kmer instead of
// a single fixed-width uint64.
package kmer

import "github.com/gadurek/halina/herrors"

// Nucleotide is one of A, C, G, T, encoded as the 2-bit values 0..3.
type Nucleotide uint8

const (
	A Nucleotide = 0
	C Nucleotide = 1
	G Nucleotide = 2
	T Nucleotide = 3
)

const invalidNucleotide = Nucleotide(255)

// asciiToNucleotide maps an ASCII byte to its 2-bit encoding, or
// invalidNucleotide if the byte is not one of {A,C,G,T} (case-insensitive).
var asciiToNucleotide [256]Nucleotide

// nucleotideToASCII is the inverse of asciiToNucleotide, always uppercase.
var nucleotideToASCII = [4]byte{'A', 'C', 'G', 'T'}

func init() {
	for i := range asciiToNucleotide {
		asciiToNucleotide[i] = invalidNucleotide
	}
	asciiToNucleotide['A'] = A
	asciiToNucleotide['a'] = A
	asciiToNucleotide['C'] = C
	asciiToNucleotide['c'] = C
	asciiToNucleotide['G'] = G
	asciiToNucleotide['g'] = G
	asciiToNucleotide['T'] = T
	asciiToNucleotide['t'] = T
}

// ParseNucleotide converts an ASCII base character to a Nucleotide.
func ParseNucleotide(ch byte) (Nucleotide, error) {
	n := asciiToNucleotide[ch]
	if n == invalidNucleotide {
		return 0, herrors.E(herrors.InvalidInput, "kmer.ParseNucleotide", nil)
	}
	return n, nil
}

// Byte returns the uppercase ASCII encoding of n.
func (n Nucleotide) Byte() byte { return nucleotideToASCII[n&3] }

// String implements fmt.Stringer.
func (n Nucleotide) String() string { return string(n.Byte()) }

// Complement returns the Watson-Crick complement of n (A<->T, C<->G).
func (n Nucleotide) Complement() Nucleotide { return 3 - (n & 3) }

// Next cycles n forward by one (A->C->G->T->A), used to mutate a base
// deterministically for the double-sequence mutation generator.
func (n Nucleotide) Next() Nucleotide { return (n + 1) & 3 }
