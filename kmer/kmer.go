package kmer

import (
	"strings"

	"github.com/gadurek/halina/herrors"
)

// Kmer is an immutable-length, 2-bit-packed fixed-length DNA string. Position
// 0 occupies the top two bits of byte 0 (MSB-first within each byte, per
// spec.md's data model); unused low-order bits in the final byte are always
// zero.
type Kmer struct {
	length int
	bytes  []byte
}

func numBytes(length int) int { return (2*length + 7) / 8 }

// New returns a zero-valued (all-A) Kmer of the given length.
func New(length int) (Kmer, error) {
	if length <= 0 {
		return Kmer{}, herrors.E(herrors.InvalidInput, "kmer.New", nil)
	}
	return Kmer{length: length, bytes: make([]byte, numBytes(length))}, nil
}

// FromString parses s (characters in {A,C,G,T}, case-insensitive) into a Kmer.
func FromString(s string) (Kmer, error) {
	if len(s) == 0 {
		return Kmer{}, herrors.E(herrors.InvalidInput, "kmer.FromString", nil)
	}
	k, err := New(len(s))
	if err != nil {
		return Kmer{}, err
	}
	for i := 0; i < len(s); i++ {
		n, err := ParseNucleotide(s[i])
		if err != nil {
			return Kmer{}, herrors.E(herrors.InvalidInput, "kmer.FromString", err)
		}
		k.setUnchecked(i, n)
	}
	return k, nil
}

// FromNucleotides packs an explicit nucleotide sequence into a Kmer.
func FromNucleotides(v []Nucleotide) (Kmer, error) {
	if len(v) == 0 {
		return Kmer{}, herrors.E(herrors.InvalidInput, "kmer.FromNucleotides", nil)
	}
	k, err := New(len(v))
	if err != nil {
		return Kmer{}, err
	}
	for i, n := range v {
		k.setUnchecked(i, n)
	}
	return k, nil
}

// Len returns the k-mer's length in nucleotides.
func (k Kmer) Len() int { return k.length }

// Bytes returns the packed byte representation. Callers must not mutate it.
func (k Kmer) Bytes() []byte { return k.bytes }

func posOffsets(i int) (byteIdx int, shift uint) {
	return i / 4, uint(6 - 2*(i%4))
}

func (k Kmer) setUnchecked(i int, n Nucleotide) {
	byteIdx, shift := posOffsets(i)
	k.bytes[byteIdx] = (k.bytes[byteIdx] &^ (3 << shift)) | (byte(n&3) << shift)
}

func (k Kmer) getUnchecked(i int) Nucleotide {
	byteIdx, shift := posOffsets(i)
	return Nucleotide((k.bytes[byteIdx] >> shift) & 3)
}

// Get returns the nucleotide at position i.
func (k Kmer) Get(i int) (Nucleotide, error) {
	if i < 0 || i >= k.length {
		return 0, herrors.E(herrors.OutOfBounds, "kmer.Get", nil)
	}
	return k.getUnchecked(i), nil
}

// Set mutates the nucleotide at position i in place.
func (k Kmer) Set(i int, n Nucleotide) error {
	if i < 0 || i >= k.length {
		return herrors.E(herrors.OutOfBounds, "kmer.Set", nil)
	}
	k.setUnchecked(i, n)
	return nil
}

// Clone returns an independent copy of k.
func (k Kmer) Clone() Kmer {
	b := make([]byte, len(k.bytes))
	copy(b, k.bytes)
	return Kmer{length: k.length, bytes: b}
}

// clearTail zeros any bits beyond the last valid nucleotide in the final
// byte, preserving the packed-Kmer invariant after a bit-shuffling op.
func (k Kmer) clearTail() {
	if len(k.bytes) == 0 {
		return
	}
	usedBits := 2 * k.length
	lastByteBits := usedBits - 8*(len(k.bytes)-1)
	if lastByteBits < 8 {
		mask := byte(0xFF << uint(8-lastByteBits))
		k.bytes[len(k.bytes)-1] &= mask
	}
}

// ShiftLeft drops position 0, shifts remaining positions toward 0, and
// appends n at position len-1. O(bytes).
func (k Kmer) ShiftLeft(n Nucleotide) {
	nb := len(k.bytes)
	for i := 0; i < nb; i++ {
		k.bytes[i] <<= 2
		if i+1 < nb {
			k.bytes[i] |= k.bytes[i+1] >> 6
		}
	}
	k.clearTail()
	k.setUnchecked(k.length-1, n)
}

// ShiftRight drops position len-1, shifts remaining positions toward len-1,
// and prepends n at position 0. O(bytes).
func (k Kmer) ShiftRight(n Nucleotide) {
	nb := len(k.bytes)
	for i := nb - 1; i >= 0; i-- {
		k.bytes[i] >>= 2
		if i > 0 {
			k.bytes[i] |= (k.bytes[i-1] & 3) << 6
		}
	}
	k.clearTail()
	k.setUnchecked(0, n)
}

// Xor returns the byte-wise XOR of k and other, which must share a length.
func (k Kmer) Xor(other Kmer) (Kmer, error) {
	if k.length != other.length {
		return Kmer{}, herrors.E(herrors.LengthMismatch, "kmer.Xor", nil)
	}
	out, err := New(k.length)
	if err != nil {
		return Kmer{}, err
	}
	for i := range out.bytes {
		out.bytes[i] = k.bytes[i] ^ other.bytes[i]
	}
	return out, nil
}

// Equal reports whether k and other have the same length and bytes.
func (k Kmer) Equal(other Kmer) bool {
	if k.length != other.length {
		return false
	}
	for i := range k.bytes {
		if k.bytes[i] != other.bytes[i] {
			return false
		}
	}
	return true
}

// String renders the Kmer as an uppercase ACGT string.
func (k Kmer) String() string {
	var sb strings.Builder
	sb.Grow(k.length)
	for i := 0; i < k.length; i++ {
		sb.WriteByte(k.getUnchecked(i).Byte())
	}
	return sb.String()
}

// window returns the 8-bit value starting at bitOffset (0 = the very first,
// top-most bit of byte 0), assembled from at most two bytes -- the
// "byte-aligned window" used by the tabulation hash (spec.md §4.2).
func (k Kmer) window(bitOffset int) byte {
	byteIdx := bitOffset / 8
	bitInByte := uint(bitOffset % 8)
	b0 := k.bytes[byteIdx]
	if bitInByte == 0 {
		return b0
	}
	var b1 byte
	if byteIdx+1 < len(k.bytes) {
		b1 = k.bytes[byteIdx+1]
	}
	return (b0 << bitInByte) | (b1 >> (8 - bitInByte))
}
