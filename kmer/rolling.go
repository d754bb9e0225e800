package kmer

import "math/bits"

// Roller applies O(1), allocation-free updates to a tabulation hash under a
// one-nucleotide shift or single-position substitution (spec.md §4.3). It is
// bound to a fixed k-mer length, from which each call derives its rotation
// amounts.
type Roller struct {
	th     *TabulationHash
	length int
}

// NewRoller returns a Roller for k-mers of the given length hashed with th.
func NewRoller(th *TabulationHash, length int) *Roller {
	return &Roller{th: th, length: length}
}

// window4 packs four consecutive 2-bit nucleotide values into an 8-bit
// window value, MSB-first -- used to build windows that don't yet exist in
// any live Kmer (e.g. the window straddling an about-to-be-appended base).
func window4(a, b, c, d Nucleotide) byte {
	return byte(a&3)<<6 | byte(b&3)<<4 | byte(c&3)<<2 | byte(d&3)
}

// ForwardRoll returns the hash of k shifted left with next appended, given
// h = hash of k. k is not mutated; the caller applies k.ShiftLeft(next)
// separately once it has also used k's old content for anything else it
// needs (e.g. extracting the k-mer to emit).
func (r *Roller) ForwardRoll(h uint64, k Kmer, next Nucleotide) uint64 {
	L := r.length
	if L < 4 {
		return 0
	}
	bFirst := k.window(0)
	var a, b, c Nucleotide
	a, _ = k.Get(L - 3)
	b, _ = k.Get(L - 2)
	c, _ = k.Get(L - 1)
	bLastNew := window4(a, b, c, next)
	return bits.RotateLeft64(h^r.th.table[bFirst], -1) ^ bits.RotateLeft64(r.th.table[bLastNew], L-4)
}

// ReverseRoll returns the hash of k shifted right with prev prepended, given
// h = hash of k.
func (r *Roller) ReverseRoll(h uint64, k Kmer, prev Nucleotide) uint64 {
	L := r.length
	if L < 4 {
		return 0
	}
	bLastOld := k.window(2 * (L - 4))
	var a, b, c Nucleotide
	a, _ = k.Get(0)
	b, _ = k.Get(1)
	c, _ = k.Get(2)
	bFirstNew := window4(prev, a, b, c)
	return bits.RotateLeft64(h^bits.RotateLeft64(r.th.table[bLastOld], L-4), 1) ^ r.th.table[bFirstNew]
}

// Substitute returns the hash of k with position pos replaced by newNuc,
// given h = hash of k. Touches at most 4 windows (kk in
// [max(0,pos-3), min(L-4,pos)]).
func (r *Roller) Substitute(h uint64, k Kmer, pos int, newNuc Nucleotide) uint64 {
	L := r.length
	if L < 4 {
		return 0
	}
	lo := pos - 3
	if lo < 0 {
		lo = 0
	}
	hi := pos
	if hi > L-4 {
		hi = L - 4
	}
	for kk := lo; kk <= hi; kk++ {
		wOld := k.window(2 * kk)
		offsetInWindow := pos - kk
		shift := uint(6 - 2*offsetInWindow)
		wNew := (wOld &^ (3 << shift)) | (byte(newNuc&3) << shift)
		h ^= bits.RotateLeft64(r.th.table[wOld]^r.th.table[wNew], kk)
	}
	return h
}
