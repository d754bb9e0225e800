package sketch

import "github.com/grailbio/base/bitset"

// bitSet is the "modified index set" of spec.md §9: a hot, small set of
// table-cell indexes touched since the last decode. Grounded directly in
// github.com/grailbio/base/bitset, the same package circular/bitmap.go
// builds its row scanning on: Set still flips a word's bit inline, exactly
// as Bitmap.Set does in that file, while membership testing and iteration
// go through bitset.Test and bitset.NewNonzeroWordScanner instead of a
// hand-rolled TrailingZeros64 walk.
type bitSet struct {
	words  []uintptr
	nzwPop int
	n      int
}

func newBitSet(n int) *bitSet {
	return &bitSet{words: make([]uintptr, (n+bitset.BitsPerWord-1)/bitset.BitsPerWord), n: n}
}

func (b *bitSet) Set(i int) {
	wi := i / bitset.BitsPerWord
	if b.words[wi] == 0 {
		b.nzwPop++
	}
	b.words[wi] |= uintptr(1) << uint(i%bitset.BitsPerWord)
}

func (b *bitSet) Get(i int) bool {
	return bitset.Test(b.words, i)
}

// ForEach calls f once for every set index, in ascending order.
func (b *bitSet) ForEach(f func(i int)) {
	if b.nzwPop == 0 {
		return
	}
	s, col := bitset.NewNonzeroWordScanner(b.words, b.nzwPop)
	for col != -1 {
		f(col)
		col = s.Next()
	}
}

// Reset clears every bit.
func (b *bitSet) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
	b.nzwPop = 0
}
