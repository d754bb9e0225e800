package sketch

import (
	"math/rand"
	"testing"

	"github.com/gadurek/halina/kmer"
	"github.com/grailbio/testutil/expect"
)

func TestEmptySketchDecodesEmpty(t *testing.T) {
	s, err := BuildHashSketch(3, 300, 0)
	expect.NoError(t, err)
	got, err := s.Decode()
	expect.NoError(t, err)
	expect.EQ(t, len(got), 0)
}

func TestSingleItemRoundTrip(t *testing.T) {
	s, err := BuildHashSketch(3, 300, 1)
	expect.NoError(t, err)
	expect.NoError(t, s.Encode([]HashItem{HashItem(0xdeadbeef)}))
	got, err := s.Decode()
	expect.NoError(t, err)
	expect.EQ(t, len(got), 1)
	expect.EQ(t, got[0], HashItem(0xdeadbeef))
}

// TestSmallNRoundTrip is spec.md §8 scenario A.
func TestSmallNRoundTrip(t *testing.T) {
	for _, n := range []int{10, 20, 50} {
		cells := int(1.3 * float64(n))
		if cells < 1 {
			cells = 1
		}
		s, err := BuildHashSketch(3, cells*3, 0) // totalCells is a SUM across tables
		expect.NoError(t, err)

		rng := rand.New(rand.NewSource(int64(n)))
		want := map[HashItem]bool{}
		var items []HashItem
		for len(want) < n {
			v := HashItem(rng.Uint64())
			if v == 0 || want[v] {
				continue
			}
			want[v] = true
			items = append(items, v)
		}
		expect.NoError(t, s.Encode(items))
		got, err := s.Decode()
		expect.NoError(t, err)

		gotSet := map[HashItem]bool{}
		for _, g := range got {
			gotSet[g] = true
		}
		for v := range want {
			expect.True(t, gotSet[v])
		}
	}
}

// TestSymmetricDifference is spec.md §8 property 7 / scenario D's shape,
// using raw hashes for a fast, deterministic unit test.
func TestSymmetricDifference(t *testing.T) {
	s, err := BuildHashSketch(4, 4*100, 0)
	expect.NoError(t, err)

	a := []HashItem{1, 2, 3, 4, 5}
	b := []HashItem{3, 4, 5, 6, 7}
	expect.NoError(t, s.Encode(a))
	expect.NoError(t, s.Encode(b))

	got, err := s.Decode()
	expect.NoError(t, err)

	want := map[HashItem]bool{1: true, 2: true, 6: true, 7: true}
	gotSet := map[HashItem]bool{}
	for _, g := range got {
		gotSet[g] = true
	}
	expect.EQ(t, len(gotSet), len(want))
	for v := range want {
		expect.True(t, gotSet[v])
	}
}

func TestKmerSketchRoundTrip(t *testing.T) {
	s, err := BuildKmerSketch(3, 8, 3*100, 0)
	expect.NoError(t, err)

	th := kmer.NewTabulationHash(0)
	mk := func(str string) kmer.KmerData {
		k, err := kmer.FromString(str)
		expect.NoError(t, err)
		return kmer.KmerData{Packed: k, Hash: th.Hash(k)}
	}
	items := []kmer.KmerData{mk("ACGTACGT"), mk("TTTTAAAA"), mk("GGGGCCCC")}
	expect.NoError(t, s.Encode(items))
	got, err := s.Decode()
	expect.NoError(t, err)
	expect.EQ(t, len(got), len(items))

	seen := map[string]bool{}
	for _, g := range got {
		seen[g.Packed.String()] = true
	}
	for _, item := range items {
		expect.True(t, seen[item.Packed.String()])
	}
}

func TestTabuTerminationBound(t *testing.T) {
	s, err := BuildHashSketch(3, 3*100, 0)
	expect.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	items := make([]HashItem, 400) // deliberately overloaded: will not fully decode
	for i := range items {
		items[i] = HashItem(rng.Uint64() | 1)
	}
	expect.NoError(t, s.Encode(items))
	_, err = s.Decode() // must not hang or exceed the internal step bound
	_ = err
}

func TestSimpleControllerEmptyLimit(t *testing.T) {
	s, err := BuildHashSketch(3, 300, 0)
	expect.NoError(t, err)
	s.SetController(NewSimpleController(2))
	expect.NoError(t, s.Encode([]HashItem{42}))
	got, err := s.Decode()
	expect.NoError(t, err)
	expect.EQ(t, len(got), 1)
}
