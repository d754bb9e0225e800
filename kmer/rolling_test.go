package kmer

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

// TestRollingEqualsRecompute is property 3 / scenario C from spec.md §8:
// forward_roll(hash(s[i..i+L]), s[i], s[i+L]) == hash(s[i+1..i+L+1]).
func TestRollingEqualsRecompute(t *testing.T) {
	const s = "ACGTACGTAC"
	const L = 4
	th := NewTabulationHash(0)
	roller := NewRoller(th, L)
	for i := 0; i+L+1 <= len(s); i++ {
		cur, err := FromString(s[i : i+L])
		expect.NoError(t, err)
		next, err := FromString(s[i+1 : i+1+L])
		expect.NoError(t, err)
		nextNuc, err := ParseNucleotide(s[i+L])
		expect.NoError(t, err)

		h := th.Hash(cur)
		rolled := roller.ForwardRoll(h, cur, nextNuc)
		expect.EQ(t, rolled, th.Hash(next))
	}
}

func TestReverseRollEqualsRecompute(t *testing.T) {
	const s = "ACGTACGTAC"
	const L = 4
	th := NewTabulationHash(3)
	roller := NewRoller(th, L)
	for i := len(s) - L; i > 0; i-- {
		cur, err := FromString(s[i : i+L])
		expect.NoError(t, err)
		prevNuc, err := ParseNucleotide(s[i-1])
		expect.NoError(t, err)
		prevKmer, err := FromString(s[i-1 : i-1+L])
		expect.NoError(t, err)

		h := th.Hash(cur)
		rolled := roller.ReverseRoll(h, cur, prevNuc)
		expect.EQ(t, rolled, th.Hash(prevKmer))
	}
}

func TestSubstituteEqualsRecompute(t *testing.T) {
	const L = 6
	th := NewTabulationHash(11)
	roller := NewRoller(th, L)
	k, err := FromString("ACGTAC")
	expect.NoError(t, err)
	for pos := 0; pos < L; pos++ {
		for _, n := range []Nucleotide{A, C, G, T} {
			h := th.Hash(k)
			got := roller.Substitute(h, k, pos, n)

			mutated := k.Clone()
			expect.NoError(t, mutated.Set(pos, n))
			want := th.Hash(mutated)
			expect.EQ(t, got, want)
		}
	}
}

// TestForwardScenarioC is spec.md §8 scenario C verbatim.
func TestForwardScenarioC(t *testing.T) {
	th := NewTabulationHash(0)
	roller := NewRoller(th, 4)
	acgt, _ := FromString("ACGT")
	cgta, _ := FromString("CGTA")
	got := roller.ForwardRoll(th.Hash(acgt), acgt, A)
	expect.EQ(t, got, th.Hash(cgta))
}
