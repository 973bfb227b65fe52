package logicmin

import (
	"github.com/bits-and-blooms/bitset"
)

// CoverTable Relates every on-set assignment of one output to the prime
// implicants that cover it. Implicants are interned as their index into the
// ordered prime set, so all table bookkeeping is over small integers and
// bitsets rather than cube text. The table is owned by the selection for a
// single output and never shared.
type CoverTable struct {
	primes []Implicant

	// covered[i] holds the on-set indices covered by primes[i].
	covered []*bitset.BitSet

	// candidates maps each on-set index to the interned implicant indices
	// covering it. An entry may be empty: such a minterm can never be
	// covered and must surface in the result.
	candidates map[uint][]int

	on *bitset.BitSet
}

// NewCoverTable Builds the coverage table for one output from its ordered
// prime set and on-set.
func NewCoverTable(primes []Implicant, on *bitset.BitSet) *CoverTable {
	t := &CoverTable{
		primes:     primes,
		covered:    make([]*bitset.BitSet, len(primes)),
		candidates: make(map[uint][]int),
		on:         on,
	}
	for m, ok := on.NextSet(0); ok; m, ok = on.NextSet(m + 1) {
		t.candidates[m] = nil
	}
	for i, pi := range primes {
		cov := bitset.New(on.Len())
		for m, ok := on.NextSet(0); ok; m, ok = on.NextSet(m + 1) {
			if pi.Covers(uint64(m)) {
				cov.Set(m)
				t.candidates[m] = append(t.candidates[m], i)
			}
		}
		t.covered[i] = cov
	}
	return t
}

// Essentials Returns the interned indices of the essential prime
// implicants: any minterm with exactly one candidate forces it in. This is
// a single pass over the original table; essentiality is not re-evaluated
// after each pick.
func (t *CoverTable) Essentials() *bitset.BitSet {
	selected := bitset.New(uint(len(t.primes)))
	for _, cands := range t.candidates {
		if len(cands) == 1 {
			selected.Set(uint(cands[0]))
		}
	}
	return selected
}

// Complete Greedily extends selected until no candidate adds coverage.
// Each round picks the implicant maximizing, in order: newly covered
// minterm count (descending), don't-care count (descending), literal count
// (ascending). Ties keep the earlier candidate, so the lexicographically
// smaller cube wins. Returns the final selection and the on-set indices
// that remain uncovered.
func (t *CoverTable) Complete(selected *bitset.BitSet) (*bitset.BitSet, *bitset.BitSet) {
	selected = selected.Clone()
	uncovered := t.on.Clone()
	for i, ok := selected.NextSet(0); ok; i, ok = selected.NextSet(i + 1) {
		uncovered.InPlaceDifference(t.covered[i])
	}

	for uncovered.Any() {
		best := -1
		bestGain := uint(0)
		for i := range t.primes {
			if selected.Test(uint(i)) {
				continue
			}
			gain := t.covered[i].IntersectionCardinality(uncovered)
			if gain == 0 {
				continue
			}
			if best < 0 || betterPick(t.primes[i], gain, t.primes[best], bestGain) {
				best, bestGain = i, gain
			}
		}
		if best < 0 {
			break
		}
		selected.Set(uint(best))
		uncovered.InPlaceDifference(t.covered[best])
	}
	return selected, uncovered
}

// betterPick Reports whether (a, gainA) strictly beats the incumbent
// (b, gainB) under the greedy score.
func betterPick(a Implicant, gainA uint, b Implicant, gainB uint) bool {
	if gainA != gainB {
		return gainA > gainB
	}
	if a.DontCareCount() != b.DontCareCount() {
		return a.DontCareCount() > b.DontCareCount()
	}
	return a.FixedCount() < b.FixedCount()
}

// SelectCover Picks an irredundant cover of the on-set from the ordered
// prime set: essential implicants first, then greedy completion. The
// selection comes back in lexicographic cube order together with the sorted
// indices of any minterms no candidate could cover; a non-empty remainder
// is a diagnostic, not an error.
func SelectCover(primes []Implicant, on *bitset.BitSet) ([]Implicant, []uint) {
	t := NewCoverTable(primes, on)
	selected, uncovered := t.Complete(t.Essentials())

	// The prime set is already in lexicographic order, so walking the
	// selection by ascending index keeps the cover ordered.
	cover := make([]Implicant, 0, selected.Count())
	for i, ok := selected.NextSet(0); ok; i, ok = selected.NextSet(i + 1) {
		cover = append(cover, t.primes[i])
	}

	left := make([]uint, 0, uncovered.Count())
	for m, ok := uncovered.NextSet(0); ok; m, ok = uncovered.NextSet(m + 1) {
		left = append(left, m)
	}
	return cover, left
}
