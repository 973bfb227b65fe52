package logicmin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseCubes(t *testing.T, ss ...string) []Implicant {
	t.Helper()
	cubes := make([]Implicant, len(ss))
	for i, s := range ss {
		cubes[i] = mustImplicant(t, s)
	}
	return cubes
}

func TestCoverTableCandidates(t *testing.T) {
	primes := parseCubes(t, "0-", "-1")
	on := mintermSet(4, 0, 1, 3)
	table := NewCoverTable(primes, on)

	assert.Equal(t, []int{0}, table.candidates[0])    // 00 only under 0-
	assert.Equal(t, []int{0, 1}, table.candidates[1]) // 01 under both
	assert.Equal(t, []int{1}, table.candidates[3])    // 11 only under -1
}

func TestEssentials(t *testing.T) {
	primes := parseCubes(t, "0-", "-1")
	table := NewCoverTable(primes, mintermSet(4, 0, 1, 3))

	essentials := table.Essentials()
	assert.True(t, essentials.Test(0), "0- is the unique cover of 00")
	assert.True(t, essentials.Test(1), "-1 is the unique cover of 11")
}

func TestSelectCoverGreedyPrefersLargerCube(t *testing.T) {
	// No minterm has a unique candidate, so the whole cover comes from
	// the greedy step, which takes the one cube covering everything.
	primes := parseCubes(t, "0--", "00-", "01-")
	cover, uncovered := SelectCover(primes, mintermSet(8, 0, 1, 2, 3))

	assert.Equal(t, []string{"0--"}, cubeStrings(cover))
	assert.Empty(t, uncovered)
}

func TestSelectCoverGreedyTieKeepsFirst(t *testing.T) {
	// All four cubes have equal gain and size; ties keep the earlier
	// (lexicographically smaller) candidate, making the pick order
	// reproducible: -0 first, then -1 finishes the cover.
	primes := parseCubes(t, "-0", "-1", "0-", "1-")
	cover, uncovered := SelectCover(primes, mintermSet(4, 0, 1, 2, 3))

	assert.Equal(t, []string{"-0", "-1"}, cubeStrings(cover))
	assert.Empty(t, uncovered)
}

func TestSelectCoverReportsUncovered(t *testing.T) {
	// Minterm 0 has no candidate at all; it must surface in the result
	// rather than being dropped or raising an error.
	primes := parseCubes(t, "11")
	cover, uncovered := SelectCover(primes, mintermSet(4, 0, 3))

	assert.Equal(t, []string{"11"}, cubeStrings(cover))
	assert.Equal(t, []uint{0}, uncovered)
}

func TestSelectCoverEmpty(t *testing.T) {
	cover, uncovered := SelectCover(nil, mintermSet(8))
	assert.Empty(t, cover)
	assert.Empty(t, uncovered)
}

func TestSelectCoverEssentialInclusion(t *testing.T) {
	// Every minterm with a single candidate forces that candidate into
	// the selection, regardless of what the greedy step would prefer.
	primes := parseCubes(t, "-0-1", "0--1", "00--")
	on := mintermSet(16, 1, 3, 9)
	cover, uncovered := SelectCover(primes, on)
	assert.Empty(t, uncovered)

	selected := make(map[string]bool)
	for _, c := range cover {
		selected[c.String()] = true
	}
	for m, ok := on.NextSet(0); ok; m, ok = on.NextSet(m + 1) {
		var candidates []Implicant
		for _, pi := range primes {
			if pi.Covers(uint64(m)) {
				candidates = append(candidates, pi)
			}
		}
		if len(candidates) == 1 {
			assert.True(t, selected[candidates[0].String()],
				"essential %s for minterm %d missing from cover", candidates[0], m)
		}
	}
}

func TestGreedyTieBreaks(t *testing.T) {
	tests := []struct {
		name         string
		a, b         string
		gainA, gainB uint
		want         bool
	}{
		{name: "higher gain wins", a: "11", b: "0-", gainA: 2, gainB: 1, want: true},
		{name: "lower gain loses", a: "0-", b: "11", gainA: 1, gainB: 2, want: false},
		{name: "more dont-cares wins on equal gain", a: "1--", b: "11-", gainA: 2, gainB: 2, want: true},
		{name: "equal score is not strictly better", a: "0-", b: "1-", gainA: 1, gainB: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustImplicant(t, tt.a), mustImplicant(t, tt.b)
			assert.Equal(t, tt.want, betterPick(a, tt.gainA, b, tt.gainB))
		})
	}
}
