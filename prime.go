package logicmin

import (
	"math/bits"
	"sort"

	"github.com/bits-and-blooms/bitset"
)

type cubeKey struct {
	value uint64
	care  uint64
}

func (a Implicant) key() cubeKey {
	return cubeKey{value: a.value, care: a.care}
}

// PrimeImplicants Derives the non-redundant prime implicant set for the
// function whose on/dc universe seeds terms and whose off-set is off.
//
// The derivation is a fixed-point worklist over combination levels: all
// pairs of the current level are offered to Combine, terms absorbed by at
// least one successful combination are withheld from the prime set, the
// distinct results form the next level and the leftovers accumulate as
// primes. Each combination strictly decreases the fixed-position count, so
// the loop terminates after at most width levels.
//
// Candidates covering any off-set assignment are discarded afterwards; the
// seed universe alone does not guarantee soundness because don't-care
// matched combinations can reach assignments outside it. Finally any cube
// subsumed by another surviving cube is dropped and the remainder is
// returned in lexicographic cube order.
func PrimeImplicants(terms []Implicant, off *bitset.BitSet) []Implicant {
	if len(terms) == 0 {
		return nil
	}

	current := dedupCubes(terms)
	primeSet := make(map[cubeKey]Implicant)
	for {
		next, leftovers := combineLevel(current)
		for _, imp := range leftovers {
			primeSet[imp.key()] = imp
		}
		if len(next) == 0 {
			break
		}
		current = next
	}

	primes := make([]Implicant, 0, len(primeSet))
	for _, imp := range primeSet {
		if coversAny(imp, off) {
			continue
		}
		primes = append(primes, imp)
	}
	sortCubes(primes)

	nonRedundant := make([]Implicant, 0, len(primes))
	for i, pi := range primes {
		subsumed := false
		for j, pj := range primes {
			if i != j && pj.Subsumes(pi) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			nonRedundant = append(nonRedundant, pi)
		}
	}
	return nonRedundant
}

// combineLevel Runs one combination round: every pair of the level is
// offered to Combine, the distinct results form the next level, and terms
// that combined with nothing are the leftovers (in ascending set-bit order,
// which fixes the pairing order of the round).
func combineLevel(level []Implicant) (next []Implicant, leftovers []Implicant) {
	sorted := make([]Implicant, len(level))
	copy(sorted, level)
	sort.SliceStable(sorted, func(i, j int) bool {
		return onesCount(sorted[i]) < onesCount(sorted[j])
	})

	used := make([]bool, len(sorted))
	seen := make(map[cubeKey]struct{})
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			combined, ok := sorted[i].Combine(sorted[j])
			if !ok {
				continue
			}
			used[i], used[j] = true, true
			if _, dup := seen[combined.key()]; !dup {
				seen[combined.key()] = struct{}{}
				next = append(next, combined)
			}
		}
	}

	for i, imp := range sorted {
		if !used[i] {
			leftovers = append(leftovers, imp)
		}
	}
	sortCubes(next)
	return next, leftovers
}

func onesCount(a Implicant) int {
	return bits.OnesCount64(a.value)
}

func coversAny(imp Implicant, set *bitset.BitSet) bool {
	if set == nil {
		return false
	}
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if imp.Covers(uint64(i)) {
			return true
		}
	}
	return false
}

func dedupCubes(terms []Implicant) []Implicant {
	seen := make(map[cubeKey]struct{}, len(terms))
	out := make([]Implicant, 0, len(terms))
	for _, imp := range terms {
		if _, dup := seen[imp.key()]; dup {
			continue
		}
		seen[imp.key()] = struct{}{}
		out = append(out, imp)
	}
	sortCubes(out)
	return out
}

func sortCubes(cubes []Implicant) {
	sort.Slice(cubes, func(i, j int) bool {
		return cubes[i].Compare(cubes[j]) < 0
	})
}
