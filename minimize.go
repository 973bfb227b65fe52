package logicmin

import (
	"fmt"
)

// Result The minimized cover of one output column.
type Result struct {
	// Output is the name of the minimized column.
	Output string

	// Primes is the full non-redundant prime implicant set, in
	// lexicographic cube order.
	Primes []Implicant

	// Selected is the chosen cover, essential implicants plus greedy
	// completion, in lexicographic cube order.
	Selected []Implicant

	// Uncovered lists on-set assignments no candidate could cover. Empty
	// for well-formed inputs; a non-empty list is a diagnostic the caller
	// must surface, never an error.
	Uncovered []uint

	// SOP is the sum-of-products rendering of Selected.
	SOP string

	// Cubes holds one emitter row per selected implicant.
	Cubes []string
}

// Minimize Runs the full pipeline for output column which: seed terms from
// on ∪ dc, prime implicant derivation filtered against the off-set, cover
// selection, and rendering. Outputs share only read-only access to the
// table, so columns may be minimized in any order or concurrently.
func (t *TruthTable) Minimize(which int, opts RenderOptions) (Result, error) {
	if which < 0 || which >= len(t.outputs) {
		return Result{}, fmt.Errorf("output index %d out of range [0, %d)", which, len(t.outputs))
	}
	out := t.outputs[which]

	universe := out.On.Union(out.DC)
	terms := make([]Implicant, 0, universe.Count())
	for i, ok := universe.NextSet(0); ok; i, ok = universe.NextSet(i + 1) {
		terms = append(terms, NewMinterm(t.numInputs, uint64(i)))
	}
	off := universe.Complement()

	primes := PrimeImplicants(terms, off)
	selected, uncovered := SelectCover(primes, out.On)

	if opts.InputNames == nil {
		opts.InputNames = t.inputNames
	}
	return Result{
		Output:    out.Name,
		Primes:    primes,
		Selected:  selected,
		Uncovered: uncovered,
		SOP:       SumOfProducts(selected, opts),
		Cubes:     CubeRows(selected, len(t.outputs), which),
	}, nil
}

// MinimizeAll Minimizes every output column in table order.
func (t *TruthTable) MinimizeAll(opts RenderOptions) ([]Result, error) {
	results := make([]Result, 0, len(t.outputs))
	for k := range t.outputs {
		res, err := t.Minimize(k, opts)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
