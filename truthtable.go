package logicmin

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// FuncSpec The raw (on-set, dc-set) index pair of one output, as produced
// by the spec parser or the random generator.
type FuncSpec struct {
	On []uint
	DC []uint
}

// Output One column of the truth table. On and DC partition the asserted
// part of [0, 2^N); everything else is the off-set.
type Output struct {
	Name string
	On   *bitset.BitSet
	DC   *bitset.BitSet
}

// TruthTable The fully enumerated input space for N variables together
// with every output column. Rows are the 2^N assignments in natural binary
// counting order. The table is immutable once built; each output is
// minimized independently against it.
type TruthTable struct {
	numInputs  int
	inputNames []string
	outputs    []Output
}

// NewTruthTable Validates spec and builds the truth table. Output columns
// are ordered by name. Out-of-range indices and on/dc overlap are fatal,
// reported with the output name and the offending indices.
func NewTruthTable(numInputs int, spec map[string]FuncSpec) (*TruthTable, error) {
	if numInputs < 1 || numInputs > MaxInputs {
		return nil, fmt.Errorf("numInputs must be in [1, %d], got %d", MaxInputs, numInputs)
	}
	if len(spec) == 0 {
		return nil, fmt.Errorf("spec has no outputs")
	}

	names := make([]string, 0, len(spec))
	for name := range spec {
		names = append(names, name)
	}
	sort.Strings(names)

	numRows := uint(1) << numInputs
	t := &TruthTable{
		numInputs:  numInputs,
		inputNames: DefaultInputNames(numInputs),
		outputs:    make([]Output, 0, len(names)),
	}
	for _, name := range names {
		fs := spec[name]
		on, err := indexSet(name, "ON", fs.On, numRows)
		if err != nil {
			return nil, err
		}
		dc, err := indexSet(name, "DC", fs.DC, numRows)
		if err != nil {
			return nil, err
		}
		if overlap := on.Intersection(dc); overlap.Any() {
			return nil, fmt.Errorf("output %q: ON and DC overlap at indices %v", name, setIndices(overlap))
		}
		t.outputs = append(t.outputs, Output{Name: name, On: on, DC: dc})
	}
	return t, nil
}

func indexSet(name, kind string, indices []uint, numRows uint) (*bitset.BitSet, error) {
	set := bitset.New(numRows)
	var bad []uint
	for _, i := range indices {
		if i >= numRows {
			bad = append(bad, i)
			continue
		}
		set.Set(i)
	}
	if len(bad) > 0 {
		return nil, fmt.Errorf("output %q: invalid %s indices %v (rows: %d)", name, kind, bad, numRows)
	}
	return set, nil
}

func setIndices(set *bitset.BitSet) []uint {
	out := make([]uint, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, i)
	}
	return out
}

// NumInputs Number of input variables.
func (t *TruthTable) NumInputs() int {
	return t.numInputs
}

// NumRows Number of enumerated assignments, 2^N.
func (t *TruthTable) NumRows() uint {
	return uint(1) << t.numInputs
}

// NumOutputs Number of output columns.
func (t *TruthTable) NumOutputs() int {
	return len(t.outputs)
}

// Outputs The ordered output columns.
func (t *TruthTable) Outputs() []Output {
	return t.outputs
}

// OutputNames The ordered output column names.
func (t *TruthTable) OutputNames() []string {
	names := make([]string, len(t.outputs))
	for i, out := range t.outputs {
		names[i] = out.Name
	}
	return names
}

// InputNames The input variable names, MSB first.
func (t *TruthTable) InputNames() []string {
	return t.inputNames
}

// SetInputNames Overrides the default x1..xN input names.
func (t *TruthTable) SetInputNames(names []string) error {
	if len(names) != t.numInputs {
		return fmt.Errorf("want %d input names, got %d", t.numInputs, len(names))
	}
	t.inputNames = names
	return nil
}

// InputBits Renders row i as its N-bit binary string, MSB first.
func (t *TruthTable) InputBits(i uint) string {
	var sb strings.Builder
	sb.Grow(t.numInputs)
	for pos := 0; pos < t.numInputs; pos++ {
		if i&(1<<(t.numInputs-1-pos)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Trit The ternary value of output column k at row i.
func (t *TruthTable) Trit(k int, i uint) byte {
	out := t.outputs[k]
	switch {
	case out.On.Test(i):
		return '1'
	case out.DC.Test(i):
		return '-'
	default:
		return '0'
	}
}

// RowTrits Renders row i of every output column as one ternary string.
func (t *TruthTable) RowTrits(i uint) string {
	var sb strings.Builder
	sb.Grow(len(t.outputs))
	for k := range t.outputs {
		sb.WriteByte(t.Trit(k, i))
	}
	return sb.String()
}
