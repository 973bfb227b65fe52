package logicmin

import (
	"fmt"
	"strings"
)

// RenderOptions Controls how selected implicants are rendered. An explicit
// value is passed to the assembler instead of any package-level toggle.
type RenderOptions struct {
	// InputNames names the input variables, MSB first. Nil means the
	// defaults x1..xN.
	InputNames []string
}

// DefaultInputNames Returns the conventional names x1..xN.
func DefaultInputNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i+1)
	}
	return names
}

// DefaultOutputNames Returns the conventional names f1..fM.
func DefaultOutputNames(m int) []string {
	names := make([]string, m)
	for i := range names {
		names[i] = fmt.Sprintf("f%d", i+1)
	}
	return names
}

func (o RenderOptions) inputNames(width int) []string {
	if o.InputNames != nil {
		return o.InputNames
	}
	return DefaultInputNames(width)
}

// ProductTerm Renders one implicant as a product of literals: the variable
// name for a fixed 1, the complemented name for a fixed 0, nothing for a
// don't-care. Concatenation denotes conjunction. A cube with no fixed
// position renders as the multiplicative identity "1".
func ProductTerm(imp Implicant, opts RenderOptions) string {
	names := opts.inputNames(imp.Width())
	var sb strings.Builder
	for pos := 0; pos < imp.Width(); pos++ {
		switch imp.trit(pos) {
		case '1':
			sb.WriteString(names[pos])
		case '0':
			sb.WriteString(names[pos] + "'")
		}
	}
	if sb.Len() == 0 {
		return "1"
	}
	return sb.String()
}

// SumOfProducts Joins the ordered product terms with " + ". An empty
// selection renders as the additive identity "0".
func SumOfProducts(selected []Implicant, opts RenderOptions) string {
	if len(selected) == 0 {
		return "0"
	}
	terms := make([]string, len(selected))
	for i, imp := range selected {
		terms[i] = ProductTerm(imp, opts)
	}
	return strings.Join(terms, " + ")
}

// CubeRows Emits one row per selected implicant in the form expected by
// the two-level file emitter: the ternary literals followed by one
// indicator per output column, asserted only for the current output.
func CubeRows(selected []Implicant, numOutputs, which int) []string {
	rows := make([]string, 0, len(selected))
	indicator := make([]byte, numOutputs)
	for i := range indicator {
		indicator[i] = '0'
	}
	indicator[which] = '1'
	for _, imp := range selected {
		rows = append(rows, imp.String()+" "+string(indicator))
	}
	return rows
}
