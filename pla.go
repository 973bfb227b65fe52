package logicmin

import (
	"fmt"
	"strings"
)

// BuildPLA Assembles the two-level PLA text for the table from the cube
// rows collected over every output: .i/.o header, variable labels, one
// cube row per selected implicant, .e terminator.
func BuildPLA(t *TruthTable, cubes []string) (string, error) {
	if t == nil || t.NumOutputs() == 0 {
		return "", fmt.Errorf("truth table is empty")
	}
	lines := []string{
		fmt.Sprintf(".i %d", t.NumInputs()),
		fmt.Sprintf(".o %d", t.NumOutputs()),
		".ilb " + strings.Join(t.InputNames(), " "),
		".ob " + strings.Join(t.OutputNames(), " "),
	}
	lines = append(lines, cubes...)
	lines = append(lines, ".e")
	return strings.Join(lines, "\n"), nil
}
