package logicmin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTruthTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		inputs  int
		spec    map[string]FuncSpec
		wantErr string
	}{
		{
			name:    "no outputs",
			inputs:  2,
			spec:    map[string]FuncSpec{},
			wantErr: "no outputs",
		},
		{
			name:    "zero inputs",
			inputs:  0,
			spec:    map[string]FuncSpec{"f": {}},
			wantErr: "numInputs",
		},
		{
			name:    "on index out of range",
			inputs:  2,
			spec:    map[string]FuncSpec{"f": {On: []uint{4}}},
			wantErr: "invalid ON indices",
		},
		{
			name:    "dc index out of range",
			inputs:  2,
			spec:    map[string]FuncSpec{"f": {On: []uint{0}, DC: []uint{9}}},
			wantErr: "invalid DC indices",
		},
		{
			name:    "on dc overlap",
			inputs:  2,
			spec:    map[string]FuncSpec{"f": {On: []uint{1, 2}, DC: []uint{2}}},
			wantErr: "overlap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTruthTable(tt.inputs, tt.spec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTruthTableRows(t *testing.T) {
	table, err := NewTruthTable(2, map[string]FuncSpec{
		"f": {On: []uint{0, 2}, DC: []uint{3}},
		"g": {On: []uint{1}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, table.NumInputs())
	assert.Equal(t, uint(4), table.NumRows())
	assert.Equal(t, []string{"f", "g"}, table.OutputNames())
	assert.Equal(t, []string{"x1", "x2"}, table.InputNames())

	assert.Equal(t, "00", table.InputBits(0))
	assert.Equal(t, "10", table.InputBits(2))
	assert.Equal(t, "11", table.InputBits(3))

	assert.Equal(t, "10", table.RowTrits(0)) // f on, g off
	assert.Equal(t, "01", table.RowTrits(1)) // f off, g on
	assert.Equal(t, "-0", table.RowTrits(3)) // f dont-care, g off
}

func TestSetInputNames(t *testing.T) {
	table, err := NewTruthTable(2, map[string]FuncSpec{"f": {On: []uint{0}}})
	require.NoError(t, err)

	assert.Error(t, table.SetInputNames([]string{"a"}))
	require.NoError(t, table.SetInputNames([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, table.InputNames())
}

func TestWriteTable(t *testing.T) {
	table, err := NewTruthTable(2, map[string]FuncSpec{"f": {On: []uint{3}}})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, WriteTable(&sb, table))
	want := "x1 x2 f\n" +
		"0 0 0\n" +
		"0 1 0\n" +
		"1 0 0\n" +
		"1 1 1\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteMarkdownTable(t *testing.T) {
	table, err := NewTruthTable(1, map[string]FuncSpec{"f": {On: []uint{1}}})
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, WriteMarkdownTable(&sb, table))
	want := "| x1 | f |\n" +
		"|---|---|\n" +
		"| 0 | 0 |\n" +
		"| 1 | 1 |\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteTableEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteTable(&sb, nil))
	assert.Equal(t, "(empty truth table)\n", sb.String())
}
