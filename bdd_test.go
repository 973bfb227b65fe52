package logicmin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBDDAndGate(t *testing.T) {
	bdd := NewBDD(2)
	root, err := bdd.FromTruthTable([]int{0, 0, 0, 1})
	require.NoError(t, err)

	require.False(t, root.Terminal())
	assert.Equal(t, 0, root.Var)
	assert.Same(t, bdd.Zero, root.Low)

	high := root.High
	require.False(t, high.Terminal())
	assert.Equal(t, 1, high.Var)
	assert.Same(t, bdd.Zero, high.Low)
	assert.Same(t, bdd.One, high.High)

	assert.Equal(t, 4, bdd.NodeCount())
	assert.Equal(t, 2, bdd.InternalCount())
}

func TestBDDConstants(t *testing.T) {
	bdd := NewBDD(2)

	root, err := bdd.FromTruthTable([]int{1, 1, 1, 1})
	require.NoError(t, err)
	assert.Same(t, bdd.One, root)

	root, err = bdd.FromTruthTable([]int{0, 0, 0, 0})
	require.NoError(t, err)
	assert.Same(t, bdd.Zero, root)

	// Constant functions need no internal nodes.
	assert.Equal(t, 0, bdd.InternalCount())
}

func TestBDDRedundantTestEliminated(t *testing.T) {
	// f = x1 ignores x2 entirely; the x2 test must collapse away.
	bdd := NewBDD(2)
	root, err := bdd.FromTruthTable([]int{0, 0, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, 0, root.Var)
	assert.Same(t, bdd.Zero, root.Low)
	assert.Same(t, bdd.One, root.High)
	assert.Equal(t, 1, bdd.InternalCount())
}

func TestBDDUniqueTableSharing(t *testing.T) {
	bdd := NewBDD(2)
	a := bdd.MakeNode(1, bdd.Zero, bdd.One)
	b := bdd.MakeNode(1, bdd.Zero, bdd.One)
	assert.Same(t, a, b)

	// Redundant test collapses to the child.
	c := bdd.MakeNode(0, a, a)
	assert.Same(t, a, c)
}

func TestBDDSizeMismatch(t *testing.T) {
	bdd := NewBDD(3)
	_, err := bdd.FromTruthTable([]int{0, 1})
	assert.Error(t, err)
}

func TestBDDFromMinterms(t *testing.T) {
	table, err := NewTruthTable(2, map[string]FuncSpec{"f": {On: []uint{3}, DC: []uint{0}}})
	require.NoError(t, err)
	out := table.Outputs()[0]

	// Don't-cares are treated as 0, so this is exactly the AND function.
	bdd := NewBDD(2)
	root, err := bdd.FromMinterms(out.On, out.DC)
	require.NoError(t, err)
	assert.Equal(t, 2, bdd.InternalCount())
	assert.Same(t, bdd.Zero, root.Low)
}
