package logicmin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func andNetlist(t *testing.T) *Netlist {
	t.Helper()
	bdd := NewBDD(2)
	root, err := bdd.FromTruthTable([]int{0, 0, 0, 1})
	require.NoError(t, err)

	nl := NewNetlist(2, nil)
	nl.BuildFromBDD(bdd, root, "out")
	return nl
}

func TestBuildFromBDD(t *testing.T) {
	nl := andNetlist(t)

	// Two internal nodes, four cells each, plus the output buffer.
	assert.Equal(t, 9, nl.GateCount())
	stats := nl.Stats()
	assert.Equal(t, 2, stats[GateNot])
	assert.Equal(t, 4, stats[GateAnd])
	assert.Equal(t, 2, stats[GateOr])
	assert.Equal(t, 1, stats[GateBuf])

	assert.True(t, nl.UsesConst0)
	assert.True(t, nl.UsesConst1)

	// The last gate buffers the root signal onto the output port.
	last := nl.Gates[len(nl.Gates)-1]
	assert.Equal(t, GateBuf, last.Type)
	assert.Equal(t, "out", last.Output)

	// Every gate input is either a primary input, a constant, or the
	// output of an earlier gate.
	driven := map[string]bool{"x1": true, "x2": true, "const_0": true, "const_1": true}
	for _, g := range nl.Gates {
		for _, in := range g.Inputs {
			assert.True(t, driven[in], "gate input %s not yet driven", in)
		}
		driven[g.Output] = true
	}
}

func TestBuildFromBDDConstantFunction(t *testing.T) {
	bdd := NewBDD(2)
	root, err := bdd.FromTruthTable([]int{1, 1, 1, 1})
	require.NoError(t, err)

	nl := NewNetlist(2, []string{"a", "b"})
	nl.BuildFromBDD(bdd, root, "out")

	require.Equal(t, 1, nl.GateCount())
	assert.Equal(t, Gate{Type: GateBuf, Output: "out", Inputs: []string{"const_1"}}, nl.Gates[0])
	assert.True(t, nl.UsesConst1)
	assert.False(t, nl.UsesConst0)
}

func TestGateTypeString(t *testing.T) {
	assert.Equal(t, "buf", GateBuf.String())
	assert.Equal(t, "not", GateNot.String())
	assert.Equal(t, "and", GateAnd.String())
	assert.Equal(t, "or", GateOr.String())
}

func TestVerilogModule(t *testing.T) {
	nl := andNetlist(t)
	w := NewVerilogWriter(nl, "netlist", "out")

	var sb strings.Builder
	require.NoError(t, w.WriteModule(&sb))
	text := sb.String()

	assert.Contains(t, text, "module netlist (")
	assert.Contains(t, text, "input  logic x1,")
	assert.Contains(t, text, "output logic out")
	assert.Contains(t, text, "logic const_0 = 1'b0;")
	assert.Contains(t, text, "logic const_1 = 1'b1;")
	assert.Contains(t, text, "endmodule")

	// One instance line per gate.
	assert.Equal(t, nl.GateCount(), strings.Count(text, " g"))
}

func TestVerilogGoldenModel(t *testing.T) {
	nl := andNetlist(t)
	w := NewVerilogWriter(nl, "netlist", "out")

	var sb strings.Builder
	require.NoError(t, w.WriteGoldenModel(&sb, []int{0, 0, 0, 1}))
	text := sb.String()

	assert.Contains(t, text, "module ref_model (")
	assert.Contains(t, text, "case ({x1, x2})")
	assert.Contains(t, text, "2'b00: out_reg = 1'b0;")
	assert.Contains(t, text, "2'b11: out_reg = 1'b1;")
	assert.Contains(t, text, "default: out_reg = 1'bx;")

	err := w.WriteGoldenModel(&sb, []int{0, 1})
	assert.Error(t, err)
}

func TestVerilogTestbench(t *testing.T) {
	nl := andNetlist(t)
	w := NewVerilogWriter(nl, "netlist", "out")

	var sb strings.Builder
	require.NoError(t, w.WriteTestbench(&sb, 100))
	text := sb.String()

	assert.Contains(t, text, "module netlist_tb;")
	assert.Contains(t, text, "netlist dut (")
	assert.Contains(t, text, "ref_model u_ref (")
	assert.Contains(t, text, "repeat (100) begin")
	assert.Contains(t, text, "if (dut_out !== ref_out)")
}
