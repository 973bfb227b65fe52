package logicmin

import (
	"fmt"
)

// GateType The standard-cell primitives the netlist is built from.
type GateType int

const (
	GateBuf GateType = iota
	GateNot
	GateAnd
	GateOr
)

func (g GateType) String() string {
	switch g {
	case GateBuf:
		return "buf"
	case GateNot:
		return "not"
	case GateAnd:
		return "and"
	case GateOr:
		return "or"
	default:
		return fmt.Sprintf("GateType(%d)", int(g))
	}
}

// Gate One standard-cell instance: Output driven from Inputs.
type Gate struct {
	Type   GateType
	Output string
	Inputs []string
}

// Netlist A gate-level netlist synthesized from a BDD. Internal wires are
// named n<id> after the BDD node that produced them; terminal nodes map to
// the const_0/const_1 signals.
type Netlist struct {
	NumInputs int
	VarNames  []string
	Gates     []Gate

	UsesConst0 bool
	UsesConst1 bool
}

// NewNetlist Creates an empty netlist over the named inputs. Nil varNames
// defaults to x1..xN.
func NewNetlist(numInputs int, varNames []string) *Netlist {
	if varNames == nil {
		varNames = DefaultInputNames(numInputs)
	}
	return &Netlist{NumInputs: numInputs, VarNames: varNames}
}

// BuildFromBDD Translates the BDD rooted at root into gates, one 2:1 MUX
// per internal node decomposed into not/and/or cells:
//
//	n<id> = (v AND high) OR (NOT v AND low)
//
// Children are emitted before parents (post-order), so every input wire of
// a gate is already driven when the gate appears. The root signal is
// buffered onto outputName.
func (nl *Netlist) BuildFromBDD(b *BDD, root *BDDNode, outputName string) {
	signals := make(map[int]string, b.NodeCount())
	nl.emitNode(root, signals)
	nl.Gates = append(nl.Gates, Gate{
		Type:   GateBuf,
		Output: outputName,
		Inputs: []string{signals[root.ID]},
	})
}

func (nl *Netlist) emitNode(n *BDDNode, signals map[int]string) string {
	if sig, ok := signals[n.ID]; ok {
		return sig
	}
	if n.Terminal() {
		sig := "const_0"
		if n.ID == 1 {
			sig = "const_1"
			nl.UsesConst1 = true
		} else {
			nl.UsesConst0 = true
		}
		signals[n.ID] = sig
		return sig
	}

	low := nl.emitNode(n.Low, signals)
	high := nl.emitNode(n.High, signals)

	sel := nl.VarNames[n.Var]
	out := fmt.Sprintf("n%d", n.ID)
	selN := out + "_seln"
	andHi := out + "_hi"
	andLo := out + "_lo"

	nl.Gates = append(nl.Gates,
		Gate{Type: GateNot, Output: selN, Inputs: []string{sel}},
		Gate{Type: GateAnd, Output: andHi, Inputs: []string{sel, high}},
		Gate{Type: GateAnd, Output: andLo, Inputs: []string{selN, low}},
		Gate{Type: GateOr, Output: out, Inputs: []string{andHi, andLo}},
	)
	signals[n.ID] = out
	return out
}

// Stats Gate counts per cell type.
func (nl *Netlist) Stats() map[GateType]int {
	stats := make(map[GateType]int)
	for _, g := range nl.Gates {
		stats[g.Type]++
	}
	return stats
}

// GateCount Total number of gate instances.
func (nl *Netlist) GateCount() int {
	return len(nl.Gates)
}
