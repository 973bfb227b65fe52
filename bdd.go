package logicmin

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// BDDNode One node of a reduced ordered BDD: if Var then High else Low.
// Terminal nodes carry Var == -1 and represent the constants 0 and 1.
type BDDNode struct {
	Var  int
	Low  *BDDNode
	High *BDDNode
	ID   int
}

// Terminal Reports whether the node is one of the two constants.
func (n *BDDNode) Terminal() bool {
	return n.Var == -1
}

func (n *BDDNode) String() string {
	if n.Terminal() {
		return fmt.Sprintf("Terminal(%d)", n.ID)
	}
	return fmt.Sprintf("Node(id=%d, var=x%d, low=%d, high=%d)", n.ID, n.Var, n.Low.ID, n.High.ID)
}

type bddKey struct {
	v, low, high int
}

// BDD A reduced ordered BDD manager over a fixed variable count. The
// unique table keyed on (var, low, high) plus the redundant-test reduction
// in MakeNode keep the representation canonical; isomorphic subgraphs are
// shared by construction.
type BDD struct {
	numVars int
	nextID  int

	// Zero and One are the terminal nodes, always IDs 0 and 1.
	Zero *BDDNode
	One  *BDDNode

	unique map[bddKey]*BDDNode
	nodes  map[int]*BDDNode
}

// NewBDD Creates a manager for numVars input variables.
func NewBDD(numVars int) *BDD {
	zero := &BDDNode{Var: -1, ID: 0}
	one := &BDDNode{Var: -1, ID: 1}
	return &BDD{
		numVars: numVars,
		nextID:  2,
		Zero:    zero,
		One:     one,
		unique:  map[bddKey]*BDDNode{},
		nodes:   map[int]*BDDNode{0: zero, 1: one},
	}
}

// NumVars Number of input variables.
func (b *BDD) NumVars() int {
	return b.numVars
}

// MakeNode Returns the canonical node for (v, low, high). A redundant test
// (low == high) collapses to the child; otherwise the unique table decides
// whether an isomorphic node already exists.
func (b *BDD) MakeNode(v int, low, high *BDDNode) *BDDNode {
	if low.ID == high.ID {
		return low
	}
	key := bddKey{v: v, low: low.ID, high: high.ID}
	if node, ok := b.unique[key]; ok {
		return node
	}
	node := &BDDNode{Var: v, Low: low, High: high, ID: b.nextID}
	b.nextID++
	b.unique[key] = node
	b.nodes[node.ID] = node
	return node
}

// FromTruthTable Builds the BDD of the function given by values, one 0/1
// entry per assignment in natural binary counting order, via Shannon
// expansion on the variables MSB first.
func (b *BDD) FromTruthTable(values []int) (*BDDNode, error) {
	if len(values) != 1<<b.numVars {
		return nil, fmt.Errorf("truth table size %d != 2^%d", len(values), b.numVars)
	}
	return b.shannon(values, 0, len(values), 0), nil
}

// shannon Recursive Shannon decomposition f = v'·f_low + v·f_high over the
// half of the table where v is 0 and the half where it is 1.
func (b *BDD) shannon(values []int, start, end, v int) *BDDNode {
	constant := true
	for i := start + 1; i < end; i++ {
		if values[i] != values[start] {
			constant = false
			break
		}
	}
	if constant {
		if values[start] != 0 {
			return b.One
		}
		return b.Zero
	}

	mid := start + (end-start)/2
	low := b.shannon(values, start, mid, v+1)
	high := b.shannon(values, mid, end, v+1)
	return b.MakeNode(v, low, high)
}

// FromMinterms Builds the BDD for an (on, dc) minterm spec. Don't-cares
// are treated as 0 so the diagram stays canonical for the specified
// function.
func (b *BDD) FromMinterms(on, dc *bitset.BitSet) (*BDDNode, error) {
	values := make([]int, 1<<b.numVars)
	for i, ok := on.NextSet(0); ok; i, ok = on.NextSet(i + 1) {
		if i < uint(len(values)) {
			values[i] = 1
		}
	}
	return b.FromTruthTable(values)
}

// NodeCount Total node count including the two terminals.
func (b *BDD) NodeCount() int {
	return len(b.nodes)
}

// InternalCount Node count excluding terminals.
func (b *BDD) InternalCount() int {
	return len(b.nodes) - 2
}
