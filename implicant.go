package logicmin

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxInputs is the widest cube the packed representation can hold.
const MaxInputs = 64

// Implicant A fixed-width ternary cube over the inputs of a Boolean function.
// Position 0 is the most significant input (x1); assignments are indexed in
// natural binary counting order, so the mask bit for position j is bit
// width-1-j of the assignment index. A cube is stored as a (value, care)
// pair of bitmasks: a set care bit marks a fixed position and the matching
// value bit holds its polarity. Value bits outside the care mask are kept
// zero, so equal cubes compare equal as plain values.
type Implicant struct {
	width int
	value uint64
	care  uint64
}

// NewMinterm Returns the fully fixed cube for a single assignment index.
func NewMinterm(width int, index uint64) Implicant {
	mask := widthMask(width)
	return Implicant{
		width: width,
		value: index & mask,
		care:  mask,
	}
}

// ParseImplicant Parses a ternary string such as "01-" into a cube.
func ParseImplicant(s string) (Implicant, error) {
	if len(s) == 0 || len(s) > MaxInputs {
		return Implicant{}, fmt.Errorf("implicant %q: width must be in [1, %d]", s, MaxInputs)
	}
	imp := Implicant{width: len(s)}
	for pos, ch := range s {
		bit := uint64(1) << (len(s) - 1 - pos)
		switch ch {
		case '0':
			imp.care |= bit
		case '1':
			imp.care |= bit
			imp.value |= bit
		case '-':
		default:
			return Implicant{}, fmt.Errorf("implicant %q: invalid symbol %q at position %d", s, ch, pos)
		}
	}
	return imp, nil
}

func widthMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// Width Number of input positions in the cube.
func (a Implicant) Width() int {
	return a.width
}

// Covers Reports whether the cube covers the given assignment index: every
// fixed position must equal the corresponding assignment bit, don't-care
// positions impose no constraint.
func (a Implicant) Covers(index uint64) bool {
	return index&a.care == a.value
}

// Combine Attempts to merge two cubes into one covering both. The merge is
// legal only when the cubes have the same width, fix exactly the same
// positions (a don't-care never pairs with a fixed bit), and disagree in
// exactly one fixed position; that position becomes don't-care in the
// result. Returns false for every other relationship.
func (a Implicant) Combine(b Implicant) (Implicant, bool) {
	if a.width != b.width || a.care != b.care {
		return Implicant{}, false
	}
	diff := a.value ^ b.value
	if bits.OnesCount64(diff) != 1 {
		return Implicant{}, false
	}
	return Implicant{
		width: a.width,
		value: a.value &^ diff,
		care:  a.care &^ diff,
	}, true
}

// Subsumes Reports whether every assignment covered by b is also covered by
// a: a fixes a subset of b's positions and the two agree wherever a fixes.
func (a Implicant) Subsumes(b Implicant) bool {
	if a.width != b.width || a.care&^b.care != 0 {
		return false
	}
	return (a.value^b.value)&a.care == 0
}

// FixedCount Number of fixed positions, i.e. the literal count of the
// rendered product term.
func (a Implicant) FixedCount() int {
	return bits.OnesCount64(a.care)
}

// DontCareCount Number of don't-care positions.
func (a Implicant) DontCareCount() int {
	return a.width - a.FixedCount()
}

func (a Implicant) trit(pos int) byte {
	bit := uint64(1) << (a.width - 1 - pos)
	if a.care&bit == 0 {
		return '-'
	}
	if a.value&bit != 0 {
		return '1'
	}
	return '0'
}

// String Renders the cube as a ternary string, MSB first.
func (a Implicant) String() string {
	var sb strings.Builder
	sb.Grow(a.width)
	for pos := 0; pos < a.width; pos++ {
		sb.WriteByte(a.trit(pos))
	}
	return sb.String()
}

// Compare Orders cubes lexicographically over the ternary alphabet with
// '-' < '0' < '1', the byte order of the rendered string. Shorter cubes
// sort first. This is the deterministic order of every returned set.
func (a Implicant) Compare(b Implicant) int {
	for pos := 0; pos < a.width && pos < b.width; pos++ {
		if ta, tb := a.trit(pos), b.trit(pos); ta != tb {
			if ta < tb {
				return -1
			}
			return 1
		}
	}
	return a.width - b.width
}
