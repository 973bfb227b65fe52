package logicmin

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// One output per line: name = sum{i,i,...} [+] d{i,i,...}
var specLine = regexp.MustCompile(
	`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*=\s*sum\s*\{\s*([0-9,\s]*)\s*\}\s*(?:\+?\s*d\s*\{\s*([0-9,\s]*)\s*\}\s*)?$`)

// ParseSpec Reads a minterm specification, one output per line in the form
// `name = sum{0,2,3} d{5,7}`. Blank lines and lines starting with '#' are
// ignored. A malformed line is fatal and reported with its line number.
func ParseSpec(r io.Reader) (map[string]FuncSpec, error) {
	spec := make(map[string]FuncSpec)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := specLine.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: invalid format -> %s", lineno, line)
		}
		name := m[1]
		on, err := parseIndexList(m[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		dc, err := parseIndexList(m[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		spec[name] = FuncSpec{On: on, DC: dc}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(spec) == 0 {
		return nil, fmt.Errorf("no outputs found in the spec")
	}
	return spec, nil
}

func parseIndexList(body string) ([]uint, error) {
	var out []uint
	for _, tok := range strings.Split(body, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q", tok)
		}
		out = append(out, uint(v))
	}
	return out, nil
}

// WriteSpec Renders spec in the text format ParseSpec reads, outputs
// ordered by name and indices ascending.
func WriteSpec(w io.Writer, spec map[string]FuncSpec) error {
	names := make([]string, 0, len(spec))
	for name := range spec {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fs := spec[name]
		line := fmt.Sprintf("%s = sum{%s}", name, joinIndices(fs.On))
		if len(fs.DC) > 0 {
			line += fmt.Sprintf(" d{%s}", joinIndices(fs.DC))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func joinIndices(indices []uint) string {
	sorted := make([]uint, len(indices))
	copy(sorted, indices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, len(sorted))
	for i, v := range sorted {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, ",")
}

// RandomSpec Generates a reproducible random spec with numOutputs columns
// named f1..fM. onRatio is clamped to 0.5; every output gets at least one
// ON minterm. ON and DC indices never overlap.
func RandomSpec(numInputs, numOutputs int, onRatio, dcRatio float64, seed int64) map[string]FuncSpec {
	rng := rand.New(rand.NewSource(seed))
	numRows := 1 << numInputs

	if onRatio > 0.5 {
		onRatio = 0.5
	}
	wantOn := int(onRatio * float64(numRows))
	if wantOn < 1 {
		wantOn = 1
	}
	wantDC := int(dcRatio * float64(numRows))

	spec := make(map[string]FuncSpec, numOutputs)
	for j := 1; j <= numOutputs; j++ {
		perm := rng.Perm(numRows)
		on := make([]uint, 0, wantOn)
		for _, v := range perm[:wantOn] {
			on = append(on, uint(v))
		}
		dcCount := wantDC
		if dcCount > numRows-wantOn {
			dcCount = numRows - wantOn
		}
		dc := make([]uint, 0, dcCount)
		for _, v := range perm[wantOn : wantOn+dcCount] {
			dc = append(dc, uint(v))
		}
		spec[fmt.Sprintf("f%d", j)] = FuncSpec{On: on, DC: dc}
	}
	return spec
}
