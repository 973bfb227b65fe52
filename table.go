package logicmin

import (
	"fmt"
	"io"
	"strings"
)

// WriteTable Renders the truth table as plain text, one space-separated
// row per assignment under a header of input and output names.
func WriteTable(w io.Writer, t *TruthTable) error {
	if t == nil || t.NumOutputs() == 0 {
		_, err := fmt.Fprintln(w, "(empty truth table)")
		return err
	}
	header := append(append([]string{}, t.InputNames()...), t.OutputNames()...)
	if _, err := fmt.Fprintln(w, strings.Join(header, " ")); err != nil {
		return err
	}
	for i := uint(0); i < t.NumRows(); i++ {
		row := spaced(t.InputBits(i)) + " " + spaced(t.RowTrits(i))
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

// WriteMarkdownTable Renders the truth table as a Markdown table.
func WriteMarkdownTable(w io.Writer, t *TruthTable) error {
	if t == nil || t.NumOutputs() == 0 {
		_, err := fmt.Fprintln(w, "_(empty truth table)_")
		return err
	}
	headers := append(append([]string{}, t.InputNames()...), t.OutputNames()...)
	if _, err := fmt.Fprintln(w, "| "+strings.Join(headers, " | ")+" |"); err != nil {
		return err
	}
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	if _, err := fmt.Fprintln(w, "|"+strings.Join(sep, "|")+"|"); err != nil {
		return err
	}
	for i := uint(0); i < t.NumRows(); i++ {
		cells := splitSymbols(t.InputBits(i) + t.RowTrits(i))
		if _, err := fmt.Fprintln(w, "| "+strings.Join(cells, " | ")+" |"); err != nil {
			return err
		}
	}
	return nil
}

func spaced(s string) string {
	return strings.Join(splitSymbols(s), " ")
}

func splitSymbols(s string) []string {
	out := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = string(s[i])
	}
	return out
}
