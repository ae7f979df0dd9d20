package truth

import (
	"fmt"
	"io"
	"strings"
)

// DefaultName returns the symbol of variable i: A..Z, then x26, x27, ...
func DefaultName(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("x%d", i)
}

// Write prints t as a table with one column per variable followed by F.
// names overrides the column headers when it has one entry per variable.
func (t Table) Write(w io.Writer, names []string) error {
	if len(names) != t.numVars {
		names = make([]string, t.numVars)
		for i := range names {
			names[i] = DefaultName(i)
		}
	}
	widths := make([]int, t.numVars)
	header := make([]string, 0, t.numVars+1)
	for i, name := range names {
		widths[i] = len([]rune(name))
		header = append(header, name)
	}
	header = append(header, "F")

	var buf strings.Builder
	line := strings.Join(header, " | ")
	buf.WriteString(line)
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat("-", len([]rune(line))))
	buf.WriteByte('\n')
	row := make([]string, t.numVars+1)
	for i, v := range t.outputs {
		for j := 0; j < t.numVars; j++ {
			row[j] = fmt.Sprintf("%-*d", widths[j], i>>j&1)
		}
		row[t.numVars] = fmt.Sprint(v)
		buf.WriteString(strings.Join(row, " | "))
		buf.WriteByte('\n')
	}
	_, err := io.WriteString(w, buf.String())
	return err
}
