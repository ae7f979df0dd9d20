package pla

import (
	"fmt"
	"strings"

	"github.com/pborges/qmin/internal/minimize"
)

type Config struct {
	Header     []string
	InputNames []string
}

// Output is one named function and the cover chosen for it.
type Output struct {
	Name  string
	Cover []minimize.Implicant
}

// MakePLA writes the covers as a multi-output PLA. A term shared by several
// outputs is written once with every matching output column set.
func MakePLA(cfg Config, numVars int, outputs []Output) string {
	var buf strings.Builder
	for _, line := range cfg.Header {
		buf.WriteString("# ")
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, ".i %d\n", numVars)
	fmt.Fprintf(&buf, ".o %d\n", len(outputs))
	if len(cfg.InputNames) == numVars && numVars > 0 {
		fmt.Fprintf(&buf, ".ilb %s\n", strings.Join(cfg.InputNames, " "))
	}
	names := make([]string, len(outputs))
	named := false
	for i, o := range outputs {
		names[i] = o.Name
		named = named || o.Name != ""
	}
	if named {
		for i := range names {
			if names[i] == "" {
				names[i] = fmt.Sprintf("f%d", i)
			}
		}
		fmt.Fprintf(&buf, ".ob %s\n", strings.Join(names, " "))
	}

	cb := newCubeBuilder(numVars, len(outputs))
	for j, o := range outputs {
		for _, imp := range o.Cover {
			cb.add(imp, j)
		}
	}
	fmt.Fprintf(&buf, ".p %d\n", len(cb.order))
	for _, imp := range cb.order {
		buf.WriteString(cb.line(imp))
		buf.WriteByte('\n')
	}
	buf.WriteString(".e\n")
	return buf.String()
}

type cubeBuilder struct {
	numVars    int
	numOutputs int
	order      []minimize.Implicant
	outputs    map[minimize.Implicant][]bool
}

func newCubeBuilder(numVars, numOutputs int) *cubeBuilder {
	return &cubeBuilder{
		numVars:    numVars,
		numOutputs: numOutputs,
		outputs:    make(map[minimize.Implicant][]bool),
	}
}

func (c *cubeBuilder) add(imp minimize.Implicant, output int) {
	outs, ok := c.outputs[imp]
	if !ok {
		outs = make([]bool, c.numOutputs)
		c.outputs[imp] = outs
		c.order = append(c.order, imp)
	}
	outs[output] = true
}

func (c *cubeBuilder) line(imp minimize.Implicant) string {
	var sb strings.Builder
	for i := 0; i < c.numVars; i++ {
		bit := uint64(1) << i
		switch {
		case imp.Mask&bit == 0:
			sb.WriteByte('-')
		case imp.Value&bit != 0:
			sb.WriteByte('1')
		default:
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(' ')
	for _, set := range c.outputs[imp] {
		sb.WriteByte(boolToByte(set))
	}
	return sb.String()
}

func boolToByte(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}
