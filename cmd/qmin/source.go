package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/pborges/qmin/internal/expr"
	"github.com/pborges/qmin/internal/pla"
	"github.com/pborges/qmin/internal/truth"
)

// sourceFlags selects where the truth tables come from. Exactly one of the
// source flags must be set.
type sourceFlags struct {
	vector string
	expr   string
	dimacs string
	pla    string
	vars   []string
}

func (s *sourceFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.vector, "vector", "", "truth table vector, e.g. 0011110001111100")
	fs.StringVar(&s.expr, "expr", "", "Boolean expression, e.g. 'A & B # C & !D'")
	fs.StringSliceVar(&s.vars, "vars", nil, "variable order for --expr, first is bit 0")
	fs.StringVar(&s.dimacs, "dimacs", "", "DIMACS CNF file")
	fs.StringVar(&s.pla, "pla", "", "PLA file (one table per output)")
}

// source is a set of tables over the same inputs.
type source struct {
	numVars     int
	inputNames  []string
	outputNames []string
	tables      [][]int
}

func (s *source) named() bool { return len(s.outputNames) > 0 }

func (s *sourceFlags) load() (*source, error) {
	set := 0
	for _, v := range []string{s.vector, s.expr, s.dimacs, s.pla} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, errors.New("exactly one of --vector, --expr, --dimacs or --pla is required")
	}

	switch {
	case s.vector != "":
		t, err := truth.Parse(s.vector)
		if err != nil {
			return nil, err
		}
		return single(t, s.vars), nil
	case s.expr != "":
		x, err := expr.Parse(s.expr)
		if err != nil {
			return nil, errors.Wrap(err, "parse expression")
		}
		vars := s.vars
		if len(vars) == 0 {
			vars = expr.Vars(x)
		}
		t, err := truth.FromExpr(x, vars)
		if err != nil {
			return nil, err
		}
		return single(t, vars), nil
	case s.dimacs != "":
		f, err := os.Open(s.dimacs)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		t, err := truth.FromDIMACS(f)
		if err != nil {
			return nil, errors.Wrapf(err, "load %s", s.dimacs)
		}
		return single(t, s.vars), nil
	default:
		f, err := os.Open(s.pla)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		p, err := pla.Parse(f)
		if err != nil {
			return nil, errors.Wrapf(err, "load %s", s.pla)
		}
		src := &source{numVars: p.Inputs, inputNames: p.InputNames, tables: p.Tables}
		if len(s.vars) > 0 {
			src.inputNames = s.vars
		}
		for j := range p.Tables {
			src.outputNames = append(src.outputNames, p.OutputName(j))
		}
		logger.Debug("pla loaded",
			zap.String("file", s.pla),
			zap.Int("inputs", p.Inputs),
			zap.Strings("outputs", src.outputNames))
		return src, nil
	}
}

func single(t truth.Table, names []string) *source {
	return &source{
		numVars:    t.NumVars(),
		inputNames: names,
		tables:     [][]int{t.Outputs()},
	}
}

func (s *source) tablesOf() ([]truth.Table, error) {
	out := make([]truth.Table, len(s.tables))
	for i, values := range s.tables {
		t, err := truth.New(values)
		if err != nil {
			return nil, errors.Wrapf(err, "output %d", i)
		}
		out[i] = t
	}
	return out, nil
}
