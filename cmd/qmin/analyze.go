package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pborges/qmin/internal/truth"
)

func newAnalyzeCmd() *cobra.Command {
	src := &sourceFlags{}
	cmd := &cobra.Command{
		Use:   "analyze [vector...]",
		Short: "Report the Post classes of one or more functions",
		Long: "Report which Post classes (0-preserving, 1-preserving, self-dual, monotonic,\n" +
			"linear) each function belongs to and whether the set is functionally complete.\n" +
			"Functions are given as vector arguments or with one of the source flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, tables, err := analyzeInputs(src, args)
			if err != nil {
				return err
			}
			writeAnalysis(cmd, names, tables)
			return nil
		},
	}
	src.register(cmd.Flags())
	return cmd
}

func analyzeInputs(src *sourceFlags, args []string) ([]string, []truth.Table, error) {
	if len(args) == 0 {
		s, err := src.load()
		if err != nil {
			return nil, nil, err
		}
		tables, err := s.tablesOf()
		if err != nil {
			return nil, nil, err
		}
		names := s.outputNames
		if !s.named() {
			names = defaultOutputNames(len(tables))
		}
		return names, tables, nil
	}
	if src.vector != "" || src.expr != "" || src.dimacs != "" || src.pla != "" {
		return nil, nil, errors.New("vector arguments cannot be combined with a source flag")
	}
	tables := make([]truth.Table, len(args))
	for i, arg := range args {
		t, err := truth.Parse(arg)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "f%d", i)
		}
		tables[i] = t
	}
	return defaultOutputNames(len(tables)), tables, nil
}

func defaultOutputNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("f%d", i)
	}
	return names
}

func writeAnalysis(cmd *cobra.Command, names []string, tables []truth.Table) {
	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	pad := strings.Repeat(" ", width+1)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s%s\n", pad, truth.PropertyHeader)
	fmt.Fprintf(out, "%s%s\n", pad, strings.Repeat("-", len(truth.PropertyHeader)))
	props := make([]truth.Properties, len(tables))
	for i, t := range tables {
		props[i] = t.Properties()
		line := fmt.Sprintf("%-*s %s", width, names[i], props[i])
		fmt.Fprintln(out, strings.TrimRight(line, " "))
		logger.Debug("analyzed",
			zap.String("function", names[i]),
			zap.Int("vars", t.NumVars()),
			zap.Ints("zhegalkin", t.Zhegalkin()))
	}
	complete := "no"
	if truth.Complete(props) {
		complete = "yes"
	}
	fmt.Fprintf(out, "complete: %s\n", complete)
}
