package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	src := &sourceFlags{}
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the truth table of a source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := src.load()
			if err != nil {
				return err
			}
			tables, err := s.tablesOf()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for j, t := range tables {
				if j > 0 {
					fmt.Fprintln(out)
				}
				if s.named() {
					fmt.Fprintf(out, "%s:\n", s.outputNames[j])
				}
				if err := t.Write(out, s.inputNames); err != nil {
					return err
				}
			}
			return nil
		},
	}
	src.register(cmd.Flags())
	return cmd
}
