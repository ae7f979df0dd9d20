package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pborges/qmin"
	"github.com/pborges/qmin/internal/config"
	"github.com/pborges/qmin/internal/minimize"
	"github.com/pborges/qmin/internal/pla"
)

type minimizeFlags struct {
	src     sourceFlags
	mode    string
	reduced bool
	workers int
	outPath string
	timeout time.Duration
}

func newMinimizeCmd(g *globalFlags) *cobra.Command {
	f := &minimizeFlags{}
	cmd := &cobra.Command{
		Use:   "minimize",
		Short: "Minimize truth tables into sum-of-products expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			return runMinimize(cmd, f, applyFlags(cmd, f, cfg))
		},
	}
	fs := cmd.Flags()
	f.src.register(fs)
	fs.StringVar(&f.mode, "mode", "", "single or exhaustive (default from config)")
	fs.BoolVar(&f.reduced, "reduced", false, "print only the variables each term constrains")
	fs.IntVar(&f.workers, "workers", 0, "tables minimized concurrently (default from config)")
	fs.StringVarP(&f.outPath, "output", "o", "", "also write the cover as a PLA file")
	fs.DurationVar(&f.timeout, "timeout", 0, "abort after this long (0 = no limit)")
	return cmd
}

// applyFlags overrides configuration values with flags set on the command
// line.
func applyFlags(cmd *cobra.Command, f *minimizeFlags, cfg config.Config) config.Config {
	if cmd.Flags().Changed("mode") {
		cfg.Mode = f.mode
	}
	if cmd.Flags().Changed("reduced") {
		cfg.Reduced = f.reduced
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	return cfg
}

func runMinimize(cmd *cobra.Command, f *minimizeFlags, cfg config.Config) error {
	src, err := f.src.load()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if len(src.inputNames) == src.numVars && src.numVars > 0 {
		opts.VarNames = src.inputNames
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	start := time.Now()
	exprs, err := minimize.All(ctx, src.tables, opts, cfg.Workers)
	if err != nil {
		return errors.Wrap(err, "minimize")
	}
	logger.Debug("minimized",
		zap.Int("tables", len(src.tables)),
		zap.Int("vars", src.numVars),
		zap.Stringer("mode", opts.Mode),
		zap.Duration("elapsed", time.Since(start)))

	out := cmd.OutOrStdout()
	for j, e := range exprs {
		if src.named() {
			fmt.Fprintf(out, "%s = %s\n", src.outputNames[j], e)
		} else {
			fmt.Fprintln(out, e)
		}
	}

	if f.outPath == "" {
		return nil
	}
	return writePLA(f.outPath, src, opts)
}

func writePLA(path string, src *source, opts minimize.Options) error {
	outputs := make([]pla.Output, len(src.tables))
	for j, table := range src.tables {
		m := minimize.New(table, opts)
		outputs[j] = pla.Output{Cover: m.Terms()}
		if src.named() {
			outputs[j].Name = src.outputNames[j]
		}
		logger.Debug("cover",
			zap.Int("output", j),
			zap.Int("minterms", len(m.Minterms())),
			zap.Int("terms", len(outputs[j].Cover)),
			zap.Int("literals", minimize.Literals(outputs[j].Cover)))
	}
	text := pla.MakePLA(pla.Config{
		Header:     []string{fmt.Sprintf("qmin %s mode=%s", qmin.Version(), opts.Mode)},
		InputNames: opts.VarNames,
	}, src.numVars, outputs)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	logger.Info("pla written", zap.String("file", path))
	return nil
}
