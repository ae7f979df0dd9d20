package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pborges/qmin"
	"github.com/pborges/qmin/internal/config"
)

var logger = zap.NewNop()

type globalFlags struct {
	cfgFile string
	verbose bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "qmin",
		Short:         "qmin - Quine-McCluskey minimizer for truth tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(g.verbose)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&g.cfgFile, "config", config.DefaultFile, "configuration file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newMinimizeCmd(g))
	root.AddCommand(newTableCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newInitCmd(g))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the qmin version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), qmin.Version())
		},
	})
	return root
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}

// loadConfig reads the configuration file; naming it with --config makes a
// missing file an error.
func loadConfig(cmd *cobra.Command, g *globalFlags) (config.Config, error) {
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.Load(g.cfgFile, explicit)
	if err != nil {
		return cfg, err
	}
	logger.Debug("configuration loaded",
		zap.String("file", g.cfgFile),
		zap.String("mode", cfg.Mode),
		zap.Int("workers", cfg.Workers))
	return cfg, nil
}
