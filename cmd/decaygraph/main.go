// SPDX-License-Identifier: MIT

// Command decaygraph classifies B → D(*) τ ν candidates in ROOT ntuples.
//
//	decaygraph run --config run.yaml
//	decaygraph dot --input sig.root --mc --event 12 --out-dir graphs
//	decaygraph pdt --file my.pdt
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/decaygraph/config"
	"github.com/katalvlaran/decaygraph/pdt"
)

// app carries the state shared by the subcommands.
type app struct {
	out     io.Writer
	logger  *zap.Logger
	ownsLog bool

	cfgFile string
	verbose bool
}

func newRootCmd(out io.Writer, logger *zap.Logger) *cobra.Command {
	a := &app{out: out, logger: logger}

	root := &cobra.Command{
		Use:   "decaygraph",
		Short: "Classify B → D(*) τ ν candidates in ROOT ntuples",
		Long: `decaygraph rebuilds the decay graphs of every event in a ROOT ntuple,
classifies the reconstructed Υ(4S) candidates and, for simulated samples,
matches them against the generator record.

Results go to an HDF5 file with one row per candidate and one per event.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			zc := zap.NewProductionConfig()
			if a.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger, a.ownsLog = l, true
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.ownsLog {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every event at debug level")

	root.AddCommand(a.runCmd(), a.dotCmd(), a.pdtCmd())
	return root
}

// config loads the configuration file, or the defaults when none is given.
func (a *app) config() (config.Config, error) {
	if a.cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(a.cfgFile)
}

// particleTable resolves the configured particle table source.
func particleTable(ctx context.Context, p config.Pdt) (*pdt.Table, error) {
	switch {
	case p.File != "":
		return pdt.LoadFile(p.File)
	case p.DSN != "":
		return pdt.Open(ctx, p.Driver, p.DSN)
	}
	return pdt.Default(), nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, nil).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
