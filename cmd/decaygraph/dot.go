package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/decaygraph/config"
	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/event"
	"github.com/katalvlaran/decaygraph/graphviz"
	"github.com/katalvlaran/decaygraph/pdt"
	"github.com/katalvlaran/decaygraph/pipeline"
	"github.com/katalvlaran/decaygraph/rootio"
)

// ErrNoSuchEvent is returned by dot when the input ends before the
// requested entry.
var ErrNoSuchEvent = errors.New("dot: input has fewer events than requested")

func (a *app) dotCmd() *cobra.Command {
	var (
		input, tree, outDir string
		mc                  bool
		entry, depth        int
	)
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Write the Graphviz graphs of one event",
		Long: `Writes the reconstructed graph of the selected entry, coloured by truth
match, and for simulated input the generator graph before and after edge
contraction. Files are named event<N>_reco.dot, event<N>_mc.dot and
event<N>_mc_contracted.dot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("input") {
				cfg.Input = input
			}
			if f.Changed("tree") {
				cfg.TreeName = tree
			}
			if f.Changed("mc") {
				cfg.Mc = mc
			}
			if f.Changed("out-dir") {
				cfg.DotDir = outDir
			}
			if f.Changed("depth") {
				cfg.DotDepth = depth
			}
			if cfg.DotDir == "" {
				cfg.DotDir = "."
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			files, err := writeGraphs(cmd.Context(), cfg, entry, a.logger)
			if err != nil {
				return err
			}
			for _, path := range files {
				fmt.Fprintln(a.out, path)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "input ROOT file")
	f.StringVar(&tree, "tree", "", "tree name")
	f.BoolVar(&mc, "mc", false, "read the generator branches")
	f.StringVar(&outDir, "out-dir", "", "directory for the DOT files")
	f.IntVarP(&entry, "event", "e", 0, "zero-based entry to draw")
	f.IntVar(&depth, "depth", 0, "draw only this many generations below the roots (0 draws all)")

	return cmd
}

// writeGraphs analyses events up to entry and writes its graphs into
// cfg.DotDir.
func writeGraphs(ctx context.Context, cfg config.Config, entry int, log *zap.Logger) ([]string, error) {
	names, err := particleTable(ctx, cfg.Pdt)
	if err != nil {
		return nil, err
	}
	src, err := rootio.Open(cfg.Input, cfg.TreeName, rootio.WithMc(cfg.Mc))
	if err != nil {
		return nil, err
	}
	p, err := pipeline.New(src,
		pipeline.WithLogger(log),
		pipeline.WithLimits(cfg.Limits),
		pipeline.WithDistinctElectronMode(cfg.ElectronTauMode))
	if err != nil {
		_ = src.Close()
		return nil, err
	}
	defer p.Close()

	for n := 0; ; n++ {
		st, err := p.Next(ctx)
		if n < entry && errors.Is(err, core.ErrContractViolation) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if st == event.EOF {
			return nil, fmt.Errorf("%w: %d", ErrNoSuchEvent, entry)
		}
		if n == entry {
			break
		}
	}

	reco, _ := p.RecoGraph()
	if reco == nil {
		return nil, fmt.Errorf("dot: event %s has no graph (over the reco limits)", p.EventID())
	}
	if err := os.MkdirAll(cfg.DotDir, 0o755); err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}

	prefix := filepath.Join(cfg.DotDir, fmt.Sprintf("event%d_", entry))
	recoOpts := []graphviz.Option{graphviz.WithTitle(graphviz.TitleReco)}
	if tm := p.TruthMatch(); tm != nil {
		recoOpts = append(recoOpts, graphviz.WithTruthMatch(tm.Map()))
	}

	var files []string
	write := func(name string, g *core.Graph, opts ...graphviz.Option) error {
		path := prefix + name
		files = append(files, path)
		opts = append(opts, graphviz.WithContext(ctx), graphviz.WithMaxDepth(cfg.DotDepth))
		return writeDOT(path, g, names, opts...)
	}
	if err := write("reco.dot", reco, recoOpts...); err != nil {
		return nil, err
	}
	if g := p.McGraph(); g != nil {
		if err := write("mc.dot", g, graphviz.WithTitle(graphviz.TitleMc)); err != nil {
			return nil, err
		}
		if err := write("mc_contracted.dot", p.ContractedMcGraph(), graphviz.WithTitle(graphviz.TitleContracted)); err != nil {
			return nil, err
		}
	}
	log.Info("graphs written", zap.String("event_id", p.EventID()), zap.Strings("files", files))

	return files, nil
}

func writeDOT(path string, g *core.Graph, names *pdt.Table, opts ...graphviz.Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	opts = append([]graphviz.Option{graphviz.WithNames(names), graphviz.WithRanks(true)}, opts...)
	return graphviz.Write(f, g, opts...)
}
