package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/decaygraph/config"
	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/event"
	"github.com/katalvlaran/decaygraph/h5out"
	"github.com/katalvlaran/decaygraph/pipeline"
	"github.com/katalvlaran/decaygraph/rootio"
	"github.com/katalvlaran/decaygraph/summary"
)

func (a *app) runCmd() *cobra.Command {
	var (
		input, tree, output, histograms string
		mc                              bool
		maxEvents                       int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Analyse an ntuple and write the candidates to HDF5",
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
			if f.Changed("output") {
				cfg.Output = output
			}
			if f.Changed("histograms") {
				cfg.HistogramOutput = histograms
			}
			if f.Changed("max-events") {
				cfg.MaxEvents = maxEvents
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			c, err := runAnalysis(cmd.Context(), cfg, a.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "read %d, skipped %d reco / %d mc, rejected %d, candidates %d (%d matched)\n",
				c.Read, c.SkippedReco, c.SkippedMc, c.Violations, c.Candidates, c.Matched)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "input ROOT file")
	f.StringVar(&tree, "tree", "", "tree name")
	f.BoolVar(&mc, "mc", false, "read the generator branches")
	f.StringVarP(&output, "output", "o", "", "HDF5 output file")
	f.StringVar(&histograms, "histograms", "", "directory for summary histogram PDFs")
	f.IntVarP(&maxEvents, "max-events", "n", 0, "stop after this many events")

	return cmd
}

// runAnalysis streams cfg.Input through the pipeline into cfg.Output.
// Events rejected as contract violations are counted and skipped; any other
// error aborts the run.
func runAnalysis(ctx context.Context, cfg config.Config, log *zap.Logger) (pipeline.Counters, error) {
	log = log.With(zap.String("run_id", uuid.NewString()))
	log.Info("run started",
		zap.String("input", cfg.Input),
		zap.String("tree", cfg.TreeName),
		zap.Bool("mc", cfg.Mc),
		zap.String("output", cfg.Output))

	src, err := rootio.Open(cfg.Input, cfg.TreeName, rootio.WithMc(cfg.Mc))
	if err != nil {
		return pipeline.Counters{}, err
	}
	p, err := pipeline.New(src,
		pipeline.WithLogger(log),
		pipeline.WithLimits(cfg.Limits),
		pipeline.WithDistinctElectronMode(cfg.ElectronTauMode))
	if err != nil {
		_ = src.Close()
		return pipeline.Counters{}, err
	}
	defer p.Close()

	w, err := h5out.Create(cfg.Output, cfg.CompressionLevel)
	if err != nil {
		return pipeline.Counters{}, err
	}
	hists := summary.New()

	err = analyse(ctx, p, w, hists, cfg.MaxEvents)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	c := p.Counters()
	if err != nil {
		return c, err
	}

	if cfg.HistogramOutput != "" {
		if err := os.MkdirAll(cfg.HistogramOutput, 0o755); err != nil {
			return c, fmt.Errorf("histograms: %w", err)
		}
		paths, err := hists.Save(cfg.HistogramOutput)
		if err != nil {
			return c, err
		}
		log.Info("histograms written", zap.Strings("files", paths))
	}

	log.Info("run finished",
		zap.Int("read", c.Read),
		zap.Int("skipped_reco", c.SkippedReco),
		zap.Int("skipped_mc", c.SkippedMc),
		zap.Int("violations", c.Violations),
		zap.Int("candidates", c.Candidates),
		zap.Int("matched", c.Matched),
		zap.Int("rows", w.Candidates()))

	return c, nil
}

func analyse(ctx context.Context, p *pipeline.Pipeline, w *h5out.Writer, hists *summary.Histograms, maxEvents int) error {
	for n := 0; n < maxEvents; n++ {
		st, err := p.Next(ctx)
		if errors.Is(err, core.ErrContractViolation) {
			continue
		}
		if err != nil {
			return err
		}
		if st == event.EOF {
			return nil
		}

		cands := p.Candidates()
		if err := w.WriteEvent(p.Buffer(), st, p.McSummary(), cands); err != nil {
			return err
		}
		if st != event.MaxRecoCandExceeded {
			hists.Fill(cands, p.McSummary())
		}
	}
	return nil
}
