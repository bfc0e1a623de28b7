// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/decaygraph/core"
	"github.com/katalvlaran/decaygraph/event"
	"github.com/katalvlaran/decaygraph/mcgraph"
	"github.com/katalvlaran/decaygraph/record"
	"github.com/katalvlaran/decaygraph/recograph"
	"github.com/katalvlaran/decaygraph/truthmatch"
)

// ErrNilSource is returned by New for a nil source.
var ErrNilSource = errors.New("pipeline: source is nil")

// Pipeline reads events one at a time and keeps the derived state of the
// last one. It is not safe for concurrent use.
type Pipeline struct {
	src  event.Source
	opts Options
	buf  event.Buffer

	counters Counters

	eventID    string
	recoGraph  *core.Graph
	indexer    *recograph.Indexer
	reco       *recograph.Analysis
	mcGraph    *core.Graph
	contracted *core.Graph
	mc         *mcgraph.Analysis
	table      *truthmatch.Table
	summary    mcgraph.Summary
	candidates []record.UpsilonCandidate
}

// New returns a Pipeline reading from src.
func New(src event.Source, opts ...Option) (*Pipeline, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Pipeline{src: src, opts: o}
	p.clear()

	return p, nil
}

// Next reads and analyses one event.
//
// Implementation:
//   - Stage 1: Read. EOF and read errors are returned unchanged.
//   - Stage 2: A reco category at or over its limit yields
//     MaxRecoCandExceeded with nothing derived.
//   - Stage 3: Build and classify the reco graph.
//   - Stage 4: For simulated events within the mc limit, build and classify
//     the truth graph, contract a copy and truth-match. Over the limit the
//     status is MaxMcParticlesExceeded and only reco results are kept.
//   - Stage 5: Assemble the Υ candidate records.
//
// An error wrapping core.ErrContractViolation leaves every accessor empty
// except EventID; the pipeline stays usable for the next event.
func (p *Pipeline) Next(ctx context.Context) (event.Status, error) {
	p.clear()

	// Stage 1
	st, err := p.src.Next(ctx, &p.buf)
	if err != nil {
		return st, fmt.Errorf("pipeline: read: %w", err)
	}
	if st == event.EOF {
		return st, nil
	}
	p.counters.Read++
	p.eventID = p.buf.EventID()
	log := p.opts.Logger.With(zap.String("event_id", p.eventID))

	// Stage 2
	if cat, over := p.opts.Limits.RecoExceeded(p.buf.Reco.Counts()); over {
		p.counters.SkippedReco++
		log.Debug("reco candidates over limit",
			zap.Stringer("category", cat),
			zap.Stringer("status", event.MaxRecoCandExceeded))
		return event.MaxRecoCandExceeded, nil
	}

	st, err = p.derive(ctx)
	if err != nil {
		id := p.eventID
		p.clear()
		p.eventID = id
		if !errors.Is(err, core.ErrContractViolation) {
			return st, err
		}
		p.counters.Violations++
		log.Warn("event rejected", zap.Error(err))
		return st, err
	}

	p.counters.Candidates += len(p.candidates)
	for i := range p.candidates {
		if p.candidates[i].TruthMatch >= 0 {
			p.counters.Matched++
		}
	}
	log.Debug("event analysed",
		zap.Stringer("status", st),
		zap.Int("n_candidates", len(p.candidates)))

	return st, nil
}

func (p *Pipeline) derive(ctx context.Context) (event.Status, error) {
	st := event.ReadSucceeded

	// Stage 3
	g, idx, err := recograph.Build(&p.buf.Reco)
	if err != nil {
		return st, err
	}
	a, err := recograph.Classify(g,
		recograph.WithContext(ctx),
		recograph.WithDistinctElectronMode(p.opts.DistinctElectronMode))
	if err != nil {
		return st, err
	}
	p.recoGraph, p.indexer, p.reco = g, idx, a

	// Stage 4
	if p.buf.HasTruth() {
		if p.opts.Limits.McExceeded(p.buf.Truth.Len()) {
			p.counters.SkippedMc++
			st = event.MaxMcParticlesExceeded
		} else if err := p.deriveTruth(ctx); err != nil {
			return st, err
		}
	}

	// Stage 5
	p.candidates, err = Assemble(&p.buf, p.indexer, p.reco, p.table)
	if err != nil {
		return st, err
	}

	return st, nil
}

func (p *Pipeline) deriveTruth(ctx context.Context) error {
	g, err := mcgraph.Build(p.buf.Truth)
	if err != nil {
		return err
	}
	a, err := mcgraph.Classify(g, mcgraph.WithContext(ctx))
	if err != nil {
		return err
	}

	contracted := g.Clone()
	if err = truthmatch.Contract(contracted); err != nil {
		return err
	}
	table, err := truthmatch.Match(p.recoGraph, contracted,
		truthmatch.HitTablesOf(p.buf.Truth), truthmatch.WithContext(ctx))
	if err != nil {
		return err
	}

	p.mcGraph, p.mc, p.contracted, p.table = g, a, contracted, table
	p.summary = a.Summary()

	return nil
}

// clear drops the state of the previous event.
func (p *Pipeline) clear() {
	p.eventID = ""
	p.recoGraph, p.indexer, p.reco = nil, nil, nil
	p.mcGraph, p.contracted, p.mc, p.table = nil, nil, nil, nil
	p.summary = mcgraph.DefaultSummary()
	p.candidates = nil
}

// Close closes the source if it implements io.Closer.
func (p *Pipeline) Close() error {
	if c, ok := p.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Candidates returns the Υ candidate records of the last event. The slice
// belongs to the caller.
func (p *Pipeline) Candidates() []record.UpsilonCandidate {
	if p.candidates == nil {
		return nil
	}
	return append([]record.UpsilonCandidate(nil), p.candidates...)
}

// TruthMatch returns the truth-match table of the last event, or nil when
// the event had no usable truth record.
func (p *Pipeline) TruthMatch() *truthmatch.Table { return p.table }

// McSummary returns the truth summary of the last event. Events without a
// usable truth record report mcgraph.DefaultSummary.
func (p *Pipeline) McSummary() mcgraph.Summary { return p.summary }

// EventID returns the identifier of the last event read.
func (p *Pipeline) EventID() string { return p.eventID }

// Buffer returns the raw input of the last event. It is overwritten by the
// next call to Next.
func (p *Pipeline) Buffer() *event.Buffer { return &p.buf }

// RecoGraph returns the reconstructed graph of the last event and its
// indexer.
func (p *Pipeline) RecoGraph() (*core.Graph, *recograph.Indexer) { return p.recoGraph, p.indexer }

// RecoAnalysis returns the classifier records of the last event.
func (p *Pipeline) RecoAnalysis() *recograph.Analysis { return p.reco }

// McGraph returns the truth graph of the last event before contraction.
func (p *Pipeline) McGraph() *core.Graph { return p.mcGraph }

// ContractedMcGraph returns the truth graph used for matching.
func (p *Pipeline) ContractedMcGraph() *core.Graph { return p.contracted }

// McAnalysis returns the truth classifier records of the last event.
func (p *Pipeline) McAnalysis() *mcgraph.Analysis { return p.mc }

// Counters returns the running totals.
func (p *Pipeline) Counters() Counters { return p.counters }
