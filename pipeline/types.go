// SPDX-License-Identifier: MIT

// Package pipeline drives the per-event analysis.
//
// For each event read from an event.Source, Pipeline checks the candidate
// limits, builds and classifies the reconstructed decay graph, and for
// simulated events builds, classifies, contracts and truth-matches the
// generator graph. The results of the last event are exposed through
// accessors until the next call to Next.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/decaygraph/event"
)

// Counters accumulate over the lifetime of a Pipeline.
type Counters struct {
	// Read is the number of events delivered by the source.
	Read int
	// SkippedReco counts events with a reco category over its limit.
	SkippedReco int
	// SkippedMc counts events whose truth record was over its limit.
	SkippedMc int
	// Violations counts events rejected with a contract violation.
	Violations int
	// Candidates is the number of records assembled.
	Candidates int
	// Matched is the number of records with a truth match.
	Matched int
}

// Option configures a Pipeline.
type Option func(*Options)

// Options holds the Pipeline parameters.
type Options struct {
	// Logger receives per-event debug lines and violation warnings.
	Logger *zap.Logger

	// Limits are the per-category overflow thresholds.
	Limits event.Limits

	// DistinctElectronMode is passed to recograph.Classify.
	DistinctElectronMode bool
}

// DefaultOptions returns a no-op logger and event.DefaultLimits.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Limits: event.DefaultLimits(),
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithLimits replaces the overflow thresholds.
func WithLimits(l event.Limits) Option {
	return func(o *Options) {
		o.Limits = l
	}
}

// WithDistinctElectronMode labels electron placeholders tau_e.
func WithDistinctElectronMode(on bool) Option {
	return func(o *Options) {
		o.DistinctElectronMode = on
	}
}
