// SPDX-License-Identifier: MIT

// Package rootio reads the analysis ntuples from ROOT files with groot and
// delivers them as event.Buffer values.
//
// Source implements event.Source. Entries are decoded in chunks of
// consecutive entries; each chunk is read with one rtree.Reader and held in
// memory until served.
package rootio

import (
	"context"
	"errors"
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"

	"github.com/katalvlaran/decaygraph/event"
)

// DefaultChunkSize is the number of entries decoded per rtree.Reader.
const DefaultChunkSize = 1024

// ErrNotATree is returned by Open when the named object is not a TTree.
var ErrNotATree = errors.New("rootio: object is not a tree")

// Option configures a Source.
type Option func(*Options)

// Options holds the Source parameters.
type Options struct {
	// Mc reads the generator branches into Buffer.Truth.
	Mc bool
	// ChunkSize is the number of entries decoded at a time.
	ChunkSize int64
}

// DefaultOptions returns a reco-only source with DefaultChunkSize.
func DefaultOptions() Options {
	return Options{ChunkSize: DefaultChunkSize}
}

// WithMc enables the generator branches.
func WithMc(on bool) Option {
	return func(o *Options) {
		o.Mc = on
	}
}

// WithChunkSize sets the chunk size. Non-positive values are ignored.
func WithChunkSize(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.ChunkSize = n
		}
	}
}

// Source streams events from one TTree.
type Source struct {
	f    *riofs.File
	tree rtree.Tree
	opts Options
	br   *branches

	next    int64
	pending []event.Buffer
	pos     int
	closed  bool
}

// Open opens path and looks up the tree called name.
func Open(path, name string, opts ...Option) (*Source, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rootio: open %s: %w", path, err)
	}
	obj, err := riofs.Dir(f).Get(name)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("rootio: %s: %w", path, err)
	}
	t, ok := obj.(rtree.Tree)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("%w: %s:%s is a %s", ErrNotATree, path, name, obj.Class())
	}

	return &Source{f: f, tree: t, opts: o, br: newBranches()}, nil
}

// Entries returns the number of entries in the tree.
func (s *Source) Entries() int64 { return s.tree.Entries() }

// Next implements event.Source.
func (s *Source) Next(ctx context.Context, buf *event.Buffer) (event.Status, error) {
	if s.closed {
		return event.EOF, event.ErrSourceClosed
	}
	if err := ctx.Err(); err != nil {
		return event.EOF, err
	}
	if s.pos >= len(s.pending) {
		if err := s.load(ctx); err != nil {
			return event.EOF, err
		}
		if len(s.pending) == 0 {
			return event.EOF, nil
		}
	}
	*buf = s.pending[s.pos]
	s.pending[s.pos] = event.Buffer{}
	s.pos++

	return event.ReadSucceeded, nil
}

// load decodes the next chunk into pending.
func (s *Source) load(ctx context.Context) error {
	s.pending, s.pos = s.pending[:0], 0
	n := s.tree.Entries()
	if s.next >= n {
		return nil
	}
	end := min(s.next+s.opts.ChunkSize, n)

	list := s.br.list(s.opts.Mc)
	vars := make([]rtree.ReadVar, len(list))
	for i, b := range list {
		vars[i] = rtree.ReadVar{Name: b.name, Value: b.ptr, Count: b.count}
	}
	r, err := rtree.NewReader(s.tree, vars, rtree.WithRange(s.next, end))
	if err != nil {
		return fmt.Errorf("rootio: reader: %w", err)
	}
	defer r.Close()

	err = r.Read(func(rctx rtree.RCtx) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		var buf event.Buffer
		s.br.fill(&buf, s.opts.Mc)
		s.pending = append(s.pending, buf)
		return nil
	})
	if err != nil {
		return fmt.Errorf("rootio: entries [%d, %d): %w", s.next, end, err)
	}
	s.next = end

	return nil
}

// Close releases the file. Next returns event.ErrSourceClosed afterwards.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.pending = nil
	return s.f.Close()
}
