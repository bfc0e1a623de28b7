// SPDX-License-Identifier: MIT

package rootio

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"

	"github.com/katalvlaran/decaygraph/event"
)

// Writer writes events into a new ROOT file with the branch layout Source
// reads. It is used to skim ntuples and to produce test inputs.
type Writer struct {
	f  *riofs.File
	w  rtree.Writer
	br *branches
	mc bool
}

// Create creates path with an empty tree called name. With mc the
// generator branches are written and every event must carry Truth.
func Create(path, name string, mc bool) (*Writer, error) {
	f, err := groot.Create(path)
	if err != nil {
		return nil, fmt.Errorf("rootio: create %s: %w", path, err)
	}
	br := newBranches()
	list := br.list(mc)
	vars := make([]rtree.WriteVar, len(list))
	for i, b := range list {
		vars[i] = rtree.WriteVar{Name: b.name, Value: b.ptr, Count: b.count}
	}
	w, err := rtree.NewWriter(f, name, vars)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("rootio: tree %s: %w", name, err)
	}
	return &Writer{f: f, w: w, br: br, mc: mc}, nil
}

// Write appends one event.
func (w *Writer) Write(buf *event.Buffer) error {
	if w.mc && !buf.HasTruth() {
		return fmt.Errorf("rootio: event %s has no truth record", buf.EventID())
	}
	w.br.load(buf)
	if _, err := w.w.Write(); err != nil {
		return fmt.Errorf("rootio: write %s: %w", buf.EventID(), err)
	}
	return nil
}

// Close flushes the tree and closes the file.
func (w *Writer) Close() error {
	if err := w.w.Close(); err != nil {
		w.f.Close()
		return fmt.Errorf("rootio: close tree: %w", err)
	}
	return w.f.Close()
}
