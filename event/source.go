// SPDX-License-Identifier: MIT

package event

import (
	"context"
	"fmt"
)

// Daughter is one filled daughter slot: the block index of the daughter in
// its own category and its code.
type Daughter struct {
	Block int
	Lund  int
}

// Append adds a candidate to block cat and returns its block index. Unused
// slots are filled with -1.
func (r *Reco) Append(cat Category, lund int, daus ...Daughter) (int, error) {
	if len(daus) > cat.Slots() {
		return -1, fmt.Errorf("%w: %s candidate with %d daughters, at most %d slots",
			ErrMalformed, cat, len(daus), cat.Slots())
	}
	b := &r.Blocks[cat]
	if b.DauIdx == nil && cat.Slots() > 0 {
		b.DauIdx = make([][]int, cat.Slots())
		b.DauLund = make([][]int, cat.Slots())
	}
	i := b.Len()
	b.Lund = append(b.Lund, lund)
	for s := 0; s < cat.Slots(); s++ {
		idx, code := -1, 0
		if s < len(daus) {
			idx, code = daus[s].Block, daus[s].Lund
		}
		b.DauIdx[s] = append(b.DauIdx[s], idx)
		b.DauLund[s] = append(b.DauLund[s], code)
	}

	return i, nil
}

// SliceSource replays a fixed list of buffers. It is used for tests and for
// tools that operate on events already held in memory.
type SliceSource struct {
	events []Buffer
	pos    int
}

// NewSliceSource returns a Source over events. The buffers are copied
// shallowly into the caller's buffer on each Next.
func NewSliceSource(events ...Buffer) *SliceSource {
	return &SliceSource{events: events}
}

// Next implements Source.
func (s *SliceSource) Next(ctx context.Context, buf *Buffer) (Status, error) {
	if err := ctx.Err(); err != nil {
		return EOF, err
	}
	if s.pos >= len(s.events) {
		return EOF, nil
	}
	*buf = s.events[s.pos]
	s.pos++

	return ReadSucceeded, nil
}

// Rewind restarts the replay from the first event.
func (s *SliceSource) Rewind() { s.pos = 0 }
