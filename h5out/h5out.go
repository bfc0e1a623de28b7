// SPDX-License-Identifier: MIT

// Package h5out writes analysis results to an HDF5 file.
//
// The layout is two groups with one extensible table each:
//
//	/candidates/upsilon  one row per Υ(4S) candidate
//	/events/summary      one row per analysed event
//
// Tables are created empty with an unlimited first dimension, chunked and
// deflated. Every write extends the table and fills the new hyperslab.
package h5out

import (
	"errors"
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"

	"github.com/katalvlaran/decaygraph/event"
	"github.com/katalvlaran/decaygraph/mcgraph"
	"github.com/katalvlaran/decaygraph/record"
)

// StrLen is the fixed width of string columns.
const StrLen = 40

// ChunkRows is the chunk size, in rows, of every table.
const ChunkRows = 32768

var (
	// ErrCompression is returned for a deflate level outside 0..9.
	ErrCompression = errors.New("h5out: compression level must be in 0..9")

	// ErrClosed is returned by writes after Close.
	ErrClosed = errors.New("h5out: writer closed")
)

type candidateRow struct {
	event_id    string
	block_index int32
	reco_index  int32
	truth_match int32

	b_flavor     int32
	eextra50     float32
	mmiss_prime2 float32
	cos_theta_t  float32
	cand_type    int32
	sample_type  int32

	tag_lp3              float32
	tag_cos_by           float32
	tag_cos_theta_dl     float32
	tag_dmass            float32
	tag_delta_m          float32
	tag_cos_theta_d_soft float32
	tag_soft_p3mag_cm    float32
	tag_d_mode           int32
	tag_dstar_mode       int32
	l_epid_map           int32
	l_mupid_map          int32

	sig_hp3              float32
	sig_cos_by           float32
	sig_cos_theta_dtau   float32
	sig_vtx_b            float32
	sig_dmass            float32
	sig_delta_m          float32
	sig_cos_theta_d_soft float32
	sig_soft_p3mag_cm    float32
	sig_hmass            float32
	sig_vtxh             float32
	sig_d_mode           int32
	sig_dstar_mode       int32
	sig_tau_mode         int32
	h_epid_map           int32
	h_mupid_map          int32
}

type eventRow struct {
	event_id     string
	status       int32
	n_trk        int32
	r2_all       float32
	n_candidates int32
	continuum    int32
	b1_mc_type   int32
	b2_mc_type   int32
	b1_tau_type  int32
	b2_tau_type  int32
}

// Writer appends candidates and event summaries to one HDF5 file. It is not
// safe for concurrent use.
type Writer struct {
	file       *hdf5.File
	candidates *hdf5.Group
	events     *hdf5.Group
	upsilon    *hdf5.Dataset
	summary    *hdf5.Dataset

	nEvents     int
	nCandidates int
}

// Create truncates or creates path and lays out the groups and tables.
// level is the deflate level of every table.
func Create(path string, level int) (*Writer, error) {
	if level < 0 || level > 9 {
		return nil, fmt.Errorf("%w: %d", ErrCompression, level)
	}
	hdf5.SetStringLength(StrLen)

	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return nil, fmt.Errorf("h5out: create %s: %w", path, err)
	}
	w := &Writer{file: f}
	if w.candidates, err = f.CreateGroup("candidates"); err != nil {
		w.Close()
		return nil, fmt.Errorf("h5out: group candidates: %w", err)
	}
	if w.events, err = f.CreateGroup("events"); err != nil {
		w.Close()
		return nil, fmt.Errorf("h5out: group events: %w", err)
	}
	if w.upsilon, err = createTable(w.candidates, "upsilon", candidateRow{}, level); err != nil {
		w.Close()
		return nil, err
	}
	if w.summary, err = createTable(w.events, "summary", eventRow{}, level); err != nil {
		w.Close()
		return nil, err
	}

	return w, nil
}

// WriteEvent appends one summary row for the event in buf and one row per
// candidate. An event without candidates still gets its summary row.
func (w *Writer) WriteEvent(buf *event.Buffer, status event.Status, s mcgraph.Summary, cands []record.UpsilonCandidate) error {
	if w.file == nil {
		return ErrClosed
	}
	id := buf.EventID()
	ev := []eventRow{{
		event_id:     id,
		status:       int32(status),
		n_trk:        int32(buf.NTrk),
		r2_all:       buf.R2All,
		n_candidates: int32(len(cands)),
		continuum:    boolInt(s.Continuum),
		b1_mc_type:   int32(s.B1Type),
		b2_mc_type:   int32(s.B2Type),
		b1_tau_type:  int32(s.B1TauType),
		b2_tau_type:  int32(s.B2TauType),
	}}
	if err := writeArrayToTable(w.summary, &ev); err != nil {
		return fmt.Errorf("h5out: event %s: %w", id, err)
	}
	w.nEvents++

	if len(cands) == 0 {
		return nil
	}
	rows := make([]candidateRow, len(cands))
	for i := range cands {
		rows[i] = toRow(&cands[i])
	}
	if err := writeArrayToTable(w.upsilon, &rows); err != nil {
		return fmt.Errorf("h5out: candidates of %s: %w", id, err)
	}
	w.nCandidates += len(rows)

	return nil
}

// Events returns the number of summary rows written.
func (w *Writer) Events() int { return w.nEvents }

// Candidates returns the number of candidate rows written.
func (w *Writer) Candidates() int { return w.nCandidates }

// Close releases every handle and closes the file. It is idempotent and
// joins every error met.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	var errs []error
	for _, d := range []*hdf5.Dataset{w.upsilon, w.summary} {
		if d != nil {
			errs = append(errs, d.Close())
		}
	}
	for _, g := range []*hdf5.Group{w.candidates, w.events} {
		if g != nil {
			errs = append(errs, g.Close())
		}
	}
	errs = append(errs, w.file.Close())
	w.file, w.candidates, w.events, w.upsilon, w.summary = nil, nil, nil, nil, nil

	return errors.Join(errs...)
}

func toRow(c *record.UpsilonCandidate) candidateRow {
	ct, err := c.CandType()
	if err != nil {
		ct = -1
	}
	st, err := c.SampleType()
	if err != nil {
		st = -1
	}
	return candidateRow{
		event_id:    c.EventID,
		block_index: int32(c.BlockIndex),
		reco_index:  int32(c.RecoIndex),
		truth_match: int32(c.TruthMatch),

		b_flavor:     int32(c.BFlavor),
		eextra50:     c.Eextra50,
		mmiss_prime2: c.MmissPrime2,
		cos_theta_t:  c.CosThetaT,
		cand_type:    int32(ct),
		sample_type:  int32(st),

		tag_lp3:              c.TagLp3,
		tag_cos_by:           c.TagCosBY,
		tag_cos_theta_dl:     c.TagCosThetaDl,
		tag_dmass:            c.TagDmass,
		tag_delta_m:          c.TagDeltaM,
		tag_cos_theta_d_soft: c.TagCosThetaDSoft,
		tag_soft_p3mag_cm:    c.TagSoftP3MagCM,
		tag_d_mode:           int32(c.TagDMode),
		tag_dstar_mode:       int32(c.TagDstarMode),
		l_epid_map:           int32(c.LEPidMap),
		l_mupid_map:          int32(c.LMuPidMap),

		sig_hp3:              c.SigHp3,
		sig_cos_by:           c.SigCosBY,
		sig_cos_theta_dtau:   c.SigCosThetaDtau,
		sig_vtx_b:            c.SigVtxB,
		sig_dmass:            c.SigDmass,
		sig_delta_m:          c.SigDeltaM,
		sig_cos_theta_d_soft: c.SigCosThetaDSoft,
		sig_soft_p3mag_cm:    c.SigSoftP3MagCM,
		sig_hmass:            c.SigHmass,
		sig_vtxh:             c.SigVtxh,
		sig_d_mode:           int32(c.SigDMode),
		sig_dstar_mode:       int32(c.SigDstarMode),
		sig_tau_mode:         int32(c.SigTauMode),
		h_epid_map:           int32(c.HEPidMap),
		h_mupid_map:          int32(c.HMuPidMap),
	}
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
