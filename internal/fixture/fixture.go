// SPDX-License-Identifier: MIT

// Package fixture provides hand-built events for tests across packages.
//
// SignalEvent is a complete simulated Υ(4S) → B⁻B⁺ event:
//
//	tag:    B⁻ → D⁰ μ⁻ ν̄,      D⁰ → K⁻ π⁺
//	signal: B⁺ → D̄*⁰ τ⁺ ν,     D̄*⁰ → D̄⁰ π⁰,  D̄⁰ → K⁺ π⁻,  τ⁺ → ρ⁺ ν̄,  ρ⁺ → π⁺ π⁰
//
// Every reconstructed particle has a truth counterpart, so every reco
// index truth-matches. The reco and mc indices are listed in the constants
// below.
package fixture

import (
	"github.com/katalvlaran/decaygraph/event"
	"github.com/katalvlaran/decaygraph/lund"
)

// Reco indices of SignalEvent.
const (
	RecoY      = 0
	RecoTagB   = 1
	RecoSigB   = 2
	RecoTagD   = 3
	RecoSigD   = 4
	RecoSigDst = 5
	RecoPi0a   = 6
	RecoPi0b   = 7
	RecoRho    = 8
	RecoTagK   = 9
	RecoTagPi  = 10
	RecoSigK   = 11
	RecoSigPi  = 12
	RecoRhoPi  = 13
	RecoMu     = 14
	RecoGamma0 = 15
	RecoTotal  = 19
)

// Mc indices of SignalEvent.
const (
	McY     = 2
	McTagB  = 3
	McSigB  = 4
	McTagD  = 5
	McMu    = 6
	McDst   = 8
	McTau   = 9
	McTagK  = 11
	McTagPi = 12
	McSigD  = 13
	McPi0a  = 14
	McRho   = 15
	McPi0b  = 22
	McFSR   = 25
	McLen   = 26
)

func dau(block, code int) event.Daughter { return event.Daughter{Block: block, Lund: code} }

func mustAppend(r *event.Reco, cat event.Category, code int, daus ...event.Daughter) {
	if _, err := r.Append(cat, code, daus...); err != nil {
		panic(err)
	}
}

// SignalReco returns the reconstructed blocks of SignalEvent.
func SignalReco() event.Reco {
	var r event.Reco
	mustAppend(&r, event.CatY, lund.Upsilon, dau(0, -lund.Bc), dau(1, lund.Bc))

	mustAppend(&r, event.CatB, -lund.Bc, dau(0, lund.D0), dau(0, lund.Mu))
	mustAppend(&r, event.CatB, lund.Bc, dau(2, -lund.Dstar0), dau(2, lund.Rho))

	mustAppend(&r, event.CatD, lund.D0, dau(0, -lund.K), dau(1, lund.Pi))
	mustAppend(&r, event.CatD, -lund.D0, dau(2, lund.K), dau(3, -lund.Pi))
	mustAppend(&r, event.CatD, -lund.Dstar0, dau(1, -lund.D0), dau(0, lund.Pi0))

	mustAppend(&r, event.CatC, lund.Pi0, dau(0, lund.Gamma), dau(1, lund.Gamma))
	mustAppend(&r, event.CatC, lund.Pi0, dau(2, lund.Gamma), dau(3, lund.Gamma))
	mustAppend(&r, event.CatC, lund.Rho, dau(4, lund.Pi), dau(1, lund.Pi0))

	mustAppend(&r, event.CatH, -lund.K)
	mustAppend(&r, event.CatH, lund.Pi)
	mustAppend(&r, event.CatH, lund.K)
	mustAppend(&r, event.CatH, -lund.Pi)
	mustAppend(&r, event.CatH, lund.Pi)

	mustAppend(&r, event.CatL, lund.Mu)

	for i := 0; i < 4; i++ {
		mustAppend(&r, event.CatGamma, lund.Gamma)
	}
	return r
}

// SignalTruth returns the generator record of SignalEvent, including the
// beam particles at indices 0 and 1 and a final-state radiation photon
// attached to the tag π⁺.
func SignalTruth() *event.Truth {
	type p struct{ code, first, n int }
	parts := []p{
		{lund.E, 2, 1},        // 0 beam
		{-lund.E, 2, 1},       // 1 beam
		{lund.Upsilon, 3, 2},  // 2
		{-lund.Bc, 5, 3},      // 3 tag B
		{lund.Bc, 8, 3},       // 4 signal B
		{lund.D0, 11, 2},      // 5
		{lund.Mu, -1, 0},      // 6
		{-lund.NuMu, -1, 0},   // 7
		{-lund.Dstar0, 13, 2}, // 8
		{-lund.Tau, 15, 2},    // 9
		{lund.NuTau, -1, 0},   // 10
		{-lund.K, -1, 0},      // 11
		{lund.Pi, 25, 1},      // 12
		{-lund.D0, 17, 2},     // 13
		{lund.Pi0, 19, 2},     // 14
		{lund.Rho, 21, 2},     // 15
		{-lund.NuTau, -1, 0},  // 16
		{lund.K, -1, 0},       // 17
		{-lund.Pi, -1, 0},     // 18
		{lund.Gamma, -1, 0},   // 19
		{lund.Gamma, -1, 0},   // 20
		{lund.Pi, -1, 0},      // 21
		{lund.Pi0, 23, 2},     // 22
		{lund.Gamma, -1, 0},   // 23
		{lund.Gamma, -1, 0},   // 24
		{lund.Gamma, -1, 0},   // 25 FSR
	}
	t := &event.Truth{}
	for _, x := range parts {
		t.Lund = append(t.Lund, x.code)
		t.DauIdx = append(t.DauIdx, x.first)
		t.DauLen = append(t.DauLen, x.n)
		t.Energy = append(t.Energy, 1)
	}
	t.MothIdx = make([]int, len(parts))
	for i := range t.MothIdx {
		t.MothIdx[i] = -1
	}
	for i, x := range parts {
		for j := x.first; j < x.first+x.n; j++ {
			t.MothIdx[j] = i
		}
	}
	t.HMcIdx = []int{McTagK, McTagPi, 17, 18, 21}
	t.LMcIdx = []int{McMu}
	t.GammaMcIdx = []int{19, 20, 23, 24}

	return t
}

// YValue is the value stored for Υ block 0 in the k-th kinematic field, in
// the order of event.Kinematics.Fields.
func YValue(k int) float32 { return float32(k+1) / 10 }

// SignalEvent returns the full buffer of the signal event.
func SignalEvent() event.Buffer {
	b := event.Buffer{
		Platform:  1,
		Partition: 2,
		UpperID:   3,
		LowerID:   4,
		NTrk:      8,
		R2All:     0.25,
		Reco:      SignalReco(),
		Truth:     SignalTruth(),
	}
	for i, f := range b.Kin.Fields() {
		*f.Values = []float32{YValue(i)}
	}

	// Track 7 is the muon, track 4 the π⁺ of the ρ.
	b.PID = event.PID{
		LTrkIdx:        []int{7},
		HTrkIdx:        []int{0, 1, 2, 3, 4},
		ESelectorsMap:  []int{0, 0, 0, 0, 1, 0, 0, 3},
		MuSelectorsMap: []int{0, 0, 0, 0, 2, 0, 0, 15},
		KSelectorsMap:  make([]int, 8),
		PiSelectorsMap: make([]int, 8),
	}
	return b
}

// DataEvent returns SignalEvent without truth, as read from real data.
func DataEvent() event.Buffer {
	b := SignalEvent()
	b.Truth = nil
	return b
}
