package catalogue

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/decaygraph/lund"
	"github.com/katalvlaran/decaygraph/mode"
)

// DSymbol is the alphabet of reconstructed D and D* decays. The declaration
// order is the canonical sort order.
type DSymbol int

const (
	DSymNull DSymbol = iota - 1
	DSymDstarc
	DSymDstar0
	DSymDc
	DSymD0
	DSymK
	DSymKs
	DSymPi
	DSymPi0
	DSymGamma
)

// ClassifyD maps a particle code to the D alphabet. The set of codes that
// can appear in a reconstructed D or D* decay is closed; anything else is
// ErrUnknownParticle.
func ClassifyD(code int) (DSymbol, error) {
	switch lund.Abs(code) {
	case lund.Dstarc:
		return DSymDstarc, nil
	case lund.Dstar0:
		return DSymDstar0, nil
	case lund.Dc:
		return DSymDc, nil
	case lund.D0:
		return DSymD0, nil
	case lund.K:
		return DSymK, nil
	case lund.KS:
		return DSymKs, nil
	case lund.Pi:
		return DSymPi, nil
	case lund.Pi0:
		return DSymPi0, nil
	case lund.Gamma:
		return DSymGamma, nil
	}
	return DSymNull, fmt.Errorf("%w: %d", ErrUnknownParticle, code)
}

var (
	dOnce     sync.Once
	dModes    *Catalogue[DSymbol, mode.DType]
	dstarOnce sync.Once
	dstarMode *Catalogue[DSymbol, mode.DstarType]
)

// DModes returns the shared D catalogue. Each row lists the D itself
// together with its daughters.
func DModes() *Catalogue[DSymbol, mode.DType] {
	dOnce.Do(func() {
		c := New(DSymNull, mode.DNull)
		rows := []struct {
			seq   []DSymbol
			label mode.DType
		}{
			{[]DSymbol{DSymDc, DSymK, DSymPi, DSymPi}, mode.DcKpipi},
			{[]DSymbol{DSymDc, DSymK, DSymPi, DSymPi, DSymPi0}, mode.DcKpipipi0},
			{[]DSymbol{DSymDc, DSymKs, DSymK}, mode.DcKsK},
			{[]DSymbol{DSymDc, DSymKs, DSymPi}, mode.DcKspi},
			{[]DSymbol{DSymDc, DSymKs, DSymPi, DSymPi0}, mode.DcKspipi0},
			{[]DSymbol{DSymDc, DSymKs, DSymPi, DSymPi, DSymPi}, mode.DcKspipipi},
			{[]DSymbol{DSymDc, DSymK, DSymK, DSymPi}, mode.DcKKpi},
			{[]DSymbol{DSymD0, DSymK, DSymPi}, mode.D0Kpi},
			{[]DSymbol{DSymD0, DSymK, DSymPi, DSymPi0}, mode.D0Kpipi0},
			{[]DSymbol{DSymD0, DSymK, DSymPi, DSymPi, DSymPi}, mode.D0Kpipipi},
			{[]DSymbol{DSymD0, DSymK, DSymPi, DSymPi, DSymPi, DSymPi0}, mode.D0Kpipipipi0},
			{[]DSymbol{DSymD0, DSymKs, DSymPi, DSymPi}, mode.D0Kspipi},
			{[]DSymbol{DSymD0, DSymKs, DSymPi, DSymPi, DSymPi0}, mode.D0Kspipipi0},
			{[]DSymbol{DSymD0, DSymKs, DSymPi0}, mode.D0Kspi0},
			{[]DSymbol{DSymD0, DSymK, DSymK}, mode.D0KK},
		}
		for _, r := range rows {
			mustRegister(c, r.seq, r.label)
		}
		dModes = c
	})
	return dModes
}

// DstarModes returns the shared D* catalogue. Each row lists the D* itself
// together with its daughters.
func DstarModes() *Catalogue[DSymbol, mode.DstarType] {
	dstarOnce.Do(func() {
		c := New(DSymNull, mode.DstarNull)
		mustRegister(c, []DSymbol{DSymDstar0, DSymD0, DSymPi0}, mode.Dstar0D0pi0)
		mustRegister(c, []DSymbol{DSymDstar0, DSymD0, DSymGamma}, mode.Dstar0D0gamma)
		mustRegister(c, []DSymbol{DSymDstarc, DSymD0, DSymPi}, mode.DstarcD0pi)
		mustRegister(c, []DSymbol{DSymDstarc, DSymDc, DSymPi0}, mode.DstarcDcpi0)
		mustRegister(c, []DSymbol{DSymDstarc, DSymDc, DSymGamma}, mode.DstarcDcgamma)
		dstarMode = c
	})
	return dstarMode
}

// LookupD classifies a D from the codes of the D and its daughters.
func LookupD(codes []int) (mode.DType, error) {
	word, err := dWord(codes)
	if err != nil {
		return mode.DNull, err
	}
	return DModes().Lookup(word), nil
}

// LookupDstar classifies a D* from the codes of the D* and its daughters.
func LookupDstar(codes []int) (mode.DstarType, error) {
	word, err := dWord(codes)
	if err != nil {
		return mode.DstarNull, err
	}
	return DstarModes().Lookup(word), nil
}

func dWord(codes []int) ([]DSymbol, error) {
	word := make([]DSymbol, 0, len(codes))
	for _, c := range codes {
		s, err := ClassifyD(c)
		if err != nil {
			return nil, err
		}
		word = append(word, s)
	}
	return word, nil
}

// mustRegister is only used for the static tables above; a conflict there
// is a bug in this file.
func mustRegister[S DSymbol | BSymbol, L comparable](c *Catalogue[S, L], seq []S, label L) {
	if err := c.Register(seq, label); err != nil {
		panic(err)
	}
}
