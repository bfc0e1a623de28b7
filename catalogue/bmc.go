package catalogue

import (
	"sync"

	"github.com/katalvlaran/decaygraph/lund"
	"github.com/katalvlaran/decaygraph/mode"
)

// BSymbol is the alphabet of truth-level B decays. The declaration order is
// the canonical sort order; X sorts after every named symbol.
type BSymbol int

const (
	BSymNull BSymbol = iota - 1
	BSymNuEll
	BSymNuTau
	BSymEll
	BSymTau
	BSymD
	BSymDstar
	BSymDstarstar
	BSymX // anything else
	BSymI // ignored (photons)
)

// ClassifyB maps a particle code to the truth-B alphabet. It is total:
// photons map to BSymI and unlisted codes map to BSymX.
func ClassifyB(code int) BSymbol {
	switch lund.Abs(code) {
	case lund.NuE, lund.NuMu:
		return BSymNuEll
	case lund.NuTau:
		return BSymNuTau
	case lund.E, lund.Mu:
		return BSymEll
	case lund.Tau:
		return BSymTau
	case lund.Dc, lund.D0:
		return BSymD
	case lund.Dstarc, lund.Dstar0:
		return BSymDstar
	case 10411, 10421, // D_0*
		10413, 10423, // D_1
		415, 425, // D_2*
		20413, 20423, // D_1'
		30411, 30421, 30413, 30423: // radial excitations
		return BSymDstarstar
	case lund.Gamma:
		return BSymI
	}
	return BSymX
}

var (
	bMcOnce  sync.Once
	bMcModes *Catalogue[BSymbol, mode.BMcType]
)

// BMcModes returns the shared truth-B catalogue.
func BMcModes() *Catalogue[BSymbol, mode.BMcType] {
	bMcOnce.Do(func() {
		c := New(BSymNull, mode.BMcNull)

		// semileptonic: same structure for τ ν_τ and ℓ ν_ℓ
		type branch struct {
			nu, l    BSymbol
			d, dstar mode.BMcType
		}
		for _, b := range []branch{
			{BSymNuTau, BSymTau, mode.BMcDtau, mode.BMcDstartau},
			{BSymNuEll, BSymEll, mode.BMcDl, mode.BMcDstarl},
		} {
			mustRegister(c, []BSymbol{b.nu, b.l}, mode.BMcSL)
			mustRegister(c, []BSymbol{b.nu, b.l, BSymD}, b.d)
			mustRegister(c, []BSymbol{b.nu, b.l, BSymDstar}, b.dstar)
			mustRegister(c, []BSymbol{b.nu, b.l, BSymDstarstar}, mode.BMcDstarstarRes)
			mustRegister(c, []BSymbol{b.nu, b.l, BSymX}, mode.BMcSL)
			mustRegister(c, []BSymbol{b.nu, b.l, BSymD, BSymX}, mode.BMcDstarstarNonres)
			mustRegister(c, []BSymbol{b.nu, b.l, BSymDstar, BSymX}, mode.BMcDstarstarNonres)
			mustRegister(c, []BSymbol{b.nu, b.l, BSymDstarstar, BSymX}, mode.BMcDstarstarRes)
		}

		// hadronic
		charm := []BSymbol{BSymD, BSymDstar, BSymDstarstar}
		mustRegister(c, []BSymbol{BSymX}, mode.BMcHad)
		for i, a := range charm {
			mustRegister(c, []BSymbol{a, BSymX}, mode.BMcHad)
			for _, b := range charm[i:] {
				mustRegister(c, []BSymbol{a, b}, mode.BMcHad)
				mustRegister(c, []BSymbol{a, b, BSymX}, mode.BMcHad)
			}
		}
		bMcModes = c
	})
	return bMcModes
}

// LookupBMc classifies a truth B from the codes of its daughters. Photons
// are dropped and any number of unlisted particles collapses into one X.
func LookupBMc(codes []int) mode.BMcType {
	word := make([]BSymbol, 0, len(codes)+1)
	hasX := false
	for _, c := range codes {
		switch s := ClassifyB(c); s {
		case BSymI:
		case BSymX:
			hasX = true
		default:
			word = append(word, s)
		}
	}
	if hasX {
		word = append(word, BSymX)
	}
	return BMcModes().Lookup(word)
}
