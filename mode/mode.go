// Package mode enumerates the classification labels produced by the
// analysis: B flavours, reconstructed D/D*/τ decay modes, truth-level B and
// τ categories, and the per-candidate composite types.
//
// Every enum reserves -1 as its null ("undefined") value. The integer values
// are part of the output format and must not be renumbered.
package mode

import "strconv"

// BFlavor is the flavour of a B meson.
type BFlavor int

const (
	FlavorNull BFlavor = -1
	FlavorNoB  BFlavor = 0
	FlavorB0   BFlavor = 1
	FlavorBc   BFlavor = 2
)

// DType is a reconstructed D decay mode.
type DType int

const (
	DNull        DType = -1
	DcKpipi      DType = 1
	DcKpipipi0   DType = 2
	DcKsK        DType = 3
	DcKspi       DType = 4
	DcKspipi0    DType = 5
	DcKspipipi   DType = 6
	DcKKpi       DType = 7
	D0Kpi        DType = 8
	D0Kpipi0     DType = 9
	D0Kpipipi    DType = 10
	D0Kpipipipi0 DType = 11
	D0Kspipi     DType = 12
	D0Kspipipi0  DType = 13
	D0Kspi0      DType = 14
	D0KK         DType = 15
)

// DstarType is a reconstructed D* decay mode.
type DstarType int

const (
	DstarNull     DstarType = -1
	NoDstar       DstarType = 0
	Dstar0D0pi0   DstarType = 1
	Dstar0D0gamma DstarType = 2
	DstarcD0pi    DstarType = 3
	DstarcDcpi0   DstarType = 4
	DstarcDcgamma DstarType = 5
)

// TauType is the reconstructed τ decay hypothesis.
type TauType int

const (
	TauNull TauType = -1
	NoTau   TauType = 0
	TauPi   TauType = 1
	TauRho  TauType = 2
	TauE    TauType = 3
	TauMu   TauType = 4
)

// BMcType is the truth-level category of a B decay.
type BMcType int

const (
	BMcNull            BMcType = -1
	BMcNoB             BMcType = 0
	BMcDtau            BMcType = 1
	BMcDstartau        BMcType = 2
	BMcDl              BMcType = 3
	BMcDstarl          BMcType = 4
	BMcDstarstarRes    BMcType = 5
	BMcDstarstarNonres BMcType = 6
	BMcSL              BMcType = 7
	BMcHad             BMcType = 8
)

// TauMcType is the truth-level category of a τ decay.
type TauMcType int

const (
	TauMcNull  TauMcType = -1
	TauMcNoTau TauMcType = 0
	TauMcE     TauMcType = 1
	TauMcMu    TauMcType = 2
	TauMcK     TauMcType = 3
	TauMcH     TauMcType = 4
)

// CandType tells apart candidates by the D or D* on each side and the τ
// hypothesis on the signal side.
type CandType int

const (
	CandNull          CandType = -1
	CandDDpi          CandType = 0
	CandDDstarpi      CandType = 1
	CandDstarDpi      CandType = 2
	CandDstarDstarpi  CandType = 3
	CandDDrho         CandType = 4
	CandDDstarrho     CandType = 5
	CandDstarDrho     CandType = 6
	CandDstarDstarrho CandType = 7
)

// SampleType is the sample an event falls in if the candidate were chosen
// to represent it.
type SampleType int

const (
	SampleNull    SampleType = -1
	SampleBcD     SampleType = 0
	SampleBcDstar SampleType = 1
	SampleB0D     SampleType = 2
	SampleB0Dstar SampleType = 3
)

var (
	flavorNames = []string{"NoB", "B0", "Bc"}
	dNames      = []string{"", "Dc_Kpipi", "Dc_Kpipipi0", "Dc_KsK", "Dc_Kspi", "Dc_Kspipi0", "Dc_Kspipipi", "Dc_KKpi",
		"D0_Kpi", "D0_Kpipi0", "D0_Kpipipi", "D0_Kpipipipi0", "D0_Kspipi", "D0_Kspipipi0", "D0_Kspi0", "D0_KK"}
	dstarNames  = []string{"NoDstar", "Dstar0_D0pi0", "Dstar0_D0gamma", "Dstarc_D0pi", "Dstarc_Dcpi0", "Dstarc_Dcgamma"}
	tauNames    = []string{"NoTau", "tau_pi", "tau_rho", "tau_e", "tau_mu"}
	bMcNames    = []string{"NoB", "Dtau", "Dstartau", "Dl", "Dstarl", "Dstarstar_res", "Dstarstar_nonres", "SL", "Had"}
	tauMcNames  = []string{"NoTau", "tau_e", "tau_mu", "tau_k", "tau_h"}
	candNames   = []string{"DDpi", "DDstarpi", "DstarDpi", "DstarDstarpi", "DDrho", "DDstarrho", "DstarDrho", "DstarDstarrho"}
	sampleNames = []string{"BcD", "BcDstar", "B0D", "B0Dstar"}
)

func name(names []string, v int) string {
	if v == -1 {
		return "null"
	}
	if v < 0 || v >= len(names) || names[v] == "" {
		return "invalid(" + strconv.Itoa(v) + ")"
	}
	return names[v]
}

func (f BFlavor) String() string    { return name(flavorNames, int(f)) }
func (d DType) String() string      { return name(dNames, int(d)) }
func (d DstarType) String() string  { return name(dstarNames, int(d)) }
func (t TauType) String() string    { return name(tauNames, int(t)) }
func (b BMcType) String() string    { return name(bMcNames, int(b)) }
func (t TauMcType) String() string  { return name(tauMcNames, int(t)) }
func (c CandType) String() string   { return name(candNames, int(c)) }
func (s SampleType) String() string { return name(sampleNames, int(s)) }
