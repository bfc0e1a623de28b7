// Package lund holds the particle-type codes (Lund IDs) used by the
// B → D(*) τ ν analysis and a few predicates over them.
//
// Codes are signed; the sign carries charge/conjugation. Every predicate in
// this package works on the absolute value.
package lund

// Lund IDs of frequently encountered particles.
const (
	Upsilon = 70553
	B0      = 511
	Bc      = 521
	D0      = 421
	Dc      = 411
	Dstar0  = 423
	Dstarc  = 413
	KS      = 310
	K0      = 311
	Rho     = 213
	Pi0     = 111
	K       = 321
	Pi      = 211
	E       = 11
	NuE     = 12
	Mu      = 13
	NuMu    = 14
	Tau     = 15
	NuTau   = 16
	Gamma   = 22
	Proton  = 2212
	Neutron = 2112
)

// Abs returns |code|.
func Abs(code int) int {
	if code < 0 {
		return -code
	}
	return code
}

// IsB reports whether code is a neutral or charged B meson.
func IsB(code int) bool {
	a := Abs(code)
	return a == B0 || a == Bc
}

// IsD reports whether code is a D⁰ or D±.
func IsD(code int) bool {
	a := Abs(code)
	return a == D0 || a == Dc
}

// IsDstar reports whether code is a D*⁰ or D*±.
func IsDstar(code int) bool {
	a := Abs(code)
	return a == Dstar0 || a == Dstarc
}

// IsFinalState reports whether code is one of the particles the detector
// observes directly: e, μ, π±, K±, γ, p, n.
func IsFinalState(code int) bool {
	switch Abs(code) {
	case E, Mu, Pi, K, Gamma, Proton, Neutron:
		return true
	}
	return false
}

// IsNeutrino reports whether code is any neutrino flavour.
func IsNeutrino(code int) bool {
	switch Abs(code) {
	case NuE, NuMu, NuTau:
		return true
	}
	return false
}
