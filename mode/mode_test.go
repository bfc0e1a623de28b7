package mode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/decaygraph/mode"
)

func TestString(t *testing.T) {
	cases := []struct {
		got  interface{ String() string }
		want string
	}{
		{mode.FlavorB0, "B0"},
		{mode.FlavorNull, "null"},
		{mode.DcKpipi, "Dc_Kpipi"},
		{mode.D0KK, "D0_KK"},
		{mode.DNull, "null"},
		{mode.DType(0), "invalid(0)"},
		{mode.DstarcDcgamma, "Dstarc_Dcgamma"},
		{mode.TauRho, "tau_rho"},
		{mode.BMcDstarstarNonres, "Dstarstar_nonres"},
		{mode.TauMcK, "tau_k"},
		{mode.CandDstarDstarrho, "DstarDstarrho"},
		{mode.SampleB0Dstar, "B0Dstar"},
		{mode.SampleType(9), "invalid(9)"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.got.String())
	}
}
