package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decaygraph/config"
	"github.com/katalvlaran/decaygraph/event"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := write(t, `
input: sp1235r1.root
mc: true
limits:
  gamma: 250
electron_tau_mode: true
pdt:
  file: pdt.dat
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.Input = "sp1235r1.root"
	want.Mc = true
	want.Limits.Gamma = 250
	want.ElectronTauMode = true
	want.Pdt.File = "pdt.dat"
	assert.Equal(t, want, cfg)
	assert.Equal(t, 800, cfg.Limits.Y, "untouched limits keep their defaults")
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(write(t, "limits: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	ok := config.Default()
	ok.Input = "in.root"
	require.NoError(t, ok.Validate())

	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"no input", func(c *config.Config) { c.Input = "" }, config.ErrNoInput},
		{"zero limit", func(c *config.Config) { c.Limits.Mc = 0 }, config.ErrBadLimit},
		{"negative limit", func(c *config.Config) { c.Limits = event.Limits{Y: -1} }, config.ErrBadLimit},
		{"zero max events", func(c *config.Config) { c.MaxEvents = 0 }, config.ErrBadMaxEvents},
		{"negative max events", func(c *config.Config) { c.MaxEvents = -5 }, config.ErrBadMaxEvents},
		{"negative dot depth", func(c *config.Config) { c.DotDepth = -1 }, config.ErrBadDotDepth},
		{"deflate level", func(c *config.Config) { c.CompressionLevel = 10 }, config.ErrBadCompression},
		{"two pdt sources", func(c *config.Config) {
			c.Pdt = config.Pdt{File: "pdt.dat", Driver: "sqlite3", DSN: ":memory:"}
		}, config.ErrPdtSource},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := ok
			c.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), c.want)
		})
	}
}
