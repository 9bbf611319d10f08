package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerenv/internal/engine"
	"github.com/lox/pokerenv/internal/env"
)

func writeVariants(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "variants.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cat, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.NotNil(t, cat.Find("nlhe"))
	assert.NotNil(t, cat.Find("fixed-limit-stud"))
	assert.NotNil(t, cat.Find("single-draw-lowball"))
}

func TestLoadParsesVariantBlocks(t *testing.T) {
	path := writeVariants(t, `
variant "plo-style" {
  betting         = "pot-limit"
  blinds          = [1, 2]
  starting_stacks = [100]
  sizing_menu     = [4, 8, 16]

  street "preflop" {
    down_deals = 4
  }
  street "flop" {
    board_deals = 3
  }
}
`)
	cat, err := Load(path)
	require.NoError(t, err)

	v := cat.Find("plo-style")
	require.NotNil(t, v)
	assert.Equal(t, "pot-limit", v.Betting)
	assert.Equal(t, []int{1, 2}, v.Blinds)
	require.Len(t, v.Streets, 2)
	assert.Equal(t, "preflop", v.Streets[0].Name)
	assert.Equal(t, 4, v.Streets[0].DownDeals)
	assert.Equal(t, 3, v.Streets[1].BoardDeals)
}

func TestLoadRejectsBadVariants(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "unknown betting structure",
			body: `
variant "x" {
  betting         = "wager-limit"
  starting_stacks = [100]
  street "one" {}
}`,
		},
		{
			name: "no streets",
			body: `
variant "x" {
  betting         = "no-limit"
  starting_stacks = [100]
}`,
		},
		{
			name: "duplicate names",
			body: `
variant "x" {
  betting         = "no-limit"
  starting_stacks = [100]
  street "one" {}
}
variant "x" {
  betting         = "no-limit"
  starting_stacks = [100]
  street "one" {}
}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeVariants(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestResolveBuildsEnvironmentConfig(t *testing.T) {
	cat := DefaultCatalogue()

	cfg, err := cat.Resolve("nlhe", 6)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Seats)
	assert.Equal(t, engine.NoLimit, cfg.Betting)
	assert.Equal(t, engine.High, cfg.HandType)
	require.Len(t, cfg.Streets, 4)
	assert.Equal(t, 2, cfg.Streets[0].DownDeals)

	_, err = cat.Resolve("no-such-variant", 2)
	assert.Error(t, err)
}

func TestResolveLowballVariant(t *testing.T) {
	cfg, err := DefaultCatalogue().Resolve("single-draw-lowball", 2)
	require.NoError(t, err)
	assert.Equal(t, engine.DeuceToSevenLow, cfg.HandType)
	require.Len(t, cfg.Streets, 2)
	assert.True(t, cfg.Streets[1].Draw)
}

func TestDefaultCatalogueResolvesEverywhere(t *testing.T) {
	cat := DefaultCatalogue()
	require.NoError(t, cat.Validate())
	for _, name := range cat.Names() {
		cfg, err := cat.Resolve(name, 2)
		require.NoError(t, err, "variant %s", name)
		_, err = env.New(cfg, log.New(io.Discard))
		assert.NoError(t, err, "variant %s should build a valid environment", name)
	}
}
