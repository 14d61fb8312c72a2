package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 65, cfg.Campaign.MinScore)
	assert.Equal(t, "Indiamart", cfg.Campaign.LeadSource)
	assert.Contains(t, cfg.Campaign.IndustryFocus, "Pharma")
	assert.Contains(t, cfg.Campaign.Regions, "India")
	assert.Contains(t, cfg.Campaign.ProductNeeds, "Vacuum Systems")
	assert.Equal(t, "https://api.hubapi.com", cfg.HubSpot.BaseURL)
	assert.InDelta(t, 5.0, cfg.HubSpot.RequestsPerSec, 0.001)
	assert.Equal(t, "https://www.googleapis.com/customsearch/v1", cfg.Search.BaseURL)
	assert.Equal(t, 20, cfg.Search.MaxResults)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
campaign:
  min_score: 80
  lead_source: Event
  regions:
    - Italy
log:
  level: debug
  format: console
hubspot:
  token: test-token
`
	require.NoError(t, os.WriteFile("config.yaml", []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 80, cfg.Campaign.MinScore)
	assert.Equal(t, "Event", cfg.Campaign.LeadSource)
	assert.Equal(t, []string{"Italy"}, cfg.Campaign.Regions)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "test-token", cfg.HubSpot.Token)
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("LEADGEN_HUBSPOT_TOKEN", "env-token")
	t.Setenv("LEADGEN_CAMPAIGN_MIN_SCORE", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.HubSpot.Token)
	assert.Equal(t, 42, cfg.Campaign.MinScore)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))
	assert.NotNil(t, zap.L())
}

func TestInitLogger_BadLevel(t *testing.T) {
	assert.Error(t, InitLogger(LogConfig{Level: "nope", Format: "json"}))
}
