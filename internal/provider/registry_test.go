package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout-engine/internal/config"
	"jobscout-engine/internal/provider/util"
)

func TestBuildFixedRegistrationOrder(t *testing.T) {
	var cfg config.Config
	cfg.Sources.JSearch.Enabled = true
	cfg.Sources.Adzuna.Enabled = true
	cfg.Sources.Remotive.Enabled = true
	cfg.Sources.Greenhouse.Enabled = true
	config.Normalize(&cfg)

	got := Build(cfg, Credentials{}, util.NewHostLimiter(1, 1))

	require.Len(t, got, 4)
	assert.Equal(t, "jsearch", got[0].Name())
	assert.Equal(t, "adzuna", got[1].Name())
	assert.Equal(t, "remotive", got[2].Name())
	assert.Equal(t, "greenhouse", got[3].Name())
}

func TestBuildCarriesConfiguredPriorities(t *testing.T) {
	var cfg config.Config
	cfg.Sources.JSearch.Enabled = true
	cfg.Sources.JSearch.Priority = 5
	cfg.Sources.Reed.Enabled = true
	cfg.Sources.Reed.Priority = 1
	config.Normalize(&cfg)

	got := Build(cfg, Credentials{}, util.NewHostLimiter(1, 1))

	require.Len(t, got, 2)
	// registration order is declaration order, not priority order
	assert.Equal(t, "jsearch", got[0].Name())
	assert.Equal(t, 5, got[0].Priority)
	assert.Equal(t, "reed", got[1].Name())
	assert.Equal(t, 1, got[1].Priority)
}

func TestBuildDisabledSourcesOmitted(t *testing.T) {
	var cfg config.Config
	config.Normalize(&cfg)

	assert.Empty(t, Build(cfg, Credentials{}, util.NewHostLimiter(1, 1)))
}
