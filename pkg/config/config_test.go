package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-ops/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "warehouse-ops", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, int64(10), cfg.Ledger.DefaultReorderLevel)
	assert.Equal(t, "./testdata/snapshot.json", cfg.Ledger.SeedFile)
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LEDGER_DEFAULT_REORDER_LEVEL", "25")
	t.Setenv("LEDGER_SEED_FILE", "/var/data/snapshot.json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, int64(25), cfg.Ledger.DefaultReorderLevel)
	assert.Equal(t, "/var/data/snapshot.json", cfg.Ledger.SeedFile)
}
