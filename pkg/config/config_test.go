package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Producao-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "producao-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Second, cfg.Planning.LoadTimeout())
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PLANNING_LOAD_TIMEOUT_SECONDS", "3")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("DB_NAME", "fabrica")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, 3*time.Second, cfg.Planning.LoadTimeout())
	assert.False(t, cfg.Metrics.Enabled)
	assert.Contains(t, cfg.DB.ConnectionString(), "/fabrica?sslmode=disable")
}

func TestLoad_TimeoutInvalido(t *testing.T) {
	t.Setenv("PLANNING_LOAD_TIMEOUT_SECONDS", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DatabaseURLTienePrioridad(t *testing.T) {
	c := config.DBConfig{DatabaseURL: "postgres://u:p@db:5432/x", Host: "localhost"}
	assert.Equal(t, "postgres://u:p@db:5432/x", c.ConnectionString())

	c = config.DBConfig{User: "u", Password: "p@ss", Host: "h", Port: 5432, DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@h:5432/d?sslmode=disable", c.ConnectionString())
}
