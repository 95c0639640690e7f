package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "Asia/Seoul", cfg.App.Timezone)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
	assert.False(t, cfg.Sync.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Sync.PushTimeout)
	assert.Equal(t, filepath.Join("./data", "orders.json"), cfg.Storage.OrdersFile())
	assert.Equal(t, filepath.Join("./data", "session.json"), cfg.Storage.SessionFile())
}

func TestFromViper_EnvSobrescribe(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("SYNC_ENABLED", "true")
	v.Set("DATA_DIR", "/tmp/pedidos")
	v.Set("APP_TIMEZONE", "UTC")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Sync.Enabled)
	assert.Equal(t, "/tmp/pedidos", cfg.Storage.DataDir)
	assert.Equal(t, time.UTC, cfg.App.Location())
}

func TestFromViper_PuertoInvalidoUsaDefecto(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "no-es-numero")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestFromViper_DataDirVacio(t *testing.T) {
	v := viper.New()
	v.Set("DATA_DIR", "")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "pedidos", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/pedidos?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestAppConfig_ZonaInvalidaUsaUTC(t *testing.T) {
	assert.Equal(t, time.UTC, AppConfig{Timezone: "No/Existe"}.Location())
}
