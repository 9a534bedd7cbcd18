package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, 1000, cfg.App.ListLimit)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.JWT.Enabled())
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("STORE_DRIVER", "MONGO")
	t.Setenv("LIST_LIMIT", "50")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "secreto")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("MONGO_DB_NAME", "pruebas")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, StoreMongo, cfg.Store.Driver)
	assert.Equal(t, 50, cfg.App.ListLimit)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.True(t, cfg.JWT.Enabled())
	assert.True(t, cfg.Store.AutoMigrate)
	assert.Equal(t, "pruebas", cfg.Mongo.Database)
}

func TestLoad_RechazaDriverDesconocido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")

	_, err := Load()

	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "pedidos", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/pedidos?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
