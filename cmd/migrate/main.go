// migrate prepara el almacén configurado: aplica el esquema SQL embebido en
// PostgreSQL o crea los índices en MongoDB.
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/bootstrap"
	"github.com/jhoicas/Pedidos-api/pkg/config"
	"github.com/jhoicas/Pedidos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	// OpenStore no debe migrar por su cuenta: aquí se hace explícito.
	cfg.Store.AutoMigrate = false

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}
	defer store.Close(context.Background())

	applied, err := store.Prepare(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("store", store.Driver).Msg("migración")
	}
	log.Info().Str("store", store.Driver).Strs("applied", applied).Msg("migración completada")
}
