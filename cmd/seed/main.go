// seed crea los productos de demostración (Product X, Y, Z) en el almacén
// configurado. Los que ya existen por nombre se omiten.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/bootstrap"
	"github.com/jhoicas/Pedidos-api/pkg/config"
	"github.com/jhoicas/Pedidos-api/pkg/logger"
)

var sampleProducts = []dto.CreateProductRequest{
	{Name: "Product X", Price: decimal.NewFromInt(100), Weight: decimal.RequireFromString("1.5"), Description: "High quality product X"},
	{Name: "Product Y", Price: decimal.NewFromInt(150), Weight: decimal.NewFromInt(2), Description: "Premium product Y"},
	{Name: "Product Z", Price: decimal.NewFromInt(200), Weight: decimal.RequireFromString("2.5"), Description: "Deluxe product Z"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión al almacén")
	}
	defer store.Close(context.Background())

	created, err := seedProducts(ctx, usecase.NewProductUseCase(store.Products, cfg.App.ListLimit))
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar productos")
	}
	log.Info().Strs("created", created).Int("skipped", len(sampleProducts)-len(created)).Msg("semilla aplicada")
}

// seedProducts crea los productos de muestra que falten y devuelve sus nombres.
func seedProducts(ctx context.Context, uc *usecase.ProductUseCase) ([]string, error) {
	existing, err := uc.List(ctx)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(existing))
	for _, p := range existing {
		have[p.Name] = true
	}

	var created []string
	for _, p := range sampleProducts {
		if have[p.Name] {
			continue
		}
		if _, err := uc.Create(ctx, p); err != nil {
			return created, err
		}
		created = append(created, p.Name)
	}
	return created, nil
}
