package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Pedidos-api/internal/application/usecase"
	"github.com/jhoicas/Pedidos-api/internal/infrastructure/memory"
)

func TestSeedProducts_Idempotente(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()), 1000)
	ctx := context.Background()

	created, err := seedProducts(ctx, uc)
	require.NoError(t, err)
	assert.Equal(t, []string{"Product X", "Product Y", "Product Z"}, created)

	created, err = seedProducts(ctx, uc)
	require.NoError(t, err)
	assert.Empty(t, created)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}
