package repository

import (
	"context"

	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PartyRepository define el puerto de persistencia para terceros.
type PartyRepository interface {
	Create(ctx context.Context, party *entity.Party) error
	GetByID(ctx context.Context, id string) (*entity.Party, error)
	// GetForUpdate obtiene el tercero y lo bloquea hasta el fin de la transacción.
	// Serializa escrituras de saldo y renumeraciones de prioridad del mismo tercero.
	GetForUpdate(ctx context.Context, id string) (*entity.Party, error)
	List(ctx context.Context, limit int) ([]*entity.Party, error)
	// AddBalance suma delta al saldo en caché. Solo la usan los casos de uso de libros.
	AddBalance(ctx context.Context, id string, delta decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}
