package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// PartyUseCase casos de uso de terceros (clientes y proveedores).
// El saldo no se modifica aquí: solo lo mueven pedidos y transacciones financieras.
type PartyUseCase struct {
	repo      repository.PartyRepository
	listLimit int
}

// NewPartyUseCase construye el caso de uso.
func NewPartyUseCase(repo repository.PartyRepository, listLimit int) *PartyUseCase {
	return &PartyUseCase{repo: repo, listLimit: listLimit}
}

// Create crea un tercero con saldo 0.
func (uc *PartyUseCase) Create(ctx context.Context, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	party := &entity.Party{
		ID:        domain.NewID(),
		Name:      name,
		Contact:   in.Contact,
		Balance:   decimal.Zero,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, party); err != nil {
		return nil, err
	}
	return ToPartyResponse(party), nil
}

// GetByID obtiene un tercero por ID.
func (uc *PartyUseCase) GetByID(ctx context.Context, id string) (*dto.PartyResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidInput
	}
	party, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, domain.ErrNotFound
	}
	return ToPartyResponse(party), nil
}

// List lista terceros hasta el tope configurado.
func (uc *PartyUseCase) List(ctx context.Context) ([]dto.PartyResponse, error) {
	list, err := uc.repo.List(ctx, uc.listLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToPartyResponse(p))
	}
	return items, nil
}

// Delete elimina un tercero. Sus pedidos y asientos quedan como histórico.
func (uc *PartyUseCase) Delete(ctx context.Context, id string) error {
	if !domain.ValidID(id) {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

// ToPartyResponse mapea la entidad a su DTO.
func ToPartyResponse(p *entity.Party) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:        p.ID,
		Name:      p.Name,
		Contact:   p.Contact,
		Balance:   p.Balance,
		CreatedAt: p.CreatedAt,
	}
}
