package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	repo      repository.ProductRepository
	listLimit int
}

// NewProductUseCase construye el caso de uso. listLimit es el tope de resultados por listado.
func NewProductUseCase(repo repository.ProductRepository, listLimit int) *ProductUseCase {
	return &ProductUseCase{repo: repo, listLimit: listLimit}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price.IsNegative() || in.Weight.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:          domain.NewID(),
		Name:        name,
		Price:       in.Price,
		Weight:      in.Weight,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos hasta el tope configurado.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx, uc.listLimit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto por ID. Los pedidos existentes conservan su copia.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if !domain.ValidID(id) {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Weight:      p.Weight,
		Description: p.Description,
	}
}
