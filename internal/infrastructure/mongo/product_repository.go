package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

type productDoc struct {
	ID          string               `bson:"_id"`
	Name        string               `bson:"name"`
	Price       primitive.Decimal128 `bson:"price"`
	Weight      primitive.Decimal128 `bson:"weight"`
	Description string               `bson:"description"`
	CreatedAt   time.Time            `bson:"created_at"`
}

func (d productDoc) toEntity() (*entity.Product, error) {
	price, err := fromDecimal128(d.Price)
	if err != nil {
		return nil, err
	}
	weight, err := fromDecimal128(d.Weight)
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID: d.ID, Name: d.Name, Price: price, Weight: weight,
		Description: d.Description, CreatedAt: d.CreatedAt,
	}, nil
}

// ProductRepo catálogo de productos sobre MongoDB.
type ProductRepo struct {
	coll *mongo.Collection
}

// NewProductRepository construye el repositorio sobre la colección products.
func NewProductRepository(db *mongo.Database) *ProductRepo {
	return &ProductRepo{coll: db.Collection(collProducts)}
}

// Create inserta el producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	price, err := toDecimal128(p.Price)
	if err != nil {
		return domain.ErrInvalidInput
	}
	weight, err := toDecimal128(p.Weight)
	if err != nil {
		return domain.ErrInvalidInput
	}
	_, err = r.coll.InsertOne(ctx, productDoc{
		ID: p.ID, Name: p.Name, Price: price, Weight: weight,
		Description: p.Description, CreatedAt: p.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return doc.toEntity()
}

// List productos por nombre.
func (r *ProductRepo) List(ctx context.Context, limit int) ([]*entity.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, findOptions(bsonD("name", 1, "created_at", 1), limit))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	list := make([]*entity.Product, 0, len(docs))
	for _, d := range docs {
		p, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

// Delete elimina el producto.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
