package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

type partyDoc struct {
	ID          string               `bson:"_id"`
	Name        string               `bson:"name"`
	Contact     string               `bson:"contact"`
	Balance     primitive.Decimal128 `bson:"balance"`
	LockVersion int64                `bson:"lock_version"`
	CreatedAt   time.Time            `bson:"created_at"`
}

func (d partyDoc) toEntity() (*entity.Party, error) {
	balance, err := fromDecimal128(d.Balance)
	if err != nil {
		return nil, err
	}
	return &entity.Party{ID: d.ID, Name: d.Name, Contact: d.Contact, Balance: balance, CreatedAt: d.CreatedAt}, nil
}

// PartyRepo terceros sobre MongoDB.
type PartyRepo struct {
	coll *mongo.Collection
}

// NewPartyRepository construye el repositorio sobre la colección parties.
func NewPartyRepository(db *mongo.Database) *PartyRepo {
	return &PartyRepo{coll: db.Collection(collParties)}
}

// Create inserta el tercero.
func (r *PartyRepo) Create(ctx context.Context, p *entity.Party) error {
	balance, err := toDecimal128(p.Balance)
	if err != nil {
		return domain.ErrInvalidInput
	}
	_, err = r.coll.InsertOne(ctx, partyDoc{
		ID: p.ID, Name: p.Name, Contact: p.Contact, Balance: balance, CreatedAt: p.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

// GetByID obtiene un tercero; (nil, nil) si no existe.
func (r *PartyRepo) GetByID(ctx context.Context, id string) (*entity.Party, error) {
	var doc partyDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return doc.toEntity()
}

// GetForUpdate incrementa lock_version dentro de la transacción: otra
// transacción que toque el mismo tercero entra en conflicto de escritura y
// WithTransaction la reintenta.
func (r *PartyRepo) GetForUpdate(ctx context.Context, id string) (*entity.Party, error) {
	var doc partyDoc
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"lock_version": 1}}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock party: %w", err)
	}
	return doc.toEntity()
}

// List terceros por nombre.
func (r *PartyRepo) List(ctx context.Context, limit int) ([]*entity.Party, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, findOptions(bsonD("name", 1, "created_at", 1), limit))
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	var docs []partyDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode parties: %w", err)
	}
	list := make([]*entity.Party, 0, len(docs))
	for _, d := range docs {
		p, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

// AddBalance aplica $inc sobre el Decimal128 del saldo.
func (r *PartyRepo) AddBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	inc, err := toDecimal128(delta)
	if err != nil {
		return domain.ErrInvalidInput
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"balance": inc}})
	if err != nil {
		return fmt.Errorf("update party balance: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el tercero; pedidos y libros quedan como histórico.
func (r *PartyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete party: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
