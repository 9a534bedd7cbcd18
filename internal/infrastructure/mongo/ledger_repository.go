package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	_ repository.MaterialTransactionRepository  = (*MaterialTransactionRepo)(nil)
	_ repository.FinancialTransactionRepository = (*FinancialTransactionRepo)(nil)
)

var newestFirst = bsonD("created_at", -1, "_id", -1)

func ledgerQuery(filter repository.LedgerFilter) bson.M {
	if filter.PartyID == "" {
		return bson.M{}
	}
	return bson.M{"party_id": filter.PartyID}
}

type materialDoc struct {
	ID          string               `bson:"_id"`
	PartyID     string               `bson:"party_id"`
	PartyName   string               `bson:"party_name"`
	OrderID     string               `bson:"order_id"`
	OrderType   string               `bson:"order_type"`
	Amount      primitive.Decimal128 `bson:"amount"`
	Description string               `bson:"description"`
	CreatedAt   time.Time            `bson:"created_at"`
}

// MaterialTransactionRepo libro de materiales sobre MongoDB.
type MaterialTransactionRepo struct {
	coll *mongo.Collection
}

// NewMaterialTransactionRepository construye el repositorio.
func NewMaterialTransactionRepository(db *mongo.Database) *MaterialTransactionRepo {
	return &MaterialTransactionRepo{coll: db.Collection(collMaterials)}
}

// Create agrega un asiento; el índice único sobre order_id impide duplicados.
func (r *MaterialTransactionRepo) Create(ctx context.Context, t *entity.MaterialTransaction) error {
	amount, err := toDecimal128(t.Amount)
	if err != nil {
		return domain.ErrInvalidInput
	}
	_, err = r.coll.InsertOne(ctx, materialDoc{
		ID: t.ID, PartyID: t.PartyID, PartyName: t.PartyName, OrderID: t.OrderID,
		OrderType: t.OrderType, Amount: amount, Description: t.Description, CreatedAt: t.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material transaction: %w", err)
	}
	return nil
}

// List asientos del más reciente al más antiguo.
func (r *MaterialTransactionRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.MaterialTransaction, error) {
	cursor, err := r.coll.Find(ctx, ledgerQuery(filter), findOptions(newestFirst, filter.Limit))
	if err != nil {
		return nil, fmt.Errorf("list material transactions: %w", err)
	}
	var docs []materialDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode material transactions: %w", err)
	}
	list := make([]*entity.MaterialTransaction, 0, len(docs))
	for _, d := range docs {
		amount, err := fromDecimal128(d.Amount)
		if err != nil {
			return nil, err
		}
		list = append(list, &entity.MaterialTransaction{
			ID: d.ID, PartyID: d.PartyID, PartyName: d.PartyName, OrderID: d.OrderID,
			OrderType: d.OrderType, Amount: amount, Description: d.Description, CreatedAt: d.CreatedAt,
		})
	}
	return list, nil
}

type financialDoc struct {
	ID            string               `bson:"_id"`
	PartyID       string               `bson:"party_id"`
	PartyName     string               `bson:"party_name"`
	Amount        primitive.Decimal128 `bson:"amount"`
	PaymentType   string               `bson:"payment_type"`
	PaymentMethod string               `bson:"payment_method"`
	Description   string               `bson:"description"`
	CreatedAt     time.Time            `bson:"created_at"`
}

// FinancialTransactionRepo libro financiero sobre MongoDB.
type FinancialTransactionRepo struct {
	coll *mongo.Collection
}

// NewFinancialTransactionRepository construye el repositorio.
func NewFinancialTransactionRepository(db *mongo.Database) *FinancialTransactionRepo {
	return &FinancialTransactionRepo{coll: db.Collection(collFinancials)}
}

// Create agrega un asiento financiero.
func (r *FinancialTransactionRepo) Create(ctx context.Context, t *entity.FinancialTransaction) error {
	amount, err := toDecimal128(t.Amount)
	if err != nil {
		return domain.ErrInvalidInput
	}
	_, err = r.coll.InsertOne(ctx, financialDoc{
		ID: t.ID, PartyID: t.PartyID, PartyName: t.PartyName, Amount: amount,
		PaymentType: t.PaymentType, PaymentMethod: t.PaymentMethod, Description: t.Description, CreatedAt: t.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert financial transaction: %w", err)
	}
	return nil
}

// List asientos del más reciente al más antiguo.
func (r *FinancialTransactionRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.FinancialTransaction, error) {
	cursor, err := r.coll.Find(ctx, ledgerQuery(filter), findOptions(newestFirst, filter.Limit))
	if err != nil {
		return nil, fmt.Errorf("list financial transactions: %w", err)
	}
	var docs []financialDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode financial transactions: %w", err)
	}
	list := make([]*entity.FinancialTransaction, 0, len(docs))
	for _, d := range docs {
		amount, err := fromDecimal128(d.Amount)
		if err != nil {
			return nil, err
		}
		list = append(list, &entity.FinancialTransaction{
			ID: d.ID, PartyID: d.PartyID, PartyName: d.PartyName, Amount: amount,
			PaymentType: d.PaymentType, PaymentMethod: d.PaymentMethod, Description: d.Description, CreatedAt: d.CreatedAt,
		})
	}
	return list, nil
}
