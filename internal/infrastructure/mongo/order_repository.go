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

var _ repository.OrderRepository = (*OrderRepo)(nil)

type lineDoc struct {
	ProductID   string               `bson:"product_id"`
	ProductName string               `bson:"product_name"`
	Quantity    primitive.Decimal128 `bson:"quantity"`
	Price       primitive.Decimal128 `bson:"price"`
	Weight      primitive.Decimal128 `bson:"weight"`
}

type orderDoc struct {
	ID               string               `bson:"_id"`
	PartyID          string               `bson:"party_id"`
	PartyName        string               `bson:"party_name"`
	OrderType        string               `bson:"order_type"`
	Products         []lineDoc            `bson:"products"`
	TotalPrice       primitive.Decimal128 `bson:"total_price"`
	TotalWeight      primitive.Decimal128 `bson:"total_weight"`
	Status           string               `bson:"status"`
	Priority         int                  `bson:"priority"`
	ReferenceOrderID *string              `bson:"reference_order_id"`
	CreatedAt        time.Time            `bson:"created_at"`
	UpdatedAt        time.Time            `bson:"updated_at"`
}

func newOrderDoc(o *entity.Order) (*orderDoc, error) {
	doc := &orderDoc{
		ID: o.ID, PartyID: o.PartyID, PartyName: o.PartyName, OrderType: o.OrderType,
		Status: o.Status, Priority: o.Priority, ReferenceOrderID: o.ReferenceOrderID,
		CreatedAt: o.CreatedAt, UpdatedAt: o.UpdatedAt,
		Products: make([]lineDoc, 0, len(o.Lines)),
	}
	var err error
	if doc.TotalPrice, err = toDecimal128(o.TotalPrice); err != nil {
		return nil, err
	}
	if doc.TotalWeight, err = toDecimal128(o.TotalWeight); err != nil {
		return nil, err
	}
	for _, l := range o.Lines {
		ld := lineDoc{ProductID: l.ProductID, ProductName: l.ProductName}
		if ld.Quantity, err = toDecimal128(l.Quantity); err != nil {
			return nil, err
		}
		if ld.Price, err = toDecimal128(l.Price); err != nil {
			return nil, err
		}
		if ld.Weight, err = toDecimal128(l.Weight); err != nil {
			return nil, err
		}
		doc.Products = append(doc.Products, ld)
	}
	return doc, nil
}

func (d orderDoc) toEntity() (*entity.Order, error) {
	o := &entity.Order{
		ID: d.ID, PartyID: d.PartyID, PartyName: d.PartyName, OrderType: d.OrderType,
		Status: d.Status, Priority: d.Priority, ReferenceOrderID: d.ReferenceOrderID,
		CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
		Lines: make([]entity.OrderLine, 0, len(d.Products)),
	}
	var err error
	if o.TotalPrice, err = fromDecimal128(d.TotalPrice); err != nil {
		return nil, err
	}
	if o.TotalWeight, err = fromDecimal128(d.TotalWeight); err != nil {
		return nil, err
	}
	for _, ld := range d.Products {
		l := entity.OrderLine{ProductID: ld.ProductID, ProductName: ld.ProductName}
		if l.Quantity, err = fromDecimal128(ld.Quantity); err != nil {
			return nil, err
		}
		if l.Price, err = fromDecimal128(ld.Price); err != nil {
			return nil, err
		}
		if l.Weight, err = fromDecimal128(ld.Weight); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, l)
	}
	return o, nil
}

// OrderRepo pedidos sobre MongoDB con las líneas embebidas.
type OrderRepo struct {
	coll *mongo.Collection
}

// NewOrderRepository construye el repositorio sobre la colección orders.
func NewOrderRepository(db *mongo.Database) *OrderRepo {
	return &OrderRepo{coll: db.Collection(collOrders)}
}

var prioritySort = bsonD("priority", 1, "created_at", 1, "_id", 1)

// Create inserta el pedido.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	doc, err := newOrderDoc(o)
	if err != nil {
		return domain.ErrInvalidInput
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var doc orderDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return doc.toEntity()
}

// List pedidos por prioridad ascendente.
func (r *OrderRepo) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	q := bson.M{}
	if filter.PartyID != "" {
		q["party_id"] = filter.PartyID
	}
	if filter.OrderType != "" {
		q["order_type"] = filter.OrderType
	}
	return r.find(ctx, q, filter.Limit)
}

// ListActiveByParty pedidos start/inprocess del tercero.
func (r *OrderRepo) ListActiveByParty(ctx context.Context, partyID string) ([]*entity.Order, error) {
	return r.find(ctx, bson.M{
		"party_id": partyID,
		"status":   bson.M{"$in": entity.ActiveStatuses},
	}, 0)
}

func (r *OrderRepo) find(ctx context.Context, q bson.M, limit int) ([]*entity.Order, error) {
	cursor, err := r.coll.Find(ctx, q, findOptions(prioritySort, limit))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	list := make([]*entity.Order, 0, len(docs))
	for _, d := range docs {
		o, err := d.toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, nil
}

// Update sobrescribe los campos mutables.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	doc, err := newOrderDoc(o)
	if err != nil {
		return domain.ErrInvalidInput
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": o.ID}, bson.M{"$set": bson.M{
		"products":     doc.Products,
		"total_price":  doc.TotalPrice,
		"total_weight": doc.TotalWeight,
		"status":       doc.Status,
		"priority":     doc.Priority,
		"updated_at":   doc.UpdatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePriority cambia solo la prioridad.
func (r *OrderRepo) UpdatePriority(ctx context.Context, id string, priority int, updatedAt time.Time) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"priority":   priority,
		"updated_at": updatedAt,
	}})
	if err != nil {
		return fmt.Errorf("update order priority: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
