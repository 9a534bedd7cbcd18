package orders

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Pedidos-api/internal/application/dto"
	"github.com/jhoicas/Pedidos-api/internal/application/ports"
	"github.com/jhoicas/Pedidos-api/internal/domain"
	"github.com/jhoicas/Pedidos-api/internal/domain/entity"
	"github.com/jhoicas/Pedidos-api/internal/domain/ordering"
	"github.com/jhoicas/Pedidos-api/internal/domain/repository"
)

// OrderUseCase ciclo de vida de pedidos: creación con asiento de materiales,
// cambios de estado, edición de líneas y cola de prioridades por tercero.
type OrderUseCase struct {
	txRunner  ports.TxRunner
	orderRepo repository.OrderRepository
	materials MaterialRecorder
	listLimit int
	log       zerolog.Logger
	now       func() time.Time
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner ports.TxRunner,
	orderRepo repository.OrderRepository,
	materials MaterialRecorder,
	listLimit int,
	log zerolog.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:  txRunner,
		orderRepo: orderRepo,
		materials: materials,
		listLimit: listLimit,
		log:       log.With().Str("component", "orders").Logger(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create crea el pedido en estado start al final de la cola del tercero,
// registra el asiento de materiales y mueve el saldo, todo en una transacción.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if !domain.ValidID(in.PartyID) {
		return nil, domain.ErrInvalidInput
	}
	if !ordering.ValidOrderType(in.OrderType) {
		return nil, domain.ErrInvalidInput
	}
	lines := toLines(in.Products)
	if err := ordering.ValidateLines(lines); err != nil {
		return nil, err
	}
	var refID *string
	if in.ReferenceOrderID != nil && *in.ReferenceOrderID != "" {
		if !domain.ValidID(*in.ReferenceOrderID) {
			return nil, domain.ErrInvalidInput
		}
		ref := *in.ReferenceOrderID
		refID = &ref
	}

	var order *entity.Order
	err := uc.txRunner.Run(ctx, func(ctx context.Context, repos ports.TxRepos) error {
		// El bloqueo del tercero serializa prioridad y saldo frente a otras escrituras.
		party, err := repos.Parties.GetForUpdate(ctx, in.PartyID)
		if err != nil {
			return err
		}
		if party == nil {
			return domain.ErrNotFound
		}
		if refID != nil {
			ref, err := repos.Orders.GetByID(ctx, *refID)
			if err != nil {
				return err
			}
			if ref == nil {
				return domain.ErrNotFound
			}
		}

		active, err := repos.Orders.ListActiveByParty(ctx, party.ID)
		if err != nil {
			return err
		}
		totalPrice, totalWeight := ordering.Totals(lines)
		now := uc.now()
		order = &entity.Order{
			ID:               domain.NewID(),
			PartyID:          party.ID,
			PartyName:        party.Name,
			OrderType:        in.OrderType,
			Lines:            lines,
			TotalPrice:       totalPrice,
			TotalWeight:      totalWeight,
			Status:           entity.OrderStatusStart,
			Priority:         ordering.NextPriority(active),
			ReferenceOrderID: refID,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := repos.Orders.Create(ctx, order); err != nil {
			return err
		}
		_, err = uc.materials.RecordMaterialEffectInTx(ctx, repos, party, order)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("order_id", order.ID).
		Str("party_id", order.PartyID).
		Str("order_type", order.OrderType).
		Int("priority", order.Priority).
		Str("total_price", order.TotalPrice.String()).
		Msg("pedido creado")
	return ToOrderResponse(order), nil
}

// GetByID obtiene un pedido por ID.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return ToOrderResponse(order), nil
}

// List lista pedidos por prioridad ascendente, con filtros opcionales.
func (uc *OrderUseCase) List(ctx context.Context, partyID, orderType string) ([]dto.OrderResponse, error) {
	if partyID != "" && !domain.ValidID(partyID) {
		return nil, domain.ErrInvalidInput
	}
	if orderType != "" && !ordering.ValidOrderType(orderType) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.orderRepo.List(ctx, repository.OrderFilter{
		PartyID:   partyID,
		OrderType: orderType,
		Limit:     uc.listLimit,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *ToOrderResponse(o))
	}
	return items, nil
}

// Update aplica un PATCH parcial (estado, prioridad y/o líneas).
//
// Al completar, los demás pedidos activos del tercero se renumeran 0..N-1 y el
// completado queda con prioridad entity.CompletedPriority (ignora la prioridad
// enviada). Editar líneas recalcula totales pero NO corrige el asiento de
// materiales ni el saldo registrados al crear el pedido.
func (uc *OrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if !domain.ValidID(id) {
		return nil, domain.ErrInvalidInput
	}
	if in.Status != "" && !ordering.ValidStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	var lines []entity.OrderLine
	if len(in.Products) > 0 {
		lines = toLines(in.Products)
		if err := ordering.ValidateLines(lines); err != nil {
			return nil, err
		}
	}

	var order *entity.Order
	renumbered := 0
	err := uc.txRunner.Run(ctx, func(ctx context.Context, repos ports.TxRepos) error {
		current, err := repos.Orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		if _, err := repos.Parties.GetForUpdate(ctx, current.PartyID); err != nil {
			return err
		}
		// Releer bajo el bloqueo: otra petición pudo completarlo mientras tanto.
		order, err = repos.Orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.IsCompleted() {
			return domain.ErrInvalidState
		}

		completing := false
		if in.Status != "" {
			if err := ordering.CheckTransition(order.Status, in.Status); err != nil {
				return err
			}
			completing = in.Status == entity.OrderStatusCompleted
			order.Status = in.Status
		}

		if completing {
			active, err := repos.Orders.ListActiveByParty(ctx, order.PartyID)
			if err != nil {
				return err
			}
			previous := make(map[string]int, len(active))
			for _, o := range active {
				previous[o.ID] = o.Priority
			}
			now := uc.now()
			for _, a := range ordering.Renumber(active, order.ID) {
				if previous[a.OrderID] == a.Priority {
					continue
				}
				if err := repos.Orders.UpdatePriority(ctx, a.OrderID, a.Priority, now); err != nil {
					return err
				}
				renumbered++
			}
			order.Priority = entity.CompletedPriority
		} else if in.Priority != nil {
			order.Priority = *in.Priority
		}

		if lines != nil {
			order.Lines = lines
			order.TotalPrice, order.TotalWeight = ordering.Totals(lines)
		}
		order.UpdatedAt = uc.now()
		return repos.Orders.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	if order.IsCompleted() {
		uc.log.Info().
			Str("order_id", order.ID).
			Str("party_id", order.PartyID).
			Int("renumbered", renumbered).
			Msg("pedido completado")
	}
	return ToOrderResponse(order), nil
}

// Reorder asigna prioridad = posición a cada pedido de la lista (arrastrar y
// soltar en el cliente). No valida que la lista sea de un solo tercero.
func (uc *OrderUseCase) Reorder(ctx context.Context, orderIDs []string) error {
	seen := make(map[string]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		if !domain.ValidID(id) {
			return domain.ErrInvalidInput
		}
		if _, dup := seen[id]; dup {
			return domain.ErrInvalidInput
		}
		seen[id] = struct{}{}
	}
	if len(orderIDs) == 0 {
		return nil
	}

	return uc.txRunner.Run(ctx, func(ctx context.Context, repos ports.TxRepos) error {
		partySet := make(map[string]struct{})
		for _, id := range orderIDs {
			o, err := repos.Orders.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if o == nil {
				return domain.ErrNotFound
			}
			partySet[o.PartyID] = struct{}{}
		}
		// Bloqueo en orden fijo para no cruzarse con otro reordenamiento.
		partyIDs := make([]string, 0, len(partySet))
		for pid := range partySet {
			partyIDs = append(partyIDs, pid)
		}
		sort.Strings(partyIDs)
		for _, pid := range partyIDs {
			if _, err := repos.Parties.GetForUpdate(ctx, pid); err != nil {
				return err
			}
		}
		now := uc.now()
		for _, a := range ordering.Reorder(orderIDs) {
			o, err := repos.Orders.GetByID(ctx, a.OrderID)
			if err != nil {
				return err
			}
			if o == nil {
				return domain.ErrNotFound
			}
			if o.IsCompleted() {
				return domain.ErrInvalidState
			}
			if err := repos.Orders.UpdatePriority(ctx, a.OrderID, a.Priority, now); err != nil {
				return err
			}
		}
		return nil
	})
}

func toLines(in []dto.OrderLineDTO) []entity.OrderLine {
	lines := make([]entity.OrderLine, 0, len(in))
	for _, p := range in {
		lines = append(lines, entity.OrderLine{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			Price:       p.Price,
			Weight:      p.Weight,
		})
	}
	return lines
}

// ToOrderResponse mapea la entidad a su DTO.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	products := make([]dto.OrderLineDTO, 0, len(o.Lines))
	for _, l := range o.Lines {
		products = append(products, dto.OrderLineDTO{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price,
			Weight:      l.Weight,
		})
	}
	return &dto.OrderResponse{
		ID:               o.ID,
		PartyID:          o.PartyID,
		PartyName:        o.PartyName,
		OrderType:        o.OrderType,
		Products:         products,
		TotalPrice:       o.TotalPrice,
		TotalWeight:      o.TotalWeight,
		Status:           o.Status,
		Priority:         o.Priority,
		ReferenceOrderID: o.ReferenceOrderID,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}
