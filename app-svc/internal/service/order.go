package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CancelPolicy decides which statuses an order may be cancelled from.
type CancelPolicy int

const (
	// CancelAnyOpen allows cancelling any order that is not delivered or
	// already cancelled.
	CancelAnyOpen CancelPolicy = iota
	// CancelBeforePreparing allows cancelling only while the kitchen has not
	// started on the order.
	CancelBeforePreparing
)

func (p CancelPolicy) allows(status domain.OrderStatus) bool {
	if status.IsTerminal() {
		return false
	}
	if p == CancelBeforePreparing {
		return status.BeforePreparing()
	}
	return true
}

type PlaceOrderRequest struct {
	Items           []domain.CartItem
	DeliveryAddress string
	DeliveryTime    string
	Kitchen         domain.KitchenSummary
	Total           float64
}

// OrderStore keeps order history newest first plus the most recently placed
// order.
type OrderStore struct {
	store
	policy CancelPolicy
	orders []domain.Order
	active *domain.Order
}

func NewOrderStore(snapshots SnapshotStore, publisher EventPublisher, logger logrus.FieldLogger, policy CancelPolicy) *OrderStore {
	s := &OrderStore{policy: policy}
	s.init(snapshots, publisher, logger)
	return s
}

func (s *OrderStore) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (domain.Order, error) {
	if len(req.Items) == 0 {
		return domain.Order{}, ErrEmptyOrder
	}

	s.mu.Lock()
	order := domain.Order{
		ID:              s.newID(),
		Items:           domain.CloneItems(req.Items),
		Status:          domain.StatusPending,
		Total:           req.Total,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryTime:    req.DeliveryTime,
		CreatedAt:       s.now(),
		Kitchen:         req.Kitchen,
	}
	s.orders = append([]domain.Order{order}, s.orders...)
	active := cloneOrder(order)
	s.active = &active
	s.save(ctx, OrderKey, s.record())
	s.mu.Unlock()

	s.publish(ctx, domain.OrderPlacedEvent(order, order.CreatedAt))
	return cloneOrder(order), nil
}

func (s *OrderStore) GetOrderByID(id string) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Order{}, false
	}
	return cloneOrder(s.orders[idx]), true
}

func (s *OrderStore) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		orders = append(orders, cloneOrder(order))
	}
	return orders
}

func (s *OrderStore) ActiveOrder() (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return domain.Order{}, false
	}
	return cloneOrder(*s.active), true
}

func (s *OrderStore) ConfirmOrder(ctx context.Context, id string) (domain.Order, error) {
	return s.transition(ctx, id, func(from domain.OrderStatus) (domain.OrderStatus, bool) {
		return domain.StatusConfirmed, from == domain.StatusPending
	}, domain.StatusConfirmed)
}

// AdvanceOrder moves the order one step along the delivery flow.
func (s *OrderStore) AdvanceOrder(ctx context.Context, id string) (domain.Order, error) {
	return s.transition(ctx, id, func(from domain.OrderStatus) (domain.OrderStatus, bool) {
		return from.Next()
	}, "")
}

func (s *OrderStore) CancelOrder(ctx context.Context, id string) (domain.Order, error) {
	return s.transition(ctx, id, func(from domain.OrderStatus) (domain.OrderStatus, bool) {
		return domain.StatusCancelled, s.policy.allows(from)
	}, domain.StatusCancelled)
}

// LoadInitialOrders installs seeds only when there is no history yet.
func (s *OrderStore) LoadInitialOrders(ctx context.Context, seeds []domain.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.orders) > 0 || len(seeds) == 0 {
		return false
	}
	s.orders = make([]domain.Order, 0, len(seeds))
	for _, order := range seeds {
		s.orders = append(s.orders, cloneOrder(order))
	}
	s.save(ctx, OrderKey, s.record())
	return true
}

func (s *OrderStore) Load(ctx context.Context) error {
	var record domain.OrderRecord
	found, err := s.load(ctx, OrderKey, &record)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	if !found {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = record.Orders
	s.active = record.ActiveOrder
	return nil
}

func (s *OrderStore) transition(
	ctx context.Context,
	id string,
	next func(from domain.OrderStatus) (domain.OrderStatus, bool),
	target domain.OrderStatus,
) (domain.Order, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.Order{}, ErrOrderNotFound
	}

	from := s.orders[idx].Status
	to, ok := next(from)
	if !ok {
		s.mu.Unlock()
		return domain.Order{}, &TransitionError{OrderID: id, From: from, To: target}
	}

	s.orders[idx].Status = to
	if s.active != nil && s.active.ID == id {
		s.active.Status = to
	}
	s.save(ctx, OrderKey, s.record())
	order := cloneOrder(s.orders[idx])
	at := s.now()
	s.mu.Unlock()

	s.publish(ctx, domain.Event{
		Type:      domain.EventOrderStatusChanged,
		OrderID:   order.ID,
		KitchenID: order.Kitchen.ID,
		Status:    order.Status,
		Timestamp: at,
	})
	return order, nil
}

// newID returns an id in the ORD-XXXXXXXX form that no stored order uses.
func (s *OrderStore) newID() string {
	for {
		raw := strings.ReplaceAll(uuid.NewString(), "-", "")
		id := "ORD-" + strings.ToUpper(raw[:8])
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *OrderStore) indexOf(id string) int {
	for i, order := range s.orders {
		if order.ID == id {
			return i
		}
	}
	return -1
}

func (s *OrderStore) record() domain.OrderRecord {
	record := domain.OrderRecord{Orders: make([]domain.Order, 0, len(s.orders))}
	for _, order := range s.orders {
		record.Orders = append(record.Orders, cloneOrder(order))
	}
	if s.active != nil {
		active := cloneOrder(*s.active)
		record.ActiveOrder = &active
	}
	return record
}

func cloneOrder(order domain.Order) domain.Order {
	order.Items = domain.CloneItems(order.Items)
	return order
}
