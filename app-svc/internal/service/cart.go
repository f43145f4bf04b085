package service

import (
	"context"
	"fmt"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// LineInput describes one add-to-cart request.
type LineInput struct {
	Quantity            int                    `json:"quantity"`
	SelectedOptions     domain.SelectedOptions `json:"selectedOptions,omitempty"`
	SpecialInstructions string                 `json:"specialInstructions,omitempty"`
	// ReplaceCart confirms that a cart scoped to another kitchen may be
	// discarded.
	ReplaceCart bool `json:"replaceCart,omitempty"`
}

// CartStore holds the single-kitchen cart. While the cart has items every
// line belongs to the kitchen in kitchenID.
type CartStore struct {
	store
	items     []domain.CartItem
	kitchenID *string
	// revision counts committed mutations.
	revision uint64
}

func NewCartStore(snapshots SnapshotStore, logger logrus.FieldLogger) *CartStore {
	s := &CartStore{}
	s.init(snapshots, nil, logger)
	return s
}

func (s *CartStore) AddItem(ctx context.Context, dish domain.Dish, in LineInput) error {
	if in.Quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conflict := s.kitchenID != nil && *s.kitchenID != dish.KitchenID
	idx := -1
	if !conflict {
		idx = s.indexOf(dish.ID)
	}

	effective := in.SelectedOptions
	if idx >= 0 && effective == nil {
		effective = s.items[idx].SelectedOptions
	}
	if err := dish.ValidateSelection(effective); err != nil {
		return err
	}

	if conflict && !in.ReplaceCart {
		return ErrKitchenConflict
	}

	line := domain.CartItem{
		Dish:                dish.Clone(),
		Quantity:            in.Quantity,
		SelectedOptions:     in.SelectedOptions.Clone(),
		SpecialInstructions: in.SpecialInstructions,
	}

	switch {
	case conflict:
		s.items = []domain.CartItem{line}
	case idx >= 0:
		existing := &s.items[idx]
		existing.Dish = line.Dish
		existing.Quantity += in.Quantity
		if in.SelectedOptions != nil {
			existing.SelectedOptions = line.SelectedOptions
		}
		if in.SpecialInstructions != "" {
			existing.SpecialInstructions = in.SpecialInstructions
		}
	default:
		s.items = append(s.items, line)
	}

	kitchenID := dish.KitchenID
	s.kitchenID = &kitchenID
	s.commit(ctx)
	return nil
}

func (s *CartStore) RemoveItem(ctx context.Context, dishID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.remove(ctx, dishID)
}

// UpdateQuantity sets the quantity of a line. Zero or less removes it.
func (s *CartStore) UpdateQuantity(ctx context.Context, dishID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.remove(ctx, dishID)
		return
	}

	idx := s.indexOf(dishID)
	if idx < 0 {
		return
	}
	s.items[idx].Quantity = quantity
	s.commit(ctx)
}

func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.kitchenID = nil
	s.commit(ctx)
}

// Total is the sum of every line's unit price times quantity.
func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.subtotal().InexactFloat64()
}

func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Snapshot returns a copy that is safe to hand to readers.
func (s *CartStore) Snapshot() domain.CartRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.record()
}

func (s *CartStore) Load(ctx context.Context) error {
	var record domain.CartRecord
	found, err := s.load(ctx, CartKey, &record)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	if !found {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = record.Items
	s.kitchenID = record.KitchenID
	if len(s.items) == 0 {
		s.kitchenID = nil
	}
	return nil
}

func (s *CartStore) commit(ctx context.Context) {
	s.revision++
	s.save(ctx, CartKey, s.record())
}

// snapshotRevision returns the cart together with the revision it was read at.
func (s *CartStore) snapshotRevision() (domain.CartRecord, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.record(), s.revision
}

// clearAt empties the cart only if nothing changed since revision.
func (s *CartStore) clearAt(ctx context.Context, revision uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.revision != revision {
		return false
	}
	s.items = nil
	s.kitchenID = nil
	s.commit(ctx)
	return true
}

// restore puts back a cart taken by clearAt.
func (s *CartStore) restore(ctx context.Context, record domain.CartRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = domain.CloneItems(record.Items)
	s.kitchenID = record.KitchenID
	if len(s.items) == 0 {
		s.items = nil
		s.kitchenID = nil
	}
	s.commit(ctx)
}

func (s *CartStore) subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (s *CartStore) remove(ctx context.Context, dishID string) {
	idx := s.indexOf(dishID)
	if idx < 0 {
		return
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	if len(s.items) == 0 {
		s.items = nil
		s.kitchenID = nil
	}
	s.commit(ctx)
}

func (s *CartStore) indexOf(dishID string) int {
	for i, item := range s.items {
		if item.Dish.ID == dishID {
			return i
		}
	}
	return -1
}

func (s *CartStore) record() domain.CartRecord {
	record := domain.CartRecord{Items: domain.CloneItems(s.items)}
	if record.Items == nil {
		record.Items = []domain.CartItem{}
	}
	if s.kitchenID != nil {
		kitchenID := *s.kitchenID
		record.KitchenID = &kitchenID
	}
	return record
}
