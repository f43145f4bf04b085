package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/catalog"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/mocks"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/service"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustDish(t *testing.T, id string) domain.Dish {
	t.Helper()
	dish, ok := catalog.Default().Dish(id)
	require.True(t, ok, "dish %s", id)
	return dish
}

func hot() domain.SelectedOptions {
	return domain.SelectedOptions{"Spice Level": {"hot"}}
}

func newCart(t *testing.T) (*service.CartStore, *storage.MemoryStore) {
	t.Helper()
	logger, _ := test.NewNullLogger()
	snapshots := storage.NewMemoryStore()
	return service.NewCartStore(snapshots, logger), snapshots
}

func TestCartStore_AddItem(t *testing.T) {
	ctx := context.Background()
	butterChicken := mustDish(t, "101")

	tests := []struct {
		name      string
		input     service.LineInput
		wantErr   error
		wantCount int
	}{
		{
			name:      "valid selection",
			input:     service.LineInput{Quantity: 2, SelectedOptions: hot()},
			wantCount: 2,
		},
		{
			name:    "zero quantity",
			input:   service.LineInput{Quantity: 0, SelectedOptions: hot()},
			wantErr: service.ErrInvalidQuantity,
		},
		{
			name:    "negative quantity",
			input:   service.LineInput{Quantity: -1, SelectedOptions: hot()},
			wantErr: service.ErrInvalidQuantity,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cart, _ := newCart(t)
			err := cart.AddItem(ctx, butterChicken, testCase.input)
			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Equal(t, testCase.wantCount, cart.ItemCount())
		})
	}
}

func TestCartStore_AddItem_MissingRequiredSelection(t *testing.T) {
	cart, _ := newCart(t)

	err := cart.AddItem(context.Background(), mustDish(t, "101"), service.LineInput{Quantity: 1})

	var selErr *domain.SelectionError
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, []string{"Spice Level"}, selErr.Missing)
	assert.Zero(t, cart.ItemCount())
	assert.Nil(t, cart.Snapshot().KitchenID)
}

func TestCartStore_TwoLineTotal(t *testing.T) {
	ctx := context.Background()
	cart, snapshots := newCart(t)

	require.NoError(t, cart.AddItem(ctx, mustDish(t, "101"), service.LineInput{Quantity: 2, SelectedOptions: hot()}))
	assert.Equal(t, 698.0, cart.Total())

	record := cart.Snapshot()
	require.NotNil(t, record.KitchenID)
	assert.Equal(t, "1", *record.KitchenID)

	var persisted domain.CartRecord
	found, err := snapshots.Load(ctx, service.CartKey, &persisted)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, persisted.Items, 1)
	assert.Equal(t, "1", *persisted.KitchenID)
}

func TestCartStore_MergesSameDish(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)
	dish := mustDish(t, "101")

	require.NoError(t, cart.AddItem(ctx, dish, service.LineInput{Quantity: 1, SelectedOptions: hot(), SpecialInstructions: "no onions"}))
	require.NoError(t, cart.AddItem(ctx, dish, service.LineInput{Quantity: 2}))

	record := cart.Snapshot()
	require.Len(t, record.Items, 1)
	assert.Equal(t, 3, record.Items[0].Quantity)
	assert.Equal(t, hot(), record.Items[0].SelectedOptions)
	assert.Equal(t, "no onions", record.Items[0].SpecialInstructions)

	withNaan := domain.SelectedOptions{"Spice Level": {"mild"}, "Add-ons": {"naan"}}
	require.NoError(t, cart.AddItem(ctx, dish, service.LineInput{Quantity: 1, SelectedOptions: withNaan, SpecialInstructions: "extra spicy"}))

	record = cart.Snapshot()
	require.Len(t, record.Items, 1)
	assert.Equal(t, 4, record.Items[0].Quantity)
	assert.Equal(t, withNaan, record.Items[0].SelectedOptions)
	assert.Equal(t, "extra spicy", record.Items[0].SpecialInstructions)
}

func TestCartStore_KitchenConflict(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	require.NoError(t, cart.AddItem(ctx, mustDish(t, "101"), service.LineInput{Quantity: 2, SelectedOptions: hot()}))

	bowl := mustDish(t, "202")
	err := cart.AddItem(ctx, bowl, service.LineInput{Quantity: 1})
	assert.ErrorIs(t, err, service.ErrKitchenConflict)

	record := cart.Snapshot()
	require.Len(t, record.Items, 1)
	assert.Equal(t, "101", record.Items[0].Dish.ID)
	assert.Equal(t, "1", *record.KitchenID)
	assert.Equal(t, 698.0, cart.Total())

	require.NoError(t, cart.AddItem(ctx, bowl, service.LineInput{Quantity: 1, ReplaceCart: true}))

	record = cart.Snapshot()
	require.Len(t, record.Items, 1)
	assert.Equal(t, "202", record.Items[0].Dish.ID)
	assert.Equal(t, "2", *record.KitchenID)
}

func TestCartStore_ConflictWithInvalidSelection(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)
	require.NoError(t, cart.AddItem(ctx, mustDish(t, "202"), service.LineInput{Quantity: 1}))

	err := cart.AddItem(ctx, mustDish(t, "101"), service.LineInput{Quantity: 1, ReplaceCart: true})

	var selErr *domain.SelectionError
	assert.True(t, errors.As(err, &selErr))
	assert.Equal(t, "2", *cart.Snapshot().KitchenID)
}

func TestCartStore_UpdateQuantityAndRemove(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)

	require.NoError(t, cart.AddItem(ctx, mustDish(t, "101"), service.LineInput{Quantity: 1, SelectedOptions: hot()}))
	require.NoError(t, cart.AddItem(ctx, mustDish(t, "104"), service.LineInput{Quantity: 1}))

	cart.UpdateQuantity(ctx, "104", 3)
	assert.Equal(t, 4, cart.ItemCount())
	assert.Equal(t, 349.0+3*399.0, cart.Total())

	cart.UpdateQuantity(ctx, "missing", 5)
	assert.Equal(t, 4, cart.ItemCount())

	cart.UpdateQuantity(ctx, "104", 0)
	assert.Equal(t, 1, cart.ItemCount())

	cart.RemoveItem(ctx, "101")
	record := cart.Snapshot()
	assert.Empty(t, record.Items)
	assert.Nil(t, record.KitchenID)
}

func TestCartStore_UpdateQuantityZeroEqualsRemove(t *testing.T) {
	ctx := context.Background()
	updated, _ := newCart(t)
	removed, _ := newCart(t)

	for _, cart := range []*service.CartStore{updated, removed} {
		require.NoError(t, cart.AddItem(ctx, mustDish(t, "102"), service.LineInput{Quantity: 2}))
		require.NoError(t, cart.AddItem(ctx, mustDish(t, "104"), service.LineInput{Quantity: 1}))
	}

	updated.UpdateQuantity(ctx, "102", 0)
	removed.RemoveItem(ctx, "102")

	assert.Equal(t, removed.Snapshot(), updated.Snapshot())
}

func TestCartStore_TotalMonotone(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)
	dish := mustDish(t, "101")

	require.NoError(t, cart.AddItem(ctx, dish, service.LineInput{Quantity: 1, SelectedOptions: hot()}))
	previous := cart.Total()

	for quantity := 2; quantity <= 5; quantity++ {
		cart.UpdateQuantity(ctx, dish.ID, quantity)
		assert.GreaterOrEqual(t, cart.Total(), previous)
		previous = cart.Total()
	}

	require.NoError(t, cart.AddItem(ctx, dish, service.LineInput{
		Quantity:        1,
		SelectedOptions: domain.SelectedOptions{"Spice Level": {"hot"}, "Add-ons": {"naan", "rice"}},
	}))
	assert.Greater(t, cart.Total(), previous)
}

func TestCartStore_Clear(t *testing.T) {
	ctx := context.Background()
	cart, snapshots := newCart(t)
	require.NoError(t, cart.AddItem(ctx, mustDish(t, "104"), service.LineInput{Quantity: 1}))

	cart.Clear(ctx)

	assert.Zero(t, cart.ItemCount())
	assert.Zero(t, cart.Total())
	raw, ok := snapshots.Raw(service.CartKey)
	require.True(t, ok)
	assert.JSONEq(t, `{"items":[],"kitchenId":null}`, string(raw))
}

func TestCartStore_Load(t *testing.T) {
	ctx := context.Background()
	first, snapshots := newCart(t)
	require.NoError(t, first.AddItem(ctx, mustDish(t, "701"), service.LineInput{
		Quantity:        2,
		SelectedOptions: domain.SelectedOptions{"Patty": {"double"}},
	}))

	logger, _ := test.NewNullLogger()
	second := service.NewCartStore(snapshots, logger)
	require.NoError(t, second.Load(ctx))

	assert.Equal(t, first.Snapshot(), second.Snapshot())
	assert.Equal(t, 2*(279.0+79.0), second.Total())
}

func TestCartStore_SnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	cart, _ := newCart(t)
	require.NoError(t, cart.AddItem(ctx, mustDish(t, "101"), service.LineInput{Quantity: 1, SelectedOptions: hot()}))

	record := cart.Snapshot()
	record.Items[0].Quantity = 99
	record.Items[0].SelectedOptions["Spice Level"][0] = "mild"

	again := cart.Snapshot()
	assert.Equal(t, 1, again.Items[0].Quantity)
	assert.Equal(t, hot(), again.Items[0].SelectedOptions)
}

func TestCartStore_SaveFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	snapshots := mocks.NewSnapshotStore(t)
	snapshots.On("Save", ctx, service.CartKey, mock.Anything).Return(errors.New("disk full")).Once()

	logger, hook := test.NewNullLogger()
	cart := service.NewCartStore(snapshots, logger)

	require.NoError(t, cart.AddItem(ctx, mustDish(t, "104"), service.LineInput{Quantity: 1}))

	assert.Equal(t, 1, cart.ItemCount())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, service.CartKey, hook.LastEntry().Data["key"])
}
