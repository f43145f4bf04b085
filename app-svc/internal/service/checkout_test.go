package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/catalog"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/service"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/storage"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	cart     *service.CartStore
	orders   *service.OrderStore
	users    *service.UserStore
	checkout *service.Checkout
}

func newCheckout(t *testing.T, delay time.Duration) checkoutFixture {
	t.Helper()
	logger, _ := test.NewNullLogger()
	snapshots := storage.NewMemoryStore()

	f := checkoutFixture{
		cart:   service.NewCartStore(snapshots, logger),
		orders: service.NewOrderStore(snapshots, nil, logger, service.CancelAnyOpen),
		users:  service.NewUserStore(snapshots, logger),
	}
	f.checkout = service.NewCheckout(f.cart, f.orders, f.users, catalog.Default(), delay, logger)
	return f
}

func TestCheckout_Quote(t *testing.T) {
	ctx := context.Background()
	f := newCheckout(t, 0)

	assert.Equal(t, service.Quote{}, f.checkout.Quote())

	require.NoError(t, f.cart.AddItem(ctx, mustDish(t, "101"), service.LineInput{Quantity: 2, SelectedOptions: hot()}))

	quote := f.checkout.Quote()
	assert.Equal(t, 698.0, quote.Subtotal)
	assert.Equal(t, 49.0, quote.DeliveryFee)
	assert.Equal(t, 34.9, quote.ServiceFee)
	assert.Equal(t, 55.84, quote.Tax)
	assert.Equal(t, 837.74, quote.Total)
}

func TestCheckout_PlaceOrder_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		prepare func(f checkoutFixture)
		req     service.CheckoutRequest
		wantErr error
	}{
		{
			name:    "signed out",
			prepare: func(f checkoutFixture) {},
			wantErr: service.ErrSignInRequired,
		},
		{
			name: "empty cart",
			prepare: func(f checkoutFixture) {
				f.users.Login(ctx, catalog.DemoUser())
			},
			wantErr: service.ErrEmptyOrder,
		},
		{
			name: "no address",
			prepare: func(f checkoutFixture) {
				f.users.Login(ctx, domain.User{Name: "Jane"})
				_ = f.cart.AddItem(ctx, mustDish(t, "104"), service.LineInput{Quantity: 1})
			},
			wantErr: service.ErrAddressRequired,
		},
		{
			name: "unknown address id",
			prepare: func(f checkoutFixture) {
				f.users.Login(ctx, catalog.DemoUser())
				_ = f.cart.AddItem(ctx, mustDish(t, "104"), service.LineInput{Quantity: 1})
			},
			req:     service.CheckoutRequest{AddressID: "missing"},
			wantErr: service.ErrAddressRequired,
		},
		{
			name: "no payment method",
			prepare: func(f checkoutFixture) {
				f.users.Login(ctx, domain.User{Name: "Jane", Addresses: []domain.Address{{ID: "a", Address: "1 Elm St", Default: true}}})
				_ = f.cart.AddItem(ctx, mustDish(t, "104"), service.LineInput{Quantity: 1})
			},
			wantErr: service.ErrPaymentRequired,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newCheckout(t, 0)
			testCase.prepare(f)

			_, err := f.checkout.PlaceOrder(ctx, testCase.req)
			assert.ErrorIs(t, err, testCase.wantErr)
			assert.Empty(t, f.orders.Orders())
		})
	}
}

func TestCheckout_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	f := newCheckout(t, time.Millisecond)
	f.users.Login(ctx, catalog.DemoUser())
	require.NoError(t, f.cart.AddItem(ctx, mustDish(t, "101"), service.LineInput{Quantity: 2, SelectedOptions: hot()}))

	order, err := f.checkout.PlaceOrder(ctx, service.CheckoutRequest{AddressID: "2"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, "456 Park Ave, New York, NY 10022", order.DeliveryAddress)
	assert.Equal(t, "25-35 min", order.DeliveryTime)
	assert.Equal(t, "1", order.Kitchen.ID)
	assert.Equal(t, 837.74, order.Total)
	assert.Zero(t, f.cart.ItemCount())
	assert.Len(t, f.orders.Orders(), 1)
}

func TestCheckout_PlaceOrder_Cancelled(t *testing.T) {
	f := newCheckout(t, time.Hour)
	f.users.Login(context.Background(), catalog.DemoUser())
	require.NoError(t, f.cart.AddItem(context.Background(), mustDish(t, "104"), service.LineInput{Quantity: 1}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.checkout.PlaceOrder(ctx, service.CheckoutRequest{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, f.cart.ItemCount())
	assert.Empty(t, f.orders.Orders())
}

func TestCheckout_PlaceOrder_CartChangedWhileWaiting(t *testing.T) {
	ctx := context.Background()
	f := newCheckout(t, 0)
	f.users.Login(ctx, catalog.DemoUser())
	require.NoError(t, f.cart.AddItem(ctx, mustDish(t, "101"), service.LineInput{Quantity: 1, SelectedOptions: hot()}))

	f.checkout.SetWaiter(func(ctx context.Context) error {
		return f.cart.AddItem(ctx, mustDish(t, "101"), service.LineInput{Quantity: 2})
	})

	_, err := f.checkout.PlaceOrder(ctx, service.CheckoutRequest{})

	assert.ErrorIs(t, err, service.ErrCartChanged)
	assert.Empty(t, f.orders.Orders())
	assert.Equal(t, 3, f.cart.ItemCount())
}

func TestCheckout_PlaceOrder_OrdersPricedLines(t *testing.T) {
	ctx := context.Background()
	f := newCheckout(t, 0)
	f.users.Login(ctx, catalog.DemoUser())
	require.NoError(t, f.cart.AddItem(ctx, mustDish(t, "101"), service.LineInput{Quantity: 2, SelectedOptions: hot()}))

	waited := false
	f.checkout.SetWaiter(func(ctx context.Context) error {
		waited = true
		return nil
	})

	order, err := f.checkout.PlaceOrder(ctx, service.CheckoutRequest{})

	require.NoError(t, err)
	assert.True(t, waited)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 0, f.cart.ItemCount())
	assert.Len(t, f.orders.Orders(), 1)
}
