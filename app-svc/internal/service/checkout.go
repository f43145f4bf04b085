package service

import (
	"context"
	"time"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	serviceFeeRate = decimal.NewFromFloat(0.05)
	taxRate        = decimal.NewFromFloat(0.08)
)

type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	ServiceFee  float64 `json:"serviceFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// CheckoutRequest picks an address and payment method of the signed-in user.
// Empty ids fall back to the defaults.
type CheckoutRequest struct {
	AddressID       string `json:"addressId,omitempty"`
	PaymentMethodID string `json:"paymentMethodId,omitempty"`
}

// Checkout turns the cart into an order for the signed-in user.
type Checkout struct {
	cart    *CartStore
	orders  *OrderStore
	users   *UserStore
	catalog KitchenCatalog
	delay   time.Duration
	wait    func(ctx context.Context) error
	logger  logrus.FieldLogger
}

func NewCheckout(cart *CartStore, orders *OrderStore, users *UserStore, catalog KitchenCatalog, delay time.Duration, logger logrus.FieldLogger) *Checkout {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	c := &Checkout{
		cart:    cart,
		orders:  orders,
		users:   users,
		catalog: catalog,
		delay:   delay,
		logger:  logger,
	}
	c.wait = c.sleep
	return c
}

// SetWaiter replaces the simulated payment round trip.
func (c *Checkout) SetWaiter(wait func(ctx context.Context) error) {
	c.wait = wait
}

// Quote prices the current cart: subtotal, the kitchen's delivery fee, a 5%
// service fee and 8% tax, each rounded to cents.
func (c *Checkout) Quote() Quote {
	record := c.cart.Snapshot()
	return c.quote(record)
}

func (c *Checkout) quote(record domain.CartRecord) Quote {
	subtotal := decimal.Zero
	for _, item := range record.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	deliveryFee := decimal.Zero
	if record.KitchenID != nil && len(record.Items) > 0 {
		if kitchen, ok := c.catalog.Kitchen(*record.KitchenID); ok {
			deliveryFee = decimal.NewFromFloat(kitchen.DeliveryFee)
		}
	}

	serviceFee := subtotal.Mul(serviceFeeRate).Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	subtotal = subtotal.Round(2)
	total := subtotal.Add(deliveryFee).Add(serviceFee).Add(tax).Round(2)

	return Quote{
		Subtotal:    subtotal.InexactFloat64(),
		DeliveryFee: deliveryFee.InexactFloat64(),
		ServiceFee:  serviceFee.InexactFloat64(),
		Tax:         tax.InexactFloat64(),
		Total:       total.InexactFloat64(),
	}
}

func (c *Checkout) PlaceOrder(ctx context.Context, req CheckoutRequest) (domain.Order, error) {
	user, ok := c.users.Current()
	if !ok {
		return domain.Order{}, ErrSignInRequired
	}

	record, revision := c.cart.snapshotRevision()
	if len(record.Items) == 0 || record.KitchenID == nil {
		return domain.Order{}, ErrEmptyOrder
	}

	kitchen, ok := c.catalog.Kitchen(*record.KitchenID)
	if !ok {
		return domain.Order{}, ErrKitchenNotFound
	}

	address, ok := pickAddress(user, req.AddressID)
	if !ok {
		return domain.Order{}, ErrAddressRequired
	}
	if _, ok := pickPaymentMethod(user, req.PaymentMethodID); !ok {
		return domain.Order{}, ErrPaymentRequired
	}

	if err := c.wait(ctx); err != nil {
		return domain.Order{}, err
	}

	// The order covers exactly the lines that were priced.
	if !c.cart.clearAt(ctx, revision) {
		return domain.Order{}, ErrCartChanged
	}
	order, err := c.orders.PlaceOrder(ctx, PlaceOrderRequest{
		Items:           record.Items,
		DeliveryAddress: address.Address,
		DeliveryTime:    kitchen.DeliveryTime,
		Kitchen:         kitchen.Summary(),
		Total:           c.quote(record).Total,
	})
	if err != nil {
		c.cart.restore(ctx, record)
		return domain.Order{}, err
	}

	c.logger.WithFields(logrus.Fields{
		"order_id":   order.ID,
		"kitchen_id": kitchen.ID,
		"total":      order.Total,
	}).Info("order placed")
	return order, nil
}

// sleep simulates the payment round trip.
func (c *Checkout) sleep(ctx context.Context) error {
	if c.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func pickAddress(user domain.User, id string) (domain.Address, bool) {
	if id != "" {
		return user.FindAddress(id)
	}
	return user.DefaultAddress()
}

func pickPaymentMethod(user domain.User, id string) (domain.PaymentMethod, bool) {
	if id != "" {
		return user.FindPaymentMethod(id)
	}
	return user.DefaultPaymentMethod()
}
