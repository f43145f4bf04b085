package service

import (
	"context"

	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/domain"
)

const (
	CartKey   = "cart-storage"
	OrderKey  = "order-storage"
	ReviewKey = "review-storage"
	UserKey   = "user-storage"
)

// SnapshotStore persists one JSON record per key.
type SnapshotStore interface {
	// Load decodes the record stored under key into dst. It reports false when
	// nothing has been stored yet.
	Load(ctx context.Context, key string, dst any) (bool, error)
	Save(ctx context.Context, key string, v any) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

type KitchenCatalog interface {
	Kitchen(id string) (domain.Kitchen, bool)
}

// CatalogReader is the read-only view of kitchens and dishes.
type CatalogReader interface {
	KitchenCatalog
	Kitchens() []domain.Kitchen
	Dishes(kitchenID string) []domain.Dish
	Dish(id string) (domain.Dish, bool)
	Search(query string) ([]domain.Kitchen, []domain.Dish)
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

type CartServiceInterface interface {
	AddItem(ctx context.Context, dish domain.Dish, in LineInput) error
	RemoveItem(ctx context.Context, dishID string)
	UpdateQuantity(ctx context.Context, dishID string, quantity int)
	Clear(ctx context.Context)
	Total() float64
	ItemCount() int
	Snapshot() domain.CartRecord
	Load(ctx context.Context) error
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (domain.Order, error)
	GetOrderByID(id string) (domain.Order, bool)
	Orders() []domain.Order
	ActiveOrder() (domain.Order, bool)
	ConfirmOrder(ctx context.Context, id string) (domain.Order, error)
	AdvanceOrder(ctx context.Context, id string) (domain.Order, error)
	CancelOrder(ctx context.Context, id string) (domain.Order, error)
	LoadInitialOrders(ctx context.Context, seeds []domain.Order) bool
	Load(ctx context.Context) error
}

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, in ReviewInput) (domain.Review, error)
	ReviewsForTarget(targetID string, targetType domain.TargetType) []domain.Review
	ReviewsByUser(userID string) []domain.Review
	UserReviews(userID string) []domain.Review
	UpdateReview(ctx context.Context, id string, patch ReviewPatch) (domain.Review, error)
	DeleteReview(ctx context.Context, id string) bool
	LikeReview(ctx context.Context, id string) (domain.Review, error)
	AverageRating(targetID string, targetType domain.TargetType) float64
	Summary(targetID string, targetType domain.TargetType) RatingSummary
	LoadInitialReviews(ctx context.Context, seeds []domain.Review, userID string) bool
	Load(ctx context.Context) error
}

type UserServiceInterface interface {
	Login(ctx context.Context, user domain.User) domain.User
	Logout(ctx context.Context)
	Current() (domain.User, bool)
	IsLoggedIn() bool
	UpdateUser(ctx context.Context, patch UserPatch) (domain.User, error)
	AddAddress(ctx context.Context, in AddressInput) (domain.Address, error)
	UpdateAddress(ctx context.Context, id string, patch AddressPatch) (domain.Address, error)
	RemoveAddress(ctx context.Context, id string) error
	SetDefaultAddress(ctx context.Context, id string) error
	AddPaymentMethod(ctx context.Context, in PaymentMethodInput) (domain.PaymentMethod, error)
	RemovePaymentMethod(ctx context.Context, id string) error
	SetDefaultPaymentMethod(ctx context.Context, id string) error
	Load(ctx context.Context) error
}

type CheckoutServiceInterface interface {
	Quote() Quote
	PlaceOrder(ctx context.Context, req CheckoutRequest) (domain.Order, error)
}

var (
	_ CartServiceInterface     = (*CartStore)(nil)
	_ OrderServiceInterface    = (*OrderStore)(nil)
	_ ReviewServiceInterface   = (*ReviewStore)(nil)
	_ UserServiceInterface     = (*UserStore)(nil)
	_ CheckoutServiceInterface = (*Checkout)(nil)
	_ QRGenerator              = ReceiptQR{}
)
