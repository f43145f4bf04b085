package main

import (
	"context"
	"time"

	httpapi "github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/api/http"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/catalog"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/service"
	"github.com/Ganga-777/Cloud-Kitchen/app-svc/internal/storage"
	"github.com/Ganga-777/Cloud-Kitchen/config"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()
	logger := config.NewLogger("app-svc")
	ctx := context.Background()

	snapshots := newSnapshotStore(config.GetEnv("STORAGE_DRIVER", "memory"), logger)
	publisher := newPublisher(logger)

	policy := service.CancelAnyOpen
	if config.GetBool("ORDER_STRICT_CANCEL", false) {
		policy = service.CancelBeforePreparing
	}

	kitchens := catalog.Default()
	cart := service.NewCartStore(snapshots, logger)
	orders := service.NewOrderStore(snapshots, publisher, logger, policy)
	reviews := service.NewReviewStore(snapshots, publisher, logger)
	users := service.NewUserStore(snapshots, logger)

	for name, loader := range map[string]func(context.Context) error{
		service.CartKey:   cart.Load,
		service.OrderKey:  orders.Load,
		service.ReviewKey: reviews.Load,
		service.UserKey:   users.Load,
	} {
		if err := loader(ctx); err != nil {
			logger.WithError(err).WithField("key", name).Fatal("Failed to restore state")
		}
	}
	if orders.LoadInitialOrders(ctx, kitchens.SeedOrders()) {
		logger.Info("seeded order history")
	}
	if reviews.LoadInitialReviews(ctx, kitchens.SeedReviews(), catalog.SeedUserID) {
		logger.Info("seeded reviews")
	}

	handler := &httpapi.Handler{
		Catalog:  kitchens,
		Cart:     cart,
		Orders:   orders,
		Reviews:  reviews,
		Users:    users,
		Checkout: service.NewCheckout(cart, orders, users, kitchens, config.GetDuration("CHECKOUT_DELAY", 2*time.Second), logger),
		QR:       service.ReceiptQR{BaseURL: config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")},
		DemoUser: catalog.DemoUser(),
		Logger:   logger,
	}

	router := httpapi.NewRouter(handler)
	if err := httpapi.StartServer(":"+config.GetEnv("PORT", "8081"), router, logger); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

func newSnapshotStore(driver string, logger logrus.FieldLogger) service.SnapshotStore {
	switch driver {
	case "redis":
		return storage.NewRedisStore(config.MustInitRedis(), config.GetEnv("STATE_PREFIX", storage.DefaultRedisPrefix))
	case "postgres":
		db := config.MustInitPostgres()
		if err := storage.Migrate(db); err != nil {
			logger.WithError(err).Fatal("Failed to migrate database")
		}
		return storage.NewPostgresStore(db)
	case "memory":
		return storage.NewMemoryStore()
	default:
		logger.WithField("driver", driver).Warn("Warning: unknown storage driver, using memory")
		return storage.NewMemoryStore()
	}
}

// newPublisher returns nil when Kafka is disabled so stores skip publishing.
func newPublisher(logger logrus.FieldLogger) service.EventPublisher {
	if !config.GetBool("KAFKA_ENABLED", true) {
		logger.Warn("Warning: Kafka disabled, domain events will not be published")
		return nil
	}
	return storage.NewKafkaPublisher(config.NewKafkaWriter(config.EventsTopic()))
}
