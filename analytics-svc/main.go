package main

import (
	httpapi "github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/api/http"
	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/service"
	"github.com/Ganga-777/Cloud-Kitchen/analytics-svc/internal/storage"
	"github.com/Ganga-777/Cloud-Kitchen/config"
)

func main() {
	config.LoadEnv()
	logger := config.NewLogger("analytics-svc")

	rdb := config.MustInitRedis()
	defer rdb.Close()

	svc := service.NewAnalyticsService(storage.NewReader(rdb))
	handler := httpapi.NewHandler(svc, logger)

	port := config.GetEnv("PORT", "8083")
	if err := httpapi.StartServer(":"+port, httpapi.NewRouter(handler), logger); err != nil {
		logger.WithError(err).Fatal("Analytics Service stopped")
	}
}
