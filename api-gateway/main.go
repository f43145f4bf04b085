package main

import (
	"net/http"

	"github.com/Ganga-777/Cloud-Kitchen/api-gateway/internal/gateway"
	"github.com/Ganga-777/Cloud-Kitchen/config"

	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()
	logger := config.NewLogger("api-gateway")

	gw := gateway.NewGateway(gateway.Config{
		AppSvcURL:       config.GetEnv("APP_SVC_URL", "http://localhost:8081"),
		AnalyticsSvcURL: config.GetEnv("ANALYTICS_SVC_URL", "http://localhost:8083"),
		FrontendDir:     config.GetEnv("FRONTEND_DIR", "./frontend"),
	}, &http.Client{Timeout: config.GetDuration("UPSTREAM_TIMEOUT", 0)}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(gw.SetupRoutes())

	port := config.GetEnv("PORT", "8080")
	logger.Infof("API Gateway starting on port %s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.WithError(err).Fatal("API Gateway stopped")
	}
}
