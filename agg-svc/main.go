package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/service"
	"github.com/Ganga-777/Cloud-Kitchen/agg-svc/internal/storage"
	"github.com/Ganga-777/Cloud-Kitchen/config"
)

func main() {
	config.LoadEnv()
	logger := config.NewLogger("agg-svc")

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.EventsTopic(), config.GetEnv("KAFKA_GROUP_ID", "agg-svc"))
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb), logger)
	consumer.Start(ctx)
}
