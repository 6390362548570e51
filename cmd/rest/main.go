package main

import (
	"context"
	"log"

	"manualbot-be/internal/bootstrap"
	"manualbot-be/internal/config"
	"manualbot-be/internal/server"
	"manualbot-be/internal/tracer"
	"manualbot-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	if err := container.NotificationService.Start(context.Background()); err != nil {
		log.Printf("Notification service failed to start: %v", err)
	}

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
