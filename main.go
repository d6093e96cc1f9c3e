package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/JartigaRox/000171124-practica10-seccion1/api"
	"github.com/JartigaRox/000171124-practica10-seccion1/internal/config"
	"github.com/JartigaRox/000171124-practica10-seccion1/internal/database"
)

func main() {
	cfg := config.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// gin's own logger stays off; the zap request middleware covers it
	r := gin.New()
	r.Use(gin.Recovery())
	api.InitRoutes(r, db, logger)

	logger.Info("server listening", zap.String("addr", cfg.ServerAddr))
	if err := r.Run(cfg.ServerAddr); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
