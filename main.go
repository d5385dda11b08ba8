package main

import (
	"fmt"

	"backend/configs"
	"backend/middlewares"
	"backend/pkg/metrics"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	log := configs.NewLogger()
	defer log.Sync()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg, log); err != nil {
		log.Fatal("seed admin failed", zap.Error(err))
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatal("seed catalog failed", zap.Error(err))
	}
	if err := configs.SeedTables(); err != nil {
		log.Fatal("seed tables failed", zap.Error(err))
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(metrics.Middleware())

	// uploaded images (menu/restaurant pictures)
	r.Static("/uploads", cfg.UploadDir)

	r.GET("/metrics", metrics.Handler())

	routes.RegisterRoutes(r, db, cfg, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server running", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
