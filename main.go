package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"matsal-partner-api/configs"
	"matsal-partner-api/datasource"
	"matsal-partner-api/middlewares"
	"matsal-partner-api/routes"
	"matsal-partner-api/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg := configs.LoadConfig()

	var source datasource.Source
	if cfg.MockMode() {
		logger.Info("running in mock mode", zap.Duration("delay", cfg.MockDelay))
		source = datasource.NewMockSource(cfg.MockDelay)
	} else {
		logger.Info("running against upstream", zap.String("url", cfg.UpstreamURL))
		source = datasource.NewRemoteSource(cfg.UpstreamURL, cfg.UpstreamToken, logger)
	}

	orders := services.NewOrderStore(source, logger)
	menu := services.NewMenuStore(source, logger)
	restaurant := services.NewRestaurantStore(source, logger)
	auth := services.NewAuthService(source, cfg.JWTSecret, cfg.JWTTTL, logger)

	// Warm the stores; an unreachable upstream is not fatal, the load
	// endpoints can retry later.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := orders.Load(ctx, false); err != nil {
		logger.Warn("initial order load failed", zap.Error(err))
	}
	if err := menu.Load(ctx, false); err != nil {
		logger.Warn("initial menu load failed", zap.Error(err))
	}
	if err := restaurant.Load(ctx); err != nil {
		logger.Warn("initial restaurant load failed", zap.Error(err))
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middlewares.RequestLogger(logger), gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Cfg:        cfg,
		Auth:       auth,
		Orders:     orders,
		Menu:       menu,
		Restaurant: restaurant,
	})

	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
