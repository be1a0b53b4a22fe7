package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"hanz-sales/internal/config"
	"hanz-sales/internal/db"
	apihttp "hanz-sales/internal/http"
	"hanz-sales/internal/repository"
	"hanz-sales/internal/service"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	jwtSvc := service.NewJWTService(cfg.JWTSecret, 60*time.Minute)

	authHandler, err := apihttp.NewAuthHandler(logger, jwtSvc, cfg.APIUsername, cfg.APIPassword)
	if err != nil {
		logger.Fatal("auth handler init", zap.Error(err))
	}
	categoryHandler := apihttp.NewCategoryHandler(logger, repository.NewPgCategoryRepository(pool))
	regionHandler := apihttp.NewRegionHandler(logger, repository.NewPgRegionRepository(pool))
	customerHandler := apihttp.NewCustomerHandler(logger, repository.NewPgCustomerRepository(pool))
	productHandler := apihttp.NewProductHandler(logger, repository.NewPgProductRepository(pool))
	saleHandler := apihttp.NewSaleHandler(logger, repository.NewPgSaleRepository(pool))

	router := apihttp.NewRouter(
		logger,
		jwtSvc,
		authHandler,
		categoryHandler,
		regionHandler,
		customerHandler,
		productHandler,
		saleHandler,
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}
}
