// Package main runs the zakat calculation HTTP service.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"zakat-engine/internal/config"
	"zakat-engine/internal/handlers"
	"zakat-engine/internal/methodology"
	"zakat-engine/internal/services/calculator"
	"zakat-engine/internal/services/prices"
	"zakat-engine/internal/store"
	"zakat-engine/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer utils.Sync()
	logger := utils.GetLogger()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer st.Close()

	registry := methodology.NewRegistry()
	calc := calculator.NewService(registry)
	priceProvider := prices.NewProvider(
		cfg.MetalPriceURL,
		cfg.MetalPriceAPIKey,
		cfg.PriceCacheTTL,
		cfg.FallbackGoldPrice,
		cfg.FallbackSilverPrice,
	)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handlers.NewServer(calc, registry, priceProvider, st),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.ListenAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
