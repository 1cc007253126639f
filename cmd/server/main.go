package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"academic-assistant/internal/config"
	"academic-assistant/internal/handler"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring
	container := config.NewContainer()
	cfg := container.Config

	if err := container.ScratchStorage.EnsureDir(); err != nil {
		container.Logger.Error("Failed to prepare upload directory", err, "path", cfg.GetUploadPath())
		os.Exit(1)
	}

	// Handlers
	handlers := handler.Handlers{
		Config:    handler.NewConfigHandler(container.CredentialService, container.Logger),
		Synthesis: handler.NewSynthesisHandler(container.CredentialService, container.SynthesisService, container.Logger),
		Writing:   handler.NewWritingHandler(container.CredentialService, container.WritingService, container.Logger),
		Health:    handler.NewHealthHandler(container.CredentialService),
	}

	// Router
	router := handler.NewRouter(handlers, handler.DefaultMiddlewares(container.Logger, cfg.GetMaxUploadSize())...)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.GetServerHost(), cfg.GetServerPort()),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// Run server
	g.Go(func() error {
		container.Logger.Info("Server listening", "address", server.Addr, "model", cfg.GetGeminiModel())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		container.Logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		container.Logger.Error("Server stopped with error", err)
		os.Exit(1)
	}
	container.Logger.Info("Server exited")
}
