package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"pdftool/internal/api"
	"pdftool/internal/config"
	"pdftool/pkg/logger"
)

const (
	serverReadTimeout  = 15 * time.Second
	serverWriteTimeout = 15 * time.Second
	serverIdleTimeout  = 60 * time.Second

	gracefulShutdownTimeout = 10 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	log := logger.New(logger.WithPrefix("[pdftool] "))
	log.SetVerbose(*verbose)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Error loading config: %v", err)
	}

	// The scratch directory backs the page-count lookup endpoint.
	if err := os.MkdirAll(cfg.TempDir, 0755); err != nil {
		log.Fatal("Failed to create temp directory %s: %v", cfg.TempDir, err)
	}

	r := gin.Default()
	r.MaxMultipartMemory = cfg.MaxFileSize

	api.NewServer(cfg, log).SetupRoutes(r)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	go func() {
		log.Info("Server starting on %s", srv.Addr)
		log.Info("Max file size: %d bytes", cfg.MaxFileSize)
		log.Info("Temp directory: %s", cfg.TempDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited gracefully")
}
