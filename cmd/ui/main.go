package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rocketeda/internal/artifact"
	"rocketeda/internal/config"
	"rocketeda/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store := artifact.NewStore(cfg.Paths.ResultsDir)

	app, err := ui.NewApp(cfg, store)
	if err != nil {
		log.Fatalf("Failed to create dashboard app: %v", err)
	}

	// Probe the artifact root so operators can see which plots the
	// pipeline has not produced yet. Missing artifacts are not fatal;
	// the page degrades per slot at render time.
	scanCtx, scanCancel := context.WithTimeout(context.Background(), 10*time.Second)
	inv, err := store.Scan(scanCtx, ui.RegistryArtifacts(app.Sections()))
	scanCancel()
	if err != nil {
		log.Printf("Artifact inventory scan failed: %v", err)
	} else {
		log.Printf("Artifact inventory: %d present, %d missing (root: %s)", len(inv.Present), len(inv.Missing), store.Root())
		for _, name := range inv.Missing {
			log.Printf("Artifact not yet produced: %s", name)
		}
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("Starting EDA dashboard on http://localhost:%s", cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
