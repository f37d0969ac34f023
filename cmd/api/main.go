package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/config"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/planservice"
	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/server"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// LoadConfig also configures the global logger.
	cfg, err := config.LoadConfig()
	if err != nil {
		// without a model key the form is never served
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	generator := planservice.NewGenerator(planservice.Config{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.OpenAIModel,
	})

	apiServer := server.NewServer(server.New(cfg, generator))

	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", apiServer.Addr).Str("model", generator.Model()).Msg("FitBot listening")
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("Shutting down gracefully, press Ctrl+C again to force")
		stop()

		// In-flight generations get a bounded window to finish.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return apiServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("HTTP server error")
	}
	log.Info().Msg("Graceful shutdown complete")
}
