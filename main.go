package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/duobudget/backend/internal/config"
	"github.com/duobudget/backend/internal/controllers/v1"
	"github.com/duobudget/backend/internal/events"
	"github.com/duobudget/backend/internal/models"
	"github.com/duobudget/backend/internal/router"
	"github.com/duobudget/backend/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// A local .env file is optional. Variables that are already set in
	// the environment take precedence over the file.
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	cfg := config.Load()

	output := io.Writer(os.Stdout)
	if cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create the directory the database lives in
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	if err := models.Connect(cfg.DBPath); err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.SeedFile != "" {
		entries, err := seed.ParseFile(cfg.SeedFile)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		result, err := models.ApplySeed(entries, cfg.UserPair())
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		log.Info().
			Str("file", cfg.SeedFile).
			Int("created", result.Created).
			Int("reactivated", result.Reactivated).
			Int("skipped", result.Skipped).
			Msg("Seed file applied")
	}

	// The AMQP publisher forwards envelope and product events to the
	// exchange, e.g. for a chat bot frontend. It is optional.
	if cfg.AMQPURL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, models.Events)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		defer publisher.Close()

		log.Info().Str("exchange", cfg.AMQPExchange).Msg("AMQP event publishing enabled")
	}

	v1.Configure(cfg.UserPair())

	baseURL, err := url.Parse(cfg.APIURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(baseURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"))

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("address", srv.Addr).Msg("Starting server")

		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	// Attempt the monthly processing on startup and then periodically so
	// that the month rolls over even when no request comes in.
	if cfg.ProcessInterval > 0 {
		g.Go(func() error {
			processDueMonth()

			ticker := time.NewTicker(cfg.ProcessInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					processDueMonth()
				}
			}
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	log.Info().Msg("Server stopped")
}

// processDueMonth runs the monthly processing and logs the outcome.
// A month that has already been processed is not an error.
func processDueMonth() {
	summary, err := models.ProcessMonth(time.Now())
	if err != nil {
		if errors.Is(err, models.ErrAlreadyProcessed) {
			log.Debug().Msg("Monthly processing already ran for this month")
			return
		}

		log.Error().Err(err).Msg("Monthly processing failed")
		return
	}

	log.Info().
		Str("month", summary.Month.String()).
		Int("rolledOver", summary.RolledOver).
		Int("reset", summary.Reset).
		Int("pruned", summary.Pruned).
		Msg("Monthly processing complete")
}
