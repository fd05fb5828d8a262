package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gateward/gateward"
	fiberadapter "github.com/gateward/gateward/adapters/fiber"
	pgxadapter "github.com/gateward/gateward/adapters/pgx"
	"github.com/gateward/gateward/config"
	"github.com/gateward/gateward/logging"
)

const shutdownTimeout = 10 * time.Second

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the auth server",
		Long:  `Start the HTTP server exposing the sign-up, sign-in, and session endpoints.`,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(ctx, cfg.DatabaseURL); err != nil {
		return err
	}
	logger.Info().Msg("migrations applied")

	app := fiber.New(fiber.Config{
		ErrorHandler: newErrorHandler(logger),
	})

	_, err = gateward.New(gateward.Config{
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.JWTTTL,
		Store:    pgxadapter.New(pool),
		HTTP: fiberadapter.New(app, fiberadapter.Config{
			CookieMaxAge: cfg.JWTTTL,
			CookieSecure: cfg.CookieSecure,
		}),
		Logger: &logger,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("server listening")
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// newErrorHandler logs unexpected errors and hides their details from clients.
func newErrorHandler(logger zerolog.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"message": fiberErr.Message,
			})
		}

		logger.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")

		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}
