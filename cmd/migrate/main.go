// Command migrate applies the checkout schema to the configured database and reports the
// database it connected to.
package main

import (
	"context"
	"fmt"
	"os"

	"platra/internal/config"
	"platra/internal/database"
	"platra/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := config.NewLogger(cfg.Logger)

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Str("database", dbName).Msg("schema applied")
	return nil
}
