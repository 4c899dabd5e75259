package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"evstat-api/internal/config"
	"evstat-api/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "importer",
	Short: "Load EV statistics snapshots into PostgreSQL",
	Long:  "Creates the evdb tables and bulk-loads CSV snapshots of regions, sub-regions, charging stations and yearly registrations.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		if cfg, err = config.LoadConfig(configPath); err != nil {
			return err
		}
		return logger.Init(cfg.LogLevel, cfg.LogPretty)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs", "directory holding app.env")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// connect opens a single connection to the configured PostgreSQL database.
func connect(ctx context.Context) (*pgx.Conn, error) {
	if cfg.DBDriver == config.DriverMySQL {
		return nil, fmt.Errorf("importer: DB_DRIVER %q is not supported, use %q or %q", cfg.DBDriver, config.DriverPgx, config.DriverPostgres)
	}

	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		return nil, fmt.Errorf("importer: connect: %w", err)
	}
	log.Debug().Msg("connected to database")
	return conn, nil
}

func verifyImport(ctx context.Context, conn *pgx.Conn, table string, expectedCount int) error {
	var count int
	query := "SELECT COUNT(*) FROM " + pgx.Identifier{table}.Sanitize()
	if err := conn.QueryRow(ctx, query).Scan(&count); err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch in %s: expected %d, got %d", table, expectedCount, count)
	}
	return nil
}
