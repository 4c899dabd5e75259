package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Coordinates are kept as text so malformed source rows survive the import;
// the API drops rows whose coordinates do not parse.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS tbl_region (
	zcode TEXT PRIMARY KEY,
	regionNm TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tbl_region_detail (
	zscode TEXT PRIMARY KEY,
	regionDetailNm TEXT NOT NULL,
	zcode TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tbl_station (
	statid TEXT PRIMARY KEY,
	statNm TEXT,
	addr TEXT,
	lat TEXT,
	lng TEXT,
	parkingFree TEXT,
	zscode TEXT
);
CREATE INDEX IF NOT EXISTS tbl_region_detail_zcode_idx ON tbl_region_detail (zcode);
CREATE INDEX IF NOT EXISTS tbl_station_zscode_idx ON tbl_station (zscode);
`

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Create the region, sub-region and station tables",
	Long:  "Creates tbl_region, tbl_region_detail and tbl_station. tbl_register is created by the registrations command from its CSV header.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		conn, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)

		if err := createTablesIfNotExist(ctx, conn); err != nil {
			return err
		}
		log.Info().Msg("schema ready")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func createTablesIfNotExist(ctx context.Context, conn *pgx.Conn) error {
	if _, err := conn.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("importer: create tables: %w", err)
	}
	return nil
}
