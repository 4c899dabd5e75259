package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type regionRow struct {
	Code string `csv:"zcode"`
	Name string `csv:"regionNm"`
}

func (r regionRow) key() string   { return r.Code }
func (r regionRow) values() []any { return []any{r.Code, r.Name} }
func (r regionRow) valid() bool   { return r.Code != "" && r.Name != "" }

type regionDetailRow struct {
	Code       string `csv:"zscode"`
	Name       string `csv:"regionDetailNm"`
	RegionCode string `csv:"zcode"`
}

func (r regionDetailRow) key() string   { return r.Code }
func (r regionDetailRow) values() []any { return []any{r.Code, r.Name, r.RegionCode} }
func (r regionDetailRow) valid() bool   { return r.Code != "" && r.Name != "" && r.RegionCode != "" }

// stationRow is one charger row of the station export. Several chargers share a station id.
type stationRow struct {
	ID          string `csv:"statId"`
	Name        string `csv:"statNm"`
	Address     string `csv:"addr"`
	Latitude    string `csv:"lat"`
	Longitude   string `csv:"lng"`
	ParkingFree string `csv:"parkingFree"`
	SubRegion   string `csv:"zscode"`
}

func (r stationRow) key() string { return r.ID }
func (r stationRow) values() []any {
	return []any{r.ID, r.Name, r.Address, r.Latitude, r.Longitude, strings.ToUpper(r.ParkingFree), r.SubRegion}
}
func (r stationRow) valid() bool { return r.ID != "" }

type row interface {
	key() string
	values() []any
	valid() bool
}

// uniqueRows drops invalid rows and every repeat of an already seen key, keeping the first.
func uniqueRows[T row](rows []T) (kept []T, dropped int) {
	seen := make(map[string]struct{}, len(rows))
	kept = make([]T, 0, len(rows))
	for _, r := range rows {
		if !r.valid() {
			dropped++
			continue
		}
		if _, ok := seen[r.key()]; ok {
			dropped++
			continue
		}
		seen[r.key()] = struct{}{}
		kept = append(kept, r)
	}
	return kept, dropped
}

// Column names are lower case; pgx quotes them and the schema created them unquoted.
var (
	regionColumns       = []string{"zcode", "regionnm"}
	regionDetailColumns = []string{"zscode", "regiondetailnm", "zcode"}
	stationColumns      = []string{"statid", "statnm", "addr", "lat", "lng", "parkingfree", "zscode"}
)

// replaceRows swaps the contents of table for rows in one transaction.
func replaceRows[T row](ctx context.Context, conn *pgx.Conn, table string, columns []string, rows []T) error {
	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("importer: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, "TRUNCATE "+pgx.Identifier{table}.Sanitize()); err != nil {
		return fmt.Errorf("importer: truncate %s: %w", table, err)
	}

	// Use CopyFrom for bulk insert
	_, err = tx.CopyFrom(ctx, pgx.Identifier{table}, columns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return rows[i].values(), nil
		}),
	)
	if err != nil {
		return fmt.Errorf("importer: copy into %s: %w", table, err)
	}
	return tx.Commit(ctx)
}

func importTable[T row](ctx context.Context, path, encoding, table string, columns []string) error {
	src, err := openSource(path, encoding)
	if err != nil {
		return err
	}
	defer src.Close()

	parsed, err := decodeRows[T](src)
	if err != nil {
		return fmt.Errorf("importer: parse %s: %w", path, err)
	}
	rows, dropped := uniqueRows(parsed)
	log.Info().Str("table", table).Int("parsed", len(parsed)).Int("dropped", dropped).Msg("parsed records")

	conn, err := connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	if err := createTablesIfNotExist(ctx, conn); err != nil {
		return err
	}
	if err := replaceRows(ctx, conn, table, columns, rows); err != nil {
		return err
	}
	if err := verifyImport(ctx, conn, table, len(rows)); err != nil {
		return err
	}

	log.Info().Str("table", table).Int("rows", len(rows)).Msg("import complete")
	return nil
}

func tableCommand[T row](use, short, table string, columns []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			encoding, _ := cmd.Flags().GetString("encoding")
			return importTable[T](cmd.Context(), file, encoding, table, columns)
		},
	}
	addSourceFlags(cmd)
	return cmd
}

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "path to the CSV file to import")
	cmd.Flags().String("encoding", encodingUTF8, "source encoding: utf-8 or euc-kr")
	_ = cmd.MarkFlagRequired("file")
}

func init() {
	rootCmd.AddCommand(
		tableCommand[regionRow]("regions", "Replace tbl_region from a CSV with zcode,regionNm", "tbl_region", regionColumns),
		tableCommand[regionDetailRow]("details", "Replace tbl_region_detail from a CSV with zscode,regionDetailNm,zcode", "tbl_region_detail", regionDetailColumns),
		tableCommand[stationRow]("stations", "Replace tbl_station from a charger CSV with statId,statNm,addr,lat,lng,parkingFree,zscode", "tbl_station", stationColumns),
	)
}
