package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const registrationsTable = "tbl_register"

// registrationSheet is the wide yearly table: a year column followed by one count column per region.
type registrationSheet struct {
	Columns []string
	Rows    [][]any
}

// parseRegistrations reads a CSV whose header is year,<region...>[,total].
// Blank counts become NULL; thousands separators are accepted.
func parseRegistrations(r io.Reader) (*registrationSheet, error) {
	reader := newCSVReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	yearIdx := -1
	seen := make(map[string]struct{}, len(header))
	columns := make([]string, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			return nil, fmt.Errorf("header column %d is empty", i+1)
		}
		if _, dup := seen[strings.ToLower(name)]; dup {
			return nil, fmt.Errorf("duplicate header column %q", name)
		}
		seen[strings.ToLower(name)] = struct{}{}
		if strings.EqualFold(name, "year") {
			yearIdx = i
			name = "year"
		}
		columns[i] = name
	}
	if yearIdx < 0 {
		return nil, errors.New("header has no year column")
	}

	sheet := &registrationSheet{Columns: columns}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(record) != len(columns) {
			return nil, fmt.Errorf("line %d: expected %d columns, got %d", line, len(columns), len(record))
		}

		values := make([]any, len(record))
		for i, cell := range record {
			n, ok, err := parseCount(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d, column %q: %w", line, columns[i], err)
			}
			switch {
			case i == yearIdx && !ok:
				return nil, fmt.Errorf("line %d: missing year", line)
			case i == yearIdx:
				values[i] = int32(n)
			case ok:
				values[i] = n
			}
		}
		sheet.Rows = append(sheet.Rows, values)
	}
	return sheet, nil
}

// parseCount reads an integer cell. ok is false for a blank cell.
func parseCount(cell string) (n int64, ok bool, err error) {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if cell == "" {
		return 0, false, nil
	}
	n, err = strconv.ParseInt(cell, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid count %q", cell)
	}
	return n, true, nil
}

// createTableSQL builds the DDL for the sheet's shape. Region names are quoted as given.
func (s *registrationSheet) createTableSQL() string {
	defs := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		typ := "BIGINT"
		if c == "year" {
			typ = "INTEGER NOT NULL"
		}
		defs[i] = pgx.Identifier{c}.Sanitize() + " " + typ
	}
	return fmt.Sprintf("CREATE TABLE %s (\n\t%s\n)", pgx.Identifier{registrationsTable}.Sanitize(), strings.Join(defs, ",\n\t"))
}

func importRegistrations(ctx context.Context, path, encoding string) error {
	src, err := openSource(path, encoding)
	if err != nil {
		return err
	}
	defer src.Close()

	sheet, err := parseRegistrations(src)
	if err != nil {
		return fmt.Errorf("importer: parse %s: %w", path, err)
	}
	log.Info().Int("columns", len(sheet.Columns)).Int("rows", len(sheet.Rows)).Msg("parsed registrations")

	conn, err := connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("importer: begin: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+pgx.Identifier{registrationsTable}.Sanitize()); err != nil {
		return fmt.Errorf("importer: drop %s: %w", registrationsTable, err)
	}
	if _, err := tx.Exec(ctx, sheet.createTableSQL()); err != nil {
		return fmt.Errorf("importer: create %s: %w", registrationsTable, err)
	}
	_, err = tx.CopyFrom(ctx, pgx.Identifier{registrationsTable}, sheet.Columns, pgx.CopyFromRows(sheet.Rows))
	if err != nil {
		return fmt.Errorf("importer: copy into %s: %w", registrationsTable, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("importer: commit: %w", err)
	}

	if err := verifyImport(ctx, conn, registrationsTable, len(sheet.Rows)); err != nil {
		return err
	}
	log.Info().Str("table", registrationsTable).Int("rows", len(sheet.Rows)).Msg("import complete")
	return nil
}

var registrationsCmd = &cobra.Command{
	Use:   "registrations",
	Short: "Recreate tbl_register from a yearly CSV with year,<region...>[,total]",
	RunE: func(cmd *cobra.Command, _ []string) error {
		file, _ := cmd.Flags().GetString("file")
		encoding, _ := cmd.Flags().GetString("encoding")
		return importRegistrations(cmd.Context(), file, encoding)
	},
}

func init() {
	addSourceFlags(registrationsCmd)
	rootCmd.AddCommand(registrationsCmd)
}
