package repository

import (
	"context"
	"fmt"

	"evstat-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// Pool is the subset of pgxpool.Pool the repository needs.
type Pool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository reads the dashboard tables through a pgx pool.
type PostgresRepository struct {
	db Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListRegistrations reads every row of tbl_register. Region columns are discovered from the result set.
func (r *PostgresRepository) ListRegistrations(ctx context.Context) ([]models.RegistrationRecord, error) {
	rows, err := r.db.Query(ctx, registrationsSQL)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute registrations query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	records := []models.RegistrationRecord{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("repository: failed to read registration row: %w", err)
		}
		rec, err := buildRegistration(columns, values)
		if err != nil {
			return nil, fmt.Errorf("repository: invalid registration row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return records, nil
}

// ListRegions reads tbl_region.
func (r *PostgresRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	rows, err := r.db.Query(ctx, pgRegionsSQL)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute regions query: %w", err)
	}
	defer rows.Close()

	regions := []models.Region{}
	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.Code, &region.Name); err != nil {
			return nil, fmt.Errorf("repository: failed to scan region: %w", err)
		}
		regions = append(regions, region)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return regions, nil
}

// ListRegionDetails reads tbl_region_detail.
func (r *PostgresRepository) ListRegionDetails(ctx context.Context) ([]models.RegionDetail, error) {
	rows, err := r.db.Query(ctx, pgRegionDetailsSQL)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute region details query: %w", err)
	}
	defer rows.Close()

	details := []models.RegionDetail{}
	for rows.Next() {
		var d models.RegionDetail
		if err := rows.Scan(&d.Code, &d.Name, &d.RegionCode); err != nil {
			return nil, fmt.Errorf("repository: failed to scan region detail: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return details, nil
}

// ListStations reads tbl_station, dropping rows whose coordinates are missing or not numeric.
func (r *PostgresRepository) ListStations(ctx context.Context) ([]models.Station, error) {
	rows, err := r.db.Query(ctx, pgStationsSQL)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute stations query: %w", err)
	}
	defer rows.Close()

	stations := []models.Station{}
	dropped := 0
	for rows.Next() {
		var raw rawStation
		err := rows.Scan(
			&raw.ID,
			&raw.Name,
			&raw.Address,
			&raw.Lat,
			&raw.Lng,
			&raw.ParkingFree,
			&raw.SubRegionCode,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan station: %w", err)
		}
		station, ok := raw.toStation()
		if !ok {
			dropped++
			continue
		}
		stations = append(stations, station)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	if dropped > 0 {
		log.Debug().Int("dropped", dropped).Msg("repository: skipped stations without usable coordinates")
	}
	return stations, nil
}
