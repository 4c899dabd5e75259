package repository

import (
	"context"
	"database/sql"
	"fmt"

	"evstat-api/internal/config"
	"evstat-api/internal/models"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// OpenSQL opens a database/sql handle for the mysql and postgres drivers.
// MySQL connections always use utf8mb4 so Korean names survive the round trip.
func OpenSQL(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case config.DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, fmt.Errorf("repository: parse mysql dsn: %w", err)
		}
		if cfg.Params == nil {
			cfg.Params = map[string]string{}
		}
		cfg.Params["charset"] = "utf8mb4"
		connector, err := mysql.NewConnector(cfg)
		if err != nil {
			return nil, fmt.Errorf("repository: mysql connector: %w", err)
		}
		return sql.OpenDB(connector), nil
	case config.DriverPostgres:
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("repository: open postgres: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("repository: driver %q is not served by database/sql", driver)
	}
}

// SQLRepository reads the dashboard tables through database/sql.
type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository wraps an open database/sql handle.
func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// ListRegistrations reads every row of tbl_register. Region columns are discovered from the result set.
func (r *SQLRepository) ListRegistrations(ctx context.Context) ([]models.RegistrationRecord, error) {
	rows, err := r.db.QueryContext(ctx, registrationsSQL)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute registrations query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to read columns: %w", err)
	}

	records := []models.RegistrationRecord{}
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("repository: failed to scan registration row: %w", err)
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
func (r *SQLRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	rows, err := r.db.QueryContext(ctx, regionsSQL)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute regions query: %w", err)
	}
	defer rows.Close()

	regions := []models.Region{}
	for rows.Next() {
		var code, name sql.NullString
		if err := rows.Scan(&code, &name); err != nil {
			return nil, fmt.Errorf("repository: failed to scan region: %w", err)
		}
		regions = append(regions, models.Region{Code: code.String, Name: name.String})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return regions, nil
}

// ListRegionDetails reads tbl_region_detail.
func (r *SQLRepository) ListRegionDetails(ctx context.Context) ([]models.RegionDetail, error) {
	rows, err := r.db.QueryContext(ctx, regionDetailsSQL)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute region details query: %w", err)
	}
	defer rows.Close()

	details := []models.RegionDetail{}
	for rows.Next() {
		var code, name, regionCode sql.NullString
		if err := rows.Scan(&code, &name, &regionCode); err != nil {
			return nil, fmt.Errorf("repository: failed to scan region detail: %w", err)
		}
		details = append(details, models.RegionDetail{
			Code:       code.String,
			Name:       name.String,
			RegionCode: regionCode.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return details, nil
}

// ListStations reads tbl_station, dropping rows whose coordinates are missing or not numeric.
func (r *SQLRepository) ListStations(ctx context.Context) ([]models.Station, error) {
	rows, err := r.db.QueryContext(ctx, stationsSQL)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute stations query: %w", err)
	}
	defer rows.Close()

	stations := []models.Station{}
	dropped := 0
	for rows.Next() {
		var id, name, addr, lat, lng, parking, zscode sql.NullString
		if err := rows.Scan(&id, &name, &addr, &lat, &lng, &parking, &zscode); err != nil {
			return nil, fmt.Errorf("repository: failed to scan station: %w", err)
		}
		raw := rawStation{
			ID:            id.String,
			Name:          name.String,
			Address:       addr.String,
			Lat:           lat.String,
			Lng:           lng.String,
			ParkingFree:   parking.String,
			SubRegionCode: zscode.String,
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
