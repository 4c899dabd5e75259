package repository

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"evstat-api/internal/models"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	yearColumn  = "year"
	totalColumn = "total"
)

var (
	// ErrMissingYear is returned when tbl_register has no year column.
	ErrMissingYear = errors.New("registration table has no year column")
	// ErrNotNumeric is returned when a registration cell cannot be read as an integer.
	ErrNotNumeric = errors.New("value is not numeric")
)

// buildRegistration turns one untyped tbl_register row into a RegistrationRecord.
// NULL cells count as zero; any other non-integer value is rejected.
func buildRegistration(columns []string, values []any) (models.RegistrationRecord, error) {
	rec := models.RegistrationRecord{Counts: make(map[string]int64, len(columns))}
	if len(columns) != len(values) {
		return rec, fmt.Errorf("column/value mismatch: %d columns, %d values", len(columns), len(values))
	}

	hasYear := false
	for i, col := range columns {
		name := strings.TrimSpace(col)
		switch strings.ToLower(name) {
		case yearColumn:
			if values[i] == nil {
				return rec, fmt.Errorf("column %q: %w", name, ErrNotNumeric)
			}
			year, err := toInt64(values[i])
			if err != nil {
				return rec, fmt.Errorf("column %q: %w", name, err)
			}
			rec.Year = int(year)
			hasYear = true
		case totalColumn:
			if values[i] == nil {
				continue
			}
			total, err := toInt64(values[i])
			if err != nil {
				return rec, fmt.Errorf("column %q: %w", name, err)
			}
			rec.Total = &total
		default:
			if values[i] == nil {
				rec.Counts[name] = 0
				continue
			}
			n, err := toInt64(values[i])
			if err != nil {
				return rec, fmt.Errorf("column %q: %w", name, err)
			}
			rec.Counts[name] = n
		}
	}

	if !hasYear {
		return rec, ErrMissingYear
	}
	return rec, nil
}

// toInt64 accepts the integer, float, text and numeric shapes the supported drivers return.
func toInt64(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return 0, fmt.Errorf("%d: %w", x, ErrNotNumeric)
		}
		return int64(x), nil
	case float32:
		return floatToInt64(float64(x))
	case float64:
		return floatToInt64(x)
	case []byte:
		return parseInt64(string(x))
	case string:
		return parseInt64(x)
	case pgtype.Numeric:
		n, err := x.Int64Value()
		if err != nil || !n.Valid {
			return 0, fmt.Errorf("numeric: %w", ErrNotNumeric)
		}
		return n.Int64, nil
	default:
		return 0, fmt.Errorf("%T: %w", v, ErrNotNumeric)
	}
}

func parseInt64(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}
	return floatToInt64(f)
}

func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v: %w", f, ErrNotNumeric)
	}
	return int64(f), nil
}

// parseCoordinate reports whether s is a finite number usable as a map coordinate.
func parseCoordinate(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseParkingFree(s string) models.ParkingFree {
	switch p := models.ParkingFree(strings.TrimSpace(s)); p {
	case models.ParkingFreeYes, models.ParkingFreeNo:
		return p
	default:
		return models.ParkingFreeUnknown
	}
}

// rawStation is a tbl_station row before coordinate validation.
type rawStation struct {
	ID, Name, Address, Lat, Lng, ParkingFree, SubRegionCode string
}

// toStation returns false when the row cannot be placed on a map.
func (r rawStation) toStation() (models.Station, bool) {
	lat, ok := parseCoordinate(r.Lat)
	if !ok {
		return models.Station{}, false
	}
	lng, ok := parseCoordinate(r.Lng)
	if !ok {
		return models.Station{}, false
	}
	return models.Station{
		ID:            r.ID,
		Name:          r.Name,
		Address:       r.Address,
		Latitude:      lat,
		Longitude:     lng,
		ParkingFree:   parseParkingFree(r.ParkingFree),
		SubRegionCode: strings.TrimSpace(r.SubRegionCode),
	}, true
}
