package service

import (
	"fmt"
	"sort"

	"evstat-api/internal/models"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

const (
	yearCol  = "year"
	totalCol = "__national_total"
)

// AggregateYearly sums every region column of each record into a national total and returns the
// series ordered by year. Precomputed totals are ignored. Rows sharing a year are merged.
func AggregateYearly(records []models.RegistrationRecord) ([]models.YearlyTotal, error) {
	out := []models.YearlyTotal{}
	if len(records) == 0 {
		return out, nil
	}

	columns := regionColumns(records)

	years := make([]int, len(records))
	for i, r := range records {
		years[i] = r.Year
	}
	cols := []series.Series{series.New(years, series.Int, yearCol)}
	for _, name := range columns {
		values := make([]int, len(records))
		for i, r := range records {
			values[i] = int(r.Counts[name])
		}
		cols = append(cols, series.New(values, series.Int, name))
	}
	df := dataframe.New(cols...)
	if df.Err != nil {
		return nil, fmt.Errorf("service: build registration frame: %w", df.Err)
	}

	totals := make([]int, df.Nrow())
	for _, name := range columns {
		values, err := df.Col(name).Int()
		if err != nil {
			return nil, fmt.Errorf("service: read column %q: %w", name, err)
		}
		for i, v := range values {
			totals[i] += v
		}
	}

	trend := df.
		Mutate(series.New(totals, series.Int, totalCol)).
		Select([]string{yearCol, totalCol}).
		Arrange(dataframe.Sort(yearCol))
	if trend.Err != nil {
		return nil, fmt.Errorf("service: aggregate registrations: %w", trend.Err)
	}

	sortedYears, err := trend.Col(yearCol).Int()
	if err != nil {
		return nil, fmt.Errorf("service: read years: %w", err)
	}
	sortedTotals, err := trend.Col(totalCol).Int()
	if err != nil {
		return nil, fmt.Errorf("service: read totals: %w", err)
	}

	for i, year := range sortedYears {
		if n := len(out); n > 0 && out[n-1].Year == year {
			out[n-1].NationalTotal += int64(sortedTotals[i])
			continue
		}
		out = append(out, models.YearlyTotal{Year: year, NationalTotal: int64(sortedTotals[i])})
	}
	return out, nil
}

// regionColumns is the sorted union of count columns across records; absent cells read as zero.
func regionColumns(records []models.RegistrationRecord) []string {
	seen := map[string]struct{}{}
	for _, r := range records {
		for name := range r.Counts {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
