package service

import (
	"context"
	"errors"
	"fmt"

	"evstat-api/internal/cache"
	"evstat-api/internal/models"
	"evstat-api/internal/render"
)

// ErrNoData is returned when the source table is empty.
var ErrNoData = errors.New("no data")

const (
	trendTitleFormat = "국내 전기차 연도별 누적 등록 추세 (%d ~ %d년)"
	trendXAxisTitle  = "연도"
	trendYAxisTitle  = "총 등록대수 (대)"
	trendCaption     = "💡 전기차 등록대수가 매년 증가하고 있는 추세를 확인할 수 있습니다."
	trendHeight      = 500
)

// RegistrationRepository interface for dependency injection
type RegistrationRepository interface {
	ListRegistrations(ctx context.Context) ([]models.RegistrationRecord, error)
}

// RegistrationService builds the national registration trend page.
type RegistrationService struct {
	repo  RegistrationRepository
	cache *cache.TableCache
}

// NewRegistrationService creates a new registration service. A nil cache disables memoization.
func NewRegistrationService(repo RegistrationRepository, tables *cache.TableCache) *RegistrationService {
	return &RegistrationService{repo: repo, cache: tables}
}

// Trend loads tbl_register and returns the yearly national totals as a chart document.
func (s *RegistrationService) Trend(ctx context.Context) (*models.TrendChart, error) {
	records, err := cache.Fetch(ctx, s.cache, cache.KeyRegistrations, s.repo.ListRegistrations)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load registrations: %w", err)
	}

	totals, err := AggregateYearly(records)
	if err != nil {
		return nil, err
	}
	if len(totals) == 0 {
		return nil, ErrNoData
	}

	chart := BuildTrendChart(totals)
	return &chart, nil
}

// BuildTrendChart decorates a non-empty yearly series with titles, value labels and bar colors.
func BuildTrendChart(totals []models.YearlyTotal) models.TrendChart {
	tc := models.TrendChart{
		XAxisTitle: trendXAxisTitle,
		YAxisTitle: trendYAxisTitle,
		XAxisType:  "category",
		ColorScale: render.GreensName,
		Height:     trendHeight,
		Series:     totals,
		Bars:       make([]models.TrendBar, 0, len(totals)),
		Caption:    trendCaption,
	}
	if len(totals) == 0 {
		return tc
	}

	lo, hi := totals[0].NationalTotal, totals[0].NationalTotal
	for _, t := range totals {
		lo, hi = min(lo, t.NationalTotal), max(hi, t.NationalTotal)
	}
	for _, t := range totals {
		tc.Bars = append(tc.Bars, models.TrendBar{
			Year:  t.Year,
			Value: t.NationalTotal,
			Label: render.CountLabel(t.NationalTotal),
			Color: render.Hex(render.ScaleColor(t.NationalTotal, lo, hi)),
		})
	}
	tc.Title = fmt.Sprintf(trendTitleFormat, totals[0].Year, totals[len(totals)-1].Year)
	return tc
}
