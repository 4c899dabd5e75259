package service

import (
	"context"
	"fmt"

	"evstat-api/internal/cache"
	"evstat-api/internal/models"
)

// StationRepository interface for dependency injection
type StationRepository interface {
	ListRegions(ctx context.Context) ([]models.Region, error)
	ListRegionDetails(ctx context.Context) ([]models.RegionDetail, error)
	ListStations(ctx context.Context) ([]models.Station, error)
}

// StationService builds the charging-station map page.
type StationService struct {
	repo  StationRepository
	cache *cache.TableCache
}

// NewStationService creates a new station service. A nil cache disables memoization.
func NewStationService(repo StationRepository, tables *cache.TableCache) *StationService {
	return &StationService{repo: repo, cache: tables}
}

// Tables returns the region, region-detail and station tables, loading all three together.
func (s *StationService) Tables(ctx context.Context) (models.StationTables, error) {
	tables, err := cache.Fetch(ctx, s.cache, cache.KeyStationTables, s.load)
	if err != nil {
		return models.StationTables{}, fmt.Errorf("service: failed to load station tables: %w", err)
	}
	return tables, nil
}

func (s *StationService) load(ctx context.Context) (models.StationTables, error) {
	regions, err := s.repo.ListRegions(ctx)
	if err != nil {
		return models.StationTables{}, err
	}
	details, err := s.repo.ListRegionDetails(ctx)
	if err != nil {
		return models.StationTables{}, err
	}
	stations, err := s.repo.ListStations(ctx)
	if err != nil {
		return models.StationTables{}, err
	}
	return models.StationTables{Regions: regions, RegionDetails: details, Stations: stations}, nil
}

// Map returns the station map for a selection.
func (s *StationService) Map(ctx context.Context, sel models.Selection) (*models.StationMap, error) {
	tables, err := s.Tables(ctx)
	if err != nil {
		return nil, err
	}
	m := BuildStationMap(sel, tables)
	return &m, nil
}

// RegionOptions returns the choices of the region control.
func (s *StationService) RegionOptions(ctx context.Context) (models.SelectorOptions, error) {
	tables, err := s.Tables(ctx)
	if err != nil {
		return models.SelectorOptions{}, err
	}
	return RegionOptions(tables.Regions), nil
}

// SubRegionOptions returns the choices of the sub-region control for the given region.
func (s *StationService) SubRegionOptions(ctx context.Context, region string) (models.SelectorOptions, error) {
	tables, err := s.Tables(ctx)
	if err != nil {
		return models.SelectorOptions{}, err
	}
	return SubRegionOptions(region, tables), nil
}
