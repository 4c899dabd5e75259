package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"evstat-api/internal/models"
	"evstat-api/internal/render"

	"github.com/gin-gonic/gin"
)

// StationMapService interface for dependency injection
type StationMapService interface {
	Map(ctx context.Context, sel models.Selection) (*models.StationMap, error)
	RegionOptions(ctx context.Context) (models.SelectorOptions, error)
	SubRegionOptions(ctx context.Context, region string) (models.SelectorOptions, error)
}

// StationHandler serves the charging-station map page.
type StationHandler struct {
	service StationMapService
}

// NewStationHandler creates a new station handler
func NewStationHandler(svc StationMapService) *StationHandler {
	return &StationHandler{service: svc}
}

func selectionFrom(c *gin.Context) models.Selection {
	return models.Selection{Region: c.Query("region"), SubRegion: c.Query("subregion")}
}

// Map handles GET /api/v1/stations/map
//
//	@Summary	Charging stations for a region selection
//	@Tags		stations
//	@Produce	json
//	@Param		region		query		string	false	"region name, 전체 for all"
//	@Param		subregion	query		string	false	"sub-region name, 전체 for all"
//	@Success	200			{object}	models.StationMap
//	@Failure	500			{object}	ErrorResponse
//	@Router		/stations/map [get]
func (h *StationHandler) Map(c *gin.Context) {
	m, err := h.service.Map(c.Request.Context(), selectionFrom(c))
	if err != nil {
		respondLoadFailed(c, err, "stations")
		return
	}
	c.JSON(http.StatusOK, m)
}

// GeoJSON handles GET /api/v1/stations/map/geojson
//
//	@Summary	Charging stations for a region selection as GeoJSON
//	@Tags		stations
//	@Produce	json
//	@Param		region		query	string	false	"region name, 전체 for all"
//	@Param		subregion	query	string	false	"sub-region name, 전체 for all"
//	@Success	200
//	@Failure	500	{object}	ErrorResponse
//	@Router		/stations/map/geojson [get]
func (h *StationHandler) GeoJSON(c *gin.Context) {
	m, err := h.service.Map(c.Request.Context(), selectionFrom(c))
	if err != nil {
		respondLoadFailed(c, err, "stations")
		return
	}

	body, err := json.Marshal(render.StationFeatures(m.Stations))
	if err != nil {
		respondLoadFailed(c, err, "stations")
		return
	}
	c.Data(http.StatusOK, "application/geo+json", body)
}

// Regions handles GET /api/v1/regions
//
//	@Summary	Options of the region selector
//	@Tags		regions
//	@Produce	json
//	@Success	200	{object}	models.SelectorOptions
//	@Failure	500	{object}	ErrorResponse
//	@Router		/regions [get]
func (h *StationHandler) Regions(c *gin.Context) {
	opts, err := h.service.RegionOptions(c.Request.Context())
	if err != nil {
		respondLoadFailed(c, err, "stations")
		return
	}
	c.JSON(http.StatusOK, opts)
}

// SubRegions handles GET /api/v1/regions/subregions
//
//	@Summary	Options of the sub-region selector
//	@Tags		regions
//	@Produce	json
//	@Param		region	query		string	false	"selected region name"
//	@Success	200		{object}	models.SelectorOptions
//	@Failure	500		{object}	ErrorResponse
//	@Router		/regions/subregions [get]
func (h *StationHandler) SubRegions(c *gin.Context) {
	opts, err := h.service.SubRegionOptions(c.Request.Context(), c.Query("region"))
	if err != nil {
		respondLoadFailed(c, err, "stations")
		return
	}
	c.JSON(http.StatusOK, opts)
}
