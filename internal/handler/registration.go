package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"evstat-api/internal/models"
	"evstat-api/internal/render"
	"evstat-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang/freetype/truetype"
)

// TrendService interface for dependency injection
type TrendService interface {
	Trend(ctx context.Context) (*models.TrendChart, error)
}

// TrendResponse is the body of GET /api/v1/registrations/trend.
type TrendResponse struct {
	Status  string             `json:"status"`
	Message string             `json:"message,omitempty"`
	Chart   *models.TrendChart `json:"chart,omitempty"`
}

// RegistrationHandler serves the national registration trend page.
type RegistrationHandler struct {
	service TrendService
	font    *truetype.Font
}

// NewRegistrationHandler creates a new registration handler. font may be nil.
func NewRegistrationHandler(svc TrendService, font *truetype.Font) *RegistrationHandler {
	return &RegistrationHandler{service: svc, font: font}
}

// Trend handles GET /api/v1/registrations/trend
//
//	@Summary	Yearly national EV registration totals
//	@Tags		registrations
//	@Produce	json
//	@Success	200	{object}	TrendResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/registrations/trend [get]
func (h *RegistrationHandler) Trend(c *gin.Context) {
	chart, err := h.service.Trend(c.Request.Context())
	if errors.Is(err, service.ErrNoData) {
		c.JSON(http.StatusOK, TrendResponse{Status: StatusNoData, Message: MsgNoData})
		return
	}
	if err != nil {
		respondLoadFailed(c, err, "registrations")
		return
	}

	c.JSON(http.StatusOK, TrendResponse{Status: StatusOK, Chart: chart})
}

// TrendChartPNG handles GET /api/v1/registrations/trend/chart.png
//
//	@Summary	Yearly national EV registration totals as a bar chart
//	@Tags		registrations
//	@Produce	png
//	@Success	200
//	@Success	204
//	@Failure	500	{object}	ErrorResponse
//	@Router		/registrations/trend/chart.png [get]
func (h *RegistrationHandler) TrendChartPNG(c *gin.Context) {
	chart, err := h.service.Trend(c.Request.Context())
	if errors.Is(err, service.ErrNoData) {
		c.Status(http.StatusNoContent)
		return
	}
	if err != nil {
		respondLoadFailed(c, err, "registrations")
		return
	}

	var buf bytes.Buffer
	if err := render.TrendPNG(&buf, *chart, h.font); err != nil {
		respondLoadFailed(c, err, "registrations")
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
