package handler

import (
	"net/http"

	"evstat-api/internal/cache"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CacheRefresher interface for dependency injection
type CacheRefresher interface {
	Refresh(key string) error
	RefreshAll() error
}

// CacheHandler exposes explicit invalidation of memoized tables.
type CacheHandler struct {
	cache CacheRefresher
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(c CacheRefresher) *CacheHandler {
	return &CacheHandler{cache: c}
}

// Refresh handles POST /api/v1/cache/refresh
//
//	@Summary	Drop memoized tables so the next request reloads them
//	@Tags		cache
//	@Produce	json
//	@Param		key	query		string	false	"registrations or station_tables; all when omitted"
//	@Success	200	{object}	map[string]string
//	@Failure	400	{object}	ErrorResponse
//	@Router		/cache/refresh [post]
func (h *CacheHandler) Refresh(c *gin.Context) {
	key := c.Query("key")

	var err error
	switch key {
	case "":
		err = h.cache.RefreshAll()
	case cache.KeyRegistrations, cache.KeyStationTables:
		err = h.cache.Refresh(key)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown cache key"})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("handler: cache refresh failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	if key == "" {
		key = "all"
	}
	log.Info().Str("key", key).Msg("handler: cache refreshed")
	c.JSON(http.StatusOK, gin.H{"status": "refreshed", "key": key})
}
