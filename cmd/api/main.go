package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "evstat-api/docs"
	"evstat-api/internal/cache"
	"evstat-api/internal/config"
	"evstat-api/internal/handler"
	"evstat-api/internal/logger"
	"evstat-api/internal/metrics"
	"evstat-api/internal/render"
	"evstat-api/internal/repository"
	"evstat-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang/freetype/truetype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type store interface {
	service.RegistrationRepository
	service.StationRepository
}

// openStore picks the repository for the configured driver. The returned func releases it.
func openStore(ctx context.Context, cfg config.Config) (store, func(), error) {
	switch cfg.DBDriver {
	case config.DriverPgx:
		conn, err := pgxpool.New(ctx, cfg.DBSource)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresRepository(conn), conn.Close, nil
	default:
		db, err := repository.OpenSQL(cfg.DBDriver, cfg.DBSource)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewSQLRepository(db), func() { _ = db.Close() }, nil
	}
}

// @title			EV statistics API
// @version		1.0
// @description	National EV registration trend and charging-station map.
// @BasePath		/api/v1
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogPretty); err != nil {
		log.Fatal().Err(err).Msg("cannot init logger")
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database connection
	repo, closeDB, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer closeDB()
	log.Info().Str("driver", cfg.DBDriver).Msg("database configured")

	var font *truetype.Font
	if cfg.ChartFontPath != "" {
		font, err = render.LoadFont(cfg.ChartFontPath)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.ChartFontPath).Msg("chart titles disabled")
		}
	}

	// Initialize layers
	tables := cache.New(cfg.CacheEnabled)
	defer tables.Close()

	registrationService := service.NewRegistrationService(repo, tables)
	stationService := service.NewStationService(repo, tables)

	registrationHandler := handler.NewRegistrationHandler(registrationService, font)
	stationHandler := handler.NewStationHandler(stationService)
	cacheHandler := handler.NewCacheHandler(tables)

	r := gin.New()
	r.Use(gin.Recovery(), logger.GinLogger(), metrics.GinMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/registrations/trend", registrationHandler.Trend)
		v1.GET("/registrations/trend/chart.png", registrationHandler.TrendChartPNG)
		v1.GET("/regions", stationHandler.Regions)
		v1.GET("/regions/subregions", stationHandler.SubRegions)
		v1.GET("/stations/map", stationHandler.Map)
		v1.GET("/stations/map/geojson", stationHandler.GeoJSON)
		v1.POST("/cache/refresh", cacheHandler.Refresh)
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("address", cfg.ServerAddress).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server exited")
}
