package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobhub_backend/database"
	"jobhub_backend/internal/auth"
	"jobhub_backend/internal/cache"
	"jobhub_backend/internal/config"
	"jobhub_backend/internal/handlers"
	"jobhub_backend/internal/logger"
	"jobhub_backend/internal/routes"
	"jobhub_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

// Run - точка входа приложения: конфиг, подключения, DI, HTTP-сервер
// с graceful shutdown
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	cacheClient, err := cache.New(cfg.Redis.URL, time.Duration(cfg.Redis.CacheTTLSeconds)*time.Second)
	if err != nil {
		return fmt.Errorf("create cache client: %w", err)
	}
	defer cacheClient.Close()

	// Недоступный Redis не мешает старту: кэш деградирует в промахи
	if err := cacheClient.Ping(context.Background()); err != nil {
		logger.Warn("redis unavailable at startup, cache degraded", "error", err.Error())
	}

	router := SetupRouter(cfg, db, cacheClient)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started", "addr", srv.Addr, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// SetupRouter собирает gin-роутер со всеми зависимостями.
// Вынесено из Run, чтобы интеграционные тесты поднимали роутер
// на своих db и cache.
func SetupRouter(cfg *config.Config, db *gorm.DB, cacheClient *cache.Client) *gin.Engine {
	tokens := auth.NewTokenManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		time.Duration(cfg.JWT.AccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWT.RefreshTTLHours)*time.Hour,
	)

	container := services.NewServiceContainer(db, cacheClient, tokens, cfg)
	appHandlers := handlers.NewAppHandlers(container, tokens)

	router := gin.New()
	routes.RegisterRoutes(router, appHandlers)
	return router
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}
	return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
}
