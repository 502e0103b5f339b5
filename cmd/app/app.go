package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qrforms/qrforms/internal/adapters/config"
	"github.com/qrforms/qrforms/internal/adapters/controller/http/middlewares"
	"github.com/qrforms/qrforms/internal/adapters/database/redis"
	"github.com/qrforms/qrforms/pkg/logger"
	"github.com/qrforms/qrforms/pkg/logger/types"
	"github.com/spf13/viper"
)

type App struct {
	Engine *gin.Engine
	Redis  *redis.Client
	Logger *types.Logger

	server *http.Server
}

func New(cfg *config.Config) (*App, error) {
	if !viper.GetBool("settings.debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	httpLogger, err := logger.Named("http")
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(
		middlewares.RequestLogger(httpLogger),
		middlewares.Recovery(httpLogger),
		middlewares.CORS(),
	)

	addr := fmt.Sprintf("%s:%d",
		viper.GetString("service.server.host"),
		viper.GetInt("service.server.port"),
	)

	server := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &App{
		Engine: engine,
		Redis:  cfg.Redis,
		Logger: httpLogger,
		server: server,
	}, nil
}

// Start runs the server until SIGINT/SIGTERM, then shuts it down gracefully.
func (a *App) Start() {
	go func() {
		logger.Log.Infof("Server listening on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Panicf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		logger.Log.Errorf("Forced shutdown: %v", err)
	}
}
