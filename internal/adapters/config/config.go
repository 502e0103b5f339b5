package config

import (
	"errors"

	"github.com/qrforms/qrforms/internal/adapters/database/redis"
	"github.com/qrforms/qrforms/pkg/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Redis *redis.Client
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("settings.debug", false)
	viper.SetDefault("settings.log-to-file", false)
	viper.SetDefault("settings.logs-dir", "logs")
	viper.SetDefault("service.server.host", "0.0.0.0")
	viper.SetDefault("service.server.port", 8080)
	viper.SetDefault("service.redis.host", "localhost")
	viper.SetDefault("service.redis.port", 6379)
	viper.SetDefault("qr.cache-ttl", "1h")
	viper.SetDefault("qr.limits.max-text-length", 1000)
	viper.SetDefault("qr.limits.min-size", 64)
	viper.SetDefault("qr.limits.max-size", 2048)
	viper.SetDefault("qr.limits.max-logo-bytes", 2<<20)
	viper.SetDefault("qr.limits.max-logo-dimension", 1024)
	viper.SetDefault("ui.default-theme", "light")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	}
}

func Get() *Config {
	initConfig()

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("settings.debug"),
		LogToFile: viper.GetBool("settings.log-to-file"),
		LogsDir:   viper.GetString("settings.logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	redisClient, err := redis.New(redis.Options{
		Host:     viper.GetString("service.redis.host"),
		Port:     viper.GetString("service.redis.port"),
		Password: viper.GetString("service.redis.password"),
	})
	if err != nil {
		logger.Log.Panicf("Failed to connect to redis: %v", err)
	} else {
		logger.Log.Info("Successfully connected to redis")
	}

	return &Config{
		Redis: redisClient,
	}
}
