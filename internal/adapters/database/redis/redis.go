package redis

import (
	"context"
	"fmt"

	"github.com/qrforms/qrforms/internal/adapters/database/redis/codes"
	"github.com/qrforms/qrforms/internal/adapters/database/redis/prefs"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	Prefs *prefs.Storage
	Codes *codes.Storage
}

type Options struct {
	Host     string
	Port     string
	Password string
}

func New(opts Options) (*Client, error) {
	prefsStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := prefsStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping prefs storage: %w", err)
	}

	codeStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       1,
	})
	if err := codeStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping codes storage: %w", err)
	}

	return &Client{
		Prefs: prefs.NewStorage(prefsStorage),
		Codes: codes.NewStorage(codeStorage),
	}, nil
}
