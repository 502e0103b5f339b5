package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

// GetTheme returns the stored theme for the client, or "" when none is set.
func (s *Storage) GetTheme(clientID string) (string, error) {
	theme, err := s.redis.Get(context.Background(), key(clientID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return theme, nil
}

func (s *Storage) SetTheme(clientID string, theme string) error {
	return s.redis.Set(context.Background(), key(clientID), theme, 0).Err()
}

func (s *Storage) Clear(clientID string) error {
	return s.redis.Del(context.Background(), key(clientID)).Err()
}

func key(clientID string) string {
	return fmt.Sprintf("theme:%s", clientID)
}
