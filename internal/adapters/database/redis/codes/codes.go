package codes

import (
	"context"
	"time"

	"github.com/qrforms/qrforms/internal/domain/common/errorz"
	"github.com/qrforms/qrforms/internal/domain/entity"
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

func (s *Storage) Set(code entity.Code, expiration time.Duration) error {
	ctx := context.Background()
	err := s.redis.HSet(ctx, code.ID,
		"kind", string(code.Kind),
		"format", string(code.Format),
		"data", code.Data,
	).Err()
	if err != nil {
		return err
	}
	return s.redis.Expire(ctx, code.ID, expiration).Err()
}

func (s *Storage) Get(id string) (entity.Code, error) {
	fields, err := s.redis.HGetAll(context.Background(), id).Result()
	if err != nil {
		return entity.Code{}, err
	}
	if len(fields) == 0 {
		return entity.Code{}, errorz.ErrCodeNotFound
	}

	return entity.Code{
		ID:     id,
		Kind:   entity.PayloadKind(fields["kind"]),
		Format: entity.Format(fields["format"]),
		Data:   []byte(fields["data"]),
	}, nil
}

func (s *Storage) Delete(id string) error {
	return s.redis.Del(context.Background(), id).Err()
}
