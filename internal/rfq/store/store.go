package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/soletrade/soletrade/internal/rfq"
)

// Draft carts are kept for a month of inactivity; every write refreshes the
// clock.
const draftTTL = 30 * 24 * time.Hour

// Store persists draft carts in redis as a JSON list per buyer key.
type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func cartKey(key string) string {
	return "rfq:draft:" + key
}

func (s *Store) Items(ctx context.Context, key string) ([]rfq.DraftItem, error) {
	raw, err := s.rdb.Get(ctx, cartKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}

		return nil, fmt.Errorf("reading draft cart: %w", err)
	}

	var items []rfq.DraftItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding draft cart: %w", err)
	}

	return items, nil
}

func (s *Store) Save(ctx context.Context, key string, items []rfq.DraftItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding draft cart: %w", err)
	}

	if err := s.rdb.Set(ctx, cartKey(key), raw, draftTTL).Err(); err != nil {
		return fmt.Errorf("saving draft cart: %w", err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, cartKey(key)).Err(); err != nil {
		return fmt.Errorf("clearing draft cart: %w", err)
	}

	return nil
}
