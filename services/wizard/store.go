// File: services/wizard/store.go
package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medibook/models"

	"github.com/go-redis/redis/v8"
)

const sessionPrefix = "wizard:session:"

// Store persists wizard sessions in Redis with a TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Save(ctx context.Context, sess *models.WizardSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.client.Set(ctx, sessionPrefix+sess.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.client.Get(ctx, sessionPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var sess models.WizardSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionPrefix+sessionID).Err()
}
