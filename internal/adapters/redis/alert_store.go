package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moness/staff-portal/internal/domain/model"
)

const (
	alertPrefix = "portal:alert:"
	alertTTL    = 30 * time.Minute
)

// AlertStore is the Redis-backed one-shot alert register. Each session
// key holds at most one payload; Set overwrites whole values, so the
// last write before the alert page renders is the one shown.
type AlertStore struct {
	client redis.UniversalClient
}

// NewAlertStore creates a Redis-backed alert register.
func NewAlertStore(client redis.UniversalClient) *AlertStore {
	return &AlertStore{client: client}
}

func (s *AlertStore) Set(ctx context.Context, sessionID string, payload model.AlertPayload) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal alert payload: %w", err)
	}

	return s.client.Set(ctx, alertPrefix+sessionID, data, alertTTL).Err()
}

// Take consumes the pending payload with GETDEL so the register is
// empty the moment it renders.
func (s *AlertStore) Take(ctx context.Context, sessionID string) (model.AlertPayload, error) {
	if sessionID == "" {
		return model.AlertPayload{}, ErrNotFound
	}

	data, err := s.client.GetDel(ctx, alertPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.AlertPayload{}, ErrNotFound
		}
		return model.AlertPayload{}, fmt.Errorf("redis get: %w", err)
	}

	var payload model.AlertPayload
	if unmarshalErr := json.Unmarshal([]byte(data), &payload); unmarshalErr != nil {
		return model.AlertPayload{}, fmt.Errorf("unmarshal alert payload: %w", unmarshalErr)
	}

	return payload, nil
}
