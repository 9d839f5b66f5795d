package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/bookingflow/internal/pkg/constants"
	"github.com/piresc/bookingflow/internal/pkg/database"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/services/safety"
)

type safetyRepo struct {
	redisClient *database.RedisClient
}

// NewSafetyRepository creates a new Redis-backed safety repository
func NewSafetyRepository(redisClient *database.RedisClient) safety.SafetyRepo {
	return &safetyRepo{redisClient: redisClient}
}

// SaveSOSSent keeps the "sent" status for the window; Redis expiry brings
// the user back to idle.
func (r *safetyRepo) SaveSOSSent(ctx context.Context, userID string, status models.SOSStatus, window time.Duration) error {
	raw, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal sos status: %w", err)
	}

	key := fmt.Sprintf(constants.KeyUserSOS, userID)
	if err := r.redisClient.Set(ctx, key, raw, window); err != nil {
		return fmt.Errorf("failed to store sos status: %w", err)
	}
	return nil
}

// GetSOSStatus reads the sent status while its window is open
func (r *safetyRepo) GetSOSStatus(ctx context.Context, userID string) (*models.SOSStatus, error) {
	key := fmt.Sprintf(constants.KeyUserSOS, userID)

	raw, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sos status: %w", err)
	}

	var status models.SOSStatus
	if err := json.Unmarshal([]byte(raw), &status); err != nil {
		return nil, fmt.Errorf("failed to decode sos status: %w", err)
	}
	return &status, nil
}
