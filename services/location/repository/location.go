package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/constants"
	"github.com/piresc/bookingflow/internal/pkg/database"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/services/location"
)

// DefaultLocationTTL is how long a reported fix stays in Redis
const DefaultLocationTTL = 30 * time.Minute

type locationRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(redisClient *database.RedisClient, ttl time.Duration) location.LocationRepo {
	if ttl <= 0 {
		ttl = DefaultLocationTTL
	}
	return &locationRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// StoreLocation replaces the user's latest fix
func (r *locationRepo) StoreLocation(ctx context.Context, userID string, loc models.Location) error {
	key := fmt.Sprintf(constants.KeyUserLocation, userID)
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		constants.FieldAccuracy:  strconv.FormatFloat(loc.Accuracy, 'f', -1, 64),
		constants.FieldGeohash:   loc.Geohash,
		constants.FieldTimestamp: strconv.FormatInt(loc.Timestamp.UnixMilli(), 10),
	}

	if err := r.redisClient.HSetWithTTL(ctx, key, fields, r.ttl); err != nil {
		return fmt.Errorf("failed to store location: %w", err)
	}
	return nil
}

// GetLastLocation reads the user's latest fix
func (r *locationRepo) GetLastLocation(ctx context.Context, userID string) (*models.Location, error) {
	key := fmt.Sprintf(constants.KeyUserLocation, userID)

	values, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get location data: %w", err)
	}
	if len(values) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	ts, err := strconv.ParseInt(values[constants.FieldTimestamp], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	loc := &models.Location{
		Latitude:  lat,
		Longitude: lng,
		Geohash:   values[constants.FieldGeohash],
		Timestamp: time.UnixMilli(ts),
	}
	// accuracy is optional on the device side
	if raw := values[constants.FieldAccuracy]; raw != "" {
		if loc.Accuracy, err = strconv.ParseFloat(raw, 64); err != nil {
			return nil, fmt.Errorf("invalid accuracy: %w", err)
		}
	}
	return loc, nil
}
