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
	"github.com/piresc/bookingflow/services/bookings"
)

// DefaultSnapshotTTL bounds how long an unwatched booking stays cached
const DefaultSnapshotTTL = 24 * time.Hour

type bookingRepo struct {
	redisClient *database.RedisClient
	snapshotTTL time.Duration
	now         func() time.Time
}

// NewBookingRepository creates a new Redis-backed booking cache
func NewBookingRepository(redisClient *database.RedisClient, snapshotTTL time.Duration) bookings.BookingRepo {
	if snapshotTTL <= 0 {
		snapshotTTL = DefaultSnapshotTTL
	}
	return &bookingRepo{
		redisClient: redisClient,
		snapshotTTL: snapshotTTL,
		now:         time.Now,
	}
}

// SaveSnapshot stores the raw booking as JSON
func (r *bookingRepo) SaveSnapshot(ctx context.Context, booking *models.Booking) error {
	raw, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking snapshot: %w", err)
	}

	key := fmt.Sprintf(constants.KeyBookingSnapshot, booking.BookingID)
	if err := r.redisClient.Set(ctx, key, raw, r.snapshotTTL); err != nil {
		return fmt.Errorf("failed to store booking snapshot: %w", err)
	}
	return nil
}

// GetSnapshot loads the last stored booking
func (r *bookingRepo) GetSnapshot(ctx context.Context, bookingID int64) (*models.Booking, error) {
	var booking models.Booking
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyBookingSnapshot, bookingID), &booking)
	if err != nil || !found {
		return nil, err
	}
	return &booking, nil
}

// SaveDeposit stores the QR payment until it expires
func (r *bookingRepo) SaveDeposit(ctx context.Context, payment *models.DepositPayment) error {
	ttl := payment.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("failed to marshal deposit payment: %w", err)
	}

	key := fmt.Sprintf(constants.KeyBookingDeposit, payment.BookingID)
	if err := r.redisClient.Set(ctx, key, raw, ttl); err != nil {
		return fmt.Errorf("failed to store deposit payment: %w", err)
	}
	return nil
}

// GetDeposit loads the active QR payment of a booking
func (r *bookingRepo) GetDeposit(ctx context.Context, bookingID int64) (*models.DepositPayment, error) {
	var payment models.DepositPayment
	found, err := r.getJSON(ctx, fmt.Sprintf(constants.KeyBookingDeposit, bookingID), &payment)
	if err != nil || !found {
		return nil, err
	}
	return &payment, nil
}

func (r *bookingRepo) getJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}
