package bookings

import (
	"context"

	"github.com/piresc/bookingflow/internal/pkg/models"
)

// BookingRepo keeps the last booking records and deposit QR codes seen by
// this service. It is a cache, never the source of truth.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/bookingflow/services/bookings BookingRepo
type BookingRepo interface {
	SaveSnapshot(ctx context.Context, booking *models.Booking) error
	// GetSnapshot returns nil, nil when nothing is cached
	GetSnapshot(ctx context.Context, bookingID int64) (*models.Booking, error)
	SaveDeposit(ctx context.Context, payment *models.DepositPayment) error
	// GetDeposit returns nil, nil when no QR code is cached
	GetDeposit(ctx context.Context, bookingID int64) (*models.DepositPayment, error)
}
