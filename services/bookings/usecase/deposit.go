package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/services/bookings"
	"github.com/piresc/bookingflow/services/bookings/flow"
)

// StartDeposit creates the QR payment for a booking whose deposit is due
func (u *BookingUC) StartDeposit(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.DepositPayment, error) {
	booking, role, err := u.load(ctx, rc, bookingID)
	if err != nil {
		return nil, err
	}
	if !flow.BuildView(role, booking).PaymentDue {
		return nil, fmt.Errorf("%w: booking %d", bookings.ErrDepositNotDue, bookingID)
	}

	payment, err := u.bookingGW.CreateDepositPayment(ctx, rc, bookingID)
	if err != nil {
		return nil, err
	}

	if err := u.bookingRepo.SaveDeposit(ctx, payment); err != nil {
		logger.Warn("Failed to cache deposit payment", logger.BookingID(bookingID), logger.Err(err))
	}

	logger.Info("Deposit payment created",
		logger.BookingID(bookingID),
		logger.UserID(rc.UserID),
		logger.Time("expires_at", payment.ExpiresAt))

	return payment, nil
}

// AwaitDeposit polls the booking until the deposit is paid or failed, the QR
// code expires, the wait window elapses or ctx ends.
func (u *BookingUC) AwaitDeposit(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.DepositStatus, error) {
	payment, err := u.bookingRepo.GetDeposit(ctx, bookingID)
	if err != nil {
		logger.Warn("Failed to read deposit payment", logger.BookingID(bookingID), logger.Err(err))
		payment = nil
	}

	deadline := u.now().Add(u.cfg.DepositWaitMax)
	qrDeadline := false
	if payment != nil && payment.ExpiresAt.Before(deadline) {
		deadline = payment.ExpiresAt
		qrDeadline = true
	}

	var last *models.Booking
	for {
		booking, _, err := u.load(ctx, rc, bookingID)
		switch {
		case err == nil:
			last = booking
		case last == nil:
			return nil, err
		default:
			logger.Debug("Deposit poll failed", logger.BookingID(bookingID), logger.Err(err))
		}

		now := u.now()
		status := &models.DepositStatus{
			BookingID:        bookingID,
			State:            depositState(last),
			PaymentStatus:    last.PaymentStatus,
			RemainingSeconds: remainingSeconds(payment, now),
		}

		if status.State == models.DepositStatePending && !now.Before(deadline) {
			if qrDeadline {
				status.State = models.DepositStateExpired
			}
		}
		if status.State != models.DepositStatePending || !now.Before(deadline) {
			u.metrics.DepositChecks.WithLabelValues(string(status.State)).Inc()
			return status, nil
		}

		wait := u.cfg.DepositPollInterval
		if left := deadline.Sub(now); left < wait {
			wait = left
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func depositState(b *models.Booking) models.DepositState {
	switch {
	case b.DepositPaid || b.PaymentStatus == models.PaymentStatusPaid:
		return models.DepositStatePaid
	case b.PaymentStatus == models.PaymentStatusFailed:
		return models.DepositStateFailed
	}
	return models.DepositStatePending
}

func remainingSeconds(payment *models.DepositPayment, now time.Time) int64 {
	if payment == nil {
		return 0
	}
	left := payment.ExpiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int64((left + time.Second - 1) / time.Second)
}
