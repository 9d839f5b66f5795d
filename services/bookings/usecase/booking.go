package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	httpclient "github.com/piresc/bookingflow/internal/pkg/http"
	"github.com/piresc/bookingflow/internal/pkg/logger"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/piresc/bookingflow/services/bookings"
	"github.com/piresc/bookingflow/services/bookings/flow"
)

// Action outcomes as counted in metrics
const (
	outcomeSuccess     = "success"
	outcomeNotAllowed  = "not_allowed"
	outcomeInvalid     = "invalid"
	outcomeUnconfirmed = "unconfirmed"
	outcomeFailed      = "failed"
)

// GetView fetches the booking and renders it for the caller
func (u *BookingUC) GetView(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*flow.View, error) {
	booking, role, err := u.load(ctx, rc, bookingID)
	if err != nil {
		return nil, err
	}
	return flow.BuildView(role, booking), nil
}

// PerformAction runs one transition: guard, validate, confirm, POST, refetch.
// The booking is never modified locally.
func (u *BookingUC) PerformAction(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64, req flow.ActionRequest) (*bookings.ActionResult, error) {
	if _, ok := flow.Lookup(req.Action); !ok {
		return nil, fmt.Errorf("%w: %q", flow.ErrUnknownAction, req.Action)
	}

	booking, role, err := u.load(ctx, rc, bookingID)
	if err != nil {
		return nil, err
	}

	transition, ok := flow.Allowed(role, booking, req.Action)
	if !ok {
		u.countAction(req.Action, outcomeNotAllowed)
		return nil, fmt.Errorf("%w: %s cannot %s a %s booking",
			bookings.ErrActionNotAllowed, role, req.Action, booking.Status)
	}

	body, err := flow.ValidateInput(req)
	if err != nil {
		u.countAction(req.Action, outcomeInvalid)
		return nil, err
	}

	if transition.RequiresConfirmation && !req.Confirmed {
		u.countAction(req.Action, outcomeUnconfirmed)
		return nil, &bookings.ConfirmationRequiredError{
			Action: req.Action,
			Prompt: "confirm_" + string(req.Action),
		}
	}

	if err := u.bookingGW.PostAction(ctx, rc, bookingID, transition, body); err != nil {
		u.countAction(req.Action, outcomeFailed)
		return nil, &bookings.ActionError{Action: req.Action, Message: failureMessage(err), Err: err}
	}
	u.countAction(req.Action, outcomeSuccess)

	logger.Info("Booking action performed",
		logger.BookingID(bookingID),
		logger.UserID(rc.UserID),
		logger.String("action", string(req.Action)),
		logger.String("request_id", rc.RequestID))

	event := models.BookingActionEvent{
		EventID:     uuid.New().String(),
		BookingID:   bookingID,
		UserID:      rc.UserID,
		Role:        role,
		Action:      string(req.Action),
		Status:      transition.To,
		PerformedAt: u.now(),
	}
	if err := u.bookingGW.PublishActionPerformed(ctx, event); err != nil {
		logger.Warn("Failed to publish booking action", logger.BookingID(bookingID), logger.Err(err))
	}

	result := &bookings.ActionResult{Action: req.Action}
	if req.Action == flow.ActionConfirmCompletion {
		result.RedirectTo = u.cfg.CompletionRedirect
	}

	view, err := u.GetView(ctx, rc, bookingID)
	if err != nil {
		logger.Warn("Failed to refresh booking after action",
			logger.BookingID(bookingID),
			logger.String("action", string(req.Action)),
			logger.Err(err))
		return result, nil
	}
	result.View = view
	return result, nil
}

// load fetches the booking, resolves the caller's role and records the snapshot
func (u *BookingUC) load(ctx context.Context, rc *requestcontext.RequestContext, bookingID int64) (*models.Booking, models.Role, error) {
	booking, err := u.bookingGW.GetBooking(ctx, rc, bookingID)
	if err != nil {
		return nil, "", err
	}

	role, ok := booking.RoleOf(rc.UserID)
	if !ok {
		return nil, "", fmt.Errorf("%w: booking %d", bookings.ErrNotParticipant, bookingID)
	}

	u.recordSnapshot(ctx, booking)
	return booking, role, nil
}

// recordSnapshot caches the booking and announces a status change against
// the previously cached copy. Failures only cost the announcement.
func (u *BookingUC) recordSnapshot(ctx context.Context, booking *models.Booking) {
	previous, err := u.bookingRepo.GetSnapshot(ctx, booking.BookingID)
	if err != nil {
		logger.Debug("Failed to read booking snapshot", logger.BookingID(booking.BookingID), logger.Err(err))
	}

	if err := u.bookingRepo.SaveSnapshot(ctx, booking); err != nil {
		logger.Debug("Failed to store booking snapshot", logger.BookingID(booking.BookingID), logger.Err(err))
	}

	if previous == nil || previous.Status == booking.Status {
		return
	}

	logger.Info("Booking status changed",
		logger.BookingID(booking.BookingID),
		logger.String("from", string(previous.Status)),
		logger.String("to", string(booking.Status)))

	event := models.BookingStatusChangedEvent{
		EventID:    uuid.New().String(),
		BookingID:  booking.BookingID,
		From:       previous.Status,
		To:         booking.Status,
		ObservedAt: u.now(),
	}
	if err := u.bookingGW.PublishStatusChanged(ctx, event); err != nil {
		logger.Warn("Failed to publish status change", logger.BookingID(booking.BookingID), logger.Err(err))
	}
}

func (u *BookingUC) countAction(action flow.Action, outcome string) {
	u.metrics.Actions.WithLabelValues(string(action), outcome).Inc()
}

// failureMessage is the backend's error string when it sent one
func failureMessage(err error) string {
	if apiErr, ok := httpclient.AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return bookings.GenericActionMessage
}
