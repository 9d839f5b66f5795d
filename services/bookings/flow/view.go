package flow

import (
	"encoding/json"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/piresc/bookingflow/internal/pkg/models"
)

// Message is the key of the informational text shown next to the actions
type Message string

const (
	MessageNone                  Message = ""
	MessageAwaitingConfirmation  Message = "awaiting_confirmation"
	MessageWaitingForDeposit     Message = "waiting_for_deposit"
	MessageWaitingForProvider    Message = "waiting_for_provider"
	MessageWaitingForClient      Message = "waiting_for_client"
	MessageServiceInProgress     Message = "service_in_progress"
	MessageWaitingForCompletion  Message = "waiting_for_completion_confirmation"
	MessageAutoReleaseNotice     Message = "auto_release_notice"
	MessageFundsReleased         Message = "funds_released"
	MessageBookingCancelled      Message = "booking_cancelled"
	MessageUnderDispute          Message = "under_dispute"
	MessageProviderArrivedPrompt Message = "provider_arrived"
)

var messageTable = map[guardKey]Message{
	{models.RoleProvider, models.BookingStatusPending}:         MessageAwaitingConfirmation,
	{models.RoleProvider, models.BookingStatusProviderArrived}: MessageWaitingForClient,
	{models.RoleProvider, models.BookingStatusInProgress}:      MessageServiceInProgress,
	{models.RoleProvider, models.BookingStatusCompleted}:       MessageWaitingForCompletion,

	{models.RoleClient, models.BookingStatusPending}:         MessageAwaitingConfirmation,
	{models.RoleClient, models.BookingStatusConfirmed}:       MessageWaitingForProvider,
	{models.RoleClient, models.BookingStatusProviderArrived}: MessageProviderArrivedPrompt,
	{models.RoleClient, models.BookingStatusInProgress}:      MessageServiceInProgress,
	{models.RoleClient, models.BookingStatusCompleted}:       MessageAutoReleaseNotice,
}

var terminalMessages = map[models.BookingStatus]Message{
	models.BookingStatusFundsReleased: MessageFundsReleased,
	models.BookingStatusCancelled:     MessageBookingCancelled,
	models.BookingStatusDisputed:      MessageUnderDispute,
}

// ActionView describes one visible action button
type ActionView struct {
	Action               Action   `json:"action"`
	RequiresConfirmation bool     `json:"requires_confirmation"`
	Fields               []string `json:"fields,omitempty"`
}

// View is the role-specific rendering of a booking
type View struct {
	BookingID     int64                `json:"booking_id"`
	Role          models.Role          `json:"role"`
	Status        models.BookingStatus `json:"status"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	DepositPaid   bool                 `json:"deposit_paid"`
	EscrowLocked  bool                 `json:"escrow_locked"`
	Actions       []ActionView         `json:"actions"`
	Message       Message              `json:"message,omitempty"`
	// PaymentDue starts the deposit flow; it is not a transition
	PaymentDue    bool                 `json:"payment_due"`
	AutoReleaseAt *time.Time           `json:"auto_release_at,omitempty"`
	Terminal      bool                 `json:"terminal"`
	Booking       *models.Booking      `json:"booking"`
}

// BuildView renders b for role. It is a pure function of its inputs.
func BuildView(role models.Role, b *models.Booking) *View {
	v := &View{
		BookingID:     b.BookingID,
		Role:          role,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		DepositPaid:   b.DepositPaid,
		EscrowLocked:  b.EscrowLocked,
		Actions:       []ActionView{},
		Terminal:      b.Status.IsTerminal(),
		Booking:       b,
	}

	for _, action := range AllowedActions(role, b) {
		t := transitionsByAction[action]
		v.Actions = append(v.Actions, ActionView{
			Action:               action,
			RequiresConfirmation: t.RequiresConfirmation,
			Fields:               t.Fields,
		})
	}

	v.Message = messageFor(role, b)
	v.PaymentDue = role == models.RoleClient &&
		(b.Status == models.BookingStatusPending || b.Status == models.BookingStatusConfirmed) &&
		!b.DepositPaid && b.PaymentStatus != models.PaymentStatusPaid

	if role == models.RoleClient && b.Status == models.BookingStatusCompleted {
		v.AutoReleaseAt = b.AutoReleaseAt
	}
	return v
}

func messageFor(role models.Role, b *models.Booking) Message {
	if m, ok := terminalMessages[b.Status]; ok {
		return m
	}
	if role == models.RoleProvider && b.Status == models.BookingStatusConfirmed {
		if b.DepositPaid {
			return MessageNone
		}
		return MessageWaitingForDeposit
	}
	return messageTable[guardKey{role: role, status: b.Status}]
}

// HasAction reports whether action is visible
func (v *View) HasAction(action Action) bool {
	for _, a := range v.Actions {
		if a.Action == action {
			return true
		}
	}
	return false
}

// Fingerprint identifies the rendered state including the raw record.
// Identical bookings give identical fingerprints.
func (v *View) Fingerprint() uint64 {
	raw, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(raw)
}
