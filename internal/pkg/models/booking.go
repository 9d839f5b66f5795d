package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus is the server-authoritative lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending         BookingStatus = "pending"
	BookingStatusConfirmed       BookingStatus = "confirmed"
	BookingStatusProviderArrived BookingStatus = "provider_arrived"
	BookingStatusInProgress      BookingStatus = "in_progress"
	BookingStatusCompleted       BookingStatus = "completed"
	BookingStatusFundsReleased   BookingStatus = "funds_released"
	BookingStatusCancelled       BookingStatus = "cancelled"
	BookingStatusDisputed        BookingStatus = "disputed"
)

// BookingStatuses lists every known status in lifecycle order
var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusProviderArrived,
	BookingStatusInProgress,
	BookingStatusCompleted,
	BookingStatusFundsReleased,
	BookingStatusCancelled,
	BookingStatusDisputed,
}

// IsTerminal reports whether no further transition can happen
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingStatusFundsReleased, BookingStatusCancelled, BookingStatusDisputed:
		return true
	}
	return false
}

// PaymentStatus mirrors the payment gateway state of the booking
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Role is the viewer's side of a booking
type Role string

const (
	RoleProvider Role = "provider"
	RoleClient   Role = "client"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleProvider || r == RoleClient
}

// BookingLocation is where the service is delivered
type BookingLocation struct {
	Address      string   `json:"address"`
	Floor        string   `json:"floor,omitempty"`
	Room         string   `json:"room,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// Booking is the booking record as returned by the marketplace backend.
// RemainingAmount is expected to equal TotalAmount - DepositAmount; the
// backend owns that invariant.
type Booking struct {
	BookingID        int64  `json:"booking_id"`
	ClientID         int64  `json:"client_id"`
	ClientUsername   string `json:"client_username"`
	ProviderID       int64  `json:"provider_id"`
	ProviderUsername string `json:"provider_username"`

	PackageName     string          `json:"package_name"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	DepositAmount   decimal.Decimal `json:"deposit_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`

	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Duration    int    `json:"duration"`

	BookingLocation

	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	DepositPaid   bool          `json:"deposit_paid"`
	EscrowLocked  bool          `json:"escrow_locked"`

	ProviderArrivedAt        *time.Time `json:"provider_arrived_at,omitempty"`
	ClientConfirmedArrivalAt *time.Time `json:"client_confirmed_arrival_at,omitempty"`
	ProviderCompletedAt      *time.Time `json:"provider_completed_at,omitempty"`
	AutoReleaseAt            *time.Time `json:"auto_release_at,omitempty"`
}

// RoleOf returns the side userID plays in the booking
func (b *Booking) RoleOf(userID string) (Role, bool) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return "", false
	}
	switch id {
	case b.ProviderID:
		return RoleProvider, true
	case b.ClientID:
		return RoleClient, true
	}
	return "", false
}

// DepositPayment is the QR payment created for a booking deposit
type DepositPayment struct {
	BookingID int64           `json:"booking_id"`
	QRCode    string          `json:"qr_code"`
	Amount    decimal.Decimal `json:"amount"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// DepositState is the outcome of waiting for a deposit
type DepositState string

const (
	DepositStatePending DepositState = "pending"
	DepositStatePaid    DepositState = "paid"
	DepositStateFailed  DepositState = "failed"
	DepositStateExpired DepositState = "expired"
)

// DepositStatus is reported to the UI while the QR code is displayed
type DepositStatus struct {
	BookingID        int64         `json:"booking_id"`
	State            DepositState  `json:"state"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	RemainingSeconds int64         `json:"remaining_seconds"`
}
