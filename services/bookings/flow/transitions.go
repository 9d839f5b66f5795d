package flow

import (
	"fmt"

	"github.com/piresc/bookingflow/internal/pkg/models"
)

// Action is a user-triggered booking transition
type Action string

const (
	ActionProviderArrived   Action = "provider_arrived"
	ActionConfirmArrival    Action = "confirm_arrival"
	ActionProviderComplete  Action = "provider_complete"
	ActionConfirmCompletion Action = "confirm_completion"
	ActionDispute           Action = "dispute"
	ActionCancel            Action = "cancel"
)

// Transition is one edge of the booking lifecycle
type Transition struct {
	Action Action
	Role   models.Role
	From   []models.BookingStatus
	To     models.BookingStatus

	// RequiresDeposit hides the action until deposit_paid is set
	RequiresDeposit bool
	// RequiresConfirmation makes the caller confirm before the POST
	RequiresConfirmation bool
	// Endpoint is the path under /bookings/{id}/
	Endpoint string
	// Fields lists the inputs the UI has to collect
	Fields []string
}

// Transitions lists every action a client of the marketplace can invoke.
// Row order is the order buttons are presented in.
var Transitions = []Transition{
	{
		Action:               ActionProviderArrived,
		Role:                 models.RoleProvider,
		From:                 []models.BookingStatus{models.BookingStatusConfirmed},
		To:                   models.BookingStatusProviderArrived,
		RequiresDeposit:      true,
		RequiresConfirmation: true,
		Endpoint:             "provider-arrived",
	},
	{
		Action:               ActionConfirmArrival,
		Role:                 models.RoleClient,
		From:                 []models.BookingStatus{models.BookingStatusProviderArrived},
		To:                   models.BookingStatusInProgress,
		RequiresConfirmation: true,
		Endpoint:             "confirm-arrival",
	},
	{
		Action:               ActionProviderComplete,
		Role:                 models.RoleProvider,
		From:                 []models.BookingStatus{models.BookingStatusInProgress},
		To:                   models.BookingStatusCompleted,
		RequiresConfirmation: true,
		Endpoint:             "provider-complete",
		Fields:               []string{"notes"},
	},
	{
		Action:               ActionConfirmCompletion,
		Role:                 models.RoleClient,
		From:                 []models.BookingStatus{models.BookingStatusCompleted},
		To:                   models.BookingStatusFundsReleased,
		RequiresConfirmation: true,
		Endpoint:             "confirm-completion",
		Fields:               []string{"rating", "review"},
	},
	{
		Action:   ActionDispute,
		Role:     models.RoleClient,
		From:     []models.BookingStatus{models.BookingStatusCompleted},
		To:       models.BookingStatusDisputed,
		Endpoint: "dispute",
		Fields:   []string{"reason", "description", "evidence"},
	},
	{
		Action:               ActionCancel,
		Role:                 models.RoleClient,
		From:                 []models.BookingStatus{models.BookingStatusPending, models.BookingStatusConfirmed},
		To:                   models.BookingStatusCancelled,
		RequiresConfirmation: true,
		Endpoint:             "cancel",
		Fields:               []string{"reason"},
	},
}

// ServerTransition is an edge only the backend takes. Listed so the
// lifecycle is complete; no client action exists for these.
type ServerTransition struct {
	From    models.BookingStatus
	To      models.BookingStatus
	Trigger string
}

// ServerTransitions are reflected through polling only
var ServerTransitions = []ServerTransition{
	{From: models.BookingStatusPending, To: models.BookingStatusConfirmed, Trigger: "payment webhook"},
	{From: models.BookingStatusCompleted, To: models.BookingStatusFundsReleased, Trigger: "auto-release after 24h"},
}

var transitionsByAction = func() map[Action]Transition {
	m := make(map[Action]Transition, len(Transitions))
	for _, t := range Transitions {
		m[t.Action] = t
	}
	return m
}()

// Lookup returns the transition for action
func Lookup(action Action) (Transition, bool) {
	t, ok := transitionsByAction[action]
	return t, ok
}

// Path returns the backend endpoint of the transition for a booking
func (t Transition) Path(bookingID int64) string {
	return fmt.Sprintf("/bookings/%d/%s", bookingID, t.Endpoint)
}
