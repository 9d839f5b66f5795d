package bookings

import (
	"errors"
	"fmt"

	"github.com/piresc/bookingflow/services/bookings/flow"
)

// GenericActionMessage is shown when the backend gave no reason for a failure
const GenericActionMessage = "Something went wrong. Please try again."

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrNotParticipant   = errors.New("user is not a party of this booking")
	ErrUnauthorized     = errors.New("backend rejected the credential")
	ErrActionNotAllowed = errors.New("action not allowed")
	ErrDepositNotDue    = errors.New("no deposit is due")
)

// ConfirmationRequiredError asks the caller to confirm and resend
type ConfirmationRequiredError struct {
	Action flow.Action `json:"action"`
	// Prompt is the message key of the confirmation dialog
	Prompt string `json:"prompt"`
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("action %s requires confirmation", e.Action)
}

// ActionError is a rejected transition. Message is the backend's error
// verbatim or GenericActionMessage.
type ActionError struct {
	Action  flow.Action
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("action %s failed: %s", e.Action, e.Message)
}

func (e *ActionError) Unwrap() error { return e.Err }

// AsActionError unwraps err into an ActionError
func AsActionError(err error) (*ActionError, bool) {
	var ae *ActionError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// AsConfirmationRequired unwraps err into a ConfirmationRequiredError
func AsConfirmationRequired(err error) (*ConfirmationRequiredError, bool) {
	var ce *ConfirmationRequiredError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
