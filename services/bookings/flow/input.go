package flow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/piresc/bookingflow/internal/utils"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrInvalidInput  = errors.New("invalid input")
)

// ActionRequest is what the caller submits for an action. Only the fields
// of the chosen action are read.
type ActionRequest struct {
	Action      Action   `json:"-"`
	Confirmed   bool     `json:"confirmed"`
	Notes       string   `json:"notes,omitempty"`
	Rating      int      `json:"rating,omitempty"`
	Review      string   `json:"review,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	Description string   `json:"description,omitempty"`
	Evidence    []string `json:"evidence,omitempty"`
}

// ProviderCompletePayload is the body of provider-complete
type ProviderCompletePayload struct {
	Notes string `json:"notes" validate:"required"`
}

// ConfirmCompletionPayload is the body of confirm-completion
type ConfirmCompletionPayload struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review"`
}

// DisputePayload is the body of dispute
type DisputePayload struct {
	Reason      string   `json:"reason" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Evidence    []string `json:"evidence" validate:"dive,required"`
}

// CancelPayload is the body of cancel
type CancelPayload struct {
	Reason string `json:"reason" validate:"required"`
}

// ValidateInput checks the user input of req and returns the request body
// to POST, nil for actions without a body. No network call happens before
// this passes.
func ValidateInput(req ActionRequest) (interface{}, error) {
	var payload interface{}

	switch req.Action {
	case ActionProviderArrived, ActionConfirmArrival:
		return nil, nil
	case ActionProviderComplete:
		payload = &ProviderCompletePayload{Notes: strings.TrimSpace(req.Notes)}
	case ActionConfirmCompletion:
		payload = &ConfirmCompletionPayload{Rating: req.Rating, Review: strings.TrimSpace(req.Review)}
	case ActionDispute:
		evidence := make([]string, 0, len(req.Evidence))
		for _, e := range req.Evidence {
			evidence = append(evidence, strings.TrimSpace(e))
		}
		payload = &DisputePayload{
			Reason:      strings.TrimSpace(req.Reason),
			Description: strings.TrimSpace(req.Description),
			Evidence:    evidence,
		}
	case ActionCancel:
		payload = &CancelPayload{Reason: strings.TrimSpace(req.Reason)}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}

	if err := utils.Validate(payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return payload, nil
}
