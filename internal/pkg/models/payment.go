package models

import "github.com/shopspring/decimal"

// ExtensionPackage is a purchasable block of extra session time
type ExtensionPackage struct {
	Minutes int             `json:"minutes"`
	Price   decimal.Decimal `json:"price"`
	Label   string          `json:"label"`
}

// ExtensionPackages is the package list shown to the client
type ExtensionPackages struct {
	Packages []ExtensionPackage `json:"packages"`
	Fallback bool               `json:"fallback"`
}

// ExtensionRequest is sent to the backend to buy extra time
type ExtensionRequest struct {
	BookingID         int64           `json:"booking_id"`
	AdditionalMinutes int             `json:"additional_minutes" validate:"required,gt=0"`
	Price             decimal.Decimal `json:"price"`
	SuccessURL        string          `json:"success_url,omitempty" validate:"omitempty,url"`
	CancelURL         string          `json:"cancel_url,omitempty" validate:"omitempty,url"`
}

// ExtensionResponse carries either a checkout redirect or a direct success
type ExtensionResponse struct {
	CheckoutURL string `json:"checkout_url,omitempty"`
	Success     bool   `json:"success,omitempty"`
}

// ExtensionResult is what the client sees after requesting an extension
type ExtensionResult struct {
	BookingID      int64            `json:"booking_id"`
	CheckoutURL    string           `json:"checkout_url,omitempty"`
	GrantedMinutes int              `json:"granted_minutes,omitempty"`
	Session        *CheckInSnapshot `json:"session,omitempty"`
}
