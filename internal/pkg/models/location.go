package models

import "time"

// Location is a single geolocation fix reported by a device
type Location struct {
	Latitude  float64   `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64   `json:"longitude" validate:"gte=-180,lte=180"`
	Accuracy  float64   `json:"accuracy,omitempty" validate:"gte=0"`
	Geohash   string    `json:"geohash,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationUpdate is published while a check-in session tracks the provider
type LocationUpdate struct {
	BookingID int64     `json:"booking_id"`
	UserID    string    `json:"user_id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}
