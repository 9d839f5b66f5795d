package constants

// Redis key formats
const (
	KeyBookingSnapshot = "booking:snapshot:%d" // Format: booking:snapshot:{booking_id}
	KeyBookingDeposit  = "booking:deposit:%d"  // Format: booking:deposit:{booking_id}
	KeyUserLocation    = "user:location:%s"    // Format: user:location:{user_id}
	KeyUserSOS         = "user:sos:%s"         // Format: user:sos:{user_id}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{route}:{identifier}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldAccuracy  = "acc"
	FieldGeohash   = "geohash"
	FieldTimestamp = "ts"
)
