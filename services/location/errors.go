package location

import "errors"

var (
	// ErrLocationUnavailable means no usable fix arrived in time
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrAlreadyTracking     = errors.New("location tracking already running")
	ErrNotTracking         = errors.New("no location tracking running")
)
