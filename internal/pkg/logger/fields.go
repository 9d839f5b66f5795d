package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is the structured field type accepted by every log call.
type Field = zap.Field

// Callers use these instead of importing zap directly.

func String(key, val string) Field {
	return zap.String(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Time(key string, val time.Time) Field {
	return zap.Time(key, val)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// BookingID is the field every booking-scoped log line carries.
func BookingID(id int64) Field {
	return zap.Int64("booking_id", id)
}

// UserID tags a line with the acting user.
func UserID(id string) Field {
	return zap.String("user_id", id)
}
