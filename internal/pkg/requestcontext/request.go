package requestcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/bookingflow/internal/pkg/models"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	UserIDKey    ContextKey = "user_id"
	TraceIDKey   ContextKey = "trace_id"

	// echo context keys
	EchoKey     = "request_context"
	EchoUserID  = "user_id"
	EchoRole    = "user_role"
	EchoBearer  = "bearer_token"
	EchoService = "service_name"
)

// RequestContext identifies the caller of one request. It carries the
// bearer credential forwarded to the marketplace backend and is passed
// explicitly to every component that calls the backend.
type RequestContext struct {
	RequestID   string
	TraceID     string
	UserID      string
	Role        models.Role
	Credential  string
	ServiceName string
	StartTime   time.Time
}

// NewRequestContext creates a request context for background work
func NewRequestContext(serviceName string) *RequestContext {
	return &RequestContext{
		RequestID:   uuid.New().String(),
		TraceID:     uuid.New().String(),
		ServiceName: serviceName,
		StartTime:   time.Now(),
	}
}

// Clone returns a copy with a fresh request id. Long-lived tasks use it so
// each poll gets its own id while keeping the caller's credential.
func (rc *RequestContext) Clone() *RequestContext {
	cp := *rc
	cp.RequestID = uuid.New().String()
	cp.StartTime = time.Now()
	return &cp
}

// WithRequestContext stores the request identifiers in ctx for logging
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	if rc == nil {
		return ctx
	}
	ctx = context.WithValue(ctx, RequestIDKey, rc.RequestID)
	ctx = context.WithValue(ctx, UserIDKey, rc.UserID)
	ctx = context.WithValue(ctx, TraceIDKey, rc.TraceID)
	return ctx
}

// FromEchoContext builds the request context from values set by the
// request-id and auth middlewares.
func FromEchoContext(c echo.Context) *RequestContext {
	if rc, ok := c.Get(EchoKey).(*RequestContext); ok {
		return rc
	}

	rc := &RequestContext{StartTime: time.Now()}

	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		rc.RequestID = requestID
	} else if requestID := c.Request().Header.Get(echo.HeaderXRequestID); requestID != "" {
		rc.RequestID = requestID
	} else {
		rc.RequestID = uuid.New().String()
	}

	if traceID := c.Request().Header.Get("X-Trace-ID"); traceID != "" {
		rc.TraceID = traceID
	} else {
		rc.TraceID = uuid.New().String()
	}

	if uid, ok := c.Get(EchoUserID).(string); ok {
		rc.UserID = uid
	}
	if role, ok := c.Get(EchoRole).(string); ok {
		rc.Role = models.Role(role)
	}
	if token, ok := c.Get(EchoBearer).(string); ok {
		rc.Credential = token
	}
	if sn, ok := c.Get(EchoService).(string); ok {
		rc.ServiceName = sn
	}

	return rc
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// GetUserID extracts user ID from context
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// GetTraceID extracts trace ID from context
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}
