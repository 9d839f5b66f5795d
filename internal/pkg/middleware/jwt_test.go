package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/bookingflow/internal/pkg/jwt"
	"github.com/piresc/bookingflow/internal/pkg/models"
	"github.com/piresc/bookingflow/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTAuthMiddleware(t *testing.T) {
	const secret = "s3cret"
	valid, err := jwtpkg.GenerateToken("42", "client", "", secret, time.Hour)
	require.NoError(t, err)
	otherSecret, err := jwtpkg.GenerateToken("42", "client", "", "other", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
	}{
		{name: "valid header", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + valid, wantStatus: http.StatusOK},
		{name: "query token", query: valid, wantStatus: http.StatusOK},
		{name: "missing", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "bad signature", header: "Bearer " + otherSecret, wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			target := "/"
			if tt.query != "" {
				target = "/?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotUser, gotBearer string
			h := JWTAuthMiddleware(models.JWTConfig{Secret: secret})(func(c echo.Context) error {
				gotUser, _ = c.Get(requestcontext.EchoUserID).(string)
				gotBearer, _ = c.Get(requestcontext.EchoBearer).(string)
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, h(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "42", gotUser)
				assert.Equal(t, valid, gotBearer)
			}
		})
	}
}

func TestJWTAuthMiddleware_UnverifiedWithoutSecret(t *testing.T) {
	token, err := jwtpkg.GenerateToken("7", "provider", "", "whatever", time.Hour)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := JWTAuthMiddleware(models.JWTConfig{})(func(c echo.Context) error {
		assert.Equal(t, "7", c.Get(requestcontext.EchoUserID))
		assert.Equal(t, "provider", c.Get(requestcontext.EchoRole))
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
