package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrMissingUserID = errors.New("missing user_id claim")
	ErrInvalidToken  = errors.New("invalid token")
)

// Claims are the caller attributes bookingflow reads from a marketplace token
type Claims struct {
	UserID string
	Role   string
}

// GenerateToken signs an HS256 token. Used by tests and local tooling.
func GenerateToken(userID, role, issuer, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	if issuer != "" {
		claims["iss"] = issuer
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ValidateToken verifies an HS256 token and returns its claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}
	return nil, ErrInvalidToken
}

// ParseClaims extracts the caller from a token. With an empty secret the
// signature is not checked; the marketplace backend still authenticates
// every forwarded call.
func ParseClaims(tokenString, secret string) (*Claims, error) {
	var mc jwt.MapClaims
	if secret != "" {
		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			return nil, err
		}
		mc = *claims
	} else {
		token, _, err := new(jwt.Parser).ParseUnverified(tokenString, jwt.MapClaims{})
		if err != nil {
			return nil, err
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return nil, ErrInvalidToken
		}
		if err := claims.Valid(); err != nil {
			return nil, err
		}
		mc = claims
	}

	userID := claimString(mc["user_id"])
	if userID == "" {
		userID = claimString(mc["sub"])
	}
	if userID == "" {
		return nil, ErrMissingUserID
	}

	return &Claims{UserID: userID, Role: claimString(mc["role"])}, nil
}

func claimString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
