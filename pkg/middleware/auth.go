package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"tripledger/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// MemberIDKey is the context key for the acting member's ID
	MemberIDKey ContextKey = "member_id"
)

// MemberContext resolves the acting trip member for a request.
//
// When a JWT secret is configured, a Bearer token with a "member_id" claim is
// required. Without a secret (local single-user deployments) the member may be
// supplied via the X-Member-ID header, and requests without one pass through
// anonymously; mutations then require an explicit paid_by in the body.
func MemberContext(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				if memberID := r.Header.Get("X-Member-ID"); memberID != "" {
					r = r.WithContext(context.WithValue(r.Context(), MemberIDKey, memberID))
				}
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			memberID, err := parseMemberToken(parts[1], secret)
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), MemberIDKey, memberID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseMemberToken validates an HS256 token and extracts the member_id claim
func parseMemberToken(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	memberID, ok := claims["member_id"].(string)
	if !ok || memberID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}

	return memberID, nil
}

// GetMemberID extracts the acting member ID from the request context
func GetMemberID(ctx context.Context) (string, bool) {
	memberID, ok := ctx.Value(MemberIDKey).(string)
	return memberID, ok
}
