package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func echoMemberHandler(captured *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := GetMemberID(r.Context()); ok {
			*captured = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestMemberContextJWT(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantMember string
	}{
		{
			name: "valid token",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.MapClaims{
				"member_id": "member-1",
				"exp":       time.Now().Add(time.Hour).Unix(),
			}),
			wantStatus: http.StatusOK,
			wantMember: "member-1",
		},
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			authHeader: "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong signing key",
			authHeader: "Bearer " + signToken(t, "other-secret", jwt.MapClaims{
				"member_id": "member-1",
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.MapClaims{
				"member_id": "member-1",
				"exp":       time.Now().Add(-time.Hour).Unix(),
			}),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing member claim",
			authHeader: "Bearer " + signToken(t, testSecret, jwt.MapClaims{
				"sub": "member-1",
			}),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			handler := MemberContext(testSecret)(echoMemberHandler(&captured))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if captured != tt.wantMember {
				t.Errorf("member id = %q, want %q", captured, tt.wantMember)
			}
		})
	}
}

func TestMemberContextNoSecret(t *testing.T) {
	t.Run("header pass-through", func(t *testing.T) {
		var captured string
		handler := MemberContext("")(echoMemberHandler(&captured))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Member-ID", "member-7")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if captured != "member-7" {
			t.Errorf("member id = %q, want %q", captured, "member-7")
		}
	})

	t.Run("anonymous request passes", func(t *testing.T) {
		var captured string
		handler := MemberContext("")(echoMemberHandler(&captured))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if captured != "" {
			t.Errorf("member id = %q, want empty", captured)
		}
	})
}
