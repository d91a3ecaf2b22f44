package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type fakeTokenStore struct {
	valid map[string]bool
	err   error
}

func (f *fakeTokenStore) Store(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType, ttl time.Duration) error {
	f.valid[string(tokenType)+tokenID] = true
	return nil
}

func (f *fakeTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.valid[string(tokenType)+tokenID], nil
}

func (f *fakeTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenIDs map[jwt.TokenType]string) error {
	for tokenType, id := range tokenIDs {
		delete(f.valid, string(tokenType)+id)
	}
	return nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
}

// echoIdentity writes the role id found in the request context.
var echoIdentity = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if _, ok := GetUserIDFromContext(r.Context()); !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.WriteHeader(http.StatusOK)
})

func TestAuthenticate(t *testing.T) {
	jwtService := newJWT()
	userID := uuid.New()
	sub := jwt.Subject{UserID: userID, Email: "p@example.com", RoleID: entity.RoleIDPatient}

	access, accessID, err := jwtService.GenerateAccessToken(sub)
	if err != nil {
		t.Fatal(err)
	}
	refresh, refreshID, err := jwtService.GenerateRefreshToken(sub)
	if err != nil {
		t.Fatal(err)
	}
	revoked, _, err := jwtService.GenerateAccessToken(sub)
	if err != nil {
		t.Fatal(err)
	}

	store := &fakeTokenStore{valid: map[string]bool{
		string(jwt.AccessToken) + accessID:   true,
		string(jwt.RefreshToken) + refreshID: true,
	}}

	tests := []struct {
		name   string
		header string
		store  *fakeTokenStore
		want   int
	}{
		{name: "valid access token", header: "Bearer " + access, store: store, want: http.StatusOK},
		{name: "missing header", header: "", store: store, want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + access, store: store, want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", store: store, want: http.StatusUnauthorized},
		{name: "refresh token rejected", header: "Bearer " + refresh, store: store, want: http.StatusUnauthorized},
		{name: "revoked token", header: "Bearer " + revoked, store: store, want: http.StatusUnauthorized},
		{name: "token store down", header: "Bearer " + access, store: &fakeTokenStore{err: errors.New("redis down")}, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewAuthMiddleware(jwtService, tt.store, quietLogger())
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			mw.Authenticate(echoIdentity).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		ctx  func(context.Context) context.Context
		want int
	}{
		{
			name: "admin allowed",
			ctx: func(ctx context.Context) context.Context {
				return WithIdentity(ctx, uuid.New(), "a@example.com", entity.RoleIDAdmin, "t")
			},
			want: http.StatusOK,
		},
		{
			name: "patient forbidden",
			ctx: func(ctx context.Context) context.Context {
				return WithIdentity(ctx, uuid.New(), "p@example.com", entity.RoleIDPatient, "t")
			},
			want: http.StatusForbidden,
		},
		{
			name: "no identity",
			ctx:  func(ctx context.Context) context.Context { return ctx },
			want: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/doctors", nil)
			req = req.WithContext(tt.ctx(req.Context()))
			rec := httptest.NewRecorder()

			RequireAdmin(echoIdentity).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRateLimiterPerClient(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := rl.Limit(ok)

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, code)
		}
	}
	if code := do("10.0.0.1:5001"); code != http.StatusTooManyRequests {
		t.Errorf("burst exceeded: status = %d, want 429", code)
	}
	if code := do("10.0.0.2:5000"); code != http.StatusOK {
		t.Errorf("other client: status = %d, want 200", code)
	}
}

func TestRateLimiterSweepDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.get("10.0.0.1")
	now = now.Add(limiterIdleTTL + time.Second)
	rl.get("10.0.0.2")
	rl.sweep()

	if _, ok := rl.clients["10.0.0.1"]; ok {
		t.Error("idle client was not removed")
	}
	if _, ok := rl.clients["10.0.0.2"]; !ok {
		t.Error("recent client was removed")
	}
}

func TestCORSPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })
	req := httptest.NewRequest(http.MethodOptions, "/api/appointments/auto", nil)
	rec := httptest.NewRecorder()

	NewCORSMiddleware("").Handle(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}
