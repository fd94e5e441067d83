package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
)

type stubTokenService struct {
	userID uuid.UUID
}

func (s *stubTokenService) GenerateAccessToken(context.Context, uuid.UUID, string) (string, time.Time, error) {
	return "", time.Time{}, errors.New("not implemented")
}

func (s *stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != "good-token" {
		return nil, errors.New("invalid token")
	}
	return &adapter.TokenClaims{UserID: s.userID, Email: "owner@example.com"}, nil
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	auth := NewAuthMiddleware(&stubTokenService{userID: userID})

	engine := newEngine()
	engine.GET("/private", auth.Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "AUTH-030002"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "AUTH-030001"},
		{name: "empty token", header: "Bearer   ", wantStatus: http.StatusUnauthorized, wantBody: "AUTH-030002"},
		{name: "invalid token", header: "Bearer bad-token", wantStatus: http.StatusUnauthorized, wantBody: "AUTH-030001"},
		{name: "valid token", header: "Bearer good-token", wantStatus: http.StatusOK, wantBody: userID.String()},
		{name: "scheme is case insensitive", header: "bearer good-token", wantStatus: http.StatusOK, wantBody: userID.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	t.Run("blocks after the window is used up", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute, true)
		now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return now }

		engine := newEngine()
		engine.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

		send := func() *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
			return w
		}

		assert.Equal(t, http.StatusOK, send().Code)
		assert.Equal(t, http.StatusOK, send().Code)

		blocked := send()
		assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
		assert.Equal(t, "60", blocked.Header().Get("Retry-After"))
		assert.Contains(t, blocked.Body.String(), "AUTH-020003")

		now = now.Add(time.Minute + time.Second)
		assert.Equal(t, http.StatusOK, send().Code)
	})

	t.Run("disabled limiter lets everything through", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute, false)

		engine := newEngine()
		engine.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("cleanup drops expired windows", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute, true)
		now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
		limiter.now = func() time.Time { return now }

		limiter.allow("10.0.0.1")
		now = now.Add(2 * time.Minute)
		limiter.Cleanup()

		assert.Empty(t, limiter.entries)
	})
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	requests []recordedRequest
}

func (o *recordingObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	o.requests = append(o.requests, recordedRequest{method: method, route: route, status: status})
}

func TestObserve(t *testing.T) {
	observer := &recordingObserver{}

	engine := newEngine()
	engine.Use(Observe(observer))
	engine.GET("/accounts/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for _, path := range []string{"/accounts/1", "/accounts/2", "/missing"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, []recordedRequest{
		{method: http.MethodGet, route: "/accounts/:id", status: http.StatusNoContent},
		{method: http.MethodGet, route: "/accounts/:id", status: http.StatusNoContent},
		{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound},
	}, observer.requests)
}
