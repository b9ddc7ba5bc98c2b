package middleware

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/fund_balance_app/internal/apperrors"
	"github.com/SscSPs/fund_balance_app/internal/core/domain"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthenticator struct {
	identity *domain.Identity
	err      error
}

func (s stubAuthenticator) Verify(string) (*domain.Identity, error) {
	return s.identity, s.err
}

func (s stubAuthenticator) Authenticate(context.Context, string) (*domain.Identity, error) {
	return s.identity, s.err
}

func newTestRouter(auth stubAuthenticator, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	handlers := append([]gin.HandlerFunc{AuthMiddleware(auth)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		identity, ok := GetIdentityFromContext(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		ctxIdentity, _ := IdentityFromCtx(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"id": identity.AccountID, "ctx_id": ctxIdentity.AccountID})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	user := &domain.Identity{AccountID: 7, Email: "a@x.com", Role: domain.RoleUser}

	tests := []struct {
		name       string
		auth       stubAuthenticator
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "missing header", auth: stubAuthenticator{identity: user}, wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "wrong scheme", auth: stubAuthenticator{identity: user}, header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "Bearer {token}"},
		{name: "invalid token", auth: stubAuthenticator{err: apperrors.ErrInvalidToken}, header: "Bearer x", wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "expired token", auth: stubAuthenticator{err: fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, jwt.ErrTokenExpired)}, header: "Bearer x", wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "store failure", auth: stubAuthenticator{err: fmt.Errorf("db down")}, header: "Bearer x", wantStatus: http.StatusInternalServerError},
		{name: "valid", auth: stubAuthenticator{identity: user}, header: "Bearer x", wantStatus: http.StatusOK, wantBody: `"ctx_id":7`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			newTestRouter(tt.auth).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAuthMiddleware_LogsCallerAsActor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	admin := &domain.Identity{AccountID: 1, Role: domain.RoleAdmin}

	r := gin.New()
	r.Use(StructuredLoggingMiddleware(logger))
	r.PATCH("/users/:id/balance", AuthMiddleware(stubAuthenticator{identity: admin}), func(c *gin.Context) {
		GetLoggerFromCtx(c.Request.Context()).Info("Balance updated", slog.Int64("account_id", 2))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPatch, "/users/2/balance", nil)
	req.Header.Set("Authorization", "Bearer x")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var line string
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.Contains(l, "Balance updated") {
			line = l
		}
	}
	require.NotEmpty(t, line)
	assert.Contains(t, line, `"actor_id":1`)
	assert.Equal(t, 1, strings.Count(line, `"account_id":`))
	assert.Contains(t, line, `"account_id":2`)
}

func TestRequireRole(t *testing.T) {
	user := &domain.Identity{AccountID: 7, Role: domain.RoleUser}
	admin := &domain.Identity{AccountID: 1, Role: domain.RoleAdmin}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer x")
	newTestRouter(stubAuthenticator{identity: user}, RequireRole(domain.RoleAdmin)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	newTestRouter(stubAuthenticator{identity: admin}, RequireRole(domain.RoleAdmin)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitBlocksAfterQuota(t *testing.T) {
	lim, err := NewMemoryLimiter("2-M")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SecurityHeaders(secure.Config{
		CustomFrameOptionsValue: "SAMEORIGIN",
		ContentTypeNosniff:      true,
		ReferrerPolicy:          "no-referrer",
		ContentSecurityPolicy:   "default-src 'self'",
		IsDevelopment:           true,
	}))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/", ok)
	r.GET("/widget.js", ok)
	r.GET("/swagger/*any", ok)

	tests := []struct {
		name string
		path string
		csp  string
		corp string
	}{
		{name: "page", path: "/", csp: "default-src 'self'", corp: "same-site"},
		{name: "widget script", path: "/widget.js", csp: "default-src 'self'", corp: "cross-origin"},
		{name: "swagger ui", path: "/swagger/index.html", csp: "", corp: "same-site"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
			assert.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
			assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
			assert.Equal(t, tt.csp, rec.Header().Get("Content-Security-Policy"))
			assert.Equal(t, tt.corp, rec.Header().Get("Cross-Origin-Resource-Policy"))
		})
	}
}

func TestLoggerFallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), GetLoggerFromCtx(context.Background()))

	logger := slog.Default().With("k", "v")
	assert.Equal(t, logger, GetLoggerFromCtx(WithLogger(context.Background(), logger)))
}
