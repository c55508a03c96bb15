package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/http/response"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/ctxutil"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/services"
)

func newAuthRouter(t *testing.T) (*gin.Engine, services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth := services.NewAuthService(logger.Nop(), "test-secret", time.Hour)
	am := NewAuthMiddleware(logger.Nop(), auth)

	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(logger.Nop()))
	r.GET("/me", am.RequireAuth(), func(c *gin.Context) {
		rd := ctxutil.GetRequestData(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": rd.UserID})
	})
	r.GET("/admin", am.RequireAuth(), am.RequireCenterAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, auth
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorEnvelope {
	t.Helper()
	var env response.ErrorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestAuthMiddleware(t *testing.T) {
	r, auth := newAuthRouter(t)
	userTok, err := auth.IssueAccessToken(&types.User{ID: "u1", Role: types.RoleUser})
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	adminTok, err := auth.IssueAccessToken(&types.User{ID: "u2", Role: types.RoleCenterAdmin})
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	cases := []struct {
		name       string
		path       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"missing token", "/me", "", http.StatusUnauthorized, apierr.CodeNotSignIn},
		{"malformed token", "/me", "Bearer nope", http.StatusUnauthorized, apierr.CodeInvalidJWT},
		{"valid token", "/me", "Bearer " + userTok, http.StatusOK, ""},
		{"not admin", "/admin", "Bearer " + userTok, http.StatusUnauthorized, apierr.CodeNotAccessible},
		{"admin", "/admin", "bearer " + adminTok, http.StatusNoContent, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status: want=%d got=%d body=%s", tc.wantStatus, rec.Code, rec.Body.String())
			}
			if tc.wantCode != "" {
				if got := decodeError(t, rec).Error.Code; got != tc.wantCode {
					t.Fatalf("code: want=%s got=%s", tc.wantCode, got)
				}
			}
		})
	}
}

func TestAttachTraceContextEchoesRequestID(t *testing.T) {
	r, _ := newAuthRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "req-123" {
		t.Fatalf("X-Request-Id: want=req-123 got=%q", got)
	}
	if got := rec.Header().Get("X-Trace-Id"); got == "" {
		t.Fatalf("X-Trace-Id: want non-empty")
	}
}
