package services

import (
	"context"
	"strings"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/ctxutil"
	"github.com/claon/claon-admin/internal/platform/dbctx"
)

// Subject is the authenticated caller of an operation.
type Subject struct {
	UserID string
	Role   types.Role
}

func (s Subject) IsCenterAdmin() bool {
	return s.Role == types.RoleCenterAdmin
}

// SubjectFromContext reads the request data attached by the auth middleware.
func SubjectFromContext(ctx context.Context) (Subject, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || strings.TrimSpace(rd.UserID) == "" {
		return Subject{}, apierr.Unauthorized(apierr.CodeNotSignIn, "sign in required")
	}
	return Subject{UserID: rd.UserID, Role: types.Role(rd.Role)}, nil
}

// CenterLoader loads a center with its owner, holds and walls; nil when absent.
type CenterLoader interface {
	Load(dbc dbctx.Context, centerID string) (*types.Center, error)
}

func errCenterNotFound() error {
	return apierr.NotFound(apierr.CodeDataDoesNotExist, "center does not exist")
}

// loadOwnedCenter returns the center when subject owns it.
func loadOwnedCenter(dbc dbctx.Context, centers CenterLoader, subject Subject, centerID string) (*types.Center, error) {
	c, err := centers.Load(dbc, centerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errCenterNotFound()
	}
	if !c.IsOwnedBy(subject.UserID) {
		return nil, apierr.Unauthorized(apierr.CodeNotAccessible, "not the owner of the center")
	}
	return c, nil
}
