package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/ctxutil"
	"github.com/claon/claon-admin/internal/platform/logger"
)

const accessTokenIssuer = "claon-admin"

type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	IssueAccessToken(user *types.User) (string, error)
	ParseAccessToken(tokenString string) (*ctxutil.RequestData, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	log          *logger.Logger
	jwtSecretKey []byte
	accessTTL    time.Duration
	now          func() time.Time
}

func NewAuthService(log *logger.Logger, jwtSecretKey string, accessTTL time.Duration) AuthService {
	serviceLog := log.With("service", "AuthService")
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	return &authService{
		log:          serviceLog,
		jwtSecretKey: []byte(jwtSecretKey),
		accessTTL:    accessTTL,
		now:          time.Now,
	}
}

func (as *authService) GetAccessTTL() time.Duration { return as.accessTTL }

func (as *authService) IssueAccessToken(user *types.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", apierr.BadRequest(apierr.CodeInvalidRequest, "user is required")
	}
	if len(as.jwtSecretKey) == 0 {
		return "", apierr.Internal(errors.New("jwt secret key not configured"))
	}
	now := as.now()
	claims := AccessClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    accessTokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(as.jwtSecretKey)
	if err != nil {
		return "", apierr.Internal(fmt.Errorf("sign access token: %w", err))
	}
	return signed, nil
}

func (as *authService) ParseAccessToken(tokenString string) (*ctxutil.RequestData, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, apierr.Unauthorized(apierr.CodeNotSignIn, "missing access token")
	}
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return as.jwtSecretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(accessTokenIssuer),
		jwt.WithTimeFunc(as.now),
	)
	if err != nil || !token.Valid {
		return nil, apierr.Unauthorized(apierr.CodeInvalidJWT, "invalid access token")
	}
	if claims.Subject == "" {
		return nil, apierr.Unauthorized(apierr.CodeInvalidJWT, "access token has no subject")
	}
	return &ctxutil.RequestData{
		TokenString: tokenString,
		UserID:      claims.Subject,
		Role:        claims.Role,
	}, nil
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	rd, err := as.ParseAccessToken(tokenString)
	if err != nil {
		return ctx, err
	}
	return ctxutil.WithRequestData(ctxutil.Default(ctx), rd), nil
}
