package services

import (
	"context"
	"strings"

	"github.com/claon/claon-admin/internal/data/aggregates"
	"github.com/claon/claon-admin/internal/data/repos"
	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
)

type NicknameCheck struct {
	Nickname     string `json:"nickname"`
	IsDuplicated bool   `json:"is_duplicated"`
}

type UserService interface {
	CheckNicknameDuplication(dbc dbctx.Context, nickname string) (*NicknameCheck, error)
	// SignUpCenter registers the caller's first center and promotes the caller
	// to center administrator.
	SignUpCenter(ctx context.Context, subject Subject, in CenterInput) (*types.Center, error)
}

type userService struct {
	log     *logger.Logger
	users   repos.UserRepo
	centers aggregates.CenterAggregate
}

func NewUserService(log *logger.Logger, users repos.UserRepo, centers aggregates.CenterAggregate) UserService {
	return &userService{
		log:     log.With("service", "UserService"),
		users:   users,
		centers: centers,
	}
}

func (us *userService) CheckNicknameDuplication(dbc dbctx.Context, nickname string) (*NicknameCheck, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, apierr.BadRequest(apierr.CodeInvalidRequest, "nickname is required")
	}
	exists, err := us.users.NicknameExists(dbc, nickname)
	if err != nil {
		return nil, err
	}
	return &NicknameCheck{Nickname: nickname, IsDuplicated: exists}, nil
}

func (us *userService) SignUpCenter(ctx context.Context, subject Subject, in CenterInput) (*types.Center, error) {
	u, err := us.users.GetByID(dbctx.Context{Ctx: ctx}, subject.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apierr.Unauthorized(apierr.CodeUserDoesNotExist, "user does not exist")
	}
	if u.Role != types.RolePending && u.Role != types.RoleUser {
		return nil, apierr.BadRequest(apierr.CodeUserAlreadySignedUp, "user already signed up")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	created, err := us.centers.Register(ctx, aggregates.RegisterCenterInput{
		Center:           in.newCenter(u.ID),
		Holds:            in.holds(),
		Walls:            in.walls(),
		ApprovedFileURLs: in.ApprovedFileURLs,
		PromoteOwner:     true,
	})
	if err != nil {
		return nil, err
	}
	us.log.Info("Center signed up", "center_id", created.ID, "user_id", u.ID)
	return created, nil
}
