package user

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
)

type UserRepo interface {
	Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error)
	GetByID(dbc dbctx.Context, userID string) (*types.User, error)
	GetByIDs(dbc dbctx.Context, userIDs []string) ([]*types.User, error)
	NicknameExists(dbc dbctx.Context, nickname string) (bool, error)
	UpdateRole(dbc dbctx.Context, userID string, role types.Role) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error) {
	if len(users) == 0 {
		return []*types.User{}, nil
	}
	if err := dbc.DB(ur.db).Create(&users).Error; err != nil {
		return nil, apierr.FromDB("user.create", err)
	}
	return users, nil
}

// GetByID returns nil when the user does not exist.
func (ur *userRepo) GetByID(dbc dbctx.Context, userID string) (*types.User, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, nil
	}
	var u types.User
	if err := dbc.DB(ur.db).Where("id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apierr.FromDB("user.get", err)
	}
	return &u, nil
}

func (ur *userRepo) GetByIDs(dbc dbctx.Context, userIDs []string) ([]*types.User, error) {
	var results []*types.User
	if len(userIDs) == 0 {
		return results, nil
	}
	if err := dbc.DB(ur.db).Where("id IN ?", userIDs).Find(&results).Error; err != nil {
		return nil, apierr.FromDB("user.get_many", err)
	}
	return results, nil
}

func (ur *userRepo) NicknameExists(dbc dbctx.Context, nickname string) (bool, error) {
	var count int64
	if err := dbc.DB(ur.db).
		Model(&types.User{}).
		Where("nickname = ?", nickname).
		Count(&count).Error; err != nil {
		return false, apierr.FromDB("user.nickname_exists", err)
	}
	return count > 0, nil
}

func (ur *userRepo) UpdateRole(dbc dbctx.Context, userID string, role types.Role) error {
	res := dbc.DB(ur.db).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("role", role)
	if res.Error != nil {
		return apierr.FromDB("user.update_role", res.Error)
	}
	if res.RowsAffected == 0 {
		return apierr.NotFound(apierr.CodeUserDoesNotExist, "user does not exist")
	}
	return nil
}
