package center

import (
	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/domain/center"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
)

type CenterApprovedFileRepo interface {
	CreateMany(dbc dbctx.Context, files []*center.CenterApprovedFile) ([]*center.CenterApprovedFile, error)
	ListByCenter(dbc dbctx.Context, centerID string) ([]*center.CenterApprovedFile, error)
	DeleteByCenter(dbc dbctx.Context, centerID string) error
}

type centerApprovedFileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCenterApprovedFileRepo(db *gorm.DB, baseLog *logger.Logger) CenterApprovedFileRepo {
	return &centerApprovedFileRepo{db: db, log: baseLog.With("repo", "CenterApprovedFileRepo")}
}

func (r *centerApprovedFileRepo) CreateMany(dbc dbctx.Context, files []*center.CenterApprovedFile) ([]*center.CenterApprovedFile, error) {
	if len(files) == 0 {
		return []*center.CenterApprovedFile{}, nil
	}
	for _, f := range files {
		if f.CenterID == "" || f.UserID == "" {
			return nil, apierr.BadRequest(apierr.CodeInvalidRequest, "approved file requires center and user")
		}
	}
	if err := dbc.DB(r.db).Omit("User").Create(&files).Error; err != nil {
		return nil, apierr.FromDB("center_approved_file.create", err)
	}
	return files, nil
}

func (r *centerApprovedFileRepo) ListByCenter(dbc dbctx.Context, centerID string) ([]*center.CenterApprovedFile, error) {
	var out []*center.CenterApprovedFile
	if err := dbc.DB(r.db).Where("center_id = ?", centerID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, apierr.FromDB("center_approved_file.list", err)
	}
	return out, nil
}

func (r *centerApprovedFileRepo) DeleteByCenter(dbc dbctx.Context, centerID string) error {
	if err := dbc.DB(r.db).Where("center_id = ?", centerID).Delete(&center.CenterApprovedFile{}).Error; err != nil {
		return apierr.FromDB("center_approved_file.delete", err)
	}
	return nil
}
