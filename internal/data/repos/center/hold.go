package center

import (
	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/domain/center"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
)

type CenterHoldRepo interface {
	CreateMany(dbc dbctx.Context, centerID string, holds []*center.CenterHold) ([]*center.CenterHold, error)
	ListByCenter(dbc dbctx.Context, centerID string) ([]*center.CenterHold, error)
	Update(dbc dbctx.Context, centerID string, h *center.CenterHold) error
	DeleteByIDs(dbc dbctx.Context, centerID string, ids []string) error
	DeleteByCenter(dbc dbctx.Context, centerID string) error
}

type centerHoldRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCenterHoldRepo(db *gorm.DB, baseLog *logger.Logger) CenterHoldRepo {
	return &centerHoldRepo{db: db, log: baseLog.With("repo", "CenterHoldRepo")}
}

func (r *centerHoldRepo) CreateMany(dbc dbctx.Context, centerID string, holds []*center.CenterHold) ([]*center.CenterHold, error) {
	if len(holds) == 0 {
		return []*center.CenterHold{}, nil
	}
	for _, h := range holds {
		h.CenterID = centerID
	}
	if err := dbc.DB(r.db).Create(&holds).Error; err != nil {
		return nil, apierr.FromDB("center_hold.create", err)
	}
	return holds, nil
}

func (r *centerHoldRepo) ListByCenter(dbc dbctx.Context, centerID string) ([]*center.CenterHold, error) {
	var out []*center.CenterHold
	if err := dbc.DB(r.db).Where("center_id = ?", centerID).Order("name ASC, id ASC").Find(&out).Error; err != nil {
		return nil, apierr.FromDB("center_hold.list", err)
	}
	return out, nil
}

// Update rewrites the mutable columns of an existing row, keeping its id.
func (r *centerHoldRepo) Update(dbc dbctx.Context, centerID string, h *center.CenterHold) error {
	if h == nil || h.ID == "" {
		return apierr.BadRequest(apierr.CodeInvalidRequest, "hold id is required")
	}
	h.CenterID = centerID
	res := dbc.DB(r.db).Model(&center.CenterHold{}).
		Where("id = ? AND center_id = ?", h.ID, centerID).
		Updates(map[string]any{"name": h.Name, "difficulty": h.Difficulty, "is_color": h.IsColor})
	if res.Error != nil {
		return apierr.FromDB("center_hold.update", res.Error)
	}
	if res.RowsAffected == 0 {
		return apierr.NotFound(apierr.CodeDataDoesNotExist, "hold does not exist")
	}
	return nil
}

func (r *centerHoldRepo) DeleteByIDs(dbc dbctx.Context, centerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := dbc.DB(r.db).Where("center_id = ? AND id IN ?", centerID, ids).Delete(&center.CenterHold{}).Error; err != nil {
		return apierr.FromDB("center_hold.delete", err)
	}
	return nil
}

func (r *centerHoldRepo) DeleteByCenter(dbc dbctx.Context, centerID string) error {
	if err := dbc.DB(r.db).Where("center_id = ?", centerID).Delete(&center.CenterHold{}).Error; err != nil {
		return apierr.FromDB("center_hold.delete", err)
	}
	return nil
}
