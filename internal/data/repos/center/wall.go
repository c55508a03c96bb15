package center

import (
	"gorm.io/gorm"

	"github.com/claon/claon-admin/internal/domain/center"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
)

type CenterWallRepo interface {
	CreateMany(dbc dbctx.Context, centerID string, walls []*center.CenterWall) ([]*center.CenterWall, error)
	ListByCenter(dbc dbctx.Context, centerID string) ([]*center.CenterWall, error)
	Update(dbc dbctx.Context, centerID string, w *center.CenterWall) error
	DeleteByIDs(dbc dbctx.Context, centerID string, ids []string) error
	DeleteByCenter(dbc dbctx.Context, centerID string) error
}

type centerWallRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCenterWallRepo(db *gorm.DB, baseLog *logger.Logger) CenterWallRepo {
	return &centerWallRepo{db: db, log: baseLog.With("repo", "CenterWallRepo")}
}

func (r *centerWallRepo) CreateMany(dbc dbctx.Context, centerID string, walls []*center.CenterWall) ([]*center.CenterWall, error) {
	if len(walls) == 0 {
		return []*center.CenterWall{}, nil
	}
	for _, w := range walls {
		w.CenterID = centerID
	}
	if err := dbc.DB(r.db).Create(&walls).Error; err != nil {
		return nil, apierr.FromDB("center_wall.create", err)
	}
	return walls, nil
}

func (r *centerWallRepo) ListByCenter(dbc dbctx.Context, centerID string) ([]*center.CenterWall, error) {
	var out []*center.CenterWall
	if err := dbc.DB(r.db).Where("center_id = ?", centerID).Order("name ASC, id ASC").Find(&out).Error; err != nil {
		return nil, apierr.FromDB("center_wall.list", err)
	}
	return out, nil
}

// Update rewrites the mutable columns of an existing row, keeping its id.
func (r *centerWallRepo) Update(dbc dbctx.Context, centerID string, w *center.CenterWall) error {
	if w == nil || w.ID == "" {
		return apierr.BadRequest(apierr.CodeInvalidRequest, "wall id is required")
	}
	w.CenterID = centerID
	res := dbc.DB(r.db).Model(&center.CenterWall{}).
		Where("id = ? AND center_id = ?", w.ID, centerID).
		Updates(map[string]any{"name": w.Name, "type": w.Type})
	if res.Error != nil {
		return apierr.FromDB("center_wall.update", res.Error)
	}
	if res.RowsAffected == 0 {
		return apierr.NotFound(apierr.CodeDataDoesNotExist, "wall does not exist")
	}
	return nil
}

func (r *centerWallRepo) DeleteByIDs(dbc dbctx.Context, centerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := dbc.DB(r.db).Where("center_id = ? AND id IN ?", centerID, ids).Delete(&center.CenterWall{}).Error; err != nil {
		return apierr.FromDB("center_wall.delete", err)
	}
	return nil
}

func (r *centerWallRepo) DeleteByCenter(dbc dbctx.Context, centerID string) error {
	if err := dbc.DB(r.db).Where("center_id = ?", centerID).Delete(&center.CenterWall{}).Error; err != nil {
		return apierr.FromDB("center_wall.delete", err)
	}
	return nil
}
