package schedule

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

type ScheduleRepo interface {
	ListByCenter(dbc dbctx.Context, centerID string, params pagination.Params) (pagination.Page[*types.Schedule], error)
	// GetInCenter returns nil when the schedule is absent or belongs to another center.
	GetInCenter(dbc dbctx.Context, centerID, scheduleID string) (*types.Schedule, error)
	Create(dbc dbctx.Context, s *types.Schedule) (*types.Schedule, error)
	Save(dbc dbctx.Context, s *types.Schedule) error
	Delete(dbc dbctx.Context, scheduleID string) error
	DeleteByCenter(dbc dbctx.Context, centerID string) error
}

type scheduleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewScheduleRepo(db *gorm.DB, baseLog *logger.Logger) ScheduleRepo {
	return &scheduleRepo{db: db, log: baseLog.With("repo", "ScheduleRepo")}
}

func (r *scheduleRepo) ListByCenter(dbc dbctx.Context, centerID string, params pagination.Params) (pagination.Page[*types.Schedule], error) {
	out := pagination.Page[*types.Schedule]{Items: []*types.Schedule{}, Page: params.Page, Size: params.Size}
	if err := dbc.DB(r.db).Model(&types.Schedule{}).Where("center_id = ?", centerID).Count(&out.Total).Error; err != nil {
		return out, apierr.FromDB("schedule.list.count", err)
	}
	if out.Total == 0 {
		return out, nil
	}
	var rows []*types.Schedule
	err := dbc.DB(r.db).
		Where("center_id = ?", centerID).
		Order("start_at ASC, id ASC").
		Offset(params.Offset()).
		Limit(params.Limit()).
		Find(&rows).Error
	if err != nil {
		return out, apierr.FromDB("schedule.list", err)
	}
	out.Items = rows
	return out, nil
}

func (r *scheduleRepo) GetInCenter(dbc dbctx.Context, centerID, scheduleID string) (*types.Schedule, error) {
	var row types.Schedule
	err := dbc.DB(r.db).Where("id = ? AND center_id = ?", scheduleID, centerID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apierr.FromDB("schedule.get", err)
	}
	return &row, nil
}

func (r *scheduleRepo) Create(dbc dbctx.Context, s *types.Schedule) (*types.Schedule, error) {
	if err := dbc.DB(r.db).Create(s).Error; err != nil {
		return nil, apierr.FromDB("schedule.create", err)
	}
	return s, nil
}

func (r *scheduleRepo) Save(dbc dbctx.Context, s *types.Schedule) error {
	res := dbc.DB(r.db).Model(&types.Schedule{}).Where("id = ?", s.ID).Updates(map[string]any{
		"title":       s.Title,
		"description": s.Description,
		"start_at":    s.StartAt,
		"end_at":      s.EndAt,
	})
	if res.Error != nil {
		return apierr.FromDB("schedule.save", res.Error)
	}
	if res.RowsAffected == 0 {
		return apierr.NotFound(apierr.CodeDataDoesNotExist, "schedule does not exist")
	}
	return nil
}

func (r *scheduleRepo) Delete(dbc dbctx.Context, scheduleID string) error {
	if err := dbc.DB(r.db).Where("id = ?", scheduleID).Delete(&types.Schedule{}).Error; err != nil {
		return apierr.FromDB("schedule.delete", err)
	}
	return nil
}

func (r *scheduleRepo) DeleteByCenter(dbc dbctx.Context, centerID string) error {
	if err := dbc.DB(r.db).Where("center_id = ?", centerID).Delete(&types.Schedule{}).Error; err != nil {
		return apierr.FromDB("schedule.delete_by_center", err)
	}
	return nil
}
