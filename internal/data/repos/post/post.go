package post

import (
	"time"

	"gorm.io/gorm"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

// CenterPostQuery selects the non-deleted posts of one center created on
// any day in [Start, End]. HoldID narrows to posts with climbing history on
// that hold.
type CenterPostQuery struct {
	CenterID string
	HoldID   *string
	Start    time.Time
	End      time.Time
	Params   pagination.Params
}

type PostRepo interface {
	FindByCenter(dbc dbctx.Context, q CenterPostQuery) (pagination.Page[*types.Post], error)
	CountByCenterSince(dbc dbctx.Context, centerID string, since *time.Time) (int64, error)
}

type postRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostRepo(db *gorm.DB, baseLog *logger.Logger) PostRepo {
	return &postRepo{db: db, log: baseLog.With("repo", "PostRepo")}
}

func (r *postRepo) FindByCenter(dbc dbctx.Context, q CenterPostQuery) (pagination.Page[*types.Post], error) {
	out := pagination.Page[*types.Post]{Items: []*types.Post{}, Page: q.Params.Page, Size: q.Params.Size}

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.
			Where("tb_post.center_id = ?", q.CenterID).
			Where("tb_post.is_deleted = ?", false).
			Where("tb_post.created_at >= ?", dayStart(q.Start)).
			Where("tb_post.created_at < ?", dayStart(q.End).AddDate(0, 0, 1))
		if q.HoldID != nil {
			db = db.Where(
				"EXISTS (SELECT 1 FROM tb_climbing_history ch WHERE ch.post_id = tb_post.id AND ch.hold_id = ?)",
				*q.HoldID,
			)
		}
		return db
	}

	if err := dbc.DB(r.db).Model(&types.Post{}).Scopes(scope).Count(&out.Total).Error; err != nil {
		return out, apierr.FromDB("post.find_by_center.count", err)
	}
	if out.Total == 0 {
		return out, nil
	}

	var rows []*types.Post
	err := dbc.DB(r.db).
		Scopes(scope).
		Preload("User").
		Preload("Histories").
		Order("tb_post.created_at DESC, tb_post.id ASC").
		Offset(q.Params.Offset()).
		Limit(q.Params.Limit()).
		Find(&rows).Error
	if err != nil {
		return out, apierr.FromDB("post.find_by_center", err)
	}
	out.Items = rows
	return out, nil
}

// CountByCenterSince counts non-deleted posts; a nil since counts all of them.
func (r *postRepo) CountByCenterSince(dbc dbctx.Context, centerID string, since *time.Time) (int64, error) {
	q := dbc.DB(r.db).Model(&types.Post{}).
		Where("center_id = ?", centerID).
		Where("is_deleted = ?", false)
	if since != nil {
		q = q.Where("created_at >= ?", since.UTC())
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, apierr.FromDB("post.count_by_center", err)
	}
	return n, nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
