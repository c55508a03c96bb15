package review

import (
	"errors"
	"time"

	"gorm.io/gorm"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

type CenterReviewQuery struct {
	CenterID   string
	Start      time.Time
	End        time.Time
	Tag        *string
	IsAnswered *bool
	Params     pagination.Params
}

type TagCount struct {
	Word  string `json:"word"`
	Count int64  `json:"count"`
}

type ReviewCounts struct {
	Total    int64
	Answered int64
}

type ReviewRepo interface {
	FindByCenter(dbc dbctx.Context, q CenterReviewQuery) (pagination.Page[*types.Review], error)
	// GetByID returns the review with its answer, or nil when absent.
	GetByID(dbc dbctx.Context, reviewID string) (*types.Review, error)
	CountByCenter(dbc dbctx.Context, centerID string) (ReviewCounts, error)
	TagCountsByCenter(dbc dbctx.Context, centerID string) ([]TagCount, error)
}

type reviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return &reviewRepo{db: db, log: baseLog.With("repo", "ReviewRepo")}
}

const answeredClause = "EXISTS (SELECT 1 FROM tb_review_answer ra WHERE ra.review_id = tb_review.id)"

func (r *reviewRepo) FindByCenter(dbc dbctx.Context, q CenterReviewQuery) (pagination.Page[*types.Review], error) {
	out := pagination.Page[*types.Review]{Items: []*types.Review{}, Page: q.Params.Page, Size: q.Params.Size}

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.
			Where("tb_review.center_id = ?", q.CenterID).
			Where("tb_review.created_at >= ?", dayStart(q.Start)).
			Where("tb_review.created_at < ?", dayStart(q.End).AddDate(0, 0, 1))
		if q.Tag != nil {
			db = db.Where("EXISTS (SELECT 1 FROM tb_review_tag rt WHERE rt.review_id = tb_review.id AND rt.word = ?)", *q.Tag)
		}
		if q.IsAnswered != nil {
			if *q.IsAnswered {
				db = db.Where(answeredClause)
			} else {
				db = db.Where("NOT " + answeredClause)
			}
		}
		return db
	}

	if err := dbc.DB(r.db).Model(&types.Review{}).Scopes(scope).Count(&out.Total).Error; err != nil {
		return out, apierr.FromDB("review.find_by_center.count", err)
	}
	if out.Total == 0 {
		return out, nil
	}

	var rows []*types.Review
	err := dbc.DB(r.db).
		Scopes(scope).
		Preload("User").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("word ASC") }).
		Preload("Answer").
		Order("tb_review.created_at DESC, tb_review.id ASC").
		Offset(q.Params.Offset()).
		Limit(q.Params.Limit()).
		Find(&rows).Error
	if err != nil {
		return out, apierr.FromDB("review.find_by_center", err)
	}
	out.Items = rows
	return out, nil
}

func (r *reviewRepo) GetByID(dbc dbctx.Context, reviewID string) (*types.Review, error) {
	var row types.Review
	err := dbc.DB(r.db).Preload("Answer").Where("id = ?", reviewID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apierr.FromDB("review.get", err)
	}
	return &row, nil
}

func (r *reviewRepo) CountByCenter(dbc dbctx.Context, centerID string) (ReviewCounts, error) {
	var out ReviewCounts
	if err := dbc.DB(r.db).Model(&types.Review{}).Where("center_id = ?", centerID).Count(&out.Total).Error; err != nil {
		return out, apierr.FromDB("review.count", err)
	}
	if err := dbc.DB(r.db).Model(&types.Review{}).Where("center_id = ?", centerID).Where(answeredClause).Count(&out.Answered).Error; err != nil {
		return out, apierr.FromDB("review.count_answered", err)
	}
	return out, nil
}

func (r *reviewRepo) TagCountsByCenter(dbc dbctx.Context, centerID string) ([]TagCount, error) {
	out := []TagCount{}
	err := dbc.DB(r.db).
		Table("tb_review_tag AS rt").
		Select("rt.word AS word, COUNT(*) AS count").
		Joins("JOIN tb_review r ON r.id = rt.review_id").
		Where("r.center_id = ?", centerID).
		Group("rt.word").
		Order("count DESC, word ASC").
		Scan(&out).Error
	if err != nil {
		return nil, apierr.FromDB("review.tag_counts", err)
	}
	return out, nil
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
