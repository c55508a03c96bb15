package review

import (
	"errors"

	"gorm.io/gorm"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
)

type ReviewAnswerRepo interface {
	GetByReview(dbc dbctx.Context, reviewID string) (*types.ReviewAnswer, error)
	Create(dbc dbctx.Context, answer *types.ReviewAnswer) (*types.ReviewAnswer, error)
	UpdateContent(dbc dbctx.Context, answerID, content string) error
	Delete(dbc dbctx.Context, answerID string) error
}

type reviewAnswerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) ReviewAnswerRepo {
	return &reviewAnswerRepo{db: db, log: baseLog.With("repo", "ReviewAnswerRepo")}
}

func (r *reviewAnswerRepo) GetByReview(dbc dbctx.Context, reviewID string) (*types.ReviewAnswer, error) {
	var row types.ReviewAnswer
	if err := dbc.DB(r.db).Where("review_id = ?", reviewID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apierr.FromDB("review_answer.get", err)
	}
	return &row, nil
}

func (r *reviewAnswerRepo) Create(dbc dbctx.Context, answer *types.ReviewAnswer) (*types.ReviewAnswer, error) {
	if err := dbc.DB(r.db).Create(answer).Error; err != nil {
		return nil, apierr.FromDB("review_answer.create", err)
	}
	return answer, nil
}

func (r *reviewAnswerRepo) UpdateContent(dbc dbctx.Context, answerID, content string) error {
	res := dbc.DB(r.db).Model(&types.ReviewAnswer{}).Where("id = ?", answerID).Update("content", content)
	if res.Error != nil {
		return apierr.FromDB("review_answer.update", res.Error)
	}
	if res.RowsAffected == 0 {
		return apierr.NotFound(apierr.CodeDataDoesNotExist, "review answer does not exist")
	}
	return nil
}

func (r *reviewAnswerRepo) Delete(dbc dbctx.Context, answerID string) error {
	if err := dbc.DB(r.db).Where("id = ?", answerID).Delete(&types.ReviewAnswer{}).Error; err != nil {
		return apierr.FromDB("review_answer.delete", err)
	}
	return nil
}
