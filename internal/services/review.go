package services

import (
	"strings"
	"time"

	"github.com/claon/claon-admin/internal/data/repos"
	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

type ReviewsByCenterQuery struct {
	CenterID   string
	Start      time.Time
	End        time.Time
	Tag        *string
	IsAnswered *bool
	Params     pagination.Params
}

type ReviewAnswerView struct {
	ReviewAnswerID string    `json:"review_answer_id"`
	ReviewID       string    `json:"review_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ReviewSummary struct {
	ReviewID  string            `json:"review_id"`
	Content   string            `json:"content"`
	CreatedAt time.Time         `json:"created_at"`
	User      UserBrief         `json:"user"`
	Tags      []string          `json:"tags"`
	Answer    *ReviewAnswerView `json:"answer"`
}

type ReviewCountSummary struct {
	CenterID        string           `json:"center_id"`
	TotalCount      int64            `json:"total_count"`
	AnsweredCount   int64            `json:"answered_count"`
	UnansweredCount int64            `json:"unanswered_count"`
	Tags            []repos.TagCount `json:"tags"`
}

type ReviewService interface {
	FindReviewsByCenter(dbc dbctx.Context, subject Subject, q ReviewsByCenterQuery) (pagination.Pagination[ReviewSummary], error)
	FindReviewsSummaryByCenter(dbc dbctx.Context, subject Subject, centerID string) (*ReviewCountSummary, error)
	CreateReviewAnswer(dbc dbctx.Context, subject Subject, centerID, reviewID, content string) (*ReviewAnswerView, error)
	UpdateReviewAnswer(dbc dbctx.Context, subject Subject, centerID, reviewID, content string) (*ReviewAnswerView, error)
	DeleteReviewAnswer(dbc dbctx.Context, subject Subject, centerID, reviewID string) error
}

type reviewService struct {
	log     *logger.Logger
	centers CenterLoader
	reviews repos.ReviewRepo
	answers repos.ReviewAnswerRepo
}

func NewReviewService(log *logger.Logger, centers CenterLoader, reviews repos.ReviewRepo, answers repos.ReviewAnswerRepo) ReviewService {
	return &reviewService{
		log:     log.With("service", "ReviewService"),
		centers: centers,
		reviews: reviews,
		answers: answers,
	}
}

func (rs *reviewService) FindReviewsByCenter(dbc dbctx.Context, subject Subject, q ReviewsByCenterQuery) (pagination.Pagination[ReviewSummary], error) {
	if _, err := loadOwnedCenter(dbc, rs.centers, subject, q.CenterID); err != nil {
		return pagination.Pagination[ReviewSummary]{}, err
	}
	page, err := rs.reviews.FindByCenter(dbc, repos.CenterReviewQuery{
		CenterID:   q.CenterID,
		Start:      q.Start,
		End:        q.End,
		Tag:        q.Tag,
		IsAnswered: q.IsAnswered,
		Params:     q.Params,
	})
	if err != nil {
		return pagination.Pagination[ReviewSummary]{}, err
	}
	return pagination.Wrap(page, toReviewSummary), nil
}

func toReviewSummary(r *types.Review) ReviewSummary {
	return ReviewSummary{
		ReviewID:  r.ID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		User:      toUserBrief(r.User),
		Tags:      r.TagWords(),
		Answer:    toAnswerView(r.Answer),
	}
}

func toAnswerView(a *types.ReviewAnswer) *ReviewAnswerView {
	if a == nil {
		return nil
	}
	return &ReviewAnswerView{
		ReviewAnswerID: a.ID,
		ReviewID:       a.ReviewID,
		Content:        a.Content,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func (rs *reviewService) FindReviewsSummaryByCenter(dbc dbctx.Context, subject Subject, centerID string) (*ReviewCountSummary, error) {
	c, err := loadOwnedCenter(dbc, rs.centers, subject, centerID)
	if err != nil {
		return nil, err
	}
	counts, err := rs.reviews.CountByCenter(dbc, c.ID)
	if err != nil {
		return nil, err
	}
	tags, err := rs.reviews.TagCountsByCenter(dbc, c.ID)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []repos.TagCount{}
	}
	return &ReviewCountSummary{
		CenterID:        c.ID,
		TotalCount:      counts.Total,
		AnsweredCount:   counts.Answered,
		UnansweredCount: counts.Total - counts.Answered,
		Tags:            tags,
	}, nil
}

// reviewInCenter checks ownership of the center and that the review belongs to it.
func (rs *reviewService) reviewInCenter(dbc dbctx.Context, subject Subject, centerID, reviewID string) (*types.Review, error) {
	if _, err := loadOwnedCenter(dbc, rs.centers, subject, centerID); err != nil {
		return nil, err
	}
	r, err := rs.reviews.GetByID(dbc, reviewID)
	if err != nil {
		return nil, err
	}
	if r == nil || r.CenterID != centerID {
		return nil, apierr.NotFound(apierr.CodeDataDoesNotExist, "review does not exist")
	}
	return r, nil
}

func answerContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", apierr.BadRequest(apierr.CodeInvalidRequest, "answer content is required")
	}
	return content, nil
}

func (rs *reviewService) CreateReviewAnswer(dbc dbctx.Context, subject Subject, centerID, reviewID, content string) (*ReviewAnswerView, error) {
	content, err := answerContent(content)
	if err != nil {
		return nil, err
	}
	r, err := rs.reviewInCenter(dbc, subject, centerID, reviewID)
	if err != nil {
		return nil, err
	}
	if r.IsAnswered() {
		return nil, apierr.Conflict(apierr.CodeRowAlreadyExist, "review answer already exists")
	}
	created, err := rs.answers.Create(dbc, &types.ReviewAnswer{ReviewID: r.ID, Content: content})
	if err != nil {
		return nil, err
	}
	return toAnswerView(created), nil
}

func (rs *reviewService) UpdateReviewAnswer(dbc dbctx.Context, subject Subject, centerID, reviewID, content string) (*ReviewAnswerView, error) {
	content, err := answerContent(content)
	if err != nil {
		return nil, err
	}
	r, err := rs.reviewInCenter(dbc, subject, centerID, reviewID)
	if err != nil {
		return nil, err
	}
	if !r.IsAnswered() {
		return nil, apierr.NotFound(apierr.CodeDataDoesNotExist, "review answer does not exist")
	}
	if err := rs.answers.UpdateContent(dbc, r.Answer.ID, content); err != nil {
		return nil, err
	}
	updated, err := rs.answers.GetByReview(dbc, r.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apierr.NotFound(apierr.CodeDataDoesNotExist, "review answer does not exist")
	}
	return toAnswerView(updated), nil
}

func (rs *reviewService) DeleteReviewAnswer(dbc dbctx.Context, subject Subject, centerID, reviewID string) error {
	r, err := rs.reviewInCenter(dbc, subject, centerID, reviewID)
	if err != nil {
		return err
	}
	if !r.IsAnswered() {
		return apierr.NotFound(apierr.CodeDataDoesNotExist, "review answer does not exist")
	}
	return rs.answers.Delete(dbc, r.Answer.ID)
}
