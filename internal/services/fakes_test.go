package services

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/claon/claon-admin/internal/data/aggregates"
	"github.com/claon/claon-admin/internal/data/repos"
	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

type fakeCenterRepo struct {
	centers map[string]*types.Center
	byName  []*types.Center
	loads   int
	finds   int
	fees    map[string][]types.CenterFee
}

func newFakeCenterRepo(centers ...*types.Center) *fakeCenterRepo {
	r := &fakeCenterRepo{centers: map[string]*types.Center{}, fees: map[string][]types.CenterFee{}}
	for _, c := range centers {
		r.centers[c.ID] = c
	}
	return r
}

func (r *fakeCenterRepo) Load(dbc dbctx.Context, centerID string) (*types.Center, error) {
	r.loads++
	c, ok := r.centers[centerID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCenterRepo) Create(dbc dbctx.Context, c *types.Center) (*types.Center, error) {
	r.centers[c.ID] = c
	return c, nil
}

func (r *fakeCenterRepo) Save(dbc dbctx.Context, c *types.Center) error {
	r.centers[c.ID] = c
	return nil
}

func (r *fakeCenterRepo) UpdateFees(dbc dbctx.Context, centerID string, fees []types.CenterFee, images []types.CenterFeeImage) error {
	r.fees[centerID] = fees
	return nil
}

func (r *fakeCenterRepo) Delete(dbc dbctx.Context, centerID string) error {
	delete(r.centers, centerID)
	return nil
}

func (r *fakeCenterRepo) FindApprovedByName(dbc dbctx.Context, name string, limit int) ([]*types.Center, error) {
	r.finds++
	out := []*types.Center{}
	for _, c := range r.byName {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCenterRepo) ListByUser(dbc dbctx.Context, userID string, params pagination.Params) (pagination.Page[*types.Center], error) {
	out := []*types.Center{}
	for _, c := range r.centers {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return pagination.Page[*types.Center]{Items: out, Total: int64(len(out)), Page: params.Page, Size: params.Size}, nil
}

type fakePostRepo struct {
	calls   []repos.CenterPostQuery
	page    pagination.Page[*types.Post]
	sinces  []*time.Time
	counter func(since *time.Time) int64
}

func (r *fakePostRepo) FindByCenter(dbc dbctx.Context, q repos.CenterPostQuery) (pagination.Page[*types.Post], error) {
	r.calls = append(r.calls, q)
	return r.page, nil
}

func (r *fakePostRepo) CountByCenterSince(dbc dbctx.Context, centerID string, since *time.Time) (int64, error) {
	r.sinces = append(r.sinces, since)
	if r.counter == nil {
		return 0, nil
	}
	return r.counter(since), nil
}

type fakeReviewRepo struct {
	reviews map[string]*types.Review
	page    pagination.Page[*types.Review]
	query   *repos.CenterReviewQuery
	counts  repos.ReviewCounts
	tags    []repos.TagCount
}

func (r *fakeReviewRepo) FindByCenter(dbc dbctx.Context, q repos.CenterReviewQuery) (pagination.Page[*types.Review], error) {
	r.query = &q
	return r.page, nil
}

func (r *fakeReviewRepo) GetByID(dbc dbctx.Context, reviewID string) (*types.Review, error) {
	return r.reviews[reviewID], nil
}

func (r *fakeReviewRepo) CountByCenter(dbc dbctx.Context, centerID string) (repos.ReviewCounts, error) {
	return r.counts, nil
}

func (r *fakeReviewRepo) TagCountsByCenter(dbc dbctx.Context, centerID string) ([]repos.TagCount, error) {
	return r.tags, nil
}

type fakeAnswerRepo struct {
	answers map[string]*types.ReviewAnswer
	deleted []string
}

func (r *fakeAnswerRepo) GetByReview(dbc dbctx.Context, reviewID string) (*types.ReviewAnswer, error) {
	for _, a := range r.answers {
		if a.ReviewID == reviewID {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAnswerRepo) Create(dbc dbctx.Context, answer *types.ReviewAnswer) (*types.ReviewAnswer, error) {
	if answer.ID == "" {
		answer.ID = "answer-" + answer.ReviewID
	}
	r.answers[answer.ID] = answer
	return answer, nil
}

func (r *fakeAnswerRepo) UpdateContent(dbc dbctx.Context, answerID, content string) error {
	if a, ok := r.answers[answerID]; ok {
		a.Content = content
	}
	return nil
}

func (r *fakeAnswerRepo) Delete(dbc dbctx.Context, answerID string) error {
	r.deleted = append(r.deleted, answerID)
	delete(r.answers, answerID)
	return nil
}

type fakeScheduleRepo struct {
	schedules map[string]*types.Schedule
	saved     []*types.Schedule
	deleted   []string
}

func (r *fakeScheduleRepo) ListByCenter(dbc dbctx.Context, centerID string, params pagination.Params) (pagination.Page[*types.Schedule], error) {
	out := []*types.Schedule{}
	for _, s := range r.schedules {
		if s.CenterID == centerID {
			out = append(out, s)
		}
	}
	return pagination.Page[*types.Schedule]{Items: out, Total: int64(len(out)), Page: params.Page, Size: params.Size}, nil
}

func (r *fakeScheduleRepo) GetInCenter(dbc dbctx.Context, centerID, scheduleID string) (*types.Schedule, error) {
	s, ok := r.schedules[scheduleID]
	if !ok || s.CenterID != centerID {
		return nil, nil
	}
	return s, nil
}

func (r *fakeScheduleRepo) Create(dbc dbctx.Context, s *types.Schedule) (*types.Schedule, error) {
	if s.ID == "" {
		s.ID = "schedule-new"
	}
	r.schedules[s.ID] = s
	return s, nil
}

func (r *fakeScheduleRepo) Save(dbc dbctx.Context, s *types.Schedule) error {
	r.saved = append(r.saved, s)
	return nil
}

func (r *fakeScheduleRepo) Delete(dbc dbctx.Context, scheduleID string) error {
	r.deleted = append(r.deleted, scheduleID)
	return nil
}

func (r *fakeScheduleRepo) DeleteByCenter(dbc dbctx.Context, centerID string) error { return nil }

type fakeUserRepo struct {
	users     map[string]*types.User
	nicknames map[string]bool
}

func (r *fakeUserRepo) Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error) {
	for _, u := range users {
		r.users[u.ID] = u
	}
	return users, nil
}

func (r *fakeUserRepo) GetByID(dbc dbctx.Context, userID string) (*types.User, error) {
	return r.users[userID], nil
}

func (r *fakeUserRepo) GetByIDs(dbc dbctx.Context, userIDs []string) ([]*types.User, error) {
	out := []*types.User{}
	for _, id := range userIDs {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) NicknameExists(dbc dbctx.Context, nickname string) (bool, error) {
	return r.nicknames[nickname], nil
}

func (r *fakeUserRepo) UpdateRole(dbc dbctx.Context, userID string, role types.Role) error {
	if u, ok := r.users[userID]; ok {
		u.Role = role
	}
	return nil
}

type fakeCenterAggregate struct {
	registered []aggregates.RegisterCenterInput
	replaced   []aggregates.ReplaceCenterInput
	deleted    []string
}

func (a *fakeCenterAggregate) Register(ctx context.Context, in aggregates.RegisterCenterInput) (*types.Center, error) {
	a.registered = append(a.registered, in)
	c := in.Center
	if c.ID == "" {
		c.ID = "center-new"
	}
	return c, nil
}

func (a *fakeCenterAggregate) Replace(ctx context.Context, in aggregates.ReplaceCenterInput) (*types.Center, error) {
	a.replaced = append(a.replaced, in)
	return in.Center, nil
}

func (a *fakeCenterAggregate) Delete(ctx context.Context, centerID string) error {
	a.deleted = append(a.deleted, centerID)
	return nil
}

type fakeBucket struct {
	keys []string
}

func (b *fakeBucket) UploadFile(ctx context.Context, key string, file io.Reader) error {
	if _, err := io.ReadAll(file); err != nil {
		return err
	}
	b.keys = append(b.keys, key)
	return nil
}

func (b *fakeBucket) DeleteFile(ctx context.Context, key string) error { return nil }

func (b *fakeBucket) GetPublicURL(key string) string { return "https://cdn.test/" + key }

func adminCenter(id, ownerID string, holdIDs ...string) *types.Center {
	c := &types.Center{
		ID:     id,
		UserID: ownerID,
		Name:   "claon " + id,
		User:   &types.User{ID: ownerID, Role: types.RoleCenterAdmin},
	}
	for _, h := range holdIDs {
		c.Holds = append(c.Holds, types.CenterHold{ID: h, CenterID: id})
	}
	return c
}
