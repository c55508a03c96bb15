package services

import (
	"time"

	"github.com/claon/claon-admin/internal/data/repos"
	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

type PostsByCenterQuery struct {
	CenterID string
	HoldID   *string
	Start    time.Time
	End      time.Time
	Params   pagination.Params
}

type UserBrief struct {
	UserID       string `json:"user_id"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profile_image"`
}

type ClimbingCount struct {
	HoldID string `json:"hold_id"`
	Count  int    `json:"climbing_count"`
}

type PostSummary struct {
	PostID          string          `json:"post_id"`
	Content         string          `json:"content"`
	Image           string          `json:"image"`
	CreatedAt       time.Time       `json:"created_at"`
	User            UserBrief       `json:"user"`
	ClimbingHistory []ClimbingCount `json:"climbing_history"`
}

type PostCountSummary struct {
	CenterID  string `json:"center_id"`
	TodayPost int64  `json:"today_post_count"`
	WeekPost  int64  `json:"week_post_count"`
	MonthPost int64  `json:"month_post_count"`
	TotalPost int64  `json:"total_post_count"`
}

type PostService interface {
	FindPostsByCenter(dbc dbctx.Context, subject Subject, q PostsByCenterQuery) (pagination.Pagination[PostSummary], error)
	FindPostsSummaryByCenter(dbc dbctx.Context, subject Subject, centerID string) (*PostCountSummary, error)
}

type postService struct {
	centers CenterLoader
	posts   repos.PostRepo
	now     func() time.Time
}

// NewPostService wires the posts queries. Neither operation opens a
// transaction; both run on the unit of work carried by dbc.
func NewPostService(centers CenterLoader, posts repos.PostRepo) PostService {
	return &postService{centers: centers, posts: posts, now: time.Now}
}

// checkCenter loads the center and gates access on the owning user's role.
func (ps *postService) checkCenter(dbc dbctx.Context, centerID string) (*types.Center, error) {
	c, err := ps.centers.Load(dbc, centerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errCenterNotFound()
	}
	if !c.OwnerIsCenterAdmin() {
		return nil, apierr.Unauthorized(apierr.CodeNotAccessible, "not a center administrator")
	}
	return c, nil
}

func (ps *postService) FindPostsByCenter(dbc dbctx.Context, subject Subject, q PostsByCenterQuery) (pagination.Pagination[PostSummary], error) {
	c, err := ps.checkCenter(dbc, q.CenterID)
	if err != nil {
		return pagination.Pagination[PostSummary]{}, err
	}
	if q.HoldID != nil && !c.HasHold(*q.HoldID) {
		return pagination.Pagination[PostSummary]{}, apierr.BadRequest(apierr.CodeDataDoesNotExist, "hold does not belong to center")
	}
	page, err := ps.posts.FindByCenter(dbc, repos.CenterPostQuery{
		CenterID: q.CenterID,
		HoldID:   q.HoldID,
		Start:    q.Start,
		End:      q.End,
		Params:   q.Params,
	})
	if err != nil {
		return pagination.Pagination[PostSummary]{}, err
	}
	return pagination.Wrap(page, toPostSummary), nil
}

func toPostSummary(p *types.Post) PostSummary {
	out := PostSummary{
		PostID:          p.ID,
		Content:         p.Content,
		CreatedAt:       p.CreatedAt,
		User:            toUserBrief(p.User),
		ClimbingHistory: make([]ClimbingCount, 0, len(p.Histories)),
	}
	if len(p.ImageURLs) > 0 {
		out.Image = p.ImageURLs[0]
	}
	for _, h := range p.Histories {
		out.ClimbingHistory = append(out.ClimbingHistory, ClimbingCount{HoldID: h.HoldID, Count: h.ClimbingCount})
	}
	return out
}

func toUserBrief(u *types.User) UserBrief {
	if u == nil {
		return UserBrief{}
	}
	return UserBrief{UserID: u.ID, Nickname: u.Nickname, ProfileImage: u.ProfileImage}
}

func (ps *postService) FindPostsSummaryByCenter(dbc dbctx.Context, subject Subject, centerID string) (*PostCountSummary, error) {
	c, err := ps.checkCenter(dbc, centerID)
	if err != nil {
		return nil, err
	}
	today, week, month := periodStarts(ps.now())
	out := &PostCountSummary{CenterID: c.ID}
	counts := []struct {
		since *time.Time
		dst   *int64
	}{
		{&today, &out.TodayPost},
		{&week, &out.WeekPost},
		{&month, &out.MonthPost},
		{nil, &out.TotalPost},
	}
	for _, cnt := range counts {
		n, err := ps.posts.CountByCenterSince(dbc, c.ID, cnt.since)
		if err != nil {
			return nil, err
		}
		*cnt.dst = n
	}
	return out, nil
}

// periodStarts returns the UTC start of the day, the ISO week (Monday) and
// the month containing now.
func periodStarts(now time.Time) (day, week, month time.Time) {
	now = now.UTC()
	day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	week = day.AddDate(0, 0, -offset)
	month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return day, week, month
}
