package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	centerrepo "github.com/claon/claon-admin/internal/data/repos/center"
	types "github.com/claon/claon-admin/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, role types.Role) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.NewString(),
		Email:    uuid.NewString()[:8] + "@claon.test",
		Nickname: "u" + uuid.NewString()[:8],
		Role:     role,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

// SeedCenter writes a center row with one entry in every serialized column.
func SeedCenter(tb testing.TB, ctx context.Context, tx *gorm.DB, userID string, approved bool, name string) *types.Center {
	tb.Helper()
	c := &types.Center{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          name,
		ProfileImage:  "https://test.profile.png",
		Address:       "test_address",
		DetailAddress: "test_detail_address",
		Tel:           "010-1234-5678",
		WebURL:        "http://test.com",
		InstagramName: "test_instagram",
		YoutubeURL:    "https://www.youtube.com/@test",
		Approved:      approved,
		OperatingTimes: []types.OperatingTime{
			{DayOfWeek: "월", StartTime: "09:00", EndTime: "18:00"},
		},
		Images:    []types.CenterImage{{URL: "https://test.image.png"}},
		Utilities: []types.Utility{{Name: "test_utility"}},
		Fees:      []types.CenterFee{{Name: "test_fee_name", Price: 1000, Count: 10}},
		FeeImages: []types.CenterFeeImage{{URL: "https://test.fee.png"}},
	}
	row, err := centerrepo.FromDomain(c)
	if err != nil {
		tb.Fatalf("encode center: %v", err)
	}
	if err := tx.WithContext(ctx).Omit("User", "Holds", "Walls").Create(row).Error; err != nil {
		tb.Fatalf("seed center: %v", err)
	}
	return c
}

func SeedHold(tb testing.TB, ctx context.Context, tx *gorm.DB, centerID, name string) *types.CenterHold {
	tb.Helper()
	h := &types.CenterHold{ID: uuid.NewString(), Name: name, Difficulty: "hard", CenterID: centerID}
	if err := tx.WithContext(ctx).Create(h).Error; err != nil {
		tb.Fatalf("seed hold: %v", err)
	}
	return h
}

func SeedWall(tb testing.TB, ctx context.Context, tx *gorm.DB, centerID, name string) *types.CenterWall {
	tb.Helper()
	w := &types.CenterWall{ID: uuid.NewString(), Name: name, Type: types.WallTypeEndurance, CenterID: centerID}
	if err := tx.WithContext(ctx).Create(w).Error; err != nil {
		tb.Fatalf("seed wall: %v", err)
	}
	return w
}

func SeedPost(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, centerID string, createdAt time.Time, holdIDs ...string) *types.Post {
	tb.Helper()
	p := &types.Post{
		ID:        uuid.NewString(),
		UserID:    userID,
		CenterID:  centerID,
		Content:   "sent it",
		ImageURLs: []string{"https://test.post.png"},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := tx.WithContext(ctx).Omit("User", "Histories").Create(p).Error; err != nil {
		tb.Fatalf("seed post: %v", err)
	}
	for _, holdID := range holdIDs {
		h := &types.ClimbingHistory{ID: uuid.NewString(), PostID: p.ID, HoldID: holdID, ClimbingCount: 1}
		if err := tx.WithContext(ctx).Create(h).Error; err != nil {
			tb.Fatalf("seed climbing history: %v", err)
		}
	}
	return p
}

func SeedReview(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, centerID string, createdAt time.Time, tags ...string) *types.Review {
	tb.Helper()
	r := &types.Review{
		ID:        uuid.NewString(),
		UserID:    userID,
		CenterID:  centerID,
		Content:   "good holds",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := tx.WithContext(ctx).Omit("User", "Tags", "Answer").Create(r).Error; err != nil {
		tb.Fatalf("seed review: %v", err)
	}
	for _, word := range tags {
		tag := &types.ReviewTag{ID: uuid.NewString(), ReviewID: r.ID, Word: word}
		if err := tx.WithContext(ctx).Create(tag).Error; err != nil {
			tb.Fatalf("seed review tag: %v", err)
		}
		r.Tags = append(r.Tags, *tag)
	}
	return r
}

func SeedSchedule(tb testing.TB, ctx context.Context, tx *gorm.DB, centerID string, start time.Time) *types.Schedule {
	tb.Helper()
	s := &types.Schedule{
		ID:       uuid.NewString(),
		CenterID: centerID,
		Title:    "new setting",
		StartAt:  start,
		EndAt:    start.Add(2 * time.Hour),
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed schedule: %v", err)
	}
	return s
}

func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
