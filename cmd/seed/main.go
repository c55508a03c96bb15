package main

import (
	"bytes"
	"context"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/claon/claon-admin/internal/app"
	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/services"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

func main() {
	var path string
	var dryRun bool
	flag.StringVar(&path, "file", "", "fixture file (defaults to the bundled fixtures)")
	flag.BoolVar(&dryRun, "dry-run", false, "validate fixtures without writing")
	flag.Parse()

	var src io.Reader = bytes.NewReader(defaultFixtures)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Printf("open fixtures: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		src = f
	}
	fx, err := loadFixtures(src)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
	if dryRun {
		fmt.Printf("fixtures ok: users=%d centers=%d posts=%d reviews=%d schedules=%d\n",
			len(fx.Users), len(fx.Centers), len(fx.Posts), len(fx.Reviews), len(fx.Schedules))
		return
	}

	if err := run(fx); err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
}

func run(fx *fixtures) error {
	ctx := context.Background()
	application, err := app.New(ctx)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer application.Close()

	if err := seed(ctx, application, fx); err != nil {
		application.Log.Error("seed failed", "error", err)
		return err
	}
	application.Log.Info("seed complete",
		"users", len(fx.Users),
		"centers", len(fx.Centers),
		"posts", len(fx.Posts),
		"reviews", len(fx.Reviews),
		"schedules", len(fx.Schedules),
	)
	return nil
}

func seed(ctx context.Context, a *app.App, fx *fixtures) error {
	dbc := dbctx.Context{Ctx: ctx}

	users := make(map[string]*types.User, len(fx.Users))
	rows := make([]*types.User, 0, len(fx.Users))
	for _, u := range fx.Users {
		row := &types.User{
			Email:         u.Email,
			Nickname:      u.Nickname,
			InstagramName: u.InstagramName,
			Role:          u.Role,
		}
		users[u.Key] = row
		rows = append(rows, row)
	}
	if _, err := a.Repos.User.Create(dbc, rows); err != nil {
		return fmt.Errorf("create users: %w", err)
	}

	centers := make(map[string]*types.Center, len(fx.Centers))
	for _, c := range fx.Centers {
		owner := users[c.Owner]
		subject := services.Subject{UserID: owner.ID, Role: owner.Role}
		created, err := a.Services.Center.Create(ctx, subject, c.input())
		if err != nil {
			return fmt.Errorf("create center %q: %w", c.Key, err)
		}
		if c.Approved {
			created.Approved = true
			if err := a.Repos.Center.Save(dbc, created); err != nil {
				return fmt.Errorf("approve center %q: %w", c.Key, err)
			}
		}
		centers[c.Key] = created
	}

	for i, p := range fx.Posts {
		center := centers[p.Center]
		post := &types.Post{
			UserID:    users[p.User].ID,
			CenterID:  center.ID,
			Content:   p.Content,
			ImageURLs: p.Images,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.CreatedAt,
		}
		for _, cl := range p.Climbs {
			post.Histories = append(post.Histories, types.ClimbingHistory{
				HoldID:        holdID(center, cl.Hold),
				ClimbingCount: cl.Count,
			})
		}
		if err := a.DB.WithContext(ctx).Create(post).Error; err != nil {
			return fmt.Errorf("create post %d: %w", i, err)
		}
	}

	for i, r := range fx.Reviews {
		review := &types.Review{
			UserID:   users[r.User].ID,
			CenterID: centers[r.Center].ID,
			Content:  r.Content,
		}
		for _, word := range r.Tags {
			review.Tags = append(review.Tags, types.ReviewTag{Word: word})
		}
		if err := a.DB.WithContext(ctx).Create(review).Error; err != nil {
			return fmt.Errorf("create review %d: %w", i, err)
		}
		if r.Answer != "" {
			if _, err := a.Repos.ReviewAnswer.Create(dbc, &types.ReviewAnswer{ReviewID: review.ID, Content: r.Answer}); err != nil {
				return fmt.Errorf("answer review %d: %w", i, err)
			}
		}
	}

	for i, s := range fx.Schedules {
		row := &types.Schedule{
			CenterID:    centers[s.Center].ID,
			Title:       s.Title,
			Description: s.Description,
			StartAt:     s.StartAt,
			EndAt:       s.EndAt,
		}
		if err := row.Validate(); err != nil {
			return fmt.Errorf("schedule %d: %w", i, err)
		}
		if _, err := a.Repos.Schedule.Create(dbc, row); err != nil {
			return fmt.Errorf("create schedule %d: %w", i, err)
		}
	}
	return nil
}

func holdID(c *types.Center, name string) string {
	for _, h := range c.Holds {
		if h.Name == name {
			return h.ID
		}
	}
	return ""
}
