package aggregates_test

import (
	"context"
	"errors"
	"testing"

	"github.com/claon/claon-admin/internal/data/aggregates"
	aggtest "github.com/claon/claon-admin/internal/data/aggregates/testutil"
	"github.com/claon/claon-admin/internal/data/repos"
	"github.com/claon/claon-admin/internal/data/repos/testutil"
	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

type fixture struct {
	agg     aggregates.CenterAggregate
	deps    aggregates.CenterAggregateDeps
	hooks   *aggtest.HooksRecorder
	runner  *aggtest.InjectedTxRunner
	dbc     dbctx.Context
	ctx     context.Context
	ownerID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	ctx := context.Background()
	owner := testutil.SeedUser(t, ctx, db, types.RoleUser)

	hooks := &aggtest.HooksRecorder{}
	runner := &aggtest.InjectedTxRunner{Inner: aggregates.NewGormTxRunner(db)}
	deps := aggregates.CenterAggregateDeps{
		Base:          aggregates.BaseDeps{DB: db, Log: log, Runner: runner, Hooks: hooks},
		Users:         repos.NewUserRepo(db, log),
		Centers:       repos.NewCenterRepo(db, log),
		Holds:         repos.NewCenterHoldRepo(db, log),
		Walls:         repos.NewCenterWallRepo(db, log),
		ApprovedFiles: repos.NewCenterApprovedFileRepo(db, log),
		Schedules:     repos.NewScheduleRepo(db, log),
	}
	return &fixture{
		agg:     aggregates.NewCenterAggregate(deps),
		deps:    deps,
		hooks:   hooks,
		runner:  runner,
		dbc:     dbctx.Context{Ctx: ctx},
		ctx:     ctx,
		ownerID: owner.ID,
	}
}

func (f *fixture) registerInput() aggregates.RegisterCenterInput {
	return aggregates.RegisterCenterInput{
		Center: &types.Center{
			UserID:         f.ownerID,
			Name:           "claon",
			ProfileImage:   "https://p.png",
			Address:        "seoul",
			Tel:            "02-000-0000",
			Approved:       true,
			OperatingTimes: []types.OperatingTime{{DayOfWeek: "월", StartTime: "09:00", EndTime: "18:00"}},
			Fees:           []types.CenterFee{{Name: "day pass", Price: 15000, Count: 1}},
		},
		Holds:            []*types.CenterHold{{Name: "red", Difficulty: "v1", IsColor: true}},
		Walls:            []*types.CenterWall{{Name: "main", Type: types.WallTypeBouldering}},
		ApprovedFileURLs: []string{"https://proof.pdf"},
		PromoteOwner:     true,
	}
}

func TestCenterAggregateRegister(t *testing.T) {
	f := newFixture(t)

	c, err := f.agg.Register(f.ctx, f.registerInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if c.ID == "" || c.Approved {
		t.Fatalf("Register: want new unapproved center got=%+v", c)
	}
	if len(c.Holds) != 1 || c.Holds[0].CenterID != c.ID || len(c.Walls) != 1 {
		t.Fatalf("Register: children holds=%+v walls=%+v", c.Holds, c.Walls)
	}

	loaded, err := f.deps.Centers.Load(f.dbc, c.ID)
	if err != nil || loaded == nil {
		t.Fatalf("Load: got=%+v err=%v", loaded, err)
	}
	if loaded.Fees[0].Price != 15000 || loaded.OperatingTimes[0].DayOfWeek != "월" {
		t.Fatalf("Load: collections=%+v %+v", loaded.Fees, loaded.OperatingTimes)
	}
	if !loaded.OwnerIsCenterAdmin() {
		t.Fatalf("Register: owner not promoted, role=%s", loaded.User.Role)
	}
	files, _ := f.deps.ApprovedFiles.ListByCenter(f.dbc, c.ID)
	if len(files) != 1 || files[0].UserID != f.ownerID {
		t.Fatalf("Register: approved files=%+v", files)
	}
	if ev, ok := f.hooks.Last(); !ok || ev.Name != "center.register" || ev.Status != "success" {
		t.Fatalf("hooks: got=%+v", ev)
	}
}

func TestCenterAggregateRegisterRollsBack(t *testing.T) {
	f := newFixture(t)
	f.runner.FailCommit = errors.New("commit failed")

	in := f.registerInput()
	_, err := f.agg.Register(f.ctx, in)
	if !apierr.IsKind(err, apierr.KindInternal) {
		t.Fatalf("Register: want internal error got=%v", err)
	}
	if f.runner.RollbackCalls != 1 || f.runner.CommitCalls != 0 {
		t.Fatalf("runner: rollbacks=%d commits=%d", f.runner.RollbackCalls, f.runner.CommitCalls)
	}
	if in.Center.ID != "" || !in.Center.Approved || in.Holds[0].ID != "" || in.Holds[0].CenterID != "" {
		t.Fatalf("Register must not touch its input on rollback: center=%+v hold=%+v", in.Center, in.Holds[0])
	}
	page, err := f.deps.Centers.Load(f.dbc, in.Center.ID)
	if err != nil || page != nil {
		t.Fatalf("Load after rollback: want nil got=%+v err=%v", page, err)
	}
	u, _ := f.deps.Users.GetByID(f.dbc, f.ownerID)
	if u.Role != types.RoleUser {
		t.Fatalf("role must not change on rollback, got=%s", u.Role)
	}
}

func TestCenterAggregateReplaceAndDelete(t *testing.T) {
	f := newFixture(t)
	c, err := f.agg.Register(f.ctx, f.registerInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	testutil.SeedSchedule(t, f.ctx, f.deps.Base.DB, c.ID, testutil.Day(2024, 3, 1))

	c.ReplaceProfile(types.CenterProfile{Name: "renamed", ProfileImage: "https://p.png", Address: "busan", Tel: "051"})
	replaced, err := f.agg.Replace(f.ctx, aggregates.ReplaceCenterInput{
		Center: c,
		Holds:  []*types.CenterHold{{Name: "blue"}, {Name: "green"}},
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(replaced.Holds) != 2 || len(replaced.Walls) != 0 {
		t.Fatalf("Replace: holds=%d walls=%d", len(replaced.Holds), len(replaced.Walls))
	}
	loaded, _ := f.deps.Centers.Load(f.dbc, c.ID)
	if loaded.Name != "renamed" || len(loaded.Holds) != 2 || loaded.Holds[0].Name != "blue" || len(loaded.Fees) != 0 {
		t.Fatalf("Replace: loaded=%+v", loaded)
	}

	if err := f.agg.Delete(f.ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := f.deps.Centers.Load(f.dbc, c.ID)
	if err != nil || gone != nil {
		t.Fatalf("Delete: center still present %+v err=%v", gone, err)
	}
	holds, _ := f.deps.Holds.ListByCenter(f.dbc, c.ID)
	files, _ := f.deps.ApprovedFiles.ListByCenter(f.dbc, c.ID)
	if len(holds) != 0 || len(files) != 0 {
		t.Fatalf("Delete: leftovers holds=%d files=%d", len(holds), len(files))
	}
}

func TestCenterAggregateRequiresOwner(t *testing.T) {
	f := newFixture(t)
	_, err := f.agg.Register(f.ctx, aggregates.RegisterCenterInput{Center: &types.Center{Name: "x"}})
	if !apierr.IsKind(err, apierr.KindBadRequest) {
		t.Fatalf("want bad request got=%v", err)
	}
}

func TestCenterAggregateReplaceKeepsHoldIdentity(t *testing.T) {
	f := newFixture(t)
	c, err := f.agg.Register(f.ctx, f.registerInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	redID := c.Holds[0].ID
	day := testutil.Day(2024, 3, 1)
	post := testutil.SeedPost(t, f.ctx, f.deps.Base.DB, f.ownerID, c.ID, day, redID)

	c.Tel = "02-111-1111"
	replaced, err := f.agg.Replace(f.ctx, aggregates.ReplaceCenterInput{
		Center: c,
		Holds: []*types.CenterHold{
			{ID: redID, Name: "red", Difficulty: "v2", IsColor: true},
			{Name: "blue"},
		},
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(replaced.Holds) != 2 || replaced.Holds[0].ID != redID || replaced.Holds[1].ID == "" {
		t.Fatalf("Replace: holds=%+v", replaced.Holds)
	}
	if len(replaced.Walls) != 0 {
		t.Fatalf("Replace: omitted wall must be deleted, walls=%+v", replaced.Walls)
	}

	holds, _ := f.deps.Holds.ListByCenter(f.dbc, c.ID)
	if len(holds) != 2 {
		t.Fatalf("ListByCenter: want=2 got=%d", len(holds))
	}
	for _, h := range holds {
		if h.ID == redID && h.Difficulty != "v2" {
			t.Fatalf("kept hold not updated: %+v", h)
		}
	}

	posts := repos.NewPostRepo(f.deps.Base.DB, f.deps.Base.Log)
	page, err := posts.FindByCenter(f.dbc, repos.CenterPostQuery{
		CenterID: c.ID,
		HoldID:   &redID,
		Start:    day,
		End:      day,
		Params:   pagination.Params{Page: 1, Size: 10},
	})
	if err != nil {
		t.Fatalf("FindByCenter: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != post.ID {
		t.Fatalf("FindByCenter after Replace: want post %s got total=%d", post.ID, page.Total)
	}
}

func TestCenterAggregateReplaceRejectsForeignHold(t *testing.T) {
	f := newFixture(t)
	c, err := f.agg.Register(f.ctx, f.registerInput())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	other, err := f.agg.Register(f.ctx, f.registerInput())
	if err != nil {
		t.Fatalf("Register other: %v", err)
	}

	c.Tel = "000"
	_, err = f.agg.Replace(f.ctx, aggregates.ReplaceCenterInput{
		Center: c,
		Holds:  []*types.CenterHold{{ID: other.Holds[0].ID, Name: "mine"}},
	})
	if !apierr.IsKind(err, apierr.KindBadRequest) {
		t.Fatalf("Replace: want bad request got=%v", err)
	}
	holds, _ := f.deps.Holds.ListByCenter(f.dbc, c.ID)
	if len(holds) != 1 || holds[0].ID != c.Holds[0].ID {
		t.Fatalf("Replace must roll back, holds=%+v", holds)
	}
	otherHolds, _ := f.deps.Holds.ListByCenter(f.dbc, other.ID)
	if len(otherHolds) != 1 || otherHolds[0].Name != "red" {
		t.Fatalf("other center hold changed: %+v", otherHolds)
	}
}
