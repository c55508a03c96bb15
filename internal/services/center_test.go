package services

import (
	"context"
	"testing"
	"time"

	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/cache"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

func newTestCenterService(repo *fakeCenterRepo, agg *fakeCenterAggregate, store cache.Store) CenterService {
	return NewCenterService(logger.Nop(), repo, agg, store, time.Minute)
}

func TestFindCentersByNameUsesCache(t *testing.T) {
	repo := newFakeCenterRepo()
	repo.byName = []*types.Center{{ID: "c1", Name: "Claon Seoul"}, {ID: "c2", Name: "Boulder Town"}}
	store := cache.NewMemoryStore()
	svc := newTestCenterService(repo, &fakeCenterAggregate{}, store)
	ctx := context.Background()

	first, err := svc.FindCentersByName(ctx, "claon")
	if err != nil {
		t.Fatalf("FindCentersByName: %v", err)
	}
	second, err := svc.FindCentersByName(ctx, " CLAON ")
	if err != nil {
		t.Fatalf("FindCentersByName: %v", err)
	}
	if repo.finds != 1 {
		t.Fatalf("repo searches: want=1 got=%d", repo.finds)
	}
	if len(first) != 1 || len(second) != 1 || second[0] != (CenterName{CenterID: "c1", Name: "Claon Seoul"}) {
		t.Fatalf("results: first=%+v second=%+v", first, second)
	}
}

func TestFindCentersByNameWithoutCache(t *testing.T) {
	repo := newFakeCenterRepo()
	repo.byName = []*types.Center{{ID: "c1", Name: "Claon Seoul"}}
	svc := newTestCenterService(repo, &fakeCenterAggregate{}, nil)

	for i := 0; i < 2; i++ {
		if _, err := svc.FindCentersByName(context.Background(), "seoul"); err != nil {
			t.Fatalf("FindCentersByName: %v", err)
		}
	}
	if repo.finds != 2 {
		t.Fatalf("repo searches: want=2 got=%d", repo.finds)
	}
}

func TestFindByIDOwnerCheck(t *testing.T) {
	repo := newFakeCenterRepo(adminCenter("c1", "owner"))
	svc := newTestCenterService(repo, &fakeCenterAggregate{}, nil)
	dbc := dbctx.Context{Ctx: context.Background()}

	if _, err := svc.FindByID(dbc, Subject{UserID: "owner", Role: types.RoleCenterAdmin}, "c1"); err != nil {
		t.Fatalf("FindByID owner: %v", err)
	}
	_, err := svc.FindByID(dbc, Subject{UserID: "intruder", Role: types.RoleCenterAdmin}, "c1")
	if apierr.CodeOf(err) != apierr.CodeNotAccessible {
		t.Fatalf("code: want=%s got=%s", apierr.CodeNotAccessible, apierr.CodeOf(err))
	}
	_, err = svc.FindByID(dbc, Subject{UserID: "owner"}, "missing")
	if !apierr.IsKind(err, apierr.KindNotFound) {
		t.Fatalf("kind: want=%s got=%s", apierr.KindNotFound, apierr.KindOf(err))
	}
}

func TestCreateCenterRequiresAdmin(t *testing.T) {
	agg := &fakeCenterAggregate{}
	svc := newTestCenterService(newFakeCenterRepo(), agg, nil)
	in := CenterInput{
		Profile: types.CenterProfile{Name: " claon "},
		Holds:   []HoldInput{{Name: "red", Difficulty: "V3", IsColor: true}},
		Walls:   []WallInput{{Name: "main", Type: types.WallTypeBouldering}},
	}

	_, err := svc.Create(context.Background(), Subject{UserID: "u1", Role: types.RoleUser}, in)
	if !apierr.IsKind(err, apierr.KindUnauthorized) {
		t.Fatalf("kind: want=%s got=%s", apierr.KindUnauthorized, apierr.KindOf(err))
	}

	created, err := svc.Create(context.Background(), Subject{UserID: "u1", Role: types.RoleCenterAdmin}, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "claon" || created.UserID != "u1" {
		t.Fatalf("created: got=%+v", created)
	}
	if len(agg.registered) != 1 || agg.registered[0].PromoteOwner {
		t.Fatalf("register: got=%+v", agg.registered)
	}
	if len(agg.registered[0].Holds) != 1 || agg.registered[0].Holds[0].Name != "red" {
		t.Fatalf("holds: got=%+v", agg.registered[0].Holds)
	}
}

func TestCenterInputValidation(t *testing.T) {
	cases := []struct {
		name string
		in   CenterInput
	}{
		{"blank name", CenterInput{}},
		{"long hold name", CenterInput{Profile: types.CenterProfile{Name: "c"}, Holds: []HoldInput{{Name: "abcdefghijk"}}}},
		{"bad wall type", CenterInput{Profile: types.CenterProfile{Name: "c"}, Walls: []WallInput{{Name: "w", Type: "LEAD"}}}},
		{"negative price", CenterInput{Profile: types.CenterProfile{Name: "c", Fees: []types.CenterFee{{Name: "x", Price: -1}}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.in.validate(); !apierr.IsKind(err, apierr.KindBadRequest) {
				t.Fatalf("kind: want=%s got=%s", apierr.KindBadRequest, apierr.KindOf(err))
			}
		})
	}
}

func TestUpdateCenterReplacesAndInvalidates(t *testing.T) {
	repo := newFakeCenterRepo(adminCenter("c1", "owner", "h-old"))
	agg := &fakeCenterAggregate{}
	store := cache.NewMemoryStore()
	ctx := context.Background()
	if err := cache.SetJSON(ctx, store, centerNameCacheKey("claon"), []CenterName{{CenterID: "c1", Name: "old"}}, time.Minute); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	svc := newTestCenterService(repo, agg, store)

	in := CenterInput{
		Profile: types.CenterProfile{
			Name:           "claon renamed",
			OperatingTimes: []types.OperatingTime{{DayOfWeek: "월", StartTime: "09:00", EndTime: "18:00"}},
		},
		Holds: []HoldInput{{ID: "h-old", Name: "old"}, {Name: "blue"}},
	}
	updated, err := svc.Update(ctx, Subject{UserID: "owner", Role: types.RoleCenterAdmin}, "c1", in)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "claon renamed" || len(updated.OperatingTimes) != 1 {
		t.Fatalf("updated: got=%+v", updated)
	}
	if len(agg.replaced) != 1 || len(agg.replaced[0].Holds) != 2 {
		t.Fatalf("replace: got=%+v", agg.replaced)
	}
	if h := agg.replaced[0].Holds; h[0].ID != "h-old" || h[1].ID != "" || h[1].Name != "blue" {
		t.Fatalf("replace: got=%+v", agg.replaced)
	}
	if _, err := store.Get(ctx, centerNameCacheKey("claon")); err != cache.ErrMiss {
		t.Fatalf("cache: want miss got=%v", err)
	}

	_, err = svc.Update(ctx, Subject{UserID: "intruder", Role: types.RoleCenterAdmin}, "c1", in)
	if apierr.CodeOf(err) != apierr.CodeNotAccessible {
		t.Fatalf("code: want=%s got=%s", apierr.CodeNotAccessible, apierr.CodeOf(err))
	}
	if len(agg.replaced) != 1 {
		t.Fatalf("replace calls: want=1 got=%d", len(agg.replaced))
	}
}

func TestDeleteCenter(t *testing.T) {
	repo := newFakeCenterRepo(adminCenter("c1", "owner"))
	agg := &fakeCenterAggregate{}
	svc := newTestCenterService(repo, agg, nil)

	deleted, err := svc.Delete(context.Background(), Subject{UserID: "owner"}, "c1")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != "c1" || len(agg.deleted) != 1 || agg.deleted[0] != "c1" {
		t.Fatalf("delete: center=%+v calls=%v", deleted, agg.deleted)
	}
}

func TestCenterFees(t *testing.T) {
	c := adminCenter("c1", "owner")
	c.Fees = []types.CenterFee{{Name: "day pass", Price: 15000, Count: 1}}
	repo := newFakeCenterRepo(c)
	svc := newTestCenterService(repo, &fakeCenterAggregate{}, nil)
	dbc := dbctx.Context{Ctx: context.Background()}
	owner := Subject{UserID: "owner", Role: types.RoleCenterAdmin}

	got, err := svc.FindCenterFees(dbc, owner, "c1")
	if err != nil {
		t.Fatalf("FindCenterFees: %v", err)
	}
	if len(got.Fees) != 1 || got.Fees[0].Price != 15000 || got.FeeImages == nil {
		t.Fatalf("fees: got=%+v", got)
	}

	next := CenterFees{
		Fees:      []types.CenterFee{{Name: "10 times", Price: 120000, Count: 10}, {Name: "month", Price: 150000, Count: 0}},
		FeeImages: []types.CenterFeeImage{{URL: "https://img/fee.png"}},
	}
	updated, err := svc.UpdateCenterFees(dbc, owner, "c1", next)
	if err != nil {
		t.Fatalf("UpdateCenterFees: %v", err)
	}
	if len(updated.Fees) != 2 || updated.Fees[0].Name != "10 times" || len(repo.fees["c1"]) != 2 {
		t.Fatalf("updated fees: got=%+v stored=%+v", updated, repo.fees["c1"])
	}

	_, err = svc.UpdateCenterFees(dbc, owner, "c1", CenterFees{Fees: []types.CenterFee{{Name: ""}}})
	if !apierr.IsKind(err, apierr.KindBadRequest) {
		t.Fatalf("kind: want=%s got=%s", apierr.KindBadRequest, apierr.KindOf(err))
	}
}

func TestFindCentersPaged(t *testing.T) {
	repo := newFakeCenterRepo(adminCenter("c1", "owner"), adminCenter("c2", "someone"))
	svc := newTestCenterService(repo, &fakeCenterAggregate{}, nil)

	got, err := svc.FindCenters(dbctx.Context{}, Subject{UserID: "owner"}, pagination.Params{Page: 1, Size: 10})
	if err != nil {
		t.Fatalf("FindCenters: %v", err)
	}
	if got.TotalCount != 1 || len(got.Results) != 1 || got.Results[0].CenterID != "c1" {
		t.Fatalf("FindCenters: got=%+v", got)
	}
}
