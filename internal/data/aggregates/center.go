package aggregates

import (
	"context"
	"strings"

	"github.com/claon/claon-admin/internal/data/repos"
	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/dbctx"
)

type CenterAggregateDeps struct {
	Base BaseDeps

	Users         repos.UserRepo
	Centers       repos.CenterRepo
	Holds         repos.CenterHoldRepo
	Walls         repos.CenterWallRepo
	ApprovedFiles repos.CenterApprovedFileRepo
	Schedules     repos.ScheduleRepo
}

type RegisterCenterInput struct {
	Center           *types.Center
	Holds            []*types.CenterHold
	Walls            []*types.CenterWall
	ApprovedFileURLs []string
	// PromoteOwner raises the owning user to CENTER_ADMIN in the same transaction.
	PromoteOwner bool
}

type ReplaceCenterInput struct {
	Center *types.Center
	Holds  []*types.CenterHold
	Walls  []*types.CenterWall
}

// CenterAggregate owns the write transactions of a center and its children.
type CenterAggregate interface {
	Register(ctx context.Context, in RegisterCenterInput) (*types.Center, error)
	Replace(ctx context.Context, in ReplaceCenterInput) (*types.Center, error)
	Delete(ctx context.Context, centerID string) error
}

type centerAggregate struct {
	deps CenterAggregateDeps
}

func NewCenterAggregate(deps CenterAggregateDeps) CenterAggregate {
	deps.Base = deps.Base.withDefaults()
	return &centerAggregate{deps: deps}
}

func (a *centerAggregate) configured() bool {
	d := a.deps
	return d.Users != nil && d.Centers != nil && d.Holds != nil && d.Walls != nil && d.ApprovedFiles != nil && d.Schedules != nil
}

func (a *centerAggregate) Register(ctx context.Context, in RegisterCenterInput) (*types.Center, error) {
	const op = "center.register"
	if !a.configured() {
		return nil, apierr.Internal(errNotConfigured)
	}
	if in.Center == nil || strings.TrimSpace(in.Center.UserID) == "" {
		return nil, apierr.BadRequest(apierr.CodeInvalidRequest, "center owner is required")
	}
	// Work on copies so a rolled back transaction leaves the input untouched.
	c := *in.Center
	c.Approved = false
	newHolds := cloneAll(in.Holds)
	for _, h := range newHolds {
		h.ID = ""
	}
	newWalls := cloneAll(in.Walls)
	for _, w := range newWalls {
		w.ID = ""
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if _, err := a.deps.Centers.Create(dbc, &c); err != nil {
			return err
		}
		holds, err := a.deps.Holds.CreateMany(dbc, c.ID, newHolds)
		if err != nil {
			return err
		}
		walls, err := a.deps.Walls.CreateMany(dbc, c.ID, newWalls)
		if err != nil {
			return err
		}
		files := make([]*types.CenterApprovedFile, 0, len(in.ApprovedFileURLs))
		for _, url := range in.ApprovedFileURLs {
			files = append(files, &types.CenterApprovedFile{URL: url, UserID: c.UserID, CenterID: c.ID})
		}
		if _, err := a.deps.ApprovedFiles.CreateMany(dbc, files); err != nil {
			return err
		}
		if in.PromoteOwner {
			if err := a.deps.Users.UpdateRole(dbc, c.UserID, types.RoleCenterAdmin); err != nil {
				return err
			}
		}
		c.Holds = derefHolds(holds)
		c.Walls = derefWalls(walls)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Replace overwrites the center profile and reconciles its holds and walls by
// id: entries carrying a known id are updated in place, entries without an id
// are created and rows missing from the input are deleted. Hold ids stay
// stable so climbing history keeps pointing at them.
func (a *centerAggregate) Replace(ctx context.Context, in ReplaceCenterInput) (*types.Center, error) {
	const op = "center.replace"
	if !a.configured() {
		return nil, apierr.Internal(errNotConfigured)
	}
	if in.Center == nil || in.Center.ID == "" {
		return nil, apierr.BadRequest(apierr.CodeInvalidRequest, "center id is required")
	}
	c := in.Center
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if err := a.deps.Centers.Save(dbc, c); err != nil {
			return err
		}
		holds, err := syncChildren(dbc, a.deps.Holds, c.ID, "hold", in.Holds, func(h *types.CenterHold) string { return h.ID })
		if err != nil {
			return err
		}
		walls, err := syncChildren(dbc, a.deps.Walls, c.ID, "wall", in.Walls, func(w *types.CenterWall) string { return w.ID })
		if err != nil {
			return err
		}
		c.Holds = derefHolds(holds)
		c.Walls = derefWalls(walls)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the center together with its holds, walls, approved files
// and schedules.
func (a *centerAggregate) Delete(ctx context.Context, centerID string) error {
	const op = "center.delete"
	if !a.configured() {
		return apierr.Internal(errNotConfigured)
	}
	return executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		if err := a.deps.ApprovedFiles.DeleteByCenter(dbc, centerID); err != nil {
			return err
		}
		if err := a.deps.Holds.DeleteByCenter(dbc, centerID); err != nil {
			return err
		}
		if err := a.deps.Walls.DeleteByCenter(dbc, centerID); err != nil {
			return err
		}
		if err := a.deps.Schedules.DeleteByCenter(dbc, centerID); err != nil {
			return err
		}
		return a.deps.Centers.Delete(dbc, centerID)
	})
}

type childRepo[T any] interface {
	ListByCenter(dbc dbctx.Context, centerID string) ([]*T, error)
	CreateMany(dbc dbctx.Context, centerID string, items []*T) ([]*T, error)
	Update(dbc dbctx.Context, centerID string, item *T) error
	DeleteByIDs(dbc dbctx.Context, centerID string, ids []string) error
}

// syncChildren makes the stored rows of one center match want. The returned
// slice keeps the order of want.
func syncChildren[T any](dbc dbctx.Context, repo childRepo[T], centerID, kind string, want []*T, idOf func(*T) string) ([]*T, error) {
	current, err := repo.ListByCenter(dbc, centerID)
	if err != nil {
		return nil, err
	}
	stale := make(map[string]bool, len(current))
	for _, row := range current {
		stale[idOf(row)] = true
	}

	var fresh []*T
	for _, item := range want {
		id := idOf(item)
		if id == "" {
			fresh = append(fresh, item)
			continue
		}
		if !stale[id] {
			return nil, apierr.BadRequest(apierr.CodeInvalidRequest, "unknown or repeated "+kind+" id "+id)
		}
		delete(stale, id)
		if err := repo.Update(dbc, centerID, item); err != nil {
			return nil, err
		}
	}

	removed := make([]string, 0, len(stale))
	for id := range stale {
		removed = append(removed, id)
	}
	if err := repo.DeleteByIDs(dbc, centerID, removed); err != nil {
		return nil, err
	}
	if _, err := repo.CreateMany(dbc, centerID, fresh); err != nil {
		return nil, err
	}
	return want, nil
}

func cloneAll[T any](in []*T) []*T {
	out := make([]*T, 0, len(in))
	for _, item := range in {
		cp := *item
		out = append(out, &cp)
	}
	return out
}

func derefHolds(in []*types.CenterHold) []types.CenterHold {
	out := make([]types.CenterHold, 0, len(in))
	for _, h := range in {
		out = append(out, *h)
	}
	return out
}

func derefWalls(in []*types.CenterWall) []types.CenterWall {
	out := make([]types.CenterWall, 0, len(in))
	for _, w := range in {
		out = append(out, *w)
	}
	return out
}
