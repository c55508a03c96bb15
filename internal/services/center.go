package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/claon/claon-admin/internal/data/aggregates"
	"github.com/claon/claon-admin/internal/data/repos"
	types "github.com/claon/claon-admin/internal/domain"
	"github.com/claon/claon-admin/internal/platform/apierr"
	"github.com/claon/claon-admin/internal/platform/cache"
	"github.com/claon/claon-admin/internal/platform/dbctx"
	"github.com/claon/claon-admin/internal/platform/logger"
	"github.com/claon/claon-admin/internal/platform/pagination"
)

const (
	centerNameCachePrefix = "center:name:"
	centerNameSearchLimit = 20
)

type CenterName struct {
	CenterID string `json:"center_id"`
	Name     string `json:"name"`
}

type CenterBrief struct {
	CenterID      string `json:"center_id"`
	Name          string `json:"center_name"`
	ProfileImage  string `json:"profile_image"`
	Address       string `json:"address"`
	DetailAddress string `json:"detail_address"`
	Approved      bool   `json:"is_approved"`
}

type CenterFees struct {
	Fees      []types.CenterFee      `json:"fee"`
	FeeImages []types.CenterFeeImage `json:"fee_img"`
}

type CenterService interface {
	FindCentersByName(ctx context.Context, name string) ([]CenterName, error)
	FindByID(dbc dbctx.Context, subject Subject, centerID string) (*types.Center, error)
	FindCenters(dbc dbctx.Context, subject Subject, params pagination.Params) (pagination.Pagination[CenterBrief], error)
	Create(ctx context.Context, subject Subject, in CenterInput) (*types.Center, error)
	Update(ctx context.Context, subject Subject, centerID string, in CenterInput) (*types.Center, error)
	Delete(ctx context.Context, subject Subject, centerID string) (*types.Center, error)
	FindCenterFees(dbc dbctx.Context, subject Subject, centerID string) (*CenterFees, error)
	UpdateCenterFees(dbc dbctx.Context, subject Subject, centerID string, fees CenterFees) (*CenterFees, error)
}

type centerService struct {
	log       *logger.Logger
	centers   repos.CenterRepo
	aggregate aggregates.CenterAggregate
	cache     cache.Store
	cacheTTL  time.Duration
}

// NewCenterService builds the center service. store may be nil, in which case
// name searches always hit the database.
func NewCenterService(
	log *logger.Logger,
	centers repos.CenterRepo,
	aggregate aggregates.CenterAggregate,
	store cache.Store,
	cacheTTL time.Duration,
) CenterService {
	return &centerService{
		log:       log.With("service", "CenterService"),
		centers:   centers,
		aggregate: aggregate,
		cache:     store,
		cacheTTL:  cacheTTL,
	}
}

func centerNameCacheKey(name string) string {
	return centerNameCachePrefix + strings.ToLower(name)
}

func (cs *centerService) FindCentersByName(ctx context.Context, name string) ([]CenterName, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return []CenterName{}, nil
	}
	key := centerNameCacheKey(name)

	var cached []CenterName
	err := cache.GetJSON(ctx, cs.cache, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		cs.log.Warn("Center name cache read failed", "error", err)
	}

	found, err := cs.centers.FindApprovedByName(dbctx.Context{Ctx: ctx}, name, centerNameSearchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]CenterName, 0, len(found))
	for _, c := range found {
		out = append(out, CenterName{CenterID: c.ID, Name: c.Name})
	}
	if cs.cacheTTL > 0 {
		if err := cache.SetJSON(ctx, cs.cache, key, out, cs.cacheTTL); err != nil {
			cs.log.Warn("Center name cache write failed", "error", err)
		}
	}
	return out, nil
}

func (cs *centerService) FindByID(dbc dbctx.Context, subject Subject, centerID string) (*types.Center, error) {
	return loadOwnedCenter(dbc, cs.centers, subject, centerID)
}

func (cs *centerService) FindCenters(dbc dbctx.Context, subject Subject, params pagination.Params) (pagination.Pagination[CenterBrief], error) {
	page, err := cs.centers.ListByUser(dbc, subject.UserID, params)
	if err != nil {
		return pagination.Pagination[CenterBrief]{}, err
	}
	return pagination.Wrap(page, toCenterBrief), nil
}

func toCenterBrief(c *types.Center) CenterBrief {
	return CenterBrief{
		CenterID:      c.ID,
		Name:          c.Name,
		ProfileImage:  c.ProfileImage,
		Address:       c.Address,
		DetailAddress: c.DetailAddress,
		Approved:      c.Approved,
	}
}

func (cs *centerService) Create(ctx context.Context, subject Subject, in CenterInput) (*types.Center, error) {
	if !subject.IsCenterAdmin() {
		return nil, apierr.Unauthorized(apierr.CodeNotAccessible, "not a center administrator")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return cs.aggregate.Register(ctx, aggregates.RegisterCenterInput{
		Center:           in.newCenter(subject.UserID),
		Holds:            in.holds(),
		Walls:            in.walls(),
		ApprovedFileURLs: in.ApprovedFileURLs,
	})
}

func (cs *centerService) Update(ctx context.Context, subject Subject, centerID string, in CenterInput) (*types.Center, error) {
	c, err := loadOwnedCenter(dbctx.Context{Ctx: ctx}, cs.centers, subject, centerID)
	if err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	c.ReplaceProfile(in.Profile)
	c.Name = strings.TrimSpace(c.Name)
	updated, err := cs.aggregate.Replace(ctx, aggregates.ReplaceCenterInput{
		Center: c,
		Holds:  in.holds(),
		Walls:  in.walls(),
	})
	if err != nil {
		return nil, err
	}
	cs.invalidateNames(ctx)
	return updated, nil
}

func (cs *centerService) Delete(ctx context.Context, subject Subject, centerID string) (*types.Center, error) {
	c, err := loadOwnedCenter(dbctx.Context{Ctx: ctx}, cs.centers, subject, centerID)
	if err != nil {
		return nil, err
	}
	if err := cs.aggregate.Delete(ctx, c.ID); err != nil {
		return nil, err
	}
	cs.invalidateNames(ctx)
	return c, nil
}

func (cs *centerService) FindCenterFees(dbc dbctx.Context, subject Subject, centerID string) (*CenterFees, error) {
	c, err := loadOwnedCenter(dbc, cs.centers, subject, centerID)
	if err != nil {
		return nil, err
	}
	return feesOf(c), nil
}

func (cs *centerService) UpdateCenterFees(dbc dbctx.Context, subject Subject, centerID string, fees CenterFees) (*CenterFees, error) {
	c, err := loadOwnedCenter(dbc, cs.centers, subject, centerID)
	if err != nil {
		return nil, err
	}
	for _, fee := range fees.Fees {
		if strings.TrimSpace(fee.Name) == "" || fee.Price < 0 || fee.Count < 0 {
			return nil, apierr.BadRequest(apierr.CodeInvalidRequest, "invalid fee")
		}
	}
	c.ReplaceFees(fees.Fees, fees.FeeImages)
	if err := cs.centers.UpdateFees(dbc, c.ID, c.Fees, c.FeeImages); err != nil {
		return nil, err
	}
	return feesOf(c), nil
}

func feesOf(c *types.Center) *CenterFees {
	out := &CenterFees{Fees: c.Fees, FeeImages: c.FeeImages}
	if out.Fees == nil {
		out.Fees = []types.CenterFee{}
	}
	if out.FeeImages == nil {
		out.FeeImages = []types.CenterFeeImage{}
	}
	return out
}

func (cs *centerService) invalidateNames(ctx context.Context) {
	if cs.cache == nil {
		return
	}
	if err := cs.cache.DeletePrefix(ctx, centerNameCachePrefix); err != nil {
		cs.log.Warn("Center name cache invalidation failed", "error", err)
	}
}
